// Package metadata extracts normalized grouping keys from the opaque
// EXIF-style blobs attached to gallery assets.
//
// Extraction is pure and total: garbage, partial, or absent metadata resolves
// to sentinel keys (UnknownDate, UnknownCamera) instead of errors. The Field
// type keeps "absent" distinct from "present but malformed" so the fallback
// chains stay explicit instead of scattering nil checks through strategy code.
package metadata
