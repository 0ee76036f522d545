// Package commit materializes accepted suggestions into persisted
// collections.
//
// Apply creates one collection and bulk-reassigns its assets through the
// gallery store, which owns the ownership re-checks. ApplyAll folds a claimed
// asset set over the batch so an asset committed by an earlier suggestion is
// excluded from every later one; the fold makes the at-most-one-collection
// invariant hold even for overlapping input. Batches from separate processes
// are serialized by a flock file under the data directory.
package commit
