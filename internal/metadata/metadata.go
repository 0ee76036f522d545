package metadata

import (
	"encoding/json"
	"strings"
)

// Sentinel keys produced when asset metadata cannot answer a question.
const (
	UnknownDate   = "Unknown Date"
	UnknownCamera = "Unknown Camera"
)

// Blob is the opaque key/value metadata bag attached to an asset. Values come
// from untrusted EXIF-style payloads and may hold any JSON type; fields are
// only ever read through Field so absence and malformation stay distinct.
type Blob map[string]any

// ParseBlob decodes a raw JSON metadata payload. Empty or invalid payloads
// yield a nil blob rather than an error; downstream extraction treats every
// field as missing.
func ParseBlob(raw []byte) Blob {
	if len(raw) == 0 {
		return nil
	}
	var blob Blob
	if err := json.Unmarshal(raw, &blob); err != nil {
		return nil
	}
	return blob
}

// FieldState describes how a metadata field resolved.
type FieldState int

const (
	// FieldMissing means the key was absent from the blob.
	FieldMissing FieldState = iota
	// FieldMalformed means the key was present but not a usable string.
	FieldMalformed
	// FieldPresent means the key held a string value.
	FieldPresent
)

// Field is a resolved metadata field with explicit presence information.
type Field struct {
	State FieldState
	Value string
}

// Field resolves a single key from the blob.
func (b Blob) Field(key string) Field {
	if b == nil {
		return Field{State: FieldMissing}
	}
	raw, ok := b[key]
	if !ok || raw == nil {
		return Field{State: FieldMissing}
	}
	value, ok := raw.(string)
	if !ok {
		return Field{State: FieldMalformed}
	}
	return Field{State: FieldPresent, Value: value}
}

// Resolve walks keys in order and returns the first field that is not
// missing. A present-but-malformed field consumes the chain: later fallbacks
// are not consulted.
func (b Blob) Resolve(keys ...string) Field {
	for _, key := range keys {
		if field := b.Field(key); field.State != FieldMissing {
			return field
		}
	}
	return Field{State: FieldMissing}
}

// CaptureDateKey extracts the grouping key for the temporal strategy:
// DateTimeOriginal falling back to CreateDate, keeping the literal
// colon-separated YYYY:MM:DD prefix. No timezone conversion happens. Absent or
// pattern-mismatched values yield UnknownDate.
func CaptureDateKey(blob Blob) string {
	field := blob.Resolve("DateTimeOriginal", "CreateDate")
	if field.State != FieldPresent {
		return UnknownDate
	}
	if !hasDatePrefix(field.Value) {
		return UnknownDate
	}
	return field.Value[:10]
}

// hasDatePrefix reports whether s starts with a strict YYYY:MM:DD pattern.
func hasDatePrefix(s string) bool {
	if len(s) < 10 {
		return false
	}
	for i := 0; i < 10; i++ {
		c := s[i]
		if i == 4 || i == 7 {
			if c != ':' {
				return false
			}
			continue
		}
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

// FilenamePrefix extracts the lexical grouping key: the longest leading run of
// ASCII letters, underscore, or hyphen, lower-cased, with trailing separator
// characters trimmed so DSC_001 and DSC-001 land in the same bucket. ok is
// false when the filename starts with any other character; such assets join no
// lexical group.
func FilenamePrefix(filename string) (string, bool) {
	end := 0
	for end < len(filename) {
		c := filename[end]
		if (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || c == '_' || c == '-' {
			end++
			continue
		}
		break
	}
	prefix := strings.TrimRight(filename[:end], "_-")
	if prefix == "" {
		return "", false
	}
	return strings.ToLower(prefix), true
}

// CameraKey extracts the device grouping key: trimmed Make and Model joined
// with a single space, omitting whichever side is blank. Both blank yields
// UnknownCamera.
func CameraKey(blob Blob) string {
	maker := trimmedString(blob.Field("Make"))
	model := trimmedString(blob.Field("Model"))
	switch {
	case maker != "" && model != "":
		return maker + " " + model
	case maker != "":
		return maker
	case model != "":
		return model
	default:
		return UnknownCamera
	}
}

func trimmedString(field Field) string {
	if field.State != FieldPresent {
		return ""
	}
	return strings.TrimSpace(field.Value)
}
