package metadata_test

import (
	"testing"

	"prooflab/internal/metadata"
)

func TestCaptureDateKey(t *testing.T) {
	cases := []struct {
		name     string
		blob     metadata.Blob
		expected string
	}{
		{"nil blob", nil, metadata.UnknownDate},
		{"empty blob", metadata.Blob{}, metadata.UnknownDate},
		{"date time original", metadata.Blob{"DateTimeOriginal": "2024:01:15 10:30:00"}, "2024:01:15"},
		{"create date fallback", metadata.Blob{"CreateDate": "2023:12:31 23:59:59"}, "2023:12:31"},
		{"original wins over create date", metadata.Blob{"DateTimeOriginal": "2024:01:15 10:30:00", "CreateDate": "2023:12:31 08:00:00"}, "2024:01:15"},
		{"bare date without time", metadata.Blob{"DateTimeOriginal": "2024:01:15"}, "2024:01:15"},
		{"pattern mismatch", metadata.Blob{"DateTimeOriginal": "January 15 2024"}, metadata.UnknownDate},
		{"dashes instead of colons", metadata.Blob{"DateTimeOriginal": "2024-01-15 10:30:00"}, metadata.UnknownDate},
		{"too short", metadata.Blob{"DateTimeOriginal": "2024:01"}, metadata.UnknownDate},
		{"malformed original blocks fallback", metadata.Blob{"DateTimeOriginal": 12345, "CreateDate": "2024:01:15 10:30:00"}, metadata.UnknownDate},
		{"null original falls through", metadata.Blob{"DateTimeOriginal": nil, "CreateDate": "2024:01:15 10:30:00"}, "2024:01:15"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := metadata.CaptureDateKey(tc.blob); got != tc.expected {
				t.Fatalf("expected %q, got %q", tc.expected, got)
			}
		})
	}
}

func TestFilenamePrefix(t *testing.T) {
	cases := []struct {
		filename string
		prefix   string
		ok       bool
	}{
		{"DSC_001.jpg", "dsc", true},
		{"DSC-002.jpg", "dsc", true},
		{"IMG_099.jpg", "img", true},
		{"wedding-ceremony-001.jpg", "wedding-ceremony", true},
		{"001_reception.jpg", "", false},
		{"", "", false},
		{"photo.jpg", "photo", true},
		{"_hidden001.raw", "_hidden", true},
		{"__001.jpg", "", false},
	}
	for _, tc := range cases {
		t.Run(tc.filename, func(t *testing.T) {
			prefix, ok := metadata.FilenamePrefix(tc.filename)
			if ok != tc.ok || prefix != tc.prefix {
				t.Fatalf("FilenamePrefix(%q) = %q, %v; expected %q, %v", tc.filename, prefix, ok, tc.prefix, tc.ok)
			}
		})
	}
}

func TestCameraKey(t *testing.T) {
	cases := []struct {
		name     string
		blob     metadata.Blob
		expected string
	}{
		{"nil blob", nil, metadata.UnknownCamera},
		{"make and model", metadata.Blob{"Make": "Canon", "Model": "EOS R5"}, "Canon EOS R5"},
		{"make only", metadata.Blob{"Make": "  Nikon  "}, "Nikon"},
		{"model only", metadata.Blob{"Model": "X-T5"}, "X-T5"},
		{"both blank", metadata.Blob{"Make": "   ", "Model": ""}, metadata.UnknownCamera},
		{"malformed make ignored", metadata.Blob{"Make": 42, "Model": "EOS R5"}, "EOS R5"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := metadata.CameraKey(tc.blob); got != tc.expected {
				t.Fatalf("expected %q, got %q", tc.expected, got)
			}
		})
	}
}

func TestParseBlob(t *testing.T) {
	blob := metadata.ParseBlob([]byte(`{"Make":"Sony","Model":"A7 IV","DateTimeOriginal":"2024:06:01 12:00:00"}`))
	if got := metadata.CameraKey(blob); got != "Sony A7 IV" {
		t.Fatalf("unexpected camera key %q", got)
	}
	if got := metadata.CaptureDateKey(blob); got != "2024:06:01" {
		t.Fatalf("unexpected date key %q", got)
	}

	if blob := metadata.ParseBlob(nil); blob != nil {
		t.Fatalf("expected nil blob for empty payload, got %v", blob)
	}
	if blob := metadata.ParseBlob([]byte("{not json")); blob != nil {
		t.Fatalf("expected nil blob for invalid payload, got %v", blob)
	}
}

func TestFieldStates(t *testing.T) {
	blob := metadata.Blob{"Make": "Canon", "ISO": 800.0}
	if f := blob.Field("Make"); f.State != metadata.FieldPresent || f.Value != "Canon" {
		t.Fatalf("unexpected field %+v", f)
	}
	if f := blob.Field("ISO"); f.State != metadata.FieldMalformed {
		t.Fatalf("expected malformed for non-string, got %+v", f)
	}
	if f := blob.Field("Model"); f.State != metadata.FieldMissing {
		t.Fatalf("expected missing, got %+v", f)
	}
}
