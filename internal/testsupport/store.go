package testsupport

import (
	"context"
	"fmt"
	"testing"

	"prooflab/internal/config"
	"prooflab/internal/gallery"
)

// MustOpenStore opens a gallery.Store for tests and registers cleanup.
func MustOpenStore(t testing.TB, cfg *config.Config) *gallery.Store {
	t.Helper()

	store, err := gallery.Open(cfg)
	if err != nil {
		t.Fatalf("gallery.Open: %v", err)
	}
	t.Cleanup(func() {
		store.Close()
	})
	return store
}

// NewGallery creates a gallery for tests using the provided store.
func NewGallery(t testing.TB, store *gallery.Store, name string) *gallery.Gallery {
	t.Helper()

	g, err := store.CreateGallery(context.Background(), name, "Test Client")
	if err != nil {
		t.Fatalf("store.CreateGallery: %v", err)
	}
	return g
}

// AddAsset inserts one asset with an optional raw EXIF payload.
func AddAsset(t testing.TB, store *gallery.Store, galleryID, filename string, exif []byte) *gallery.Asset {
	t.Helper()

	asset, err := store.AddAsset(context.Background(), galleryID, gallery.NewAsset{
		Filename:     filename,
		ThumbnailURL: fmt.Sprintf("https://cdn.example.com/thumbs/%s", filename),
		RawExif:      exif,
	})
	if err != nil {
		t.Fatalf("store.AddAsset(%s): %v", filename, err)
	}
	return asset
}

// ExifDate renders a minimal EXIF payload with the given DateTimeOriginal.
func ExifDate(dateTime string) []byte {
	return []byte(fmt.Sprintf(`{"DateTimeOriginal":%q}`, dateTime))
}

// ExifCamera renders a minimal EXIF payload with Make and Model.
func ExifCamera(maker, model string) []byte {
	return []byte(fmt.Sprintf(`{"Make":%q,"Model":%q}`, maker, model))
}
