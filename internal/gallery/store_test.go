package gallery_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"prooflab/internal/gallery"
	"prooflab/internal/services"
	"prooflab/internal/testsupport"
)

func TestOpenAppliesMigrations(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)

	ctx := context.Background()
	g, err := store.CreateGallery(ctx, "Summer Wedding", "Avery Jones")
	if err != nil {
		t.Fatalf("CreateGallery failed: %v", err)
	}
	if g.ID == "" {
		t.Fatal("expected gallery ID to be assigned")
	}

	fetched, err := store.GetGallery(ctx, g.ID)
	if err != nil {
		t.Fatalf("GetGallery failed: %v", err)
	}
	if fetched.Name != "Summer Wedding" || fetched.ClientName != "Avery Jones" {
		t.Fatalf("unexpected fetched gallery: %#v", fetched)
	}
}

func TestCreateGalleryRequiresName(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)

	if _, err := store.CreateGallery(context.Background(), "   ", ""); !errors.Is(err, services.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestGetGalleryMissingIsNotFound(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)

	_, err := store.GetGallery(context.Background(), "no-such-gallery")
	if !errors.Is(err, services.ErrNotFound) {
		t.Fatalf("expected not found marker, got %v", err)
	}
}

func TestAddAssetValidation(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)
	ctx := context.Background()
	g := testsupport.NewGallery(t, store, "Portraits")

	if _, err := store.AddAsset(ctx, g.ID, gallery.NewAsset{Filename: ""}); !errors.Is(err, services.ErrValidation) {
		t.Fatalf("expected validation error for empty filename, got %v", err)
	}
	if _, err := store.AddAsset(ctx, "missing", gallery.NewAsset{Filename: "a.jpg"}); !errors.Is(err, services.ErrNotFound) {
		t.Fatalf("expected not found for missing gallery, got %v", err)
	}
	if _, err := store.AddAsset(ctx, g.ID, gallery.NewAsset{Filename: "a.jpg", RawExif: []byte("{broken")}); !errors.Is(err, services.ErrValidation) {
		t.Fatalf("expected validation error for invalid exif, got %v", err)
	}
}

func TestAssetsSortByImportOrder(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)
	ctx := context.Background()
	g := testsupport.NewGallery(t, store, "Ordered")

	var want []string
	for i := 0; i < 5; i++ {
		asset := testsupport.AddAsset(t, store, g.ID, fmt.Sprintf("IMG_%03d.jpg", i), nil)
		want = append(want, asset.ID)
	}

	assets, err := store.ListAssets(ctx, g.ID)
	if err != nil {
		t.Fatalf("ListAssets failed: %v", err)
	}
	if len(assets) != len(want) {
		t.Fatalf("expected %d assets, got %d", len(want), len(assets))
	}
	for i, asset := range assets {
		if asset.ID != want[i] {
			t.Fatalf("position %d: expected %s, got %s", i, want[i], asset.ID)
		}
	}
}

func TestAssetExifRoundTrip(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)
	ctx := context.Background()
	g := testsupport.NewGallery(t, store, "Exif")

	asset := testsupport.AddAsset(t, store, g.ID, "DSC_001.jpg", testsupport.ExifCamera("Canon", "EOS R5"))

	assets, err := store.ListAssets(ctx, g.ID)
	if err != nil {
		t.Fatalf("ListAssets failed: %v", err)
	}
	if len(assets) != 1 || assets[0].ID != asset.ID {
		t.Fatalf("unexpected assets: %#v", assets)
	}
	if field := assets[0].Exif.Field("Make"); field.Value != "Canon" {
		t.Fatalf("expected exif to round-trip, got %+v", field)
	}
}

func TestFindUncategorizedAssets(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)
	ctx := context.Background()
	g := testsupport.NewGallery(t, store, "Uncategorized")

	a := testsupport.AddAsset(t, store, g.ID, "a.jpg", nil)
	b := testsupport.AddAsset(t, store, g.ID, "b.jpg", nil)

	collection, err := store.CreateCollection(ctx, g.ID, "Ceremony", "")
	if err != nil {
		t.Fatalf("CreateCollection failed: %v", err)
	}
	if err := store.ReassignAssets(ctx, collection.ID, []string{a.ID}); err != nil {
		t.Fatalf("ReassignAssets failed: %v", err)
	}

	uncategorized, err := store.FindUncategorizedAssets(ctx, g.ID)
	if err != nil {
		t.Fatalf("FindUncategorizedAssets failed: %v", err)
	}
	if len(uncategorized) != 1 || uncategorized[0].ID != b.ID {
		t.Fatalf("expected only %s uncategorized, got %#v", b.ID, uncategorized)
	}

	if _, err := store.FindUncategorizedAssets(ctx, "missing"); !errors.Is(err, services.ErrNotFound) {
		t.Fatalf("expected not found for missing gallery, got %v", err)
	}
}

func TestCollectionSortOrder(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)
	ctx := context.Background()
	g := testsupport.NewGallery(t, store, "Sorted")

	first, err := store.CreateCollection(ctx, g.ID, "First", "")
	if err != nil {
		t.Fatalf("CreateCollection failed: %v", err)
	}
	second, err := store.CreateCollection(ctx, g.ID, "Second", "desc")
	if err != nil {
		t.Fatalf("CreateCollection failed: %v", err)
	}
	if first.SortOrder != 1 || second.SortOrder != 2 {
		t.Fatalf("expected sequential sort order, got %d then %d", first.SortOrder, second.SortOrder)
	}

	collections, err := store.ListCollections(ctx, g.ID)
	if err != nil {
		t.Fatalf("ListCollections failed: %v", err)
	}
	if len(collections) != 2 || collections[0].ID != first.ID || collections[1].ID != second.ID {
		t.Fatalf("unexpected collection order: %#v", collections)
	}
}

func TestReassignAssetsScopedToGallery(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)
	ctx := context.Background()

	mine := testsupport.NewGallery(t, store, "Mine")
	theirs := testsupport.NewGallery(t, store, "Theirs")

	ownAsset := testsupport.AddAsset(t, store, mine.ID, "own.jpg", nil)
	foreignAsset := testsupport.AddAsset(t, store, theirs.ID, "foreign.jpg", nil)

	collection, err := store.CreateCollection(ctx, mine.ID, "Highlights", "")
	if err != nil {
		t.Fatalf("CreateCollection failed: %v", err)
	}

	if err := store.ReassignAssets(ctx, collection.ID, []string{ownAsset.ID, foreignAsset.ID}); err != nil {
		t.Fatalf("ReassignAssets failed: %v", err)
	}

	ids, err := store.CollectionAssetIDs(ctx, collection.ID)
	if err != nil {
		t.Fatalf("CollectionAssetIDs failed: %v", err)
	}
	if len(ids) != 1 || ids[0] != ownAsset.ID {
		t.Fatalf("expected only own asset reassigned, got %v", ids)
	}

	// Foreign asset must remain untouched.
	uncategorized, err := store.FindUncategorizedAssets(ctx, theirs.ID)
	if err != nil {
		t.Fatalf("FindUncategorizedAssets failed: %v", err)
	}
	if len(uncategorized) != 1 || uncategorized[0].ID != foreignAsset.ID {
		t.Fatalf("expected foreign asset untouched, got %#v", uncategorized)
	}
}

func TestReassignAssetsIdempotent(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)
	ctx := context.Background()
	g := testsupport.NewGallery(t, store, "Retry")

	asset := testsupport.AddAsset(t, store, g.ID, "a.jpg", nil)
	collection, err := store.CreateCollection(ctx, g.ID, "Keepers", "")
	if err != nil {
		t.Fatalf("CreateCollection failed: %v", err)
	}

	for i := 0; i < 2; i++ {
		if err := store.ReassignAssets(ctx, collection.ID, []string{asset.ID}); err != nil {
			t.Fatalf("ReassignAssets attempt %d failed: %v", i+1, err)
		}
	}

	ids, err := store.CollectionAssetIDs(ctx, collection.ID)
	if err != nil {
		t.Fatalf("CollectionAssetIDs failed: %v", err)
	}
	if len(ids) != 1 {
		t.Fatalf("expected one membership after retry, got %v", ids)
	}
}

func TestReassignAssetsMissingCollection(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)

	err := store.ReassignAssets(context.Background(), "missing", []string{"a"})
	if !errors.Is(err, services.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}
