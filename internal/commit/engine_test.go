package commit_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"prooflab/internal/commit"
	"prooflab/internal/gallery"
	"prooflab/internal/services"
	"prooflab/internal/testsupport"
)

// fakeStore implements commit.CollectionStore in memory with failure
// injection.
type fakeStore struct {
	collections map[string][]string
	covers      map[string]string
	nextID      int
	createErr   error
	assignErr   error
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		collections: make(map[string][]string),
		covers:      make(map[string]string),
	}
}

func (f *fakeStore) CreateCollection(ctx context.Context, galleryID, name, description string) (*gallery.Collection, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.nextID++
	id := fmt.Sprintf("col-%d", f.nextID)
	f.collections[id] = nil
	return &gallery.Collection{ID: id, GalleryID: galleryID, Name: name, Description: description}, nil
}

func (f *fakeStore) ReassignAssets(ctx context.Context, collectionID string, assetIDs []string) error {
	if f.assignErr != nil {
		return f.assignErr
	}
	f.collections[collectionID] = append(f.collections[collectionID], assetIDs...)
	return nil
}

func (f *fakeStore) SetCollectionCover(ctx context.Context, collectionID, assetID string) error {
	f.covers[collectionID] = assetID
	return nil
}

func TestApplyValidation(t *testing.T) {
	engine := commit.NewEngine(newFakeStore(), "", nil)
	ctx := context.Background()

	if _, err := engine.Apply(ctx, "gal-1", commit.Request{AssetIDs: []string{"a"}}); !errors.Is(err, services.ErrValidation) {
		t.Fatalf("expected validation error for empty name, got %v", err)
	}
	if _, err := engine.Apply(ctx, "gal-1", commit.Request{Name: "Keepers"}); !errors.Is(err, services.ErrValidation) {
		t.Fatalf("expected validation error for empty asset list, got %v", err)
	}
}

func TestApplyCreatesAndAssigns(t *testing.T) {
	store := newFakeStore()
	engine := commit.NewEngine(store, "", nil)

	applied, err := engine.Apply(context.Background(), "gal-1", commit.Request{Name: "Ceremony", AssetIDs: []string{"a", "b"}})
	if err != nil {
		t.Fatalf("Apply failed: %v", err)
	}
	if applied.PhotoCount != 2 || applied.Name != "Ceremony" || applied.CollectionID == "" {
		t.Fatalf("unexpected result: %+v", applied)
	}
	if got := store.collections[applied.CollectionID]; len(got) != 2 {
		t.Fatalf("expected 2 assets reassigned, got %v", got)
	}
	if cover := store.covers[applied.CollectionID]; cover != "a" {
		t.Fatalf("expected first asset as cover, got %q", cover)
	}
}

func TestApplyCreateFailure(t *testing.T) {
	store := newFakeStore()
	store.createErr = errors.New("db locked")
	engine := commit.NewEngine(store, "", nil)

	_, err := engine.Apply(context.Background(), "gal-1", commit.Request{Name: "X", AssetIDs: []string{"a"}})
	if !errors.Is(err, services.ErrCreateFailed) {
		t.Fatalf("expected create-failed marker, got %v", err)
	}
}

func TestApplyCreateNotFoundPassesThrough(t *testing.T) {
	store := newFakeStore()
	store.createErr = services.Wrap(services.ErrNotFound, "store", "get gallery", "gallery gal-1", nil)
	engine := commit.NewEngine(store, "", nil)

	_, err := engine.Apply(context.Background(), "gal-1", commit.Request{Name: "X", AssetIDs: []string{"a"}})
	if !errors.Is(err, services.ErrNotFound) {
		t.Fatalf("expected not-found to pass through, got %v", err)
	}
	if errors.Is(err, services.ErrCreateFailed) {
		t.Fatalf("not-found must not be reclassified: %v", err)
	}
}

func TestApplyAssignFailureReturnsCollectionID(t *testing.T) {
	store := newFakeStore()
	store.assignErr = errors.New("constraint violation")
	engine := commit.NewEngine(store, "", nil)

	applied, err := engine.Apply(context.Background(), "gal-1", commit.Request{Name: "X", AssetIDs: []string{"a"}})
	if !errors.Is(err, services.ErrAssignFailed) {
		t.Fatalf("expected assign-failed marker, got %v", err)
	}
	if applied == nil || applied.CollectionID == "" {
		t.Fatalf("expected orphaned collection id for inspection, got %+v", applied)
	}
}

func TestApplyAllFirstAppliedWins(t *testing.T) {
	ctx := context.Background()
	a := commit.Request{Name: "A", AssetIDs: []string{"shared", "a1"}}
	b := commit.Request{Name: "B", AssetIDs: []string{"shared", "b1"}}

	for _, tc := range []struct {
		name  string
		order []commit.Request
		first string
	}{
		{"a first", []commit.Request{a, b}, "A"},
		{"b first", []commit.Request{b, a}, "B"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			store := newFakeStore()
			engine := commit.NewEngine(store, "", nil)
			result, err := engine.ApplyAll(ctx, "gal-1", tc.order)
			if err != nil {
				t.Fatalf("ApplyAll failed: %v", err)
			}
			if result.SuccessCount != 2 || result.TotalCount != 2 {
				t.Fatalf("unexpected counts: %+v", result)
			}

			winner := result.Results[0]
			if winner.Name != tc.first || winner.PhotoCount != 2 {
				t.Fatalf("expected %s to win the shared asset, got %+v", tc.first, winner)
			}
			loser := result.Results[1]
			if !loser.Success || loser.PhotoCount != 1 {
				t.Fatalf("expected loser to commit only its own asset, got %+v", loser)
			}

			// Invariant: no asset id in two collections.
			seen := make(map[string]string)
			for id, assets := range store.collections {
				for _, assetID := range assets {
					if prev, dup := seen[assetID]; dup {
						t.Fatalf("asset %s committed to both %s and %s", assetID, prev, id)
					}
					seen[assetID] = id
				}
			}
		})
	}
}

func TestApplyAllRecordsFullyClaimedSuggestion(t *testing.T) {
	store := newFakeStore()
	engine := commit.NewEngine(store, "", nil)

	result, err := engine.ApplyAll(context.Background(), "gal-1", []commit.Request{
		{Name: "First", AssetIDs: []string{"a", "b"}},
		{Name: "Duplicate", AssetIDs: []string{"a", "b"}},
	})
	if err != nil {
		t.Fatalf("ApplyAll failed: %v", err)
	}
	if result.SuccessCount != 1 {
		t.Fatalf("expected one success, got %+v", result)
	}
	dup := result.Results[1]
	if dup.Success || dup.Error != commit.ErrAllPhotosAssigned {
		t.Fatalf("unexpected duplicate outcome: %+v", dup)
	}
	if len(store.collections) != 1 {
		t.Fatalf("fully-claimed suggestion must not create a collection: %v", store.collections)
	}
}

func TestApplyAllContinuesAfterFailure(t *testing.T) {
	store := newFakeStore()
	engine := commit.NewEngine(store, "", nil)

	result, err := engine.ApplyAll(context.Background(), "gal-1", []commit.Request{
		{Name: "Bad", AssetIDs: nil},
		{Name: "Good", AssetIDs: []string{"a"}},
	})
	if err != nil {
		t.Fatalf("ApplyAll failed: %v", err)
	}
	if len(result.Results) != 2 {
		t.Fatalf("expected complete ledger, got %+v", result)
	}
	if result.Results[0].Success {
		t.Fatalf("expected first entry to fail: %+v", result.Results[0])
	}
	if !result.Results[1].Success {
		t.Fatalf("expected batch to continue after failure: %+v", result.Results[1])
	}
	if result.SuccessCount != 1 || result.TotalCount != 2 {
		t.Fatalf("unexpected counts: %+v", result)
	}
}

func TestApplyAllStopsOnCancellation(t *testing.T) {
	store := newFakeStore()
	engine := commit.NewEngine(store, "", nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result, err := engine.ApplyAll(ctx, "gal-1", []commit.Request{
		{Name: "A", AssetIDs: []string{"a"}},
	})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context error, got %v", err)
	}
	if result == nil || len(result.Results) != 0 {
		t.Fatalf("expected empty partial ledger, got %+v", result)
	}
	if len(store.collections) != 0 {
		t.Fatalf("no collection should be created after cancellation: %v", store.collections)
	}
}

func TestApplyAllAgainstSQLiteStore(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)
	ctx := context.Background()
	g := testsupport.NewGallery(t, store, "Batch")

	var ids []string
	for i := 0; i < 4; i++ {
		ids = append(ids, testsupport.AddAsset(t, store, g.ID, fmt.Sprintf("IMG_%03d.jpg", i), nil).ID)
	}

	engine := commit.NewEngine(store, cfg.ApplyLockPath(), nil)
	result, err := engine.ApplyAll(ctx, g.ID, []commit.Request{
		{Name: "Morning", AssetIDs: []string{ids[0], ids[1], ids[2]}},
		{Name: "Afternoon", AssetIDs: []string{ids[2], ids[3]}},
	})
	if err != nil {
		t.Fatalf("ApplyAll failed: %v", err)
	}
	if result.SuccessCount != 2 {
		t.Fatalf("expected both suggestions applied, got %+v", result)
	}

	morning, err := store.CollectionAssetIDs(ctx, result.Results[0].CollectionID)
	if err != nil {
		t.Fatalf("CollectionAssetIDs failed: %v", err)
	}
	afternoon, err := store.CollectionAssetIDs(ctx, result.Results[1].CollectionID)
	if err != nil {
		t.Fatalf("CollectionAssetIDs failed: %v", err)
	}
	if len(morning) != 3 {
		t.Fatalf("expected morning to keep 3 assets, got %v", morning)
	}
	if len(afternoon) != 1 || afternoon[0] != ids[3] {
		t.Fatalf("expected afternoon to hold only the unshared asset, got %v", afternoon)
	}

	uncategorized, err := store.FindUncategorizedAssets(ctx, g.ID)
	if err != nil {
		t.Fatalf("FindUncategorizedAssets failed: %v", err)
	}
	if len(uncategorized) != 0 {
		t.Fatalf("expected every asset committed, got %d left", len(uncategorized))
	}
}
