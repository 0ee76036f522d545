package api_test

import (
	"context"
	"errors"
	"testing"

	"prooflab/internal/api"
	"prooflab/internal/commit"
	"prooflab/internal/config"
	"prooflab/internal/gallery"
	"prooflab/internal/services"
	"prooflab/internal/suggest"
	"prooflab/internal/testsupport"
)

func newService(t *testing.T, cfg *config.Config, store *gallery.Store) *api.SuggestionService {
	t.Helper()
	analyzer := suggest.NewAnalyzer(store, suggest.ThresholdsFromConfig(cfg), suggest.PolicyFromConfig(cfg), nil)
	engine := commit.NewEngine(store, cfg.ApplyLockPath(), nil)
	return api.NewSuggestionService(analyzer, engine, nil)
}

func TestAnalyzeThenApplyAllRoundTrip(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)
	svc := newService(t, cfg, store)
	ctx := context.Background()
	g := testsupport.NewGallery(t, store, "Wedding")

	testsupport.AddAsset(t, store, g.ID, "DSC_001.jpg", testsupport.ExifDate("2025:06:14 18:00:00"))
	testsupport.AddAsset(t, store, g.ID, "DSC_002.jpg", testsupport.ExifDate("2025:06:14 18:05:00"))
	testsupport.AddAsset(t, store, g.ID, "DSC_003.jpg", testsupport.ExifDate("2025:06:15 10:00:00"))
	testsupport.AddAsset(t, store, g.ID, "DSC_004.jpg", testsupport.ExifDate("2025:06:15 10:30:00"))

	analysis, err := svc.Analyze(ctx, g.ID)
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}
	if analysis.TotalUncategorized != 4 || len(analysis.Suggestions) == 0 {
		t.Fatalf("unexpected analysis: %+v", analysis)
	}

	var reqs []api.ApplyRequest
	for _, s := range analysis.Suggestions {
		reqs = append(reqs, api.ApplyRequest{Name: s.Name, Description: s.Description, AssetIDs: s.AssetIDs})
	}
	result, err := svc.ApplyAll(ctx, g.ID, reqs)
	if err != nil {
		t.Fatalf("ApplyAll failed: %v", err)
	}
	if result.TotalCount != len(reqs) || len(result.Results) != len(reqs) {
		t.Fatalf("incomplete ledger: %+v", result)
	}

	// A second analysis over the same gallery reports nothing left.
	again, err := svc.Analyze(ctx, g.ID)
	if err != nil {
		t.Fatalf("second Analyze failed: %v", err)
	}
	if again.TotalUncategorized != 0 || again.Message != suggest.MessageNothingUncategorized {
		t.Fatalf("expected organized gallery, got %+v", again)
	}
}

func TestAnalyzeMissingGallery(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)
	svc := newService(t, cfg, store)

	_, err := svc.Analyze(context.Background(), "no-such-gallery")
	if !errors.Is(err, services.ErrNotFound) {
		t.Fatalf("expected not-found, got %v", err)
	}
}

func TestApplySingleSuggestion(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)
	svc := newService(t, cfg, store)
	ctx := context.Background()
	g := testsupport.NewGallery(t, store, "Portraits")

	a := testsupport.AddAsset(t, store, g.ID, "IMG_100.jpg", nil)
	b := testsupport.AddAsset(t, store, g.ID, "IMG_101.jpg", nil)

	resp, err := svc.Apply(ctx, g.ID, api.ApplyRequest{
		Name:     "Keepers",
		AssetIDs: []string{a.ID, b.ID},
	})
	if err != nil {
		t.Fatalf("Apply failed: %v", err)
	}
	if resp.PhotoCount != 2 || resp.CollectionID == "" {
		t.Fatalf("unexpected response: %+v", resp)
	}

	collections, err := store.ListCollections(ctx, g.ID)
	if err != nil {
		t.Fatalf("ListCollections failed: %v", err)
	}
	if len(collections) != 1 || collections[0].Name != "Keepers" {
		t.Fatalf("unexpected collections: %+v", collections)
	}
}

func TestApplyValidationSurfacesKind(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)
	svc := newService(t, cfg, store)

	_, err := svc.Apply(context.Background(), "g1", api.ApplyRequest{Name: ""})
	if services.Kind(err) != "validation" {
		t.Fatalf("expected validation kind, got %q (%v)", services.Kind(err), err)
	}
}
