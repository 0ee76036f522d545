package commit

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/gofrs/flock"

	"prooflab/internal/gallery"
	"prooflab/internal/logging"
	"prooflab/internal/services"
)

// ErrAllPhotosAssigned is the per-suggestion outcome text recorded when the
// claimed set leaves nothing to commit.
const ErrAllPhotosAssigned = "All photos already assigned"

// CollectionStore is the slice of the gallery store the commit phase writes
// through. ReassignAssets re-verifies asset/gallery ownership and is
// idempotent under retry; the engine does not duplicate those checks.
type CollectionStore interface {
	CreateCollection(ctx context.Context, galleryID, name, description string) (*gallery.Collection, error)
	ReassignAssets(ctx context.Context, collectionID string, assetIDs []string) error
	SetCollectionCover(ctx context.Context, collectionID, assetID string) error
}

// Request names one accepted suggestion to materialize.
type Request struct {
	Name        string
	Description string
	AssetIDs    []string
}

// Applied reports a successfully created collection. CollectionID is also set
// when reassignment failed after creation so the caller can inspect the
// orphaned collection.
type Applied struct {
	CollectionID string
	Name         string
	PhotoCount   int
}

// Outcome is one entry of the apply-all ledger.
type Outcome struct {
	Name         string
	Success      bool
	Error        string
	CollectionID string
	PhotoCount   int
}

// BatchResult is the complete, per-suggestion record of an apply-all run.
type BatchResult struct {
	Results      []Outcome
	SuccessCount int
	TotalCount   int
}

// Engine materializes accepted suggestions against the shared asset pool.
// It is request-scoped and stateless between invocations.
type Engine struct {
	store    CollectionStore
	lockPath string
	logger   *slog.Logger
}

// NewEngine wires a commit engine. lockPath may be empty to skip the
// cross-process apply lock (tests, in-memory callers).
func NewEngine(store CollectionStore, lockPath string, logger *slog.Logger) *Engine {
	return &Engine{
		store:    store,
		lockPath: lockPath,
		logger:   logging.NewComponentLogger(logger, "commit"),
	}
}

// Apply creates one collection and reassigns exactly the given assets to it.
func (e *Engine) Apply(ctx context.Context, galleryID string, req Request) (*Applied, error) {
	if req.Name == "" {
		return nil, services.Wrap(services.ErrValidation, "commit", "apply", "collection name is required", nil)
	}
	if len(req.AssetIDs) == 0 {
		return nil, services.Wrap(services.ErrValidation, "commit", "apply", "at least one asset is required", nil)
	}

	collection, err := e.store.CreateCollection(ctx, galleryID, req.Name, req.Description)
	if err != nil {
		if services.Kind(err) == "not_found" || services.Kind(err) == "validation" {
			return nil, err
		}
		return nil, services.Wrap(services.ErrCreateFailed, "commit", "create collection", req.Name, err)
	}

	if err := e.store.ReassignAssets(ctx, collection.ID, req.AssetIDs); err != nil {
		// The collection exists but holds nothing; hand its id back so the
		// caller can inspect or clean up.
		return &Applied{CollectionID: collection.ID, Name: collection.Name},
			services.Wrap(services.ErrAssignFailed, "commit", "reassign assets", req.Name, err)
	}

	// The first assigned photo doubles as the cover. Cosmetic, so a failure
	// is logged and the apply still counts as successful.
	if err := e.store.SetCollectionCover(ctx, collection.ID, req.AssetIDs[0]); err != nil {
		e.logger.Warn("failed to set collection cover",
			logging.String("collection_id", collection.ID),
			logging.Error(err))
	}

	e.logger.Info("collection applied",
		logging.String(logging.FieldGalleryID, galleryID),
		logging.String("collection_id", collection.ID),
		logging.Int("photo_count", len(req.AssetIDs)))

	return &Applied{
		CollectionID: collection.ID,
		Name:         collection.Name,
		PhotoCount:   len(req.AssetIDs),
	}, nil
}

// ApplyAll processes suggestions strictly in the order given: first-applied
// wins every overlap. The fold over the claimed set is inherently sequential;
// suggestions must never be committed in parallel within one batch. One
// suggestion's failure is recorded and the batch continues; the returned
// ledger always covers every processed entry. Cancellation stops before the
// next suggestion, returning the partial ledger alongside the context error.
func (e *Engine) ApplyAll(ctx context.Context, galleryID string, requests []Request) (*BatchResult, error) {
	if e.lockPath != "" {
		lock := flock.New(e.lockPath)
		if err := lock.Lock(); err != nil {
			return nil, services.Wrap(services.ErrTransient, "commit", "apply all", "acquire apply lock", err)
		}
		defer func() {
			if err := lock.Unlock(); err != nil {
				e.logger.Warn("failed to release apply lock", logging.Error(err))
			}
		}()
	}

	result := &BatchResult{
		Results:    make([]Outcome, 0, len(requests)),
		TotalCount: len(requests),
	}
	claimed := NewClaimedSet()

	for _, req := range requests {
		if err := ctx.Err(); err != nil {
			return result, fmt.Errorf("apply all interrupted: %w", err)
		}

		available := claimed.Available(req.AssetIDs)
		if len(available) == 0 {
			result.Results = append(result.Results, Outcome{Name: req.Name, Error: ErrAllPhotosAssigned})
			continue
		}

		applied, err := e.Apply(ctx, galleryID, Request{
			Name:        req.Name,
			Description: req.Description,
			AssetIDs:    available,
		})
		if err != nil {
			outcome := Outcome{Name: req.Name, Error: err.Error()}
			if applied != nil {
				outcome.CollectionID = applied.CollectionID
			}
			result.Results = append(result.Results, outcome)
			e.logger.Warn("suggestion failed to apply",
				logging.String(logging.FieldGalleryID, galleryID),
				logging.String("suggestion", req.Name),
				logging.Error(err))
			continue
		}

		claimed.Claim(available)
		result.Results = append(result.Results, Outcome{
			Name:         applied.Name,
			Success:      true,
			CollectionID: applied.CollectionID,
			PhotoCount:   applied.PhotoCount,
		})
		result.SuccessCount++
	}

	return result, nil
}
