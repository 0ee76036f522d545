package api

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"prooflab/internal/commit"
	"prooflab/internal/logging"
	"prooflab/internal/services"
	"prooflab/internal/suggest"
)

// SuggestionService is the boundary in front of the analysis and commit
// engines. It stamps each call with the gallery id, operation name and a
// correlation id so every log line below it carries the request context.
type SuggestionService struct {
	analyzer *suggest.Analyzer
	engine   *commit.Engine
	logger   *slog.Logger
}

// NewSuggestionService wires the service facade.
func NewSuggestionService(analyzer *suggest.Analyzer, engine *commit.Engine, logger *slog.Logger) *SuggestionService {
	return &SuggestionService{
		analyzer: analyzer,
		engine:   engine,
		logger:   logging.NewComponentLogger(logger, "api"),
	}
}

// Analyze proposes collections for the gallery's uncategorized photos.
func (s *SuggestionService) Analyze(ctx context.Context, galleryID string) (*AnalyzeResponse, error) {
	ctx = annotate(ctx, galleryID, "analyze")
	log := logging.WithContext(ctx, s.logger)

	analysis, err := s.analyzer.Analyze(ctx, galleryID)
	if err != nil {
		log.Error("analysis failed",
			logging.String("error_kind", services.Kind(err)),
			logging.Error(err))
		return nil, err
	}
	log.Info("analysis complete",
		logging.Int("suggestions", len(analysis.Suggestions)),
		logging.Int("uncategorized", analysis.TotalUncategorized))
	return FromAnalysis(galleryID, analysis), nil
}

// Apply materializes one accepted suggestion.
func (s *SuggestionService) Apply(ctx context.Context, galleryID string, req ApplyRequest) (*ApplyResponse, error) {
	ctx = annotate(ctx, galleryID, "apply")
	log := logging.WithContext(ctx, s.logger)

	applied, err := s.engine.Apply(ctx, galleryID, ToCommitRequest(req))
	if err != nil {
		log.Error("apply failed",
			logging.String("suggestion", req.Name),
			logging.String("error_kind", services.Kind(err)),
			logging.Error(err))
		return FromApplied(applied), err
	}
	log.Info("suggestion applied",
		logging.String("collection_id", applied.CollectionID),
		logging.Int("photo_count", applied.PhotoCount))
	return FromApplied(applied), nil
}

// ApplyAll materializes a batch of accepted suggestions in order.
func (s *SuggestionService) ApplyAll(ctx context.Context, galleryID string, reqs []ApplyRequest) (*ApplyAllResponse, error) {
	ctx = annotate(ctx, galleryID, "apply_all")
	log := logging.WithContext(ctx, s.logger)

	result, err := s.engine.ApplyAll(ctx, galleryID, ToCommitRequests(reqs))
	if err != nil {
		log.Error("apply-all failed",
			logging.String("error_kind", services.Kind(err)),
			logging.Error(err))
		return FromBatchResult(result), err
	}
	log.Info("apply-all complete",
		logging.Int("succeeded", result.SuccessCount),
		logging.Int("total", result.TotalCount))
	return FromBatchResult(result), nil
}

// annotate stamps request-scoped context fields. An existing correlation id
// is kept so callers can thread their own.
func annotate(ctx context.Context, galleryID, op string) context.Context {
	ctx = services.WithGalleryID(ctx, galleryID)
	ctx = services.WithOperation(ctx, op)
	if _, ok := services.RequestIDFromContext(ctx); !ok {
		ctx = services.WithRequestID(ctx, uuid.NewString())
	}
	return ctx
}
