package suggest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"

	"prooflab/internal/gallery"
	"prooflab/internal/logging"
	"prooflab/internal/metadata"
	"prooflab/internal/services"
)

// Messages returned with successful analyses. Both "nothing to do" shapes are
// results, never errors.
const (
	MessageNothingUncategorized = "All photos are already organized into collections"
	MessageNoGroupings          = "No clear groupings found among the uncategorized photos"
)

// AssetSource is the slice of the gallery store the analyzer reads.
type AssetSource interface {
	FindUncategorizedAssets(ctx context.Context, galleryID string) ([]*gallery.Asset, error)
}

// Analyzer runs the grouping strategies over a gallery's uncategorized assets
// and ranks the resulting suggestions. It is stateless between calls.
type Analyzer struct {
	source AssetSource
	limits Thresholds
	policy OverlapPolicy
	logger *slog.Logger
}

// NewAnalyzer wires an analyzer with explicit policy knobs.
func NewAnalyzer(source AssetSource, limits Thresholds, policy OverlapPolicy, logger *slog.Logger) *Analyzer {
	if policy == nil {
		policy = NoSuppression{}
	}
	return &Analyzer{
		source: source,
		limits: limits,
		policy: policy,
		logger: logging.NewComponentLogger(logger, "suggest"),
	}
}

// Analyze inspects the gallery's uncategorized pool and proposes collections.
// A missing gallery passes the store's NotFound marker through; any other
// fault surfaces as ErrAnalysisFailed.
func (a *Analyzer) Analyze(ctx context.Context, galleryID string) (*Analysis, error) {
	assets, err := a.source.FindUncategorizedAssets(ctx, galleryID)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return nil, err
		}
		return nil, services.Wrap(services.ErrAnalysisFailed, "suggest", "fetch assets", "", err)
	}

	if len(assets) == 0 {
		return &Analysis{
			Suggestions:        []Suggestion{},
			TotalUncategorized: 0,
			Message:            MessageNothingUncategorized,
		}, nil
	}

	dates := a.dateCandidates(assets)
	filenames := a.filenameCandidates(assets, dates)
	cameras := a.cameraCandidates(assets)

	suggestions := make([]Suggestion, 0, len(dates)+len(filenames)+len(cameras))
	suggestions = append(suggestions, dates...)
	suggestions = append(suggestions, filenames...)
	suggestions = append(suggestions, cameras...)

	// Stable sort keeps strategy-then-bucket discovery order on ties.
	sort.SliceStable(suggestions, func(i, j int) bool {
		return suggestions[i].PhotoCount > suggestions[j].PhotoCount
	})
	if len(suggestions) > a.limits.MaxSuggestions {
		suggestions = suggestions[:a.limits.MaxSuggestions]
	}

	message := MessageNoGroupings
	if len(suggestions) > 0 {
		message = fmt.Sprintf("Found %d suggested collections", len(suggestions))
	}

	a.logger.Debug("analysis complete",
		logging.String(logging.FieldGalleryID, galleryID),
		logging.Int("uncategorized", len(assets)),
		logging.Int("suggestions", len(suggestions)))

	return &Analysis{
		Suggestions:        suggestions,
		TotalUncategorized: len(assets),
		Message:            message,
	}, nil
}

func (a *Analyzer) dateCandidates(assets []*gallery.Asset) []Suggestion {
	var out []Suggestion
	for _, b := range groupByDate(assets) {
		if len(b.assets) < a.limits.MinDateGroup {
			continue
		}
		out = append(out, b.dateSuggestion(a.limits))
	}
	return out
}

func (a *Analyzer) filenameCandidates(assets []*gallery.Asset, dates []Suggestion) []Suggestion {
	var out []Suggestion
	for _, b := range groupByFilename(assets) {
		if len(b.assets) < a.limits.MinFilenameGroup {
			continue
		}
		candidate := b.filenameSuggestion(a.limits)
		if a.policy.Suppress(candidate, dates) {
			continue
		}
		out = append(out, candidate)
	}
	return out
}

func (a *Analyzer) cameraCandidates(assets []*gallery.Asset) []Suggestion {
	var out []Suggestion
	for _, b := range groupByCamera(assets) {
		if b.key == metadata.UnknownCamera {
			continue
		}
		if len(b.assets) < a.limits.MinCameraGroup {
			continue
		}
		out = append(out, b.cameraSuggestion(a.limits))
	}
	return out
}
