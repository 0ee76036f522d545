package suggest

import "prooflab/internal/config"

// Type identifies the strategy that produced a suggestion.
type Type string

const (
	TypeDate     Type = "date"
	TypeFilename Type = "filename"
	TypeCamera   Type = "camera"
)

// Preview pairs an asset id with its thumbnail for display.
type Preview struct {
	AssetID      string `json:"assetId"`
	ThumbnailURL string `json:"thumbnailUrl"`
}

// Suggestion is a transient, engine-proposed candidate collection. It is
// created fresh on every analysis call and never persisted or shared across
// requests.
type Suggestion struct {
	Type        Type      `json:"type"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	AssetIDs    []string  `json:"assetIds"`
	PhotoCount  int       `json:"photoCount"`
	Previews    []Preview `json:"previewPhotos"`
}

// Analysis is the result of one analyze call.
type Analysis struct {
	Suggestions        []Suggestion `json:"suggestions"`
	TotalUncategorized int          `json:"totalUncategorized"`
	Message            string       `json:"message"`
}

// Thresholds holds the ranking policy previously hard-coded in the engine.
type Thresholds struct {
	MinDateGroup     int
	MinFilenameGroup int
	MinCameraGroup   int
	MaxSuggestions   int
	PreviewPhotos    int
}

// DefaultThresholds mirrors the documented policy: date groups of 2, filename
// groups of 3, camera groups of 5, top 10 suggestions, 4 previews.
func DefaultThresholds() Thresholds {
	return Thresholds{
		MinDateGroup:     2,
		MinFilenameGroup: 3,
		MinCameraGroup:   5,
		MaxSuggestions:   10,
		PreviewPhotos:    4,
	}
}

// ThresholdsFromConfig copies the tuning knobs out of application config.
func ThresholdsFromConfig(cfg *config.Config) Thresholds {
	if cfg == nil {
		return DefaultThresholds()
	}
	return Thresholds{
		MinDateGroup:     cfg.Suggestions.MinDateGroup,
		MinFilenameGroup: cfg.Suggestions.MinFilenameGroup,
		MinCameraGroup:   cfg.Suggestions.MinCameraGroup,
		MaxSuggestions:   cfg.Suggestions.MaxSuggestions,
		PreviewPhotos:    cfg.Suggestions.PreviewPhotos,
	}
}
