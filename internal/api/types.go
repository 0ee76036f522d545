package api

import "encoding/json"

// dateTimeFormat is used for RFC3339 timestamps in API payloads.
const dateTimeFormat = "2006-01-02T15:04:05.000Z07:00"

// GalleryView describes a gallery in a transport-friendly format.
type GalleryView struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	ClientName string `json:"clientName,omitempty"`
	CreatedAt  string `json:"createdAt,omitempty"`
}

// AssetView describes one photo record.
type AssetView struct {
	ID           string `json:"id"`
	Filename     string `json:"filename"`
	ThumbnailURL string `json:"thumbnailUrl,omitempty"`
	CollectionID string `json:"collectionId,omitempty"`
	CreatedAt    string `json:"createdAt,omitempty"`
}

// CollectionView describes a persisted collection.
type CollectionView struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Description  string `json:"description,omitempty"`
	CoverAssetID string `json:"coverAssetId,omitempty"`
	SortOrder    int    `json:"sortOrder"`
	CreatedAt    string `json:"createdAt,omitempty"`
}

// PreviewView pairs an asset id with its thumbnail for display.
type PreviewView struct {
	AssetID      string `json:"assetId"`
	ThumbnailURL string `json:"thumbnailUrl"`
}

// SuggestionView is the transport shape of one proposed collection.
type SuggestionView struct {
	Type        string        `json:"type"`
	Name        string        `json:"name"`
	Description string        `json:"description"`
	AssetIDs    []string      `json:"assetIds"`
	PhotoCount  int           `json:"photoCount"`
	Previews    []PreviewView `json:"previewPhotos"`
}

// AnalyzeResponse wraps the result of one analysis pass.
type AnalyzeResponse struct {
	GalleryID          string           `json:"galleryId"`
	Suggestions        []SuggestionView `json:"suggestions"`
	TotalUncategorized int              `json:"totalUncategorized"`
	Message            string           `json:"message,omitempty"`
}

// ApplyRequest names one accepted suggestion to materialize.
type ApplyRequest struct {
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	AssetIDs    []string `json:"assetIds"`
}

// ApplyResponse reports a created collection.
type ApplyResponse struct {
	CollectionID string `json:"collectionId"`
	Name         string `json:"name"`
	PhotoCount   int    `json:"photoCount"`
}

// ApplyOutcome is one entry of the apply-all ledger.
type ApplyOutcome struct {
	Name         string `json:"name"`
	Success      bool   `json:"success"`
	Error        string `json:"error,omitempty"`
	CollectionID string `json:"collectionId,omitempty"`
	PhotoCount   int    `json:"photoCount"`
}

// ApplyAllResponse is the complete record of an apply-all run.
type ApplyAllResponse struct {
	Results      []ApplyOutcome `json:"results"`
	SuccessCount int            `json:"successCount"`
	TotalCount   int            `json:"totalCount"`
}

// GalleryDetail aggregates a gallery with its collection and asset summary.
type GalleryDetail struct {
	Gallery            GalleryView      `json:"gallery"`
	AssetCount         int              `json:"assetCount"`
	UncategorizedCount int              `json:"uncategorizedCount"`
	Collections        []CollectionView `json:"collections"`
}

// NewAssetRequest carries the caller-supplied fields for asset creation.
// Exif is stored verbatim; malformed payloads are rejected at the store.
type NewAssetRequest struct {
	Filename     string          `json:"filename"`
	ThumbnailURL string          `json:"thumbnailUrl,omitempty"`
	Exif         json.RawMessage `json:"exif,omitempty"`
}
