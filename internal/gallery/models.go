package gallery

import (
	"time"

	"prooflab/internal/metadata"
)

// Gallery is the tenant-scoped container of assets that collections and
// suggestions operate within.
type Gallery struct {
	ID         string
	Name       string
	ClientName string
	CreatedAt  time.Time
}

// Asset is one delivered photo record. CollectionID is empty while the asset
// is uncategorized; the engine never writes it directly, only through
// ReassignAssets.
type Asset struct {
	ID           string
	GalleryID    string
	CollectionID string
	Filename     string
	ThumbnailURL string
	Exif         metadata.Blob
	CreatedAt    time.Time
}

// Uncategorized reports whether the asset belongs to no collection.
func (a *Asset) Uncategorized() bool {
	return a != nil && a.CollectionID == ""
}

// NewAsset carries the caller-supplied fields for asset creation. RawExif is
// the opaque metadata payload as received from the upload pipeline; it is
// stored verbatim and decoded on read.
type NewAsset struct {
	Filename     string
	ThumbnailURL string
	RawExif      []byte
}

// Collection is a named, persisted grouping of assets within one gallery.
type Collection struct {
	ID           string
	GalleryID    string
	Name         string
	Description  string
	CoverAssetID string
	SortOrder    int
	CreatedAt    time.Time
}
