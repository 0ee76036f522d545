package api

import (
	"context"

	"prooflab/internal/gallery"
)

// GalleryStore abstracts the persistence interactions needed for gallery and
// asset queries.
type GalleryStore interface {
	CreateGallery(ctx context.Context, name, clientName string) (*gallery.Gallery, error)
	GetGallery(ctx context.Context, id string) (*gallery.Gallery, error)
	ListGalleries(ctx context.Context) ([]*gallery.Gallery, error)
	AddAsset(ctx context.Context, galleryID string, in gallery.NewAsset) (*gallery.Asset, error)
	ListAssets(ctx context.Context, galleryID string) ([]*gallery.Asset, error)
	FindUncategorizedAssets(ctx context.Context, galleryID string) ([]*gallery.Asset, error)
	ListCollections(ctx context.Context, galleryID string) ([]*gallery.Collection, error)
}

// GalleryService exposes gallery and asset operations returning API DTOs.
type GalleryService struct {
	store GalleryStore
}

// NewGalleryService constructs a GalleryService around the provided store.
func NewGalleryService(store GalleryStore) *GalleryService {
	if store == nil {
		return nil
	}
	return &GalleryService{store: store}
}

// Create registers a new gallery.
func (s *GalleryService) Create(ctx context.Context, name, clientName string) (*GalleryView, error) {
	g, err := s.store.CreateGallery(ctx, name, clientName)
	if err != nil {
		return nil, err
	}
	view := FromGallery(g)
	return &view, nil
}

// List returns every gallery.
func (s *GalleryService) List(ctx context.Context) ([]GalleryView, error) {
	galleries, err := s.store.ListGalleries(ctx)
	if err != nil {
		return nil, err
	}
	return FromGalleries(galleries), nil
}

// Describe fetches a gallery together with its collections and asset counts.
func (s *GalleryService) Describe(ctx context.Context, id string) (*GalleryDetail, error) {
	g, err := s.store.GetGallery(ctx, id)
	if err != nil {
		return nil, err
	}
	assets, err := s.store.ListAssets(ctx, id)
	if err != nil {
		return nil, err
	}
	collections, err := s.store.ListCollections(ctx, id)
	if err != nil {
		return nil, err
	}
	uncategorized := 0
	for _, a := range assets {
		if a.Uncategorized() {
			uncategorized++
		}
	}
	return &GalleryDetail{
		Gallery:            FromGallery(g),
		AssetCount:         len(assets),
		UncategorizedCount: uncategorized,
		Collections:        FromCollections(collections),
	}, nil
}

// AddAsset registers one photo in the gallery.
func (s *GalleryService) AddAsset(ctx context.Context, galleryID string, req NewAssetRequest) (*AssetView, error) {
	asset, err := s.store.AddAsset(ctx, galleryID, gallery.NewAsset{
		Filename:     req.Filename,
		ThumbnailURL: req.ThumbnailURL,
		RawExif:      req.Exif,
	})
	if err != nil {
		return nil, err
	}
	view := FromAsset(asset)
	return &view, nil
}

// ListAssets returns the gallery's photos in import order.
func (s *GalleryService) ListAssets(ctx context.Context, galleryID string) ([]AssetView, error) {
	assets, err := s.store.ListAssets(ctx, galleryID)
	if err != nil {
		return nil, err
	}
	return FromAssets(assets), nil
}

// ListCollections returns the gallery's collections in sort order.
func (s *GalleryService) ListCollections(ctx context.Context, galleryID string) ([]CollectionView, error) {
	collections, err := s.store.ListCollections(ctx, galleryID)
	if err != nil {
		return nil, err
	}
	return FromCollections(collections), nil
}
