package gallery

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/oklog/ulid/v2"

	"prooflab/internal/metadata"
	"prooflab/internal/services"
)

const assetColumns = "id, gallery_id, collection_id, filename, thumbnail_url, exif_json, created_at"

// AddAsset inserts one asset into a gallery. Asset ids are ULIDs so listings
// sort by import time without a secondary column.
func (s *Store) AddAsset(ctx context.Context, galleryID string, in NewAsset) (*Asset, error) {
	if strings.TrimSpace(in.Filename) == "" {
		return nil, services.Wrap(services.ErrValidation, "store", "add asset", "filename is required", nil)
	}
	if _, err := s.GetGallery(ctx, galleryID); err != nil {
		return nil, err
	}
	if len(in.RawExif) > 0 && !json.Valid(in.RawExif) {
		return nil, services.Wrap(services.ErrValidation, "store", "add asset", "exif payload is not valid JSON", nil)
	}

	id := ulid.Make().String()
	var exif sql.NullString
	if len(in.RawExif) > 0 {
		exif = sql.NullString{String: string(in.RawExif), Valid: true}
	}

	_, err := s.db.ExecContext(
		ctx,
		"INSERT INTO assets (id, gallery_id, collection_id, filename, thumbnail_url, exif_json, created_at) VALUES (?, ?, NULL, ?, ?, ?, ?)",
		id, galleryID, strings.TrimSpace(in.Filename), strings.TrimSpace(in.ThumbnailURL), exif, nowTimestamp(),
	)
	if err != nil {
		return nil, fmt.Errorf("insert asset: %w", err)
	}
	return s.getAsset(ctx, id)
}

// ListAssets returns every asset in a gallery ordered by id.
func (s *Store) ListAssets(ctx context.Context, galleryID string) ([]*Asset, error) {
	if _, err := s.GetGallery(ctx, galleryID); err != nil {
		return nil, err
	}
	return s.queryAssets(ctx,
		"SELECT "+assetColumns+" FROM assets WHERE gallery_id = ? ORDER BY id",
		galleryID,
	)
}

// FindUncategorizedAssets returns the gallery's assets that belong to no
// collection, ordered by id. The gallery existence check runs first so a
// missing gallery fails with NotFound before any asset read.
func (s *Store) FindUncategorizedAssets(ctx context.Context, galleryID string) ([]*Asset, error) {
	if _, err := s.GetGallery(ctx, galleryID); err != nil {
		return nil, err
	}
	return s.queryAssets(ctx,
		"SELECT "+assetColumns+" FROM assets WHERE gallery_id = ? AND collection_id IS NULL ORDER BY id",
		galleryID,
	)
}

func (s *Store) getAsset(ctx context.Context, id string) (*Asset, error) {
	row := s.db.QueryRowContext(ctx, "SELECT "+assetColumns+" FROM assets WHERE id = ?", id)
	asset, err := scanAsset(row)
	if err != nil {
		return nil, fmt.Errorf("query asset: %w", err)
	}
	return asset, nil
}

func (s *Store) queryAssets(ctx context.Context, query string, args ...any) ([]*Asset, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query assets: %w", err)
	}
	defer rows.Close()

	var assets []*Asset
	for rows.Next() {
		asset, err := scanAsset(rows)
		if err != nil {
			return nil, fmt.Errorf("scan asset: %w", err)
		}
		assets = append(assets, asset)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate assets: %w", err)
	}
	return assets, nil
}

func scanAsset(scanner interface{ Scan(dest ...any) error }) (*Asset, error) {
	var (
		id           string
		galleryID    string
		collectionID sql.NullString
		filename     string
		thumbnailURL string
		exifRaw      sql.NullString
		createdRaw   string
	)
	if err := scanner.Scan(&id, &galleryID, &collectionID, &filename, &thumbnailURL, &exifRaw, &createdRaw); err != nil {
		return nil, err
	}

	asset := &Asset{
		ID:           id,
		GalleryID:    galleryID,
		Filename:     filename,
		ThumbnailURL: thumbnailURL,
		CreatedAt:    parseTimestamp(createdRaw),
	}
	if collectionID.Valid {
		asset.CollectionID = collectionID.String
	}
	if exifRaw.Valid {
		asset.Exif = metadata.ParseBlob([]byte(exifRaw.String))
	}
	return asset, nil
}
