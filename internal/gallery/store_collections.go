package gallery

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"prooflab/internal/services"
)

const collectionColumns = "id, gallery_id, name, description, cover_asset_id, sort_order, created_at"

// CreateCollection inserts a new collection scoped to a gallery. Sort order is
// assigned after the gallery's existing collections.
func (s *Store) CreateCollection(ctx context.Context, galleryID, name, description string) (*Collection, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, services.Wrap(services.ErrValidation, "store", "create collection", "name is required", nil)
	}
	if _, err := s.GetGallery(ctx, galleryID); err != nil {
		return nil, err
	}

	var sortOrder int
	row := s.db.QueryRowContext(ctx, "SELECT COUNT(1) FROM collections WHERE gallery_id = ?", galleryID)
	if err := row.Scan(&sortOrder); err != nil {
		return nil, fmt.Errorf("count collections: %w", err)
	}

	id := uuid.NewString()
	_, err := s.db.ExecContext(
		ctx,
		"INSERT INTO collections (id, gallery_id, name, description, cover_asset_id, sort_order, created_at) VALUES (?, ?, ?, ?, NULL, ?, ?)",
		id, galleryID, name, strings.TrimSpace(description), sortOrder+1, nowTimestamp(),
	)
	if err != nil {
		return nil, fmt.Errorf("insert collection: %w", err)
	}
	return s.GetCollection(ctx, id)
}

// GetCollection fetches a collection by id.
func (s *Store) GetCollection(ctx context.Context, id string) (*Collection, error) {
	row := s.db.QueryRowContext(ctx, "SELECT "+collectionColumns+" FROM collections WHERE id = ?", id)
	c, err := scanCollection(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, services.Wrap(services.ErrNotFound, "store", "get collection", fmt.Sprintf("collection %s", id), nil)
	}
	if err != nil {
		return nil, fmt.Errorf("query collection: %w", err)
	}
	return c, nil
}

// ListCollections returns a gallery's collections in sort order.
func (s *Store) ListCollections(ctx context.Context, galleryID string) ([]*Collection, error) {
	if _, err := s.GetGallery(ctx, galleryID); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(
		ctx,
		"SELECT "+collectionColumns+" FROM collections WHERE gallery_id = ? ORDER BY sort_order, created_at",
		galleryID,
	)
	if err != nil {
		return nil, fmt.Errorf("query collections: %w", err)
	}
	defer rows.Close()

	var collections []*Collection
	for rows.Next() {
		c, err := scanCollection(rows)
		if err != nil {
			return nil, fmt.Errorf("scan collection: %w", err)
		}
		collections = append(collections, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate collections: %w", err)
	}
	return collections, nil
}

// ReassignAssets links the given assets to a collection in one transaction.
// Only assets belonging to the collection's gallery are updated; ids from
// other galleries are ignored rather than mutated, which re-verifies ownership
// at the store layer. The operation is idempotent: assets already in the
// collection stay there.
func (s *Store) ReassignAssets(ctx context.Context, collectionID string, assetIDs []string) error {
	collection, err := s.GetCollection(ctx, collectionID)
	if err != nil {
		return err
	}
	if len(assetIDs) == 0 {
		return nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin reassign tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(
		ctx,
		"UPDATE assets SET collection_id = ? WHERE id = ? AND gallery_id = ?",
	)
	if err != nil {
		return fmt.Errorf("prepare reassign: %w", err)
	}
	defer stmt.Close()

	for _, assetID := range assetIDs {
		if _, err := stmt.ExecContext(ctx, collectionID, assetID, collection.GalleryID); err != nil {
			return fmt.Errorf("reassign asset %s: %w", assetID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit reassign: %w", err)
	}
	return nil
}

// CollectionAssetIDs returns the ids of assets currently linked to a
// collection, ordered by id.
func (s *Store) CollectionAssetIDs(ctx context.Context, collectionID string) ([]string, error) {
	rows, err := s.db.QueryContext(
		ctx,
		"SELECT id FROM assets WHERE collection_id = ? ORDER BY id",
		collectionID,
	)
	if err != nil {
		return nil, fmt.Errorf("query collection assets: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan asset id: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate asset ids: %w", err)
	}
	return ids, nil
}

// SetCollectionCover records the asset used as a collection's cover image.
func (s *Store) SetCollectionCover(ctx context.Context, collectionID, assetID string) error {
	res, err := s.db.ExecContext(
		ctx,
		"UPDATE collections SET cover_asset_id = ? WHERE id = ?",
		assetID, collectionID,
	)
	if err != nil {
		return fmt.Errorf("set collection cover: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("set collection cover: %w", err)
	}
	if affected == 0 {
		return services.Wrap(services.ErrNotFound, "store", "set cover", fmt.Sprintf("collection %s", collectionID), nil)
	}
	return nil
}

func scanCollection(scanner interface{ Scan(dest ...any) error }) (*Collection, error) {
	var (
		id          string
		galleryID   string
		name        string
		description string
		coverAsset  sql.NullString
		sortOrder   int
		createdRaw  string
	)
	if err := scanner.Scan(&id, &galleryID, &name, &description, &coverAsset, &sortOrder, &createdRaw); err != nil {
		return nil, err
	}

	c := &Collection{
		ID:          id,
		GalleryID:   galleryID,
		Name:        name,
		Description: description,
		SortOrder:   sortOrder,
		CreatedAt:   parseTimestamp(createdRaw),
	}
	if coverAsset.Valid {
		c.CoverAssetID = coverAsset.String
	}
	return c, nil
}
