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

// CreateGallery inserts a new gallery.
func (s *Store) CreateGallery(ctx context.Context, name, clientName string) (*Gallery, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, services.Wrap(services.ErrValidation, "store", "create gallery", "name is required", nil)
	}

	id := uuid.NewString()
	timestamp := nowTimestamp()
	_, err := s.db.ExecContext(
		ctx,
		"INSERT INTO galleries (id, name, client_name, created_at) VALUES (?, ?, ?, ?)",
		id, name, strings.TrimSpace(clientName), timestamp,
	)
	if err != nil {
		return nil, fmt.Errorf("insert gallery: %w", err)
	}
	return s.GetGallery(ctx, id)
}

// GetGallery fetches a gallery by id. Missing galleries surface the NotFound
// marker so callers can classify without string matching.
func (s *Store) GetGallery(ctx context.Context, id string) (*Gallery, error) {
	row := s.db.QueryRowContext(
		ctx,
		"SELECT id, name, client_name, created_at FROM galleries WHERE id = ?",
		id,
	)
	g, err := scanGallery(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, services.Wrap(services.ErrNotFound, "store", "get gallery", fmt.Sprintf("gallery %s", id), nil)
	}
	if err != nil {
		return nil, fmt.Errorf("query gallery: %w", err)
	}
	return g, nil
}

// ListGalleries returns every gallery ordered by creation time.
func (s *Store) ListGalleries(ctx context.Context) ([]*Gallery, error) {
	rows, err := s.db.QueryContext(
		ctx,
		"SELECT id, name, client_name, created_at FROM galleries ORDER BY created_at, id",
	)
	if err != nil {
		return nil, fmt.Errorf("query galleries: %w", err)
	}
	defer rows.Close()

	var galleries []*Gallery
	for rows.Next() {
		g, err := scanGallery(rows)
		if err != nil {
			return nil, fmt.Errorf("scan gallery: %w", err)
		}
		galleries = append(galleries, g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate galleries: %w", err)
	}
	return galleries, nil
}

func scanGallery(scanner interface{ Scan(dest ...any) error }) (*Gallery, error) {
	var (
		id         string
		name       string
		clientName string
		createdRaw string
	)
	if err := scanner.Scan(&id, &name, &clientName, &createdRaw); err != nil {
		return nil, err
	}
	return &Gallery{
		ID:         id,
		Name:       name,
		ClientName: clientName,
		CreatedAt:  parseTimestamp(createdRaw),
	}, nil
}
