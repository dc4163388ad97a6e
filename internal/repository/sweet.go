package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/deppfellow/sweets/internal/model/sweet"
	"github.com/deppfellow/sweets/internal/server"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DBTX is the subset of pgxpool.Pool the repository needs. A pgx.Tx
// satisfies it too.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

type SweetRepository struct {
	db DBTX
}

func NewSweetRepository(s *server.Server) *SweetRepository {
	return &SweetRepository{db: s.DB.Pool}
}

// NewSweetRepositoryWithDB builds a repository on any DBTX.
func NewSweetRepositoryWithDB(db DBTX) *SweetRepository {
	return &SweetRepository{db: db}
}

const (
	listSweetsQuery = `
		SELECT id, title, calories
		FROM sweets
		ORDER BY id`

	createSweetQuery = `
		INSERT INTO sweets (title, calories)
		VALUES (@title, @calories)
		RETURNING id, title, calories`

	getSweetQuery = `
		SELECT id, title, calories
		FROM sweets
		WHERE id = @id`

	updateSweetQuery = `
		UPDATE sweets
		SET title = @title, calories = @calories
		WHERE id = @id
		RETURNING id, title, calories`

	deleteSweetQuery = `DELETE FROM sweets WHERE id = @id`
)

// ListSweets returns every sweet in creation order.
func (r *SweetRepository) ListSweets(ctx context.Context) ([]sweet.Sweet, error) {
	rows, err := r.db.Query(ctx, listSweetsQuery)
	if err != nil {
		return nil, fmt.Errorf("failed to execute list sweets query: %w", err)
	}

	sweets, err := pgx.CollectRows(rows, pgx.RowToStructByName[sweet.Sweet])
	if err != nil {
		return nil, fmt.Errorf("failed to collect rows from table:sweets: %w", err)
	}

	return sweets, nil
}

func (r *SweetRepository) CreateSweet(ctx context.Context, title string, calories int) (*sweet.Sweet, error) {
	rows, err := r.db.Query(ctx, createSweetQuery, pgx.NamedArgs{
		"title":    title,
		"calories": calories,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to execute create sweet query: %w", err)
	}

	created, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[sweet.Sweet])
	if err != nil {
		return nil, fmt.Errorf("failed to collect row from table:sweets: %w", err)
	}

	return &created, nil
}

// GetSweetByID reports found=false, with a nil error, when no row has id.
func (r *SweetRepository) GetSweetByID(ctx context.Context, id int64) (*sweet.Sweet, bool, error) {
	rows, err := r.db.Query(ctx, getSweetQuery, pgx.NamedArgs{"id": id})
	if err != nil {
		return nil, false, fmt.Errorf("failed to execute get sweet query: %w", err)
	}

	return collectOptional(rows)
}

// UpdateSweet overwrites title and calories. found=false means the row
// disappeared since it was looked up.
func (r *SweetRepository) UpdateSweet(ctx context.Context, s sweet.Sweet) (*sweet.Sweet, bool, error) {
	rows, err := r.db.Query(ctx, updateSweetQuery, pgx.NamedArgs{
		"id":       s.ID,
		"title":    s.Title,
		"calories": s.Calories,
	})
	if err != nil {
		return nil, false, fmt.Errorf("failed to execute update sweet query: %w", err)
	}

	return collectOptional(rows)
}

// DeleteSweet reports whether a row was removed.
func (r *SweetRepository) DeleteSweet(ctx context.Context, id int64) (bool, error) {
	tag, err := r.db.Exec(ctx, deleteSweetQuery, pgx.NamedArgs{"id": id})
	if err != nil {
		return false, fmt.Errorf("failed to execute delete sweet query: %w", err)
	}

	return tag.RowsAffected() > 0, nil
}

func collectOptional(rows pgx.Rows) (*sweet.Sweet, bool, error) {
	s, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[sweet.Sweet])
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to collect row from table:sweets: %w", err)
	}

	return &s, true, nil
}
