package store

import (
	"context"
	"errors"
	"fmt"

	"librarycatalog/internal/entity"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// DefaultDocumentID names the catalog row used when none is configured.
const DefaultDocumentID = "default"

const emptyDocument = `{"authors":{},"books":{},"members":{}}`

// PostgresStore keeps the catalog as a single JSONB row in
// catalog_documents. Update locks the row, so writers in different
// processes are serialised too.
type PostgresStore struct {
	db *pgxpool.Pool
	id string
}

func NewPostgresStore(db *pgxpool.Pool, documentID string) *PostgresStore {
	if documentID == "" {
		documentID = DefaultDocumentID
	}
	return &PostgresStore{db: db, id: documentID}
}

func (s *PostgresStore) Load(ctx context.Context) (*entity.Catalog, error) {
	const query = `SELECT body FROM catalog_documents WHERE id = $1`

	var body []byte
	err := s.db.QueryRow(ctx, query, s.id).Scan(&body)
	if errors.Is(err, pgx.ErrNoRows) {
		if _, err := s.db.Exec(ctx, insertEmptySQL, s.id, emptyDocument); err != nil {
			return nil, fmt.Errorf("%w: create catalog row: %w", ErrUnavailable, err)
		}
		return entity.NewCatalog(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: load catalog: %w", ErrUnavailable, err)
	}
	return decode(body)
}

func (s *PostgresStore) Save(ctx context.Context, doc *entity.Catalog) error {
	const query = `
		INSERT INTO catalog_documents (id, body, updated_at)
		VALUES ($1, $2::jsonb, now())
		ON CONFLICT (id) DO UPDATE SET
			body = EXCLUDED.body,
			updated_at = now()`

	data, err := encode(doc)
	if err != nil {
		return err
	}
	if _, err := s.db.Exec(ctx, query, s.id, string(data)); err != nil {
		return fmt.Errorf("%w: save catalog: %w", ErrUnavailable, err)
	}
	return nil
}

const insertEmptySQL = `
	INSERT INTO catalog_documents (id, body, updated_at)
	VALUES ($1, $2::jsonb, now())
	ON CONFLICT (id) DO NOTHING`

func (s *PostgresStore) Update(ctx context.Context, fn func(doc *entity.Catalog) error) error {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("%w: begin: %w", ErrUnavailable, err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, insertEmptySQL, s.id, emptyDocument); err != nil {
		return fmt.Errorf("%w: create catalog row: %w", ErrUnavailable, err)
	}

	var body []byte
	const lockSQL = `SELECT body FROM catalog_documents WHERE id = $1 FOR UPDATE`
	if err := tx.QueryRow(ctx, lockSQL, s.id).Scan(&body); err != nil {
		return fmt.Errorf("%w: lock catalog: %w", ErrUnavailable, err)
	}

	doc, err := decode(body)
	if err != nil {
		return err
	}
	if err := fn(doc); err != nil {
		return err
	}

	data, err := encode(doc)
	if err != nil {
		return err
	}
	const updateSQL = `UPDATE catalog_documents SET body = $2::jsonb, updated_at = now() WHERE id = $1`
	if _, err := tx.Exec(ctx, updateSQL, s.id, string(data)); err != nil {
		return fmt.Errorf("%w: save catalog: %w", ErrUnavailable, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("%w: commit: %w", ErrUnavailable, err)
	}
	return nil
}

// Ping checks that the database is reachable.
func (s *PostgresStore) Ping(ctx context.Context) error {
	return s.db.Ping(ctx)
}
