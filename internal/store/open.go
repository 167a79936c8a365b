package store

import (
	"context"
	"fmt"
	"time"

	"librarycatalog/internal/entity"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Document is the contract both backends satisfy.
type Document interface {
	Load(ctx context.Context) (*entity.Catalog, error)
	Save(ctx context.Context, doc *entity.Catalog) error
	Update(ctx context.Context, fn func(doc *entity.Catalog) error) error
}

// Options selects and configures a backend.
type Options struct {
	Driver      string
	CatalogFile string
	DatabaseDSN string
}

// Open builds the backend named by opts.Driver. The returned func releases
// any connections and is never nil.
func Open(ctx context.Context, opts Options) (Document, func(), error) {
	switch opts.Driver {
	case "", "file":
		fs, err := NewFileStore(opts.CatalogFile)
		if err != nil {
			return nil, func() {}, err
		}
		return fs, func() {}, nil
	case "postgres":
		pool, err := OpenPool(ctx, opts.DatabaseDSN)
		if err != nil {
			return nil, func() {}, err
		}
		return NewPostgresStore(pool, DefaultDocumentID), pool.Close, nil
	default:
		return nil, func() {}, fmt.Errorf("unknown storage driver %q", opts.Driver)
	}
}

// OpenPool connects to Postgres and pings it once.
func OpenPool(ctx context.Context, dsn string) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("%w: create db pool: %w", ErrUnavailable, err)
	}
	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("%w: ping database: %w", ErrUnavailable, err)
	}
	return pool, nil
}
