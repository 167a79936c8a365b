package library

import (
	"context"

	"librarycatalog/internal/entity"
)

//go:generate mockgen -destination=../store/mocks/mock_store.go -package=mocks librarycatalog/internal/library Store

// Store persists the catalog document as a whole. Update must run
// load, fn and save as one single-writer step and write nothing when fn
// returns an error.
type Store interface {
	Load(ctx context.Context) (*entity.Catalog, error)
	Save(ctx context.Context, doc *entity.Catalog) error
	Update(ctx context.Context, fn func(doc *entity.Catalog) error) error
}
