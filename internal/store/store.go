// Package store persists the catalog document. Every backend reads and writes
// the whole document; Update runs a read-modify-write cycle as a single
// writer so concurrent callers cannot lose each other's changes.
package store

import (
	"errors"
	"fmt"

	"librarycatalog/internal/entity"

	jsoniter "github.com/json-iterator/go"
)

var (
	// ErrCorrupt is returned when the persisted document is not well-formed.
	ErrCorrupt = errors.New("catalog document is corrupt")
	// ErrUnavailable is returned when the storage medium cannot be read or written.
	ErrUnavailable = errors.New("catalog storage unavailable")
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const indent = "    "

func encode(doc *entity.Catalog) ([]byte, error) {
	data, err := json.MarshalIndent(doc, "", indent)
	if err != nil {
		return nil, fmt.Errorf("encode catalog: %w", err)
	}
	return data, nil
}

func decode(data []byte) (*entity.Catalog, error) {
	doc := entity.NewCatalog()
	if err := json.Unmarshal(data, doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorrupt, err)
	}
	doc.Normalize()
	return doc, nil
}
