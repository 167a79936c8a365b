package store

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpen_FileDriver(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "library_data.json")

	doc, closeFn, err := Open(context.Background(), Options{Driver: "file", CatalogFile: path})
	require.NoError(t, err)
	defer closeFn()

	fs, ok := doc.(*FileStore)
	require.True(t, ok)
	assert.Equal(t, path, fs.Path())
}

func TestOpen_Errors(t *testing.T) {
	_, closeFn, err := Open(context.Background(), Options{Driver: "mongo"})
	assert.Error(t, err)
	assert.NotNil(t, closeFn)

	_, _, err = Open(context.Background(), Options{Driver: "file"})
	assert.Error(t, err)

	_, _, err = Open(context.Background(), Options{Driver: "postgres", DatabaseDSN: "not a dsn ::"})
	assert.True(t, errors.Is(err, ErrUnavailable))
}
