package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type backend interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, value []byte) error
	Close() error
}

func backends(t *testing.T) map[string]backend {
	t.Helper()
	db, err := OpenSQLite(context.Background(), filepath.Join(t.TempDir(), "eco.db"))
	require.NoError(t, err)
	return map[string]backend{
		"dir":    NewDir(filepath.Join(t.TempDir(), "home")),
		"sqlite": db,
		"memory": NewMemory(),
	}
}

func TestBackends(t *testing.T) {
	ctx := context.Background()
	for name, b := range backends(t) {
		t.Run(name, func(t *testing.T) {
			defer b.Close()

			_, err := b.Get(ctx, "ecotrack")
			assert.ErrorIs(t, err, ErrNotFound)

			require.NoError(t, b.Put(ctx, "ecotrack", []byte(`{"version":2}`)))
			got, err := b.Get(ctx, "ecotrack")
			require.NoError(t, err)
			assert.Equal(t, `{"version":2}`, string(got))

			// A put replaces the whole value.
			require.NoError(t, b.Put(ctx, "ecotrack", []byte(`{}`)))
			got, err = b.Get(ctx, "ecotrack")
			require.NoError(t, err)
			assert.Equal(t, `{}`, string(got))

			// Keys are independent.
			_, err = b.Get(ctx, "other")
			assert.ErrorIs(t, err, ErrNotFound)

			assert.Error(t, b.Put(ctx, "../escape", []byte(`{}`)))
			assert.Error(t, b.Put(ctx, "", []byte(`{}`)))
		})
	}
}

func TestDirLeavesNoTemporaryFiles(t *testing.T) {
	home := t.TempDir()
	d := NewDir(home)
	ctx := context.Background()
	for range 3 {
		require.NoError(t, d.Put(ctx, "ecotrack", []byte(`{}`)))
	}
	entries, err := os.ReadDir(home)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "ecotrack.json", entries[0].Name())
}

func TestDirUnavailable(t *testing.T) {
	// A regular file where the directory should be makes every write fail.
	blocker := filepath.Join(t.TempDir(), "home")
	require.NoError(t, os.WriteFile(blocker, nil, 0644))

	err := NewDir(blocker).Put(context.Background(), "ecotrack", []byte(`{}`))
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestMemoryFail(t *testing.T) {
	m := NewMemory()
	m.Fail = true
	err := m.Put(context.Background(), "ecotrack", []byte(`{}`))
	assert.ErrorIs(t, err, ErrUnavailable)
}
