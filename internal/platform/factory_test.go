package platform_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/flashdeck/internal/platform"
	"github.com/aretw0/flashdeck/pkg/adapters/fs"
	"github.com/aretw0/flashdeck/pkg/adapters/memory"
	"github.com/aretw0/flashdeck/pkg/adapters/sqlite"
	"github.com/aretw0/flashdeck/pkg/core"
)

type brokenSlot struct{}

func (brokenSlot) Load(context.Context, string) ([]byte, error) {
	return nil, errors.New("disk on fire")
}

func (brokenSlot) Store(context.Context, string, []byte) error {
	return errors.New("disk on fire")
}

func TestNew_Adapters(t *testing.T) {
	ctx := context.Background()

	t.Run("FS", func(t *testing.T) {
		dir := t.TempDir()
		store, err := platform.New(dir)
		require.NoError(t, err)
		defer store.Close()

		_, ok := store.Slot().(*fs.Slot)
		require.True(t, ok, "expected fs slot, got %T", store.Slot())

		added, err := store.Add(ctx, "Q", "A", core.CategoryWork, nil)
		require.NoError(t, err)
		require.True(t, added)
		assert.FileExists(t, filepath.Join(dir, core.DefaultKey+fs.Ext))

		reopened, err := platform.New(dir)
		require.NoError(t, err)
		assert.Equal(t, 1, reopened.Len())
	})

	t.Run("SQLite", func(t *testing.T) {
		dir := t.TempDir()
		store, err := platform.New(dir, platform.WithAdapter("sqlite"))
		require.NoError(t, err)

		_, ok := store.Slot().(*sqlite.Slot)
		require.True(t, ok, "expected sqlite slot, got %T", store.Slot())

		_, err = store.Add(ctx, "Q", "A", core.CategoryStudy, []string{"db"})
		require.NoError(t, err)
		require.NoError(t, store.Close())
		assert.FileExists(t, filepath.Join(dir, sqlite.DefaultFile))

		reopened, err := platform.New(dir, platform.WithAdapter("sqlite"))
		require.NoError(t, err)
		defer reopened.Close()
		entries := reopened.Entries()
		require.Len(t, entries, 1)
		assert.Equal(t, []string{"db"}, entries[0].Tags)
	})

	t.Run("Memory", func(t *testing.T) {
		store, err := platform.New("", platform.WithAdapter("memory"))
		require.NoError(t, err)

		_, ok := store.Slot().(*memory.Slot)
		require.True(t, ok, "expected memory slot, got %T", store.Slot())
		assert.Equal(t, 0, store.Len())
	})

	t.Run("Unknown", func(t *testing.T) {
		_, err := platform.New(t.TempDir(), platform.WithAdapter("s3"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown adapter")
	})
}

func TestNew_WithSlot(t *testing.T) {
	slot := memory.NewSlot()
	require.NoError(t, slot.Store(context.Background(), "deck", []byte(`[{"front":"Q","back":"A"}]`)))

	store, err := platform.New("ignored",
		platform.WithSlot(slot),
		platform.WithKey("deck"),
		platform.WithIDGenerator(func() string { return "fixed" }),
	)
	require.NoError(t, err)

	entries := store.Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, "fixed", entries[0].ID)
	assert.Equal(t, core.CategoryGeneral, entries[0].Category)
}

func TestNew_StorageUnavailable(t *testing.T) {
	store, err := platform.New("", platform.WithSlot(brokenSlot{}))
	require.NoError(t, err, "an unreadable slot must not prevent startup")
	assert.True(t, store.Degraded())

	added, err := store.Add(context.Background(), "Q", "A", core.CategoryGeneral, nil)
	require.NoError(t, err)
	assert.True(t, added)
	assert.Equal(t, 1, store.Len())
}

func TestNew_ReadOnly(t *testing.T) {
	ctx := context.Background()

	t.Run("FS", func(t *testing.T) {
		dir := t.TempDir()
		store, err := platform.New(dir, platform.WithReadOnly(true))
		require.NoError(t, err)

		_, err = store.Add(ctx, "Q", "A", core.CategoryGeneral, nil)
		require.ErrorIs(t, err, core.ErrStorageUnavailable)
		assert.ErrorIs(t, err, core.ErrReadOnly)
		assert.Equal(t, 1, store.Len())

		_, statErr := os.Stat(filepath.Join(dir, core.DefaultKey+fs.Ext))
		assert.True(t, os.IsNotExist(statErr))
	})

	t.Run("Memory", func(t *testing.T) {
		store, err := platform.New("", platform.WithAdapter("memory"), platform.WithReadOnly(true))
		require.NoError(t, err)

		_, err = store.Add(ctx, "Q", "A", core.CategoryGeneral, nil)
		require.ErrorIs(t, err, core.ErrReadOnly)
		assert.True(t, store.Degraded())
		assert.NoError(t, store.Close())
	})
}

func TestNew_ReadOnlyInjectedSlot(t *testing.T) {
	ctx := context.Background()
	slot := memory.NewSlot()

	store, err := platform.New("", platform.WithSlot(slot), platform.WithReadOnly(true))
	require.NoError(t, err)

	_, err = store.Add(ctx, "Q", "A", core.CategoryGeneral, nil)
	require.ErrorIs(t, err, core.ErrReadOnly)
	assert.Equal(t, 0, slot.Writes(), "the injected slot must not be written")
}

func TestNew_SQLitePaths(t *testing.T) {
	tests := []struct {
		name string
		uri  func(dir string) string
		want func(dir string) string
	}{
		{
			name: "Directory",
			uri:  func(dir string) string { return dir },
			want: func(dir string) string { return filepath.Join(dir, sqlite.DefaultFile) },
		},
		{
			name: "DB Extension",
			uri:  func(dir string) string { return filepath.Join(dir, "decks.db") },
			want: func(dir string) string { return filepath.Join(dir, "decks.db") },
		},
		{
			name: "SQLite Extension",
			uri:  func(dir string) string { return filepath.Join(dir, "decks.sqlite") },
			want: func(dir string) string { return filepath.Join(dir, "decks.sqlite") },
		},
		{
			name: "SQLite3 Extension",
			uri:  func(dir string) string { return filepath.Join(dir, "decks.sqlite3") },
			want: func(dir string) string { return filepath.Join(dir, "decks.sqlite3") },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			store, err := platform.New(tt.uri(dir), platform.WithAdapter("sqlite"))
			require.NoError(t, err)
			_, err = store.Add(context.Background(), "Q", "A", core.CategoryGeneral, nil)
			require.NoError(t, err)
			require.NoError(t, store.Close())

			info, err := os.Stat(tt.want(dir))
			require.NoError(t, err)
			assert.False(t, info.IsDir())
		})
	}

	t.Run("Existing File Without Extension", func(t *testing.T) {
		dir := t.TempDir()
		first, err := platform.New(filepath.Join(dir, "decks.sqlite"), platform.WithAdapter("sqlite"))
		require.NoError(t, err)
		_, err = first.Add(context.Background(), "Q", "A", core.CategoryGeneral, nil)
		require.NoError(t, err)
		require.NoError(t, first.Close())

		renamed := filepath.Join(dir, "decks")
		require.NoError(t, os.Rename(filepath.Join(dir, "decks.sqlite"), renamed))

		reopened, err := platform.New(renamed, platform.WithAdapter("sqlite"))
		require.NoError(t, err)
		defer reopened.Close()
		assert.Equal(t, 1, reopened.Len())
	})
}

func TestNew_MustExist(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing")
	_, err := platform.New(missing, platform.WithMustExist(true))
	require.Error(t, err)
}

func TestOpenSlot(t *testing.T) {
	slot, err := platform.OpenSlot(t.TempDir())
	require.NoError(t, err)

	_, err = slot.Load(context.Background(), core.DefaultKey)
	assert.ErrorIs(t, err, core.ErrSlotEmpty)
}
