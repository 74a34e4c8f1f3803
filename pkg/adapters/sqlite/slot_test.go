package sqlite_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/flashdeck/pkg/adapters/sqlite"
	"github.com/aretw0/flashdeck/pkg/core"
)

func openSlot(t *testing.T, dsn string) *sqlite.Slot {
	t.Helper()
	slot, err := sqlite.Open(dsn, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = slot.Close() })
	return slot
}

func TestSlot_LoadStore(t *testing.T) {
	ctx := context.Background()
	slot := openSlot(t, filepath.Join(t.TempDir(), "nested", "deck.db"))

	_, err := slot.Load(ctx, core.DefaultKey)
	assert.ErrorIs(t, err, core.ErrSlotEmpty)

	require.NoError(t, slot.Store(ctx, core.DefaultKey, []byte(`[]`)))
	require.NoError(t, slot.Store(ctx, core.DefaultKey, []byte(`[{"front":"a"}]`)))

	got, err := slot.Load(ctx, core.DefaultKey)
	require.NoError(t, err)
	assert.Equal(t, `[{"front":"a"}]`, string(got), "second write overwrites the first")

	_, err = slot.Load(ctx, "other")
	assert.ErrorIs(t, err, core.ErrSlotEmpty)
}

func TestSlot_BacksStore(t *testing.T) {
	ctx := context.Background()
	dsn := filepath.Join(t.TempDir(), "deck.db")

	first := openSlot(t, dsn)
	s := core.NewStore(first)
	require.NoError(t, s.Hydrate(ctx))
	_, err := s.Add(ctx, "Q1", "A1", core.CategoryStudy, []string{"math"})
	require.NoError(t, err)
	_, err = s.Add(ctx, "Q2", "A2", core.CategoryDaily, nil)
	require.NoError(t, err)
	_, err = s.Delete(ctx, 0)
	require.NoError(t, err)

	second := openSlot(t, dsn)
	reopened := core.NewStore(second)
	require.NoError(t, reopened.Hydrate(ctx))
	assert.Equal(t, s.Entries(), reopened.Entries())
	assert.Equal(t, "sqlite-slot", reopened.State().(core.StoreState).SlotType)
}
