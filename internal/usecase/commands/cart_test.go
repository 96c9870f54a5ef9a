//go:build unit

package commands_test

import (
	"context"
	"testing"

	"emy-orders/internal/domain/catalog"
	"emy-orders/internal/infra/cartstore"
	"emy-orders/internal/usecase/commands"
	"emy-orders/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCartCommands(items ...catalog.Item) (commands.CartCommands, *cartstore.MemoryStore) {
	store := cartstore.NewMemoryStore()
	return commands.NewCartCommands(store, &fakeCatalogReads{items: items}), store
}

func TestAddItem(t *testing.T) {
	ctx := context.Background()
	available := builder.NewMenuItemBuilder().WithID("a").WithPrice("12.00").Build()
	unavailable := builder.NewMenuItemBuilder().WithID("b").Unavailable().Build()

	t.Run("freezes the catalog snapshot into the cart", func(t *testing.T) {
		cc, store := newCartCommands(available, unavailable)

		crt, err := cc.AddItem(ctx, "s1", "a")
		require.NoError(t, err)

		require.Equal(t, 1, crt.Len())
		assert.Equal(t, "12.00", crt.Entries["a"].Item.UnitPrice.StringFixed(2))

		saved, err := store.Get(ctx, "s1")
		require.NoError(t, err)
		assert.Equal(t, 1, saved.Len())
	})

	t.Run("unknown item", func(t *testing.T) {
		cc, _ := newCartCommands(available)

		_, err := cc.AddItem(ctx, "s1", "nope")

		assert.ErrorIs(t, err, commands.ErrItemNotFound)
	})

	t.Run("unavailable item", func(t *testing.T) {
		cc, _ := newCartCommands(available, unavailable)

		_, err := cc.AddItem(ctx, "s1", "b")

		assert.ErrorIs(t, err, commands.ErrItemUnavailable)
	})
}

func TestSessionIsolation(t *testing.T) {
	ctx := context.Background()
	item := builder.NewMenuItemBuilder().WithID("a").Build()
	cc, _ := newCartCommands(item)

	_, err := cc.AddItem(ctx, "s1", "a")
	require.NoError(t, err)

	other, err := cc.Get(ctx, "s2")
	require.NoError(t, err)
	assert.True(t, other.IsEmpty(), "one session's cart must not leak into another")
}

func TestClear(t *testing.T) {
	ctx := context.Background()
	item := builder.NewMenuItemBuilder().WithID("a").Build()
	cc, _ := newCartCommands(item)

	_, err := cc.AddItem(ctx, "s1", "a")
	require.NoError(t, err)

	require.NoError(t, cc.Clear(ctx, "s1"))

	crt, err := cc.Get(ctx, "s1")
	require.NoError(t, err)
	assert.True(t, crt.IsEmpty())
}
