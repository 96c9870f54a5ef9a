//go:build unit

package commands_test

import (
	"context"
	"testing"

	"emy-orders/internal/domain/order"
	"emy-orders/internal/infra/cartstore"
	"emy-orders/internal/usecase/commands"
	"emy-orders/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedCart(t *testing.T, store *cartstore.MemoryStore, sessionID string) {
	t.Helper()
	c := builder.NewCartBuilder().
		WithEntry(builder.NewMenuItemBuilder().WithID("a").WithPrice("10.25").Build(), 2).
		WithEntry(builder.NewMenuItemBuilder().WithID("b").WithPrice("5.00").Build(), 1).
		Build()
	require.NoError(t, store.Save(context.Background(), sessionID, c))
}

func TestCheckout(t *testing.T) {
	ctx := context.Background()

	t.Run("cash records an immediate sale", func(t *testing.T) {
		store := cartstore.NewMemoryStore()
		seedCart(t, store, "s1")
		sales := &fakeSalesGateway{}
		checkout := commands.NewCheckoutCommands(store, sales)

		result, err := checkout.Checkout(ctx, "s1", order.PaymentCash, nil)
		require.NoError(t, err)

		assert.Equal(t, commands.OutcomeConfirmed, result.Kind)
		assert.Equal(t, "sale-1", result.SaleID)
		assert.Equal(t, "25.50", result.Total.StringFixed(2))
		require.Len(t, sales.submitted, 1)
		assert.Equal(t, "sale", sales.submitted[0].action, "cash must never create a pending order")
	})

	t.Run("qr creates a pending order", func(t *testing.T) {
		store := cartstore.NewMemoryStore()
		seedCart(t, store, "s1")
		sales := &fakeSalesGateway{}
		checkout := commands.NewCheckoutCommands(store, sales)

		customerID := "7"
		result, err := checkout.Checkout(ctx, "s1", order.PaymentQR, &customerID)
		require.NoError(t, err)

		assert.Equal(t, commands.OutcomePendingApproval, result.Kind)
		assert.Empty(t, result.SaleID, "qr must never record a sale directly")
		require.Len(t, sales.submitted, 1)
		assert.Equal(t, "pending", sales.submitted[0].action)
		require.NotNil(t, sales.submitted[0].req.CustomerID())
		assert.Equal(t, "7", *sales.submitted[0].req.CustomerID())
	})

	t.Run("empty cart is rejected before submission", func(t *testing.T) {
		store := cartstore.NewMemoryStore()
		sales := &fakeSalesGateway{}
		checkout := commands.NewCheckoutCommands(store, sales)

		_, err := checkout.Checkout(ctx, "nobody", order.PaymentCash, nil)

		assert.ErrorIs(t, err, commands.ErrEmptyCart)
		assert.Empty(t, sales.submitted)
	})

	t.Run("submission failure keeps the cart", func(t *testing.T) {
		store := cartstore.NewMemoryStore()
		seedCart(t, store, "s1")
		sales := &fakeSalesGateway{submitErr: assert.AnError}
		checkout := commands.NewCheckoutCommands(store, sales)

		_, err := checkout.Checkout(ctx, "s1", order.PaymentCash, nil)
		require.ErrorIs(t, err, commands.ErrCheckoutFailed)

		crt, getErr := store.Get(ctx, "s1")
		require.NoError(t, getErr)
		assert.Equal(t, 2, crt.Len(), "cart must stay intact for a retry")
	})
}
