//go:build unit

package gateway_test

import (
	"context"
	"encoding/json"
	"testing"

	"emy-orders/internal/infra/gateway"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogStoreItems(t *testing.T) {
	caller := &fakeCaller{data: json.RawMessage(`[
		{"id": 1, "nombre": "Pollo Entero", "precio": "45.00", "disponible": "Si"},
		{"id": 2, "nombre": "Alitas", "precio": 25.5, "disponible": "No"},
		{"id": 3, "nombre": "Salchipapa", "precio": "15.00", "disponible": "si"}
	]`)}
	store := gateway.NewCatalogStore(caller)

	items, err := store.Items(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "getMenuItems", caller.action)

	require.Len(t, items, 3)
	assert.Equal(t, "1", items[0].ID)
	assert.True(t, items[0].Available)
	assert.Equal(t, "45.00", items[0].UnitPrice.StringFixed(2))
	assert.False(t, items[1].Available)
	assert.True(t, items[2].Available, "availability flag is case insensitive")
}

func TestNotificationStore(t *testing.T) {
	ctx := context.Background()

	t.Run("unread decodes the record list", func(t *testing.T) {
		caller := &fakeCaller{data: json.RawMessage(`[
			{"id": 1, "userId": 7, "message": "Tu pedido #p1 ha sido aprobado. ¡Gracias por tu compra!", "date": "2024-03-05T12:00:00Z", "read": false}
		]`)}
		store := gateway.NewNotificationStore(caller)

		unread, err := store.Unread(ctx, "7")
		require.NoError(t, err)

		assert.Equal(t, "getUnreadNotifications", caller.action)
		assert.Equal(t, map[string]string{"userId": "7"}, caller.payload)
		require.Len(t, unread, 1)
		assert.Equal(t, "1", unread[0].ID)
		assert.Equal(t, "7", unread[0].UserID)
		assert.False(t, unread[0].Read)
	})

	t.Run("add and mark read forward their payloads", func(t *testing.T) {
		caller := &fakeCaller{}
		store := gateway.NewNotificationStore(caller)

		require.NoError(t, store.Add(ctx, "7", "hola"))
		assert.Equal(t, "addNotification", caller.action)
		assert.Equal(t, map[string]string{"userId": "7", "message": "hola"}, caller.payload)

		require.NoError(t, store.MarkRead(ctx, "7"))
		assert.Equal(t, "markNotificationsRead", caller.action)
	})
}

func TestPaymentConfigStore(t *testing.T) {
	ctx := context.Background()

	t.Run("reads a bare string config", func(t *testing.T) {
		caller := &fakeCaller{data: json.RawMessage(`"https://example.test/qr.png"`)}
		store := gateway.NewPaymentConfigStore(caller)

		image, err := store.QrImage(ctx)
		require.NoError(t, err)
		assert.Equal(t, "getQrConfig", caller.action)
		assert.Equal(t, "https://example.test/qr.png", image)
	})

	t.Run("reads a wrapped config", func(t *testing.T) {
		caller := &fakeCaller{data: json.RawMessage(`{"qrImageUrl":"https://example.test/qr.png"}`)}
		store := gateway.NewPaymentConfigStore(caller)

		image, err := store.QrImage(ctx)
		require.NoError(t, err)
		assert.Equal(t, "https://example.test/qr.png", image)
	})

	t.Run("save forwards the image reference", func(t *testing.T) {
		caller := &fakeCaller{message: "Configuración guardada"}
		store := gateway.NewPaymentConfigStore(caller)

		message, err := store.SaveQrImage(ctx, "https://example.test/qr.png")
		require.NoError(t, err)

		assert.Equal(t, "saveQrConfig", caller.action)
		assert.Equal(t, map[string]string{"qrImageUrl": "https://example.test/qr.png"}, caller.payload)
		assert.Equal(t, "Configuración guardada", message)
	})
}
