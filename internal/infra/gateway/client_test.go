//go:build unit

package gateway_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"emy-orders/internal/infra/gateway"
	"emy-orders/internal/pkg/clock"
	"emy-orders/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newClient(t *testing.T, handler http.HandlerFunc) *gateway.Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := config.GatewayConfig{ScriptURL: server.URL, Timeout: 5 * time.Second}
	return gateway.NewClient(cfg, slog.Default(), clock.NewRealClock())
}

func TestClientCall(t *testing.T) {
	ctx := context.Background()

	t.Run("posts the action envelope as text/plain", func(t *testing.T) {
		var gotContentType string
		var gotBody map[string]any

		client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
			gotContentType = r.Header.Get("Content-Type")
			raw, _ := io.ReadAll(r.Body)
			_ = json.Unmarshal(raw, &gotBody)
			_, _ = w.Write([]byte(`{"success":true,"data":{"id":1},"message":"ok"}`))
		})

		data, message, err := client.Call(ctx, "addSale", map[string]string{"k": "v"})
		require.NoError(t, err)

		assert.Equal(t, "text/plain;charset=utf-8", gotContentType)
		assert.Equal(t, "addSale", gotBody["action"])
		assert.Equal(t, map[string]any{"k": "v"}, gotBody["payload"])
		assert.JSONEq(t, `{"id":1}`, string(data))
		assert.Equal(t, "ok", message)
	})

	t.Run("nil payload is sent as an empty object", func(t *testing.T) {
		var gotBody map[string]any
		client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
			raw, _ := io.ReadAll(r.Body)
			_ = json.Unmarshal(raw, &gotBody)
			_, _ = w.Write([]byte(`{"success":true}`))
		})

		_, _, err := client.Call(ctx, "getSales", nil)
		require.NoError(t, err)

		payload, ok := gotBody["payload"].(map[string]any)
		require.True(t, ok, "payload must be an object, not null")
		assert.Empty(t, payload)
	})

	t.Run("success=false surfaces the collaborator message", func(t *testing.T) {
		client := newClient(t, func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{"success":false,"message":"Producto no disponible"}`))
		})

		_, _, err := client.Call(ctx, "addSale", nil)

		require.Error(t, err)
		assert.True(t, gateway.IsKind(err, gateway.KindRejected))
		assert.Equal(t, "Producto no disponible", gateway.UserMessage(err))
	})

	t.Run("non-2xx status maps to unavailable", func(t *testing.T) {
		client := newClient(t, func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		})

		_, _, err := client.Call(ctx, "getSales", nil)

		require.Error(t, err)
		assert.True(t, gateway.IsKind(err, gateway.KindUnavailable))
	})

	t.Run("non-JSON body maps to bad response", func(t *testing.T) {
		client := newClient(t, func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte("<html>error</html>"))
		})

		_, _, err := client.Call(ctx, "getSales", nil)

		require.Error(t, err)
		assert.True(t, gateway.IsKind(err, gateway.KindBadResponse))
	})

	t.Run("unreachable endpoint maps to unavailable", func(t *testing.T) {
		cfg := config.GatewayConfig{ScriptURL: "http://127.0.0.1:1/exec", Timeout: time.Second}
		client := gateway.NewClient(cfg, slog.Default(), clock.NewRealClock())

		_, _, err := client.Call(ctx, "getSales", nil)

		require.Error(t, err)
		assert.True(t, gateway.IsKind(err, gateway.KindUnavailable))
	})
}
