package components

import (
	"emy-orders/internal/handler"
	"emy-orders/internal/handler/api"
	"emy-orders/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewCatalogHandler,
		api.NewCartHandler,
		api.NewCheckoutHandler,
		api.NewOrdersHandler,
		api.NewNotificationsHandler,
		api.NewReportsHandler,
		api.NewPaymentHandler,
		middleware.NewAuthMiddleware,
		NewHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

func NewHandlers(
	auth *api.AuthHandler,
	catalog *api.CatalogHandler,
	cart *api.CartHandler,
	checkout *api.CheckoutHandler,
	orders *api.OrdersHandler,
	notifications *api.NotificationsHandler,
	reports *api.ReportsHandler,
	payment *api.PaymentHandler,
) handler.Handlers {
	return handler.Handlers{
		Auth:          auth,
		Catalog:       catalog,
		Cart:          cart,
		Checkout:      checkout,
		Orders:        orders,
		Notifications: notifications,
		Reports:       reports,
		Payment:       payment,
	}
}
