package components

import (
	"emy-orders/internal/infra/cartstore"
	"emy-orders/internal/infra/gateway"
	"emy-orders/internal/pkg/config"
	"emy-orders/internal/usecase/commands"
	"emy-orders/internal/usecase/queries"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

// StoreModule binds the gateway facades and the cart store to the
// command and query ports they implement.
var StoreModule = fx.Module("store",
	fx.Provide(
		fx.Annotate(
			gateway.NewSalesStore,
			fx.As(new(commands.SalesGateway)),
			fx.As(new(queries.SalesReadStore)),
		),
		fx.Annotate(
			gateway.NewNotificationStore,
			fx.As(new(commands.NotificationGateway)),
			fx.As(new(queries.NotificationReadStore)),
		),
		fx.Annotate(
			gateway.NewDirectoryStore,
			fx.As(new(commands.DirectoryGateway)),
			fx.As(new(queries.DirectoryReadStore)),
		),
		fx.Annotate(
			gateway.NewCatalogStore,
			fx.As(new(queries.CatalogReadStore)),
		),
		fx.Annotate(
			gateway.NewPaymentConfigStore,
			fx.As(new(commands.PaymentConfigGateway)),
			fx.As(new(queries.PaymentConfigReadStore)),
		),
		fx.Annotate(
			NewCartStore,
			fx.As(new(commands.CartStore)),
		),
	),
)

func NewCartStore(client *redis.Client, cfg config.Config) *cartstore.RedisStore {
	return cartstore.NewRedisStore(client, cfg.Redis)
}
