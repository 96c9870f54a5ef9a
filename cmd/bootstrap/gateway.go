package bootstrap

import (
	"log/slog"

	"emy-orders/internal/infra/gateway"
	"emy-orders/internal/pkg/clock"
	"emy-orders/internal/pkg/config"

	"go.uber.org/fx"
)

var GatewayModule = fx.Module("gateway",
	fx.Provide(
		fx.Annotate(
			NewGatewayClient,
			fx.As(new(gateway.Caller)),
		),
	),
)

func NewGatewayClient(cfg config.Config, logger *slog.Logger, clk clock.Clock) *gateway.Client {
	return gateway.NewClient(cfg.Gateway, logger, clk)
}
