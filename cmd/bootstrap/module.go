package bootstrap

import (
	"emy-orders/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	RedisModule,
	GatewayModule,
	JWTModule,
	components.StoreModule,
	components.UseCaseModule,
	components.HandlerModule,
)
