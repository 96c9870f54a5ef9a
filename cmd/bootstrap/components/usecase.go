package components

import (
	"emy-orders/internal/pkg/clock"
	"emy-orders/internal/usecase/commands"
	"emy-orders/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewCartCommands,
		commands.NewCheckoutCommands,
		commands.NewApprovalCommands,
		commands.NewNotificationCommands,
		commands.NewPaymentConfigCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewCatalogQueries,
		queries.NewPendingQueries,
		queries.NewReportQueries,
		queries.NewNotificationQueries,
	),
)
