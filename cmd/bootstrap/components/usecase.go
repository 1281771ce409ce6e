package components

import (
	"go.uber.org/fx"

	"rentimade/internal/pkg/clock"
	"rentimade/internal/usecase/commands"
	"rentimade/internal/usecase/queries"
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
		commands.NewProductCommands,
		commands.NewOrderCommands,
		commands.NewReviewCommands,
		commands.NewUserCommands,
		commands.NewAddressCommands,
		commands.NewWishlistCommands,
		commands.NewCategoryCommands,
		commands.NewBannerCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewUserQueries,
		queries.NewProductQueries,
		queries.NewCategoryQueries,
		queries.NewOrderQueries,
		queries.NewReviewQueries,
		queries.NewBannerQueries,
		queries.NewWishlistQueries,
	),
)
