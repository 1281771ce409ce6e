package components

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"

	"rentimade/internal/infra/cache"
	"rentimade/internal/infra/db"
	"rentimade/internal/infra/readstore"
	"rentimade/internal/infra/uow"
	"rentimade/internal/pkg/clock"
	"rentimade/internal/pkg/config"
	"rentimade/internal/usecase/commands"
	"rentimade/internal/usecase/queries"
	"rentimade/internal/usecase/shared"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
)

var baseOption = fx.Provide(
	NewDBTX,
	// Write repositories are built inside the unit of work, so only the
	// UoW itself is wired here.
	fx.Annotate(
		uow.NewPostgresUoW,
		fx.As(new(shared.UnitOfWork)),
	),
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		fx.Annotate(
			readstore.NewProductReadStore,
			fx.As(new(queries.ProductReadStore)),
		),
		fx.Annotate(
			readstore.NewOrderReadStore,
			fx.As(new(queries.OrderReadStore)),
		),
		fx.Annotate(
			readstore.NewReviewReadStore,
			fx.As(new(queries.ReviewReadStore)),
			fx.As(new(commands.ReviewOwnershipReader)),
		),
		fx.Annotate(
			readstore.NewUserReadStore,
			fx.As(new(queries.UserReadStore)),
		),
		fx.Annotate(
			readstore.NewBannerReadStore,
			fx.As(new(queries.BannerReadStore)),
		),
		fx.Annotate(
			readstore.NewWishlistReadStore,
			fx.As(new(queries.WishlistReadStore)),
		),
		// The category directory sits behind a TTL cache. Queries read
		// the cache, never the database store directly.
		NewCategoryCache,
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}

func NewCategoryCache(pool *pgxpool.Pool, clk clock.Clock, cfg config.Config) queries.CategoryReadStore {
	return cache.NewCategoryCache(readstore.NewCategoryReadStore(pool), clk, cfg.Cache.CategoryTTL)
}
