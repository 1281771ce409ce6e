package components

import (
	"go.uber.org/fx"

	"rentimade/internal/handler"
	"rentimade/internal/handler/api"
	"rentimade/internal/handler/middleware"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewProductHandler,
		api.NewCategoryHandler,
		api.NewBannerHandler,
		api.NewOrderHandler,
		api.NewReviewHandler,
		api.NewUserHandler,
		api.NewWishlistHandler,
		api.NewDeliveryHandler,
		middleware.NewAuthMiddleware,
		NewHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

func NewHandlers(
	auth *api.AuthHandler,
	product *api.ProductHandler,
	category *api.CategoryHandler,
	banner *api.BannerHandler,
	order *api.OrderHandler,
	review *api.ReviewHandler,
	user *api.UserHandler,
	wishlist *api.WishlistHandler,
	delivery *api.DeliveryHandler,
) handler.Handlers {
	return handler.Handlers{
		Auth:     auth,
		Product:  product,
		Category: category,
		Banner:   banner,
		Order:    order,
		Review:   review,
		User:     user,
		Wishlist: wishlist,
		Delivery: delivery,
	}
}
