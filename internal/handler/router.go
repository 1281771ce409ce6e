package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"rentimade/internal/domain/user"
	"rentimade/internal/handler/api"
	"rentimade/internal/handler/middleware"
	"rentimade/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Auth     *api.AuthHandler
	Product  *api.ProductHandler
	Category *api.CategoryHandler
	Banner   *api.BannerHandler
	Order    *api.OrderHandler
	Review   *api.ReviewHandler
	User     *api.UserHandler
	Wishlist *api.WishlistHandler
	Delivery *api.DeliveryHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, handlers Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, handlers, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/signup", Handler: h.Auth.Signup},
				{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login},
				{Method: http.MethodPost, Path: "/refresh", Handler: h.Auth.Refresh},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "/logout", Handler: h.Auth.Logout},
				{Method: http.MethodGet, Path: "/me", Handler: h.Auth.Me},
			})
		}

		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/categories", Handler: h.Category.List},
			{Method: http.MethodGet, Path: "/categories/:slug", Handler: h.Category.GetBySlug},
			{Method: http.MethodGet, Path: "/banners", Handler: h.Banner.ListActive},
			{Method: http.MethodGet, Path: "/delivery/pincode/:pincode", Handler: h.Delivery.CheckPincode},
		})

		// Catalog routes are public but honor an access token when present,
		// so owners and admins see their hidden listings.
		products := apiGroup.Group("/products")
		products.Use(authMiddleware.OptionalAuth())
		{
			addRoutes(products, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Product.ListProducts},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Product.GetProduct},
				{Method: http.MethodGet, Path: "/:id/availability", Handler: h.Product.GetAvailability},
				{Method: http.MethodGet, Path: "/:id/reviews", Handler: h.Review.ListProductReviews},
			})
		}

		orders := apiGroup.Group("/orders")
		orders.Use(authMiddleware.RequireAuth())
		{
			addRoutes(orders, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Order.CreateOrder},
				{Method: http.MethodGet, Path: "", Handler: h.Order.ListOwnOrders},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Order.GetOrder},
				{Method: http.MethodPost, Path: "/:id/cancel", Handler: h.Order.CancelOrder},
			})
		}

		reviews := apiGroup.Group("/reviews")
		reviews.Use(authMiddleware.RequireAuth())
		{
			addRoutes(reviews, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Review.CreateReview},
				{Method: http.MethodPut, Path: "/:id", Handler: h.Review.UpdateReview},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.Review.DeleteReview},
			})
		}

		me := apiGroup.Group("/me")
		me.Use(authMiddleware.RequireAuth())
		{
			addRoutes(me, []route{
				{Method: http.MethodPut, Path: "/profile", Handler: h.User.UpdateProfile},
				{Method: http.MethodGet, Path: "/addresses", Handler: h.User.ListAddresses},
				{Method: http.MethodPost, Path: "/addresses", Handler: h.User.CreateAddress},
				{Method: http.MethodDelete, Path: "/addresses/:id", Handler: h.User.DeleteAddress},
				{Method: http.MethodPost, Path: "/addresses/:id/default", Handler: h.User.SetDefaultAddress},
				{Method: http.MethodGet, Path: "/reviews", Handler: h.Review.ListOwnReviews},
			})
		}

		wishlist := apiGroup.Group("/wishlist")
		wishlist.Use(authMiddleware.RequireAuth())
		{
			addRoutes(wishlist, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Wishlist.List},
				{Method: http.MethodGet, Path: "/ids", Handler: h.Wishlist.ListIDs},
				{Method: http.MethodPost, Path: "/:id/toggle", Handler: h.Wishlist.Toggle},
			})
		}

		lending := apiGroup.Group("/lending")
		lending.Use(authMiddleware.RequireAuth(), authMiddleware.RequireRoleAtLeast(user.RoleLender))
		{
			addRoutes(lending, []route{
				{Method: http.MethodPost, Path: "/products", Handler: h.Product.CreateListing},
				{Method: http.MethodGet, Path: "/products", Handler: h.Product.ListOwnListings},
				{Method: http.MethodPatch, Path: "/products/:id/availability", Handler: h.Product.SetAvailability},
				{Method: http.MethodGet, Path: "/orders", Handler: h.Order.ListLendingOrders},
				{Method: http.MethodGet, Path: "/earnings", Handler: h.User.GetEarnings},
				{Method: http.MethodGet, Path: "/bank-details", Handler: h.User.GetBankDetails},
				{Method: http.MethodPut, Path: "/bank-details", Handler: h.User.UpsertBankDetails},
			})
		}

		admin := apiGroup.Group("/admin")
		admin.Use(authMiddleware.RequireAuth(), authMiddleware.RequireRoleAtLeast(user.RoleAdmin))
		{
			addRoutes(admin, []route{
				{Method: http.MethodGet, Path: "/products", Handler: h.Product.ListAllProducts},
				{Method: http.MethodPost, Path: "/products/:id/moderate", Handler: h.Product.Moderate},
				{Method: http.MethodGet, Path: "/orders", Handler: h.Order.ListAllOrders},
				{Method: http.MethodPatch, Path: "/orders/:id/status", Handler: h.Order.UpdateOrderStatus},
				{Method: http.MethodGet, Path: "/users", Handler: h.User.ListUsers},
				{Method: http.MethodPatch, Path: "/users/:id/status", Handler: h.User.UpdateUserStatus},
				{Method: http.MethodPatch, Path: "/users/:id/role", Handler: h.User.UpdateUserRole},
				{Method: http.MethodPost, Path: "/categories", Handler: h.Category.Create},
				{Method: http.MethodPut, Path: "/categories/:id", Handler: h.Category.Update},
				{Method: http.MethodDelete, Path: "/categories/:id", Handler: h.Category.Delete},
				{Method: http.MethodGet, Path: "/banners", Handler: h.Banner.ListAll},
				{Method: http.MethodPost, Path: "/banners", Handler: h.Banner.Create},
				{Method: http.MethodPut, Path: "/banners/:id", Handler: h.Banner.Update},
				{Method: http.MethodDelete, Path: "/banners/:id", Handler: h.Banner.Delete},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
