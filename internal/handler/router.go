package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"emy-orders/internal/handler/api"
	"emy-orders/internal/handler/middleware"
	"emy-orders/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Auth          *api.AuthHandler
	Catalog       *api.CatalogHandler
	Cart          *api.CartHandler
	Checkout      *api.CheckoutHandler
	Orders        *api.OrdersHandler
	Notifications *api.NotificationsHandler
	Reports       *api.ReportsHandler
	Payment       *api.PaymentHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, h, authMiddleware)
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
				{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login},
			})
		}

		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/menu", Handler: h.Catalog.ListMenu},
			{Method: http.MethodGet, Path: "/payment/qr", Handler: h.Payment.GetQrConfig},
		})

		// Cart and checkout serve both anonymous and logged-in sessions:
		// OptionalAuth binds the cart to the account when a token is
		// present, SessionMiddleware falls back to X-Session-ID.
		session := apiGroup.Group("")
		session.Use(authMiddleware.OptionalAuth(), middleware.SessionMiddleware())
		{
			requireSession := []gin.HandlerFunc{middleware.RequireSession()}
			addRoutes(session, []route{
				{Method: http.MethodGet, Path: "/cart", Handler: h.Cart.GetCart, Mw: requireSession},
				{Method: http.MethodDelete, Path: "/cart", Handler: h.Cart.ClearCart, Mw: requireSession},
				{Method: http.MethodPost, Path: "/cart/items", Handler: h.Cart.AddItem, Mw: requireSession},
				{Method: http.MethodPut, Path: "/cart/items/:id", Handler: h.Cart.SetQuantity, Mw: requireSession},
				{Method: http.MethodDelete, Path: "/cart/items/:id", Handler: h.Cart.RemoveItem, Mw: requireSession},
				{Method: http.MethodPost, Path: "/checkout", Handler: h.Checkout.Checkout, Mw: requireSession},
			})
		}

		authed := apiGroup.Group("")
		authed.Use(authMiddleware.RequireAuth())
		{
			addRoutes(authed, []route{
				{Method: http.MethodGet, Path: "/orders/mine", Handler: h.Orders.ListMine},
				{Method: http.MethodGet, Path: "/notifications", Handler: h.Notifications.Fetch},
				{Method: http.MethodGet, Path: "/notifications/count", Handler: h.Notifications.Count},
			})
		}

		staff := apiGroup.Group("")
		staff.Use(authMiddleware.RequireAuth(), authMiddleware.RequireStaff())
		{
			addRoutes(staff, []route{
				{Method: http.MethodGet, Path: "/orders/pending", Handler: h.Orders.ListPending},
				{Method: http.MethodPost, Path: "/orders/pending/:id/approve", Handler: h.Orders.Approve},
				{Method: http.MethodPost, Path: "/orders/pending/:id/reject", Handler: h.Orders.Reject},
				{Method: http.MethodGet, Path: "/reports/sales", Handler: h.Reports.SalesReport},
				{Method: http.MethodPost, Path: "/notifications", Handler: h.Notifications.Send},
				{Method: http.MethodPut, Path: "/payment/qr", Handler: h.Payment.SaveQrConfig},
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
