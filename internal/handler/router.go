package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"padel-club-api/internal/handler/api"
	"padel-club-api/internal/handler/middleware"
	"padel-club-api/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Auth         *api.AuthHandler
	Reservation  *api.ReservationHandler
	Match        *api.MatchHandler
	Community    *api.CommunityHandler
	Notification *api.NotificationHandler
	Payment      *api.PaymentHandler
	Admin        *api.AdminHandler
	Settings     *api.SettingsHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, handlers Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, handlers, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, handlers Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/register", Handler: handlers.Auth.Register},
				{Method: http.MethodPost, Path: "/login", Handler: handlers.Auth.Login},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "/logout", Handler: handlers.Auth.Logout},
				{Method: http.MethodGet, Path: "/me", Handler: handlers.Auth.Me},
			})
		}

		users := apiGroup.Group("/users")
		users.Use(authMiddleware.RequireAuth())
		{
			addRoutes(users, []route{
				{Method: http.MethodGet, Path: "/me", Handler: handlers.Auth.Overview},
				{Method: http.MethodPut, Path: "/me", Handler: handlers.Auth.UpdateProfile},
			})
		}

		reservations := apiGroup.Group("/reservations")
		reservations.Use(authMiddleware.RequireAuth())
		{
			addRoutes(reservations, []route{
				{Method: http.MethodPost, Path: "", Handler: handlers.Reservation.Create},
				{Method: http.MethodGet, Path: "", Handler: handlers.Reservation.List},
				{Method: http.MethodDelete, Path: "/:id", Handler: handlers.Reservation.Cancel},
			})
		}

		matches := apiGroup.Group("/matches")
		matches.Use(authMiddleware.RequireAuth())
		{
			addRoutes(matches, []route{
				{Method: http.MethodPost, Path: "", Handler: handlers.Match.Create},
				{Method: http.MethodGet, Path: "", Handler: handlers.Match.List},
				{Method: http.MethodPost, Path: "/:id/join", Handler: handlers.Match.Join},
				{Method: http.MethodPost, Path: "/:id/leave", Handler: handlers.Match.Leave},
				{Method: http.MethodGet, Path: "/:id/messages", Handler: handlers.Match.ListMessages},
				{Method: http.MethodPost, Path: "/:id/messages", Handler: handlers.Match.PostMessage},
				{Method: http.MethodPost, Path: "/:id/result", Handler: handlers.Match.PublishResult},
			})
		}

		community := apiGroup.Group("/community")
		community.Use(authMiddleware.RequireAuth())
		{
			addRoutes(community, []route{
				{Method: http.MethodGet, Path: "/players", Handler: handlers.Community.Players},
				{Method: http.MethodPost, Path: "/follow/:id", Handler: handlers.Community.Follow},
				{Method: http.MethodDelete, Path: "/follow/:id", Handler: handlers.Community.Unfollow},
			})
		}

		notifications := apiGroup.Group("/notifications")
		notifications.Use(authMiddleware.RequireAuth())
		{
			addRoutes(notifications, []route{
				{Method: http.MethodGet, Path: "", Handler: handlers.Notification.List},
				{Method: http.MethodPatch, Path: "/:id/read", Handler: handlers.Notification.MarkRead},
			})
		}

		payments := apiGroup.Group("/payments")
		payments.Use(authMiddleware.RequireAuth())
		{
			addRoutes(payments, []route{
				{Method: http.MethodPost, Path: "/sumup", Handler: handlers.Payment.Charge},
			})
		}

		settings := apiGroup.Group("/settings")
		{
			addRoutes(settings, []route{
				{Method: http.MethodGet, Path: "", Handler: handlers.Settings.Get},
			})
		}

		admin := apiGroup.Group("/admin")
		admin.Use(authMiddleware.RequireAuth(), authMiddleware.RequireAdmin())
		{
			addRoutes(admin, []route{
				{Method: http.MethodGet, Path: "/dashboard", Handler: handlers.Admin.Dashboard},
				{Method: http.MethodGet, Path: "/reservations", Handler: handlers.Admin.Reservations},
				{Method: http.MethodGet, Path: "/transactions", Handler: handlers.Admin.Transactions},
				{Method: http.MethodGet, Path: "/members", Handler: handlers.Admin.Members},
			})
		}
	}
}

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
