package api

import (
	"github.com/google/uuid"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/vibefolio/vibefolio-api/docs"
	"github.com/vibefolio/vibefolio-api/internal/api/handler"
	"github.com/vibefolio/vibefolio-api/internal/api/middleware"
	"github.com/vibefolio/vibefolio-api/internal/core/domain"
	"github.com/vibefolio/vibefolio-api/internal/core/ports"
	redisdb "github.com/vibefolio/vibefolio-api/internal/infrastructure/db/redis"
)

// Deps is everything the HTTP layer needs. Services are required; IDP may be
// nil when OIDC is not configured.
type Deps struct {
	Auth      ports.AuthService
	Projects  ports.ProjectService
	Comments  ports.CommentService
	Reactions ports.ReactionService
	Banners   ports.BannerService
	Popups    ports.PopupService
	Recruit   ports.RecruitService
	Admin     ports.AdminService

	Sessions middleware.SessionOpener
	Limiter  middleware.Limiter
	Views    handler.ViewQueue
	IDP      handler.IdentityProvider
	Checks   map[string]handler.Check

	DenyPath     string
	SecureCookie bool
	Registerer   prometheus.Registerer
	Log          zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(d Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(d.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestIDWithConfig(echomiddleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(requestLogger(d.Log))
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Subsystem:  "vibefolio",
		Registerer: d.Registerer,
		Skipper: func(c echo.Context) bool {
			return c.Path() == "/metrics" || c.Path() == "/health"
		},
	}))

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(d.Auth, d.IDP, d.SecureCookie, d.Log)
	projectHandler := handler.NewProjectHandler(d.Projects, d.Views)
	commentHandler := handler.NewCommentHandler(d.Comments)
	reactionHandler := handler.NewReactionHandler(d.Reactions)
	bannerHandler := handler.NewBannerHandler(d.Banners)
	popupHandler := handler.NewPopupHandler(d.Popups)
	recruitHandler := handler.NewRecruitHandler(d.Recruit)
	adminHandler := handler.NewAdminHandler(d.Admin)
	healthHandler := handler.NewHealthHandler(d.Checks)

	session := middleware.Session(d.Sessions)
	requireAuth := middleware.RequireAuth()
	requireAdmin := middleware.RequireAdmin()
	limit := func(scope string, l redisdb.Limit) echo.MiddlewareFunc {
		return middleware.RateLimit(d.Limiter, scope, l, d.Log)
	}

	// --- Operational ---
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// --- Auth ---
	auth := e.Group("/auth")
	auth.POST("/register", authHandler.Register, limit("signup", redisdb.LimitSignup))
	auth.POST("/login", authHandler.Login, limit("login", redisdb.LimitLogin))
	auth.POST("/logout", authHandler.Logout, session)
	auth.GET("/me", authHandler.Me, session)
	auth.GET("/oidc/login", authHandler.OIDCLogin)
	auth.GET("/callback", authHandler.OIDCCallback, limit("login", redisdb.LimitLogin))

	// --- Admin pages: guarded, never rendered for non-admins ---
	pages := e.Group("/admin", middleware.AdminGuard(d.Sessions, d.DenyPath, d.Log))
	pages.GET("", adminHandler.Dashboard)
	pages.GET("/users", adminHandler.ListUsers)

	// --- API v1 ---
	v1 := e.Group("/v1", session, limit("api", redisdb.LimitAPI))

	v1.GET("/projects", projectHandler.List)
	v1.POST("/projects", projectHandler.Create, requireAuth, limit("upload", redisdb.LimitUpload))
	v1.GET("/projects/:id", projectHandler.Get)
	v1.PATCH("/projects/:id", projectHandler.Update, requireAuth)
	v1.DELETE("/projects/:id", projectHandler.Delete, requireAuth)
	v1.POST("/projects/:id/view", projectHandler.RecordView)

	v1.GET("/projects/:id/comments", commentHandler.List)
	v1.POST("/projects/:id/comments", commentHandler.Create, requireAuth)
	v1.DELETE("/comments/:id", commentHandler.Delete, requireAuth)

	v1.POST("/projects/:id/like", reactionHandler.Toggle(domain.ReactionLike), requireAuth)
	v1.POST("/projects/:id/bookmark", reactionHandler.Toggle(domain.ReactionBookmark), requireAuth)
	v1.GET("/me/likes", reactionHandler.Mine(domain.ReactionLike), requireAuth)
	v1.GET("/me/bookmarks", reactionHandler.Mine(domain.ReactionBookmark), requireAuth)

	v1.GET("/banners", bannerHandler.List)
	v1.POST("/banners", bannerHandler.Create, requireAdmin)
	v1.PATCH("/banners/:id", bannerHandler.Update, requireAdmin)
	v1.DELETE("/banners/:id", bannerHandler.Delete, requireAdmin)

	v1.GET("/popups/active", popupHandler.Active)
	v1.GET("/popups", popupHandler.List, requireAdmin)
	v1.POST("/popups", popupHandler.Create, requireAdmin)
	v1.PATCH("/popups/:id", popupHandler.Update, requireAdmin)
	v1.POST("/popups/:id/toggle", popupHandler.Toggle, requireAdmin)
	v1.DELETE("/popups/:id", popupHandler.Delete, requireAdmin)

	v1.GET("/recruit-items", recruitHandler.List)
	v1.POST("/recruit-items", recruitHandler.Create, requireAdmin)
	v1.PUT("/recruit-items/:id", recruitHandler.Update, requireAdmin)
	v1.DELETE("/recruit-items/:id", recruitHandler.Delete, requireAdmin)

	v1.GET("/admin/users", adminHandler.ListUsers, requireAdmin)
	v1.PATCH("/admin/users/:id/role", adminHandler.ChangeRole, requireAdmin)

	return e
}

func requestLogger(log zerolog.Logger) echo.MiddlewareFunc {
	return echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogURI:       true,
		LogMethod:    true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogRemoteIP:  true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v echomiddleware.RequestLoggerValues) error {
			ev := log.Info()
			if v.Error != nil {
				ev = log.Warn().Err(v.Error)
			}
			ev.Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Str("request_id", v.RequestID).
				Str("remote_ip", v.RemoteIP).
				Msg("request")
			return nil
		},
	})
}
