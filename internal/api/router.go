package api

import (
	"net/http"
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"golang.org/x/time/rate"

	_ "github.com/autohaus/dealership/docs"
	"github.com/autohaus/dealership/internal/api/handler"
	"github.com/autohaus/dealership/internal/api/middleware"
	"github.com/autohaus/dealership/internal/core/domain"
	"github.com/autohaus/dealership/internal/core/ports"
)

// LoginLimit throttles login attempts per client IP.
type LoginLimit struct {
	PerSecond float64
	Burst     int
}

// Deps is everything the HTTP layer needs. main builds it once.
type Deps struct {
	Log       zerolog.Logger
	Sessions  middleware.SessionResolver
	Auth      ports.AuthService
	Dashboard ports.DashboardService
	Catalog   ports.CatalogService
	Sales     ports.SalesService
	Documents ports.DocumentService
	Rates     ports.RateService
	Health    map[string]handler.Pinger
	Cookies   handler.CookieOptions
	Login     LoginLimit
	// Metrics disables the Prometheus middleware when false (tests).
	Metrics bool
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
	e.Use(echomiddleware.RequestID())
	e.Use(requestLogger(d.Log))
	if d.Metrics {
		e.Use(echoprometheus.NewMiddleware("dealership"))
		e.GET("/metrics", echoprometheus.NewHandler())
	}

	// --- Health probes and docs (no auth required) ---
	health := handler.NewHealthHandler(d.Health)
	e.GET("/health", health.Liveness)        // liveness
	e.GET("/health/ready", health.Readiness) // readiness
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	requireUser := middleware.RequireUser(d.Sessions)
	requireAdmin := middleware.RequireAdmin(d.Sessions)
	throttle := loginLimiter(d.Login)

	userAuth := handler.NewAuthHandler(d.Auth, domain.RoleUser, d.Cookies)
	adminAuth := handler.NewAuthHandler(d.Auth, domain.RoleAdmin, d.Cookies)
	accounts := handler.NewAccountHandler(d.Auth)
	dashboard := handler.NewDashboardHandler(d.Dashboard)
	catalog := handler.NewCatalogHandler(d.Catalog)
	sales := handler.NewSalesHandler(d.Sales)
	documents := handler.NewDocumentHandler(d.Documents)
	rates := handler.NewRateHandler(d.Rates)

	apiGroup := e.Group("/api")

	// --- Storefront ---
	apiGroup.POST("/auth/signup", userAuth.Signup, throttle)
	apiGroup.POST("/auth/login", userAuth.Login, throttle)
	apiGroup.POST("/auth/logout", userAuth.Logout)
	apiGroup.GET("/auth/me", userAuth.Me, requireUser)
	apiGroup.PUT("/auth/password", userAuth.ChangePassword, requireUser)

	apiGroup.GET("/cars", catalog.ListCars)
	apiGroup.GET("/cars/:id", catalog.GetCar)
	apiGroup.GET("/brands", catalog.ListBrands)
	apiGroup.GET("/tracking/:code", documents.Track)
	apiGroup.GET("/rates", rates.Rate)

	// --- Back office ---
	apiGroup.POST("/admin/auth/login", adminAuth.Login, throttle)
	apiGroup.POST("/admin/auth/logout", adminAuth.Logout)

	admin := apiGroup.Group("/admin", requireAdmin)
	admin.GET("/auth/me", adminAuth.Me)
	admin.PUT("/auth/password", adminAuth.ChangePassword)

	admin.GET("/dashboard/stats", dashboard.Stats)

	admin.GET("/users", accounts.ListUsers)
	admin.DELETE("/users/:id", accounts.DeleteUser)
	admin.GET("/admins", accounts.ListAdmins)
	admin.POST("/admins", accounts.CreateAdmin)
	admin.DELETE("/admins/:id", accounts.DeleteAdmin)

	admin.POST("/cars", catalog.CreateCar)
	admin.PUT("/cars/:id", catalog.UpdateCar)
	admin.DELETE("/cars/:id", catalog.DeleteCar)
	admin.POST("/brands", catalog.CreateBrand)
	admin.PUT("/brands/:id", catalog.UpdateBrand)
	admin.DELETE("/brands/:id", catalog.DeleteBrand)

	admin.GET("/clients", sales.ListClients)
	admin.POST("/clients", sales.CreateClient)
	admin.GET("/clients/:id", sales.GetClient)
	admin.PUT("/clients/:id", sales.UpdateClient)
	admin.DELETE("/clients/:id", sales.DeleteClient)
	admin.GET("/orders", sales.ListOrders)
	admin.POST("/orders", sales.CreateOrder)
	admin.GET("/orders/:id", sales.GetOrder)
	admin.PUT("/orders/:id", sales.UpdateOrder)
	admin.DELETE("/orders/:id", sales.DeleteOrder)

	admin.GET("/documents", documents.ListDocuments)
	admin.POST("/documents", documents.CreateDocument)
	admin.POST("/documents/preview", documents.Preview)
	admin.GET("/documents/:id", documents.GetDocument)
	admin.PUT("/documents/:id", documents.UpdateDocument)
	admin.DELETE("/documents/:id", documents.DeleteDocument)

	return e
}

func loginLimiter(l LoginLimit) echo.MiddlewareFunc {
	store := echomiddleware.NewRateLimiterMemoryStoreWithConfig(echomiddleware.RateLimiterMemoryStoreConfig{
		Rate:      rate.Limit(l.PerSecond),
		Burst:     l.Burst,
		ExpiresIn: 3 * time.Minute,
	})
	return echomiddleware.RateLimiterWithConfig(echomiddleware.RateLimiterConfig{
		Store: store,
		IdentifierExtractor: func(c echo.Context) (string, error) {
			return c.RealIP(), nil
		},
		DenyHandler: func(c echo.Context, _ string, _ error) error {
			return echo.NewHTTPError(http.StatusTooManyRequests, "too many login attempts")
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return echo.NewHTTPError(http.StatusForbidden, "unable to identify client")
		},
	})
}

func requestLogger(log zerolog.Logger) echo.MiddlewareFunc {
	return echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogRemoteIP:  true,
		HandleError:  true,
		// Error details of 5xx responses are logged by the HTTP error handler.
		LogValuesFunc: func(c echo.Context, v echomiddleware.RequestLoggerValues) error {
			log.Info().
				Str("method", v.Method).
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
