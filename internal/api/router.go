package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/ligasala/registration-portal/internal/api/handler"
	"github.com/ligasala/registration-portal/internal/api/middleware"
	"github.com/ligasala/registration-portal/internal/core/domain"
	"github.com/ligasala/registration-portal/internal/core/ports"
)

// Uploads are capped at three photos plus one document of 10 MiB each, so
// anything past this is rejected before reaching the upstream.
const maxRequestBody = "45M"

// Dependencies carries everything the router wires together. Redis may be
// nil when the cache is disabled.
type Dependencies struct {
	Logger       zerolog.Logger
	Registration ports.RegistrationService
	Roster       ports.RosterService
	Fixture      ports.FixtureService
	Admin        ports.AdminService
	Export       ports.ExportService
	Redis        *redis.Client
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.BodyLimit(maxRequestBody))
	e.Use(echoprometheus.NewMiddleware("portal"))

	// --- Handlers ---
	registrationHandler := handler.NewRegistrationHandler(deps.Registration)
	rosterHandler := handler.NewRosterHandler(deps.Roster)
	fixtureHandler := handler.NewFixtureHandler(deps.Fixture)
	adminHandler := handler.NewAdminHandler(deps.Admin)
	exportHandler := handler.NewExportHandler(deps.Export)
	healthHandler := handler.NewHealthHandler(deps.Redis)

	// --- Probes and metrics ---
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	// --- Public routes ---
	e.GET("/api/registration", registrationHandler.Window)
	e.GET("/api/equipos/validate/:code", registrationHandler.ValidateCode)
	e.POST("/api/users", registrationHandler.Register)
	e.GET("/api/equipos/:codigo/jugadores", rosterHandler.PublicRoster)
	e.GET("/api/fixture", fixtureHandler.List)
	e.POST("/api/dirigentes/login", adminHandler.Login)

	// --- Manager routes (Basic credential forwarded upstream) ---
	manager := e.Group("", middleware.Session(domain.RoleManager))
	manager.GET("/api/dirigentes/:id/jugadores", rosterHandler.ListByManager)
	manager.PUT("/api/jugadores/:id", rosterHandler.Update)
	manager.DELETE("/api/jugadores/:id", rosterHandler.Delete)
	manager.GET("/api/jugadores/reporte/:id", exportHandler.RosterWord)
	manager.GET("/api/jugadores/reporte-pdf/:id", exportHandler.RosterPDF)

	// --- Admin routes ---
	admin := e.Group("", middleware.Session(domain.RoleAdmin))
	admin.GET("/api/admin/dirigentes", adminHandler.ListManagers)
	admin.POST("/api/admin/dirigentes", adminHandler.CreateManager)
	admin.PUT("/api/admin/dirigentes/:id", adminHandler.UpdateManager)
	admin.DELETE("/api/admin/dirigentes/:id", adminHandler.DeleteManager)
	admin.GET("/api/admin/equipos", adminHandler.ListTeams)
	admin.POST("/api/admin/equipos", adminHandler.CreateTeam)
	admin.PUT("/api/admin/equipos/:id", adminHandler.UpdateTeam)
	admin.DELETE("/api/admin/equipos/:id", adminHandler.DeleteTeam)
	admin.POST("/api/fixture", fixtureHandler.Create)
	admin.PUT("/api/fixture/:id", fixtureHandler.Update)
	admin.DELETE("/api/fixture/:id", fixtureHandler.Delete)
	admin.GET("/api/users/export", exportHandler.PlayersExcel)
	admin.GET("/api/admin/autorizaciones/consolidado", exportHandler.ConsolidatedAuthorizations)

	return e
}
