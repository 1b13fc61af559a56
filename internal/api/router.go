package api

import (
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/greenhouse/console/internal/api/handler"
	"github.com/greenhouse/console/internal/api/middleware"
	"github.com/greenhouse/console/internal/core/domain"
	"github.com/greenhouse/console/internal/core/ports"
)

// Deps is everything the console surface is built from.
type Deps struct {
	Log        zerolog.Logger
	Session    ports.SessionController
	Dashboards ports.DashboardService
	Plants     ports.PlantService
	Seeds      ports.SeedService
	Journal    ports.JournalService
	Employees  ports.EmployeeService
	Clients    ports.ClientService
	Admins     ports.AdminService
	Users      ports.UserService
	// Checks are run by the readiness probe.
	Checks map[string]handler.HealthCheck
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(d Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = NewHTTPErrorHandler(d.Log)
	e.Validator = handler.NewValidator()

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(middleware.Metrics())
	e.Use(middleware.RequestLogger(d.Log))

	// --- Navigation follows the session ---
	nav := handler.NewNavigator(d.Log)
	d.Session.Subscribe(nav.Observe)

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(d.Session, nav)
	dashHandler := handler.NewDashboardHandler(d.Dashboards)
	plantHandler := handler.NewPlantHandler(d.Plants)
	seedHandler := handler.NewSeedHandler(d.Seeds)
	journalHandler := handler.NewJournalHandler(d.Journal, d.Employees)
	employeeHandler := handler.NewEmployeeHandler(d.Employees)
	clientHandler := handler.NewClientHandler(d.Clients)
	adminHandler := handler.NewAdminHandler(d.Admins, d.Users)
	healthHandler := handler.NewHealthHandler(d.Checks)

	// --- Probes and metrics (no session required) ---
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthHandler.Readiness)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// --- Auth routes ---
	e.GET("/", authHandler.Home)
	e.POST("/auth/login", authHandler.Login)
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/logout", authHandler.Logout)
	e.GET("/auth/me", authHandler.Me)

	session := middleware.Session(d.Session)

	// --- Administrator console ---
	admin := e.Group("/admin", session, middleware.RBAC(domain.RoleAdministrator))
	admin.GET("", dashHandler.Admin)

	admin.GET("/plants", plantHandler.List)
	admin.POST("/plants", plantHandler.Create)
	admin.PUT("/plants/:id", plantHandler.Update)
	admin.DELETE("/plants/:id", plantHandler.Delete)

	admin.GET("/seeds", seedHandler.List)
	admin.POST("/seeds", seedHandler.Create)
	admin.PUT("/seeds/:id", seedHandler.Update)
	admin.DELETE("/seeds/:id", seedHandler.Delete)

	admin.GET("/growth-stages", journalHandler.ListGrowthStages)
	admin.POST("/growth-stages", journalHandler.CreateGrowthStage)
	admin.PUT("/growth-stages/:id", journalHandler.UpdateGrowthStage)
	admin.DELETE("/growth-stages/:id", journalHandler.DeleteGrowthStage)

	admin.GET("/journal", journalHandler.ListRecords)

	admin.GET("/employees", employeeHandler.List)
	admin.POST("/employees", employeeHandler.Create)
	admin.PUT("/employees/:id", employeeHandler.Update)
	admin.DELETE("/employees/:id", employeeHandler.Delete)

	admin.GET("/clients", clientHandler.List)
	admin.POST("/clients", clientHandler.Create)
	admin.PUT("/clients/:id", clientHandler.Update)
	admin.DELETE("/clients/:id", clientHandler.Delete)

	admin.GET("/administrators", adminHandler.List)
	admin.POST("/administrators", adminHandler.Create)
	admin.DELETE("/administrators/:id", adminHandler.Delete)

	admin.GET("/users", adminHandler.ListUsers)
	admin.DELETE("/users/:id", adminHandler.DeleteUser)

	// --- Employee console ---
	employee := e.Group("/employee", session, middleware.RBAC(domain.RoleEmployee))
	employee.GET("", dashHandler.Employee)
	employee.GET("/me", employeeHandler.MyID)
	employee.GET("/plants", plantHandler.List)
	employee.GET("/seeds", seedHandler.List)
	employee.GET("/growth-stages", journalHandler.ListGrowthStages)
	employee.GET("/journal", journalHandler.ListMine)
	employee.POST("/journal", journalHandler.CreateRecord)
	employee.PUT("/journal/:id", journalHandler.UpdateRecord)
	employee.DELETE("/journal/:id", journalHandler.DeleteRecord)

	// --- Client console ---
	client := e.Group("/client", session, middleware.RBAC(domain.RoleClient))
	client.GET("", dashHandler.Client)
	client.GET("/profile", clientHandler.Profile)

	return e
}
