package routes

import (
	"time"

	"github.com/attaflow/attaflow-api/internal/config"
	"github.com/attaflow/attaflow-api/internal/domain/entity"
	domainRepo "github.com/attaflow/attaflow-api/internal/domain/repository"
	"github.com/attaflow/attaflow-api/internal/presentation/http/handler"
	"github.com/attaflow/attaflow-api/internal/presentation/http/middleware"
	"github.com/attaflow/attaflow-api/pkg/utils"
	"github.com/gin-gonic/gin"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Auth      *handler.AuthHandler
	Report    *handler.ReportHandler
	Export    *handler.ExportHandler
	Record    *handler.RecordHandler
	Customer  *handler.CustomerHandler
	Warehouse *handler.WarehouseHandler
	User      *handler.UserHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	JWTManager *utils.JWTManager
	Cfg        *config.Config
	UserRepo   domainRepo.UserRepository
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": deps.Cfg.App.Name,
		})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Public routes (no authentication required)
		registerAuthRoutes(v1, h)

		// Protected routes (authentication required)
		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware(deps.JWTManager, deps.UserRepo))

		// Per-user rate limiter
		rateLimiter := middleware.NewUserRateLimiter(middleware.RateLimiterConfig{
			RequestsPerSecond: deps.Cfg.RateLimit.RequestsPerSecond,
			BurstSize:         deps.Cfg.RateLimit.Burst,
			CleanupInterval:   5 * time.Minute,
			EntryTTL:          10 * time.Minute,
		})
		protected.Use(rateLimiter.Middleware())

		registerProtectedRoutes(protected, h)
	}

	return router
}

func registerAuthRoutes(v1 *gin.RouterGroup, h *Handlers) {
	auth := v1.Group("/auth")
	{
		auth.POST("/login", h.Auth.Login)
		auth.POST("/refresh", h.Auth.RefreshToken)
	}
}

func registerProtectedRoutes(protected *gin.RouterGroup, h *Handlers) {
	// Auth/Profile routes
	protected.GET("/auth/me", h.Auth.Me)
	protected.POST("/auth/change-password", h.Auth.ChangePassword)

	// Reports
	registerReportRoutes(protected, h)

	// Records (orders and visits)
	registerRecordRoutes(protected, h)

	// Customers
	registerCustomerRoutes(protected, h)

	// Warehouses
	registerWarehouseRoutes(protected, h)

	// Users (Admin)
	registerUserRoutes(protected, h)
}

func registerReportRoutes(protected *gin.RouterGroup, h *Handlers) {
	reports := protected.Group("/reports")
	{
		reports.GET("/executives", h.Report.ExecutiveReport)
		reports.GET("/executives/export", h.Export.ExportExecutiveReport)
		reports.GET("/executives/:id", h.Report.ExecutiveDetail)
		reports.GET("/warehouses", h.Report.WarehouseReport)
		reports.GET("/warehouses/export", h.Export.ExportWarehouseReport)
		reports.GET("/customers", h.Report.CustomerReport)
		reports.GET("/customers/export", h.Export.ExportCustomerReport)
		reports.GET("/customers/:id", h.Report.CustomerDetail)
	}
}

func registerRecordRoutes(protected *gin.RouterGroup, h *Handlers) {
	records := protected.Group("/records")
	{
		records.GET("", h.Record.ListRecords)
		records.GET("/cursor", h.Record.ListRecordsWithCursor)
		records.POST("/orders", h.Record.CreateOrder)
		records.POST("/visits", h.Record.CreateVisit)
		records.GET("/:id", h.Record.GetRecord)
		records.PATCH("/:id/status", h.Record.UpdateStatus)
		records.DELETE("/:id", middleware.RequireRole(entity.RoleAdmin, entity.RoleManager), h.Record.DeleteRecord)
	}
}

func registerCustomerRoutes(protected *gin.RouterGroup, h *Handlers) {
	customers := protected.Group("/customers")
	{
		customers.GET("", h.Customer.ListCustomers)
		customers.POST("", h.Customer.CreateCustomer)
		customers.GET("/:id", h.Customer.GetCustomer)
		customers.PUT("/:id", h.Customer.UpdateCustomer)
		customers.DELETE("/:id", middleware.RequireRole(entity.RoleAdmin, entity.RoleManager), h.Customer.DeleteCustomer)
	}
}

func registerWarehouseRoutes(protected *gin.RouterGroup, h *Handlers) {
	warehouses := protected.Group("/warehouses")
	{
		warehouses.GET("", h.Warehouse.ListWarehouses)
		warehouses.GET("/:id", h.Warehouse.GetWarehouse)
		warehouses.POST("", middleware.RequireRole(entity.RoleAdmin), h.Warehouse.CreateWarehouse)
		warehouses.PUT("/:id", middleware.RequireRole(entity.RoleAdmin), h.Warehouse.UpdateWarehouse)
		warehouses.DELETE("/:id", middleware.RequireRole(entity.RoleAdmin), h.Warehouse.DeleteWarehouse)
	}
}

func registerUserRoutes(protected *gin.RouterGroup, h *Handlers) {
	users := protected.Group("/users")
	users.Use(middleware.RequireRole(entity.RoleAdmin, entity.RoleManager))
	{
		users.GET("", h.User.ListUsers)
		users.GET("/roles", h.User.ListRoles)
		users.POST("", h.User.CreateUser)
		users.GET("/:id", h.User.GetUser)
		users.PUT("/:id", h.User.UpdateUser)
		users.DELETE("/:id", h.User.DeleteUser)
	}
}
