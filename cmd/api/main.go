package main

import (
	"log"
	"os"

	"github.com/attaflow/attaflow-api/internal/application/service"
	"github.com/attaflow/attaflow-api/internal/config"
	"github.com/attaflow/attaflow-api/internal/infrastructure/database"
	"github.com/attaflow/attaflow-api/internal/infrastructure/repository"
	"github.com/attaflow/attaflow-api/internal/presentation/http/handler"
	"github.com/attaflow/attaflow-api/internal/presentation/http/routes"
	"github.com/attaflow/attaflow-api/pkg/logger"
	"github.com/attaflow/attaflow-api/pkg/utils"
	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg := config.Load()
	logger.SetDebug(cfg.App.Debug)

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database
	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Seed default data
	if err := database.SeedDefaultData(db); err != nil {
		log.Printf("Warning: Failed to seed default data: %v", err)
	}

	// Initialize JWT manager
	jwtManager := utils.NewJWTManager(
		cfg.JWT.Secret,
		cfg.JWT.ExpiryHours,
		cfg.JWT.RefreshExpiryHours,
	)

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	roleRepo := repository.NewRoleRepository(db)
	warehouseRepo := repository.NewWarehouseRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	recordRepo := repository.NewRecordRepository(db)

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtManager)
	userService := service.NewUserService(userRepo, roleRepo)
	warehouseService := service.NewWarehouseService(warehouseRepo)
	customerService := service.NewCustomerService(customerRepo, warehouseRepo)
	recordService := service.NewRecordService(recordRepo, customerRepo)
	reportService := service.NewReportService(recordRepo, userRepo, customerRepo, warehouseRepo)
	exportService := service.NewExportService(reportService)

	// Initialize handlers
	handlers := &routes.Handlers{
		Auth:      handler.NewAuthHandler(authService),
		Report:    handler.NewReportHandler(reportService),
		Export:    handler.NewExportHandler(exportService),
		Record:    handler.NewRecordHandler(recordService),
		Customer:  handler.NewCustomerHandler(customerService),
		Warehouse: handler.NewWarehouseHandler(warehouseService),
		User:      handler.NewUserHandler(userService),
	}

	// Setup routes
	router := routes.Setup(handlers, &routes.Deps{
		JWTManager: jwtManager,
		Cfg:        cfg,
		UserRepo:   userRepo,
	})

	// Get port from environment or use default
	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting %s server on port %s...", cfg.App.Name, port)
	log.Printf("Environment: %s", cfg.App.Env)

	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
		os.Exit(1)
	}
}
