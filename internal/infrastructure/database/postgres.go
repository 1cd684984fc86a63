package database

import (
	"fmt"
	"log"

	"github.com/attaflow/attaflow-api/internal/config"
	"github.com/attaflow/attaflow-api/internal/domain/entity"
	"github.com/attaflow/attaflow-api/pkg/utils"
	"github.com/spf13/viper"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewPostgresDB creates a new PostgreSQL database connection
func NewPostgresDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	logLevel := logger.Info

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  cfg.DSN(),
		PreferSimpleProtocol: true, // disables implicit prepared statement usage
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Get underlying SQL DB to set connection pool settings
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	// Set connection pool settings
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)

	log.Println("Successfully connected to PostgreSQL database")
	return db, nil
}

// AutoMigrate runs GORM auto-migration for all entities
func AutoMigrate(db *gorm.DB) error {
	log.Println("Running database migrations...")

	err := db.AutoMigrate(
		&entity.Role{},
		&entity.User{},
		&entity.Warehouse{},
		&entity.Customer{},
		&entity.Record{},
		&entity.LineItem{},
	)

	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Println("Database migrations completed successfully")
	return nil
}

// SeedDefaultData seeds the well-known roles and, when configured, an admin
// user. Safe to run on every startup.
func SeedDefaultData(db *gorm.DB) error {
	log.Println("Seeding default data...")

	roleNames := []string{
		entity.RoleSalesExecutive,
		entity.RoleManager,
		entity.RoleAdmin,
	}
	for _, name := range roleNames {
		var existing entity.Role
		if err := db.Where("name = ?", name).First(&existing).Error; err != nil {
			if err := db.Create(&entity.Role{Name: name}).Error; err != nil {
				log.Printf("Warning: failed to create role %s: %v", name, err)
			}
		}
	}

	// Create admin user if configured via environment variables
	adminEmail := viper.GetString("ADMIN_EMAIL")
	adminPassword := viper.GetString("ADMIN_PASSWORD")
	adminName := viper.GetString("ADMIN_NAME")

	if adminEmail != "" && adminPassword != "" {
		var existingAdmin entity.User
		if err := db.Where("email = ?", adminEmail).First(&existingAdmin).Error; err != nil {
			hashedPassword, err := utils.HashPassword(adminPassword)
			if err != nil {
				log.Printf("Warning: failed to hash admin password: %v", err)
				return nil
			}

			var adminRole entity.Role
			if err := db.Where("name = ?", entity.RoleAdmin).First(&adminRole).Error; err != nil {
				log.Printf("Warning: admin role not found: %v", err)
				return nil
			}

			if adminName == "" {
				adminName = "Admin"
			}
			firstName := adminName
			lastName := ""
			for i, c := range adminName {
				if c == ' ' {
					firstName = adminName[:i]
					lastName = adminName[i+1:]
					break
				}
			}
			adminUser := entity.User{
				FirstName: firstName,
				LastName:  lastName,
				Email:     adminEmail,
				Password:  hashedPassword,
				RoleID:    adminRole.ID,
			}
			if err := db.Create(&adminUser).Error; err != nil {
				log.Printf("Warning: failed to create admin user: %v", err)
			} else {
				log.Printf("Admin user created: %s", adminEmail)
			}
		} else {
			log.Printf("Admin user already exists: %s", adminEmail)
		}
	}

	log.Println("Default data seeding completed")
	return nil
}
