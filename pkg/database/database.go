package database

import (
	"fmt"
	"log"

	"cafehub/pkg/config"
	"cafehub/pkg/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// InitDatabase initializes the database connection
func InitDatabase() error {
	var err error

	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Error),
	}
	if config.IsDevelopment() {
		gormConfig.Logger = logger.Default.LogMode(logger.Info)
	}

	DB, err = gorm.Open(postgres.New(postgres.Config{
		DSN:                  config.AppConfig.DatabaseURL,
		PreferSimpleProtocol: true,
	}), gormConfig)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := DB.DB()
	if err != nil {
		return fmt.Errorf("failed to get database instance: %w", err)
	}

	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)

	log.Println("✅ Database connection established")

	return nil
}

// AutoMigrate runs auto-migration for all models
func AutoMigrate() error {
	log.Println("🔄 Running database migrations...")

	err := DB.AutoMigrate(
		// Core models
		&models.User{},
		&models.Cafe{},

		// Menu & Tables
		&models.MenuItem{},
		&models.Table{},

		// Orders
		&models.Order{},
		&models.OrderItem{},
		&models.Rating{},

		// Supply chain
		&models.Supplier{},
		&models.InventoryItem{},
		&models.PurchaseOrder{},
		&models.PurchaseOrderItem{},

		// People
		&models.Customer{},
		&models.Shift{},

		// Accounting
		&models.FinancialParty{},
		&models.Invoice{},
		&models.Expense{},
		&models.LedgerAccount{},
		&models.LedgerEntry{},

		// Platform
		&models.SuperAdmin{},
		&models.StaffDeviceToken{},
	)

	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Println("✅ Database migrations completed")

	return nil
}

// CloseDatabase closes the database connection
func CloseDatabase() {
	sqlDB, err := DB.DB()
	if err != nil {
		log.Printf("Error getting database instance: %v", err)
		return
	}
	if err := sqlDB.Close(); err != nil {
		log.Printf("Error closing database: %v", err)
	} else {
		log.Println("✅ Database connection closed")
	}
}
