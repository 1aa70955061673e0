package main

import (
	"log"

	"cafehub/pkg/config"
	"cafehub/pkg/database"
	"cafehub/pkg/models"
	"cafehub/pkg/utils"
)

func main() {
	// Load configuration
	config.LoadConfig()

	// Initialize database
	if err := database.InitDatabase(); err != nil {
		log.Fatal("Failed to initialize database:", err)
	}
	defer database.CloseDatabase()

	if err := database.AutoMigrate(); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	owner := seedOwner()
	cafe := seedCafe(owner)
	seedMenu(cafe)
	seedTables(cafe)
	seedSuperAdmin()
}

func seedOwner() *models.User {
	email := "owner@cafehub.dev"
	password := "owner123"

	var user models.User
	if err := database.DB.Where("email = ?", email).First(&user).Error; err == nil {
		log.Printf("Owner %s already exists", email)
		return &user
	}

	hashedPassword, err := utils.HashPassword(password)
	if err != nil {
		log.Fatal("Failed to hash password:", err)
	}

	user = models.User{
		Name:     "Demo Owner",
		Email:    email,
		Password: &hashedPassword,
		Role:     models.RoleOwner,
	}

	if err := database.DB.Create(&user).Error; err != nil {
		log.Fatal("Failed to create owner:", err)
	}

	log.Printf("✅ Owner %s created successfully", email)
	return &user
}

func seedCafe(owner *models.User) *models.Cafe {
	var cafe models.Cafe
	if err := database.DB.Where("owner_id = ?", owner.ID).First(&cafe).Error; err == nil {
		log.Printf("Cafe %q already exists", cafe.Name)
		return &cafe
	}

	description := "Small demo cafe seeded for local development"
	cafe = models.Cafe{
		OwnerID:     owner.ID,
		Name:        "Demo Cafe",
		Description: &description,
		Plan:        models.PlanPro,
	}

	if err := database.DB.Create(&cafe).Error; err != nil {
		log.Fatal("Failed to create cafe:", err)
	}

	log.Printf("✅ Cafe %q created successfully", cafe.Name)
	return &cafe
}

func seedMenu(cafe *models.Cafe) {
	var count int64
	database.DB.Model(&models.MenuItem{}).Where("cafe_id = ?", cafe.ID).Count(&count)
	if count > 0 {
		log.Printf("Menu already seeded (%d items)", count)
		return
	}

	items := []models.MenuItem{
		{CafeID: cafe.ID, Name: "Espresso", Price: 90, Category: "Coffee"},
		{CafeID: cafe.ID, Name: "Cappuccino", Price: 140, Category: "Coffee"},
		{CafeID: cafe.ID, Name: "Cold Brew", Price: 160, Category: "Coffee"},
		{CafeID: cafe.ID, Name: "Masala Chai", Price: 60, Category: "Tea"},
		{CafeID: cafe.ID, Name: "Croissant", Price: 120, Category: "Bakery"},
		{CafeID: cafe.ID, Name: "Cheesecake", Price: 180, Category: "Desserts"},
		{CafeID: cafe.ID, Name: "Veg Sandwich", Price: 150, Category: "Snacks"},
	}

	if err := database.DB.Create(&items).Error; err != nil {
		log.Fatal("Failed to seed menu:", err)
	}

	log.Printf("✅ Seeded %d menu items", len(items))
}

func seedTables(cafe *models.Cafe) {
	var count int64
	database.DB.Model(&models.Table{}).Where("cafe_id = ?", cafe.ID).Count(&count)
	if count > 0 {
		log.Printf("Tables already seeded (%d tables)", count)
		return
	}

	tables := make([]models.Table, 0, 6)
	for n := 1; n <= 6; n++ {
		tables = append(tables, models.Table{
			CafeID: cafe.ID,
			Number: n,
			Status: models.TableStatusAvailable,
		})
	}

	if err := database.DB.Create(&tables).Error; err != nil {
		log.Fatal("Failed to seed tables:", err)
	}

	log.Printf("✅ Seeded %d tables", len(tables))
}

func seedSuperAdmin() {
	email := "admin@cafehub.dev"

	var admin models.SuperAdmin
	if err := database.DB.Where("email = ?", email).First(&admin).Error; err == nil {
		log.Printf("SuperAdmin %s already exists", email)
		return
	}

	admin = models.SuperAdmin{Email: email}
	if err := database.DB.Create(&admin).Error; err != nil {
		log.Fatal("Failed to create SuperAdmin:", err)
	}

	log.Printf("✅ SuperAdmin %s created successfully", email)
}
