// Command seed populates the database with an admin user and a starter
// catalog so the API is usable immediately after first start.
package main

import (
	"context"
	"errors"
	"log"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"medstore/internal/auth"
	"medstore/internal/config"
	"medstore/internal/db"
	"medstore/internal/model"
)

const adminUsername = "admin"

func main() {
	log.Println("Starting seed script...")

	cfg, err := config.Load(context.Background())
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Category{},
		&model.Manufacturer{},
		&model.Medicine{},
	); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	seedAdmin(gormDB, cfg.SeedAdminPassword)
	seedCatalog(gormDB)

	log.Println("Seed completed")
}

func seedAdmin(gormDB *gorm.DB, password string) {
	var existing model.User
	err := gormDB.Where("username = ?", adminUsername).First(&existing).Error
	if err == nil {
		log.Println("Admin user already present, skipping")
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Fatalf("Failed to check admin user: %v", err)
	}

	hasher := auth.NewPasswordHasher(0)
	hash, err := hasher.Hash(password)
	if err != nil {
		log.Fatalf("Failed to hash admin password: %v", err)
	}

	admin := model.User{
		Username:     adminUsername,
		PasswordHash: hash,
		Roles:        model.RoleAdmin + "," + model.RoleUser,
	}
	if err := gormDB.Create(&admin).Error; err != nil {
		log.Fatalf("Failed to create admin user: %v", err)
	}
	log.Println("Created admin user")
}

func seedCatalog(gormDB *gorm.DB) {
	var n int64
	if err := gormDB.Model(&model.Category{}).Count(&n).Error; err != nil {
		log.Fatalf("Failed to count categories: %v", err)
	}
	if n > 0 {
		log.Println("Catalog already seeded, skipping")
		return
	}

	manufacturer := model.Manufacturer{
		Name:    "Acme Pharma",
		Country: "DE",
	}
	if err := gormDB.Create(&manufacturer).Error; err != nil {
		log.Fatalf("Failed to create manufacturer: %v", err)
	}

	categories := []model.Category{
		{Name: "Pain Relief", Description: "Analgesics and anti-inflammatories", Position: 1, Active: true},
		{Name: "Cold & Flu", Description: "Symptom relief for colds and flu", Position: 2, Active: true},
		{Name: "Vitamins", Description: "Vitamins and dietary supplements", Position: 3, Active: true},
	}
	for i := range categories {
		if err := gormDB.Create(&categories[i]).Error; err != nil {
			log.Fatalf("Failed to create category %q: %v", categories[i].Name, err)
		}
	}

	medicines := []model.Medicine{
		{
			Name:           "Paracetamol 500mg",
			Description:    "Pain and fever relief, 20 tablets",
			Price:          decimal.NewFromFloat(3.50),
			CategoryID:     categories[0].ID,
			ManufacturerID: manufacturer.ID,
		},
		{
			Name:           "Ibuprofen 400mg",
			Description:    "Anti-inflammatory, 30 tablets",
			Price:          decimal.NewFromFloat(5.20),
			CategoryID:     categories[0].ID,
			ManufacturerID: manufacturer.ID,
		},
		{
			Name:           "Vitamin C 1000mg",
			Description:    "Effervescent tablets, 20 pieces",
			Price:          decimal.NewFromFloat(4.90),
			CategoryID:     categories[2].ID,
			ManufacturerID: manufacturer.ID,
		},
	}
	for i := range medicines {
		if err := gormDB.Create(&medicines[i]).Error; err != nil {
			log.Fatalf("Failed to create medicine %q: %v", medicines[i].Name, err)
		}
	}

	log.Printf("Created %d categories and %d medicines", len(categories), len(medicines))
}
