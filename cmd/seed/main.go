package main

import (
	"context"
	"errors"
	"log"
	"os"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"backoffice/internal/config"
	"backoffice/internal/db"
	"backoffice/internal/model"
	"backoffice/internal/repository"
)

const bcryptCost = 10

func main() {
	log.Println("Starting seed script...")

	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := db.Migrate(gormDB); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	ctx := context.Background()

	if err := seedAdmin(ctx, gormDB); err != nil {
		log.Fatalf("Failed to seed admin: %v", err)
	}
	if err := seedCatalog(ctx, gormDB); err != nil {
		log.Fatalf("Failed to seed catalog: %v", err)
	}

	log.Println("Seed completed")
}

func seedAdmin(ctx context.Context, gormDB *gorm.DB) error {
	adminRepo := repository.NewAdminRepository(gormDB)

	username := envOr("SEED_ADMIN_USERNAME", "admin")
	password := envOr("SEED_ADMIN_PASSWORD", "admin123")

	if _, err := adminRepo.FindByUsername(ctx, username); err == nil {
		log.Printf("Admin %q already exists, skipping", username)
		return nil
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return err
	}

	admin := &model.Admin{
		Username:     username,
		PasswordHash: string(hash),
		Name:         "Administrator",
		Role:         "admin",
		IsActive:     true,
	}
	if err := adminRepo.Create(ctx, admin); err != nil {
		return err
	}
	log.Printf("Created admin %q (id %d)", username, admin.ID)
	return nil
}

func seedCatalog(ctx context.Context, gormDB *gorm.DB) error {
	categoryRepo := repository.NewCategoryRepository(gormDB)
	productRepo := repository.NewProductRepository(gormDB)

	count, err := categoryRepo.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		log.Println("Catalog already seeded, skipping")
		return nil
	}

	category := &model.Category{Name: "General", DisplayOrder: 1, IsActive: true}
	if err := categoryRepo.Create(ctx, category); err != nil {
		return err
	}

	products := []model.Product{
		{CategoryID: category.ID, Name: "Sample Product", Price: decimal.NewFromInt(100), Stock: 10, DisplayOrder: 1, IsActive: true},
		{CategoryID: category.ID, Name: "Another Product", Price: decimal.NewFromInt(250), Stock: 5, DisplayOrder: 2, IsActive: true},
	}
	for i := range products {
		if err := productRepo.Create(ctx, &products[i]); err != nil {
			return err
		}
	}
	log.Printf("Seeded %d products in category %q", len(products), category.Name)
	return nil
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
