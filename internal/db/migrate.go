package db

import (
	"fmt"
	"log"
	"strings"
	"time"

	"gorm.io/gorm"

	"backoffice/internal/model"
)

// SchemaMigration records an applied migration version.
type SchemaMigration struct {
	Version   int       `gorm:"primaryKey;autoIncrement:false"`
	Name      string    `gorm:"size:255;not null"`
	AppliedAt time.Time `gorm:"not null"`
}

// Migration is one ordered schema change. Run must be idempotent enough
// that "already exists" from a concurrent applier is not an error.
type Migration struct {
	Version int
	Name    string
	Run     func(db *gorm.DB) error
}

// Migrations is the ordered schema history. Append only; never renumber.
// Versions 2-5 exist because those columns were added after the first
// deployment and older databases may still lack them.
var Migrations = []Migration{
	{
		Version: 1,
		Name:    "base tables",
		Run: func(db *gorm.DB) error {
			return db.AutoMigrate(
				&model.Admin{},
				&model.AdminSession{},
				&model.Category{},
				&model.Product{},
				&model.Banner{},
				&model.Popup{},
				&model.MenuCategory{},
				&model.MenuItem{},
				&model.User{},
				&model.Address{},
				&model.Order{},
				&model.OrderItem{},
				&model.Review{},
			)
		},
	},
	{
		Version: 2,
		Name:    "product discount_price",
		Run:     addColumn(&model.Product{}, "discount_price"),
	},
	{
		Version: 3,
		Name:    "review helpful_count",
		Run:     addColumn(&model.Review{}, "helpful_count"),
	},
	{
		Version: 4,
		Name:    "popup scheduling window",
		Run: func(db *gorm.DB) error {
			if err := addColumn(&model.Popup{}, "starts_at")(db); err != nil {
				return err
			}
			return addColumn(&model.Popup{}, "ends_at")(db)
		},
	},
	{
		Version: 5,
		Name:    "order customer snapshot",
		Run: func(db *gorm.DB) error {
			for _, col := range []string{"customer_name", "customer_mobile", "customer_address"} {
				if err := addColumn(&model.Order{}, col)(db); err != nil {
					return err
				}
			}
			return nil
		},
	},
}

// Migrate applies all pending migrations in order, recording each in
// schema_migrations. Safe to run on every startup and tolerant of a
// concurrent instance applying the same version first.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&SchemaMigration{}); err != nil {
		return fmt.Errorf("create schema_migrations: %w", err)
	}

	for _, m := range Migrations {
		var applied int64
		if err := db.Model(&SchemaMigration{}).Where("version = ?", m.Version).Count(&applied).Error; err != nil {
			return fmt.Errorf("check migration %d: %w", m.Version, err)
		}
		if applied > 0 {
			continue
		}

		if err := m.Run(db); err != nil && !alreadyApplied(err) {
			return fmt.Errorf("migration %d (%s): %w", m.Version, m.Name, err)
		}

		record := SchemaMigration{Version: m.Version, Name: m.Name, AppliedAt: time.Now()}
		if err := db.Create(&record).Error; err != nil {
			if alreadyApplied(err) {
				// another instance won the race
				continue
			}
			return fmt.Errorf("record migration %d: %w", m.Version, err)
		}
		log.Printf("applied migration %d: %s", m.Version, m.Name)
	}
	return nil
}

func addColumn(entity interface{}, column string) func(db *gorm.DB) error {
	return func(db *gorm.DB) error {
		if db.Migrator().HasColumn(entity, column) {
			return nil
		}
		return db.Migrator().AddColumn(entity, column)
	}
}

// alreadyApplied treats duplicate column/table/key errors from a
// concurrent applier as success.
func alreadyApplied(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate column") ||
		strings.Contains(msg, "already exists") ||
		strings.Contains(msg, "duplicate entry") ||
		strings.Contains(msg, "duplicate key")
}
