package services

import (
	"fmt"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"powergym-backend/config"
	"powergym-backend/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := config.Migrate(db); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return db
}

func seedCustomer(t *testing.T, db *gorm.DB) *models.Customer {
	t.Helper()

	customer := &models.Customer{
		DNIType:   models.DocumentCC,
		DNINumber: fmt.Sprintf("10203040-%s", strings.ReplaceAll(t.Name(), "/", "_")),
		FirstName: "Laura",
		LastName:  "Gomez",
		Phone:     "+573001234567",
		BirthDate: models.NewDate(1995, 6, 15),
		Gender:    "F",
	}
	if err := db.Create(customer).Error; err != nil {
		t.Fatalf("failed to seed customer: %v", err)
	}
	return customer
}

func seedPlan(t *testing.T, db *gorm.DB, durationDays int) *models.Plan {
	t.Helper()

	plan := &models.Plan{
		Name:         fmt.Sprintf("Plan %d days", durationDays),
		DurationDays: durationDays,
		Price:        decimal.NewFromInt(50),
		IsActive:     true,
	}
	if err := db.Create(plan).Error; err != nil {
		t.Fatalf("failed to seed plan: %v", err)
	}
	return plan
}
