package config

import (
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"powergym-backend/models"
)

// ConnectDB opens the single process-wide database handle. Callers pass
// it explicitly into controllers and services; there is no package-level
// connection state.
func ConnectDB(dsn string) (*gorm.DB, error) {
	return gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
}

// Migrate creates all tables plus the partial unique index that rejects a
// second active subscription for the same customer at the store level.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.User{},
		&models.Customer{},
		&models.Plan{},
		&models.Subscription{},
		&models.Payment{},
		&models.Attendance{},
		&models.BiometricRecord{},
		&models.NotificationLog{},
	); err != nil {
		return err
	}

	return db.Exec(
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_subscriptions_one_active
		 ON subscriptions (customer_id) WHERE status = 'active'`,
	).Error
}
