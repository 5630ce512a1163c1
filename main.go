package main

import (
	"errors"
	"fmt"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"gorm.io/gorm"

	"powergym-backend/config"
	"powergym-backend/models"
	"powergym-backend/routes"
	"powergym-backend/services"
	"powergym-backend/utils"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load settings: %v", err)
	}

	db, err := config.ConnectDB(cfg.DBURL)
	if err != nil {
		log.Fatalf("Failed to connect database: %v", err)
	}
	if err := config.Migrate(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	if err := seedUsers(db, cfg); err != nil {
		log.Fatalf("Failed to seed users: %v", err)
	}

	notifier := services.NewExpiryNotifier(db, cfg)
	if notifier.Enabled() {
		notifier.Start()
	} else {
		log.Println("Twilio credentials not set, expiry notifier disabled")
	}

	r := routes.SetupRouter(db, cfg)
	printRoutes(r)
	r.Run(":" + cfg.Port)
}

// seedUsers creates the initial admin and employee accounts from the
// environment when they do not exist yet.
func seedUsers(db *gorm.DB, cfg *config.Settings) error {
	seeds := []struct {
		email    string
		password string
		role     models.Role
	}{
		{cfg.AdminEmail, cfg.AdminPassword, models.RoleAdmin},
		{cfg.EmployeeEmail, cfg.EmployeePassword, models.RoleEmployee},
	}

	for _, seed := range seeds {
		if seed.email == "" || seed.password == "" {
			continue
		}

		var existing models.User
		err := db.Where("email = ?", seed.email).First(&existing).Error
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		hashed, err := utils.HashPassword(seed.password)
		if err != nil {
			return err
		}
		user := models.User{
			Email:    seed.email,
			Password: hashed,
			Role:     seed.role,
			IsActive: true,
		}
		if err := db.Create(&user).Error; err != nil {
			return err
		}
		log.Printf("Seeded %s user %s", seed.role, seed.email)
	}
	return nil
}

func printRoutes(r *gin.Engine) {
	for _, route := range r.Routes() {
		fmt.Printf("%-6s %s\n", route.Method, route.Path)
	}
}
