package routes

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"powergym-backend/config"
	"powergym-backend/controllers"
	"powergym-backend/models"
	"powergym-backend/utils"
)

func SetupRouter(db *gorm.DB, cfg *config.Settings) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:5173", "http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r.Use(config.PerformanceLogger())

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "PowerGym Management System API",
			"version": "1.0.0",
		})
	})
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	authController := controllers.NewAuthController(db, cfg)
	customerController := controllers.NewCustomerController(db)
	planController := controllers.NewPlanController(db)
	subscriptionController := controllers.NewSubscriptionController(db)
	paymentController := controllers.NewPaymentController(db)
	attendanceController := controllers.NewAttendanceController(db)
	biometricController := controllers.NewBiometricController(db)

	api := r.Group("/api")

	api.POST("/auth/login", authController.Login)

	authed := api.Group("")
	authed.Use(utils.AuthMiddleware(cfg))

	employee := utils.RequireRole(models.RoleEmployee)
	admin := utils.RequireRole(models.RoleAdmin)

	protected := authed.Group("/protected")
	{
		protected.GET("/admin", admin, controllers.AdminOnly)
		protected.GET("/employee", employee, controllers.EmployeeOnly)
		protected.GET("/me", employee, controllers.Me)
	}

	customers := authed.Group("/customers")
	{
		customers.GET("", employee, customerController.List)
		customers.GET("/search", employee, customerController.Search)
		customers.GET("/:id", employee, customerController.Get)
		customers.GET("/:id/biometrics", employee, customerController.Biometrics)
		customers.POST("", admin, customerController.Create)
		customers.PUT("/:id", admin, customerController.Update)
		customers.DELETE("/:id", admin, customerController.Delete)
	}

	plans := authed.Group("/plans")
	{
		plans.GET("", employee, planController.List)
		plans.GET("/:id", employee, planController.Get)
		plans.POST("", admin, planController.Create)
		plans.PUT("/:id", admin, planController.Update)
		plans.DELETE("/:id", admin, planController.Delete)
	}

	subscriptions := authed.Group("/subscriptions")
	{
		subscriptions.GET("", employee, subscriptionController.List)
		subscriptions.GET("/:id", employee, subscriptionController.Get)
		subscriptions.POST("", admin, subscriptionController.Create)
		subscriptions.PUT("/:id", admin, subscriptionController.Update)
		subscriptions.DELETE("/:id", admin, subscriptionController.Delete)
	}

	payments := authed.Group("/payments")
	{
		payments.GET("", employee, paymentController.List)
		payments.GET("/:id", employee, paymentController.Get)
		payments.POST("", employee, paymentController.Create)
		payments.PUT("/:id", admin, paymentController.Update)
		payments.DELETE("/:id", admin, paymentController.Delete)
	}

	attendances := authed.Group("/attendances")
	{
		attendances.GET("", employee, attendanceController.List)
		attendances.GET("/today", employee, attendanceController.Today)
		attendances.GET("/:id", employee, attendanceController.Get)
		attendances.POST("", employee, attendanceController.Create)
		attendances.DELETE("/:id", admin, attendanceController.Delete)
	}

	biometrics := authed.Group("/biometrics")
	{
		biometrics.GET("", employee, biometricController.List)
		biometrics.GET("/:id", employee, biometricController.Get)
		biometrics.GET("/:id/data", employee, biometricController.Data)
		biometrics.POST("", employee, biometricController.Create)
		biometrics.PUT("/:id", employee, biometricController.Update)
		biometrics.DELETE("/:id", admin, biometricController.Delete)
	}

	return r
}
