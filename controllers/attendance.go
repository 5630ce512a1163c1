package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"powergym-backend/services"
	"powergym-backend/utils"
)

type CreateAttendanceInput struct {
	CustomerID uuid.UUID `json:"customer_id" binding:"required"`
}

type AttendanceController struct {
	attendances *services.AttendanceService
}

func NewAttendanceController(db *gorm.DB) *AttendanceController {
	return &AttendanceController{attendances: services.NewAttendanceService(db)}
}

// Create records a check-in, gated on a qualifying active subscription.
func (ac *AttendanceController) Create(c *gin.Context) {
	var input CreateAttendanceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	attendance, err := ac.attendances.CheckIn(input.CustomerID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, attendance)
}

func (ac *AttendanceController) List(c *gin.Context) {
	customerID, ok := parseUUIDQuery(c, "customer_id")
	if !ok {
		return
	}

	var day *time.Time
	if raw := c.Query("date"); raw != "" {
		parsed, err := time.ParseInLocation("2006-01-02", raw, time.Local)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid date format, expected YYYY-MM-DD")
			return
		}
		day = &parsed
	}

	attendances, err := ac.attendances.List(customerID, day)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, attendances)
}

func (ac *AttendanceController) Today(c *gin.Context) {
	attendances, err := ac.attendances.ListToday()
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, attendances)
}

func (ac *AttendanceController) Get(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	attendance, err := ac.attendances.Get(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, attendance)
}

func (ac *AttendanceController) Delete(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	if err := ac.attendances.Delete(id); err != nil {
		respondServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
