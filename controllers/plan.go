package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"powergym-backend/models"
	"powergym-backend/utils"
)

type CreatePlanInput struct {
	Name         string           `json:"name" binding:"required,max=100"`
	Description  string           `json:"description"`
	DurationDays int              `json:"duration_days" binding:"required,gt=0"`
	Price        *decimal.Decimal `json:"price" binding:"required"`
	IsActive     *bool            `json:"is_active"`
}

type UpdatePlanInput struct {
	Name         *string          `json:"name" binding:"omitempty,max=100"`
	Description  *string          `json:"description"`
	DurationDays *int             `json:"duration_days" binding:"omitempty,gt=0"`
	Price        *decimal.Decimal `json:"price"`
	IsActive     *bool            `json:"is_active"`
}

type PlanController struct {
	db *gorm.DB
}

func NewPlanController(db *gorm.DB) *PlanController {
	return &PlanController{db: db}
}

func (pc *PlanController) Create(c *gin.Context) {
	var input CreatePlanInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}
	if input.Price.IsNegative() {
		utils.RespondWithError(c, http.StatusBadRequest, "Price must be non-negative")
		return
	}

	plan := models.Plan{
		Name:         input.Name,
		Description:  input.Description,
		DurationDays: input.DurationDays,
		Price:        *input.Price,
		IsActive:     true,
	}
	if input.IsActive != nil {
		plan.IsActive = *input.IsActive
	}

	if err := pc.db.Create(&plan).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create plan")
		return
	}

	c.JSON(http.StatusCreated, plan)
}

func (pc *PlanController) List(c *gin.Context) {
	query := pc.db.Model(&models.Plan{})
	if c.Query("active_only") == "true" {
		query = query.Where("is_active = ?", true)
	}

	var plans []models.Plan
	if err := query.Order("created_at DESC").Find(&plans).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve plans")
		return
	}

	c.JSON(http.StatusOK, plans)
}

func (pc *PlanController) Get(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var plan models.Plan
	if err := pc.db.First(&plan, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Plan not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, plan)
}

func (pc *PlanController) Update(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var input UpdatePlanInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}
	if input.Price != nil && input.Price.IsNegative() {
		utils.RespondWithError(c, http.StatusBadRequest, "Price must be non-negative")
		return
	}

	var plan models.Plan
	if err := pc.db.First(&plan, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Plan not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if input.Name != nil {
		plan.Name = *input.Name
	}
	if input.Description != nil {
		plan.Description = *input.Description
	}
	if input.DurationDays != nil {
		plan.DurationDays = *input.DurationDays
	}
	if input.Price != nil {
		plan.Price = *input.Price
	}
	if input.IsActive != nil {
		plan.IsActive = *input.IsActive
	}

	if err := pc.db.Save(&plan).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update plan")
		return
	}

	c.JSON(http.StatusOK, plan)
}

// Delete deactivates the plan; it is never removed.
func (pc *PlanController) Delete(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	result := pc.db.Model(&models.Plan{}).
		Where("id = ?", id).
		Update("is_active", false)
	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete plan")
		return
	}
	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Plan not found")
		return
	}

	c.Status(http.StatusNoContent)
}
