package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"powergym-backend/models"
	"powergym-backend/services"
	"powergym-backend/utils"
)

type CreateSubscriptionInput struct {
	CustomerID uuid.UUID   `json:"customer_id" binding:"required"`
	PlanID     uuid.UUID   `json:"plan_id" binding:"required"`
	StartDate  models.Date `json:"start_date" binding:"required"`
}

type SubscriptionController struct {
	subscriptions *services.SubscriptionService
}

func NewSubscriptionController(db *gorm.DB) *SubscriptionController {
	return &SubscriptionController{subscriptions: services.NewSubscriptionService(db)}
}

func (sc *SubscriptionController) Create(c *gin.Context) {
	var input CreateSubscriptionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	sub, err := sc.subscriptions.Create(input.CustomerID, input.PlanID, input.StartDate)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, sub)
}

func (sc *SubscriptionController) List(c *gin.Context) {
	customerID, ok := parseUUIDQuery(c, "customer_id")
	if !ok {
		return
	}

	var status *models.SubscriptionStatus
	if raw := c.Query("status"); raw != "" {
		s := models.SubscriptionStatus(raw)
		status = &s
	}

	subs, err := sc.subscriptions.List(customerID, status)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, subs)
}

func (sc *SubscriptionController) Get(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	sub, err := sc.subscriptions.Get(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, sub)
}

func (sc *SubscriptionController) Update(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var input services.UpdateSubscriptionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	sub, err := sc.subscriptions.Update(id, input)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, sub)
}

// Delete cancels the subscription rather than removing it.
func (sc *SubscriptionController) Delete(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	if err := sc.subscriptions.Cancel(id); err != nil {
		respondServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
