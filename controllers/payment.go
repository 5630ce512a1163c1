package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"powergym-backend/models"
	"powergym-backend/utils"
)

type CreatePaymentInput struct {
	SubscriptionID uuid.UUID            `json:"subscription_id" binding:"required"`
	CustomerID     uuid.UUID            `json:"customer_id" binding:"required"`
	Amount         *decimal.Decimal     `json:"amount" binding:"required"`
	PaymentMethod  models.PaymentMethod `json:"payment_method" binding:"required,oneof=cash credit_card debit_card transfer"`
	Status         models.PaymentStatus `json:"status" binding:"omitempty,oneof=completed pending cancelled"`
	Notes          string               `json:"notes"`
}

// UpdatePaymentInput is deliberately narrow: once recorded, only status
// and notes can change.
type UpdatePaymentInput struct {
	Status *models.PaymentStatus `json:"status" binding:"omitempty,oneof=completed pending cancelled"`
	Notes  *string               `json:"notes"`
}

type PaymentController struct {
	db *gorm.DB
}

func NewPaymentController(db *gorm.DB) *PaymentController {
	return &PaymentController{db: db}
}

func (pc *PaymentController) Create(c *gin.Context) {
	var input CreatePaymentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}
	if input.Amount.IsNegative() {
		utils.RespondWithError(c, http.StatusBadRequest, "Amount must be non-negative")
		return
	}

	payment := models.Payment{
		SubscriptionID: input.SubscriptionID,
		CustomerID:     input.CustomerID,
		Amount:         input.Amount.Round(2),
		PaymentMethod:  input.PaymentMethod,
		Status:         models.PaymentCompleted,
		Notes:          input.Notes,
	}
	if input.Status != "" {
		payment.Status = input.Status
	}

	if err := pc.db.Create(&payment).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create payment")
		return
	}

	c.JSON(http.StatusCreated, payment)
}

func (pc *PaymentController) List(c *gin.Context) {
	customerID, ok := parseUUIDQuery(c, "customer_id")
	if !ok {
		return
	}
	subscriptionID, ok := parseUUIDQuery(c, "subscription_id")
	if !ok {
		return
	}

	query := pc.db.Model(&models.Payment{})
	if customerID != nil {
		query = query.Where("customer_id = ?", *customerID)
	}
	if subscriptionID != nil {
		query = query.Where("subscription_id = ?", *subscriptionID)
	}

	var payments []models.Payment
	if err := query.Order("payment_date DESC").Find(&payments).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve payments")
		return
	}

	c.JSON(http.StatusOK, payments)
}

func (pc *PaymentController) Get(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var payment models.Payment
	if err := pc.db.First(&payment, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Payment not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, payment)
}

func (pc *PaymentController) Update(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var input UpdatePaymentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}
	if input.Status == nil && input.Notes == nil {
		utils.RespondWithError(c, http.StatusBadRequest, "No fields to update")
		return
	}

	var payment models.Payment
	if err := pc.db.First(&payment, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Payment not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if input.Status != nil {
		payment.Status = *input.Status
	}
	if input.Notes != nil {
		payment.Notes = *input.Notes
	}

	if err := pc.db.Save(&payment).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update payment")
		return
	}

	c.JSON(http.StatusOK, payment)
}

func (pc *PaymentController) Delete(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	result := pc.db.Delete(&models.Payment{}, "id = ?", id)
	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete payment")
		return
	}
	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Payment not found")
		return
	}

	c.Status(http.StatusNoContent)
}
