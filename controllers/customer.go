package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"powergym-backend/models"
	"powergym-backend/services"
	"powergym-backend/utils"
)

type CreateCustomerInput struct {
	DNIType          models.DocumentType `json:"dni_type" binding:"required,oneof=CC TI CE PP"`
	DNINumber        string              `json:"dni_number" binding:"required,min=5,max=20"`
	FirstName        string              `json:"first_name" binding:"required,max=100"`
	MiddleName       string              `json:"middle_name" binding:"max=100"`
	LastName         string              `json:"last_name" binding:"required,max=100"`
	SecondLastName   string              `json:"second_last_name" binding:"max=100"`
	Phone            string              `json:"phone" binding:"required,min=7,max=20"`
	AlternativePhone string              `json:"alternative_phone" binding:"omitempty,min=7,max=20"`
	BirthDate        models.Date         `json:"birth_date" binding:"required"`
	Gender           string              `json:"gender" binding:"required,oneof=M F O"`
	Address          string              `json:"address"`
	MetaInfo         models.JSONB        `json:"meta_info"`
}

type UpdateCustomerInput struct {
	DNIType          *models.DocumentType `json:"dni_type" binding:"omitempty,oneof=CC TI CE PP"`
	DNINumber        *string              `json:"dni_number" binding:"omitempty,min=5,max=20"`
	FirstName        *string              `json:"first_name" binding:"omitempty,max=100"`
	MiddleName       *string              `json:"middle_name"`
	LastName         *string              `json:"last_name" binding:"omitempty,max=100"`
	SecondLastName   *string              `json:"second_last_name"`
	Phone            *string              `json:"phone" binding:"omitempty,min=7,max=20"`
	AlternativePhone *string              `json:"alternative_phone"`
	BirthDate        *models.Date         `json:"birth_date"`
	Gender           *string              `json:"gender" binding:"omitempty,oneof=M F O"`
	Address          *string              `json:"address"`
	Status           *models.RecordStatus `json:"status" binding:"omitempty,oneof=active inactive archived deleted"`
	MetaInfo         models.JSONB         `json:"meta_info"`
}

type CustomerController struct {
	db         *gorm.DB
	biometrics *services.BiometricService
}

func NewCustomerController(db *gorm.DB) *CustomerController {
	return &CustomerController{db: db, biometrics: services.NewBiometricService(db)}
}

func (cc *CustomerController) Create(c *gin.Context) {
	var input CreateCustomerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if !utils.ValidateDNI(input.DNINumber) {
		utils.RespondWithError(c, http.StatusBadRequest, "DNI number must contain only alphanumeric characters and hyphens")
		return
	}
	if !utils.ValidatePhone(input.Phone) || !utils.ValidatePhone(input.AlternativePhone) {
		utils.RespondWithError(c, http.StatusBadRequest, "Phone must contain only numbers, spaces, and phone symbols")
		return
	}

	customer := models.Customer{
		DNIType:          input.DNIType,
		DNINumber:        input.DNINumber,
		FirstName:        input.FirstName,
		MiddleName:       input.MiddleName,
		LastName:         input.LastName,
		SecondLastName:   input.SecondLastName,
		Phone:            input.Phone,
		AlternativePhone: input.AlternativePhone,
		BirthDate:        input.BirthDate,
		Gender:           input.Gender,
		Address:          input.Address,
		Status:           models.StatusActive,
		MetaInfo:         input.MetaInfo,
	}

	if err := cc.db.Create(&customer).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			utils.RespondWithError(c, http.StatusConflict, "Customer with this DNI already exists")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create customer")
		}
		return
	}

	c.JSON(http.StatusCreated, customer)
}

// List pages through customers, newest first.
func (cc *CustomerController) List(c *gin.Context) {
	skip, _ := strconv.Atoi(c.DefaultQuery("skip", "0"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))
	if skip < 0 {
		skip = 0
	}
	if limit < 1 || limit > 1000 {
		limit = 100
	}

	var customers []models.Customer
	if err := cc.db.Order("created_at DESC").Offset(skip).Limit(limit).Find(&customers).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve customers")
		return
	}

	c.JSON(http.StatusOK, customers)
}

// Search matches the query against document number and names.
func (cc *CustomerController) Search(c *gin.Context) {
	query := c.Query("query")
	if query == "" {
		utils.RespondWithError(c, http.StatusBadRequest, "query parameter is required")
		return
	}

	pattern := "%" + query + "%"
	var customers []models.Customer
	err := cc.db.Where(
		"dni_number LIKE ? OR LOWER(first_name) LIKE LOWER(?) OR LOWER(last_name) LIKE LOWER(?)",
		pattern, pattern, pattern,
	).Find(&customers).Error
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to search customers")
		return
	}

	c.JSON(http.StatusOK, customers)
}

func (cc *CustomerController) Get(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var customer models.Customer
	if err := cc.db.First(&customer, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Customer not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, customer)
}

func (cc *CustomerController) Update(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var input UpdateCustomerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var customer models.Customer
	if err := cc.db.First(&customer, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Customer not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if input.DNIType != nil {
		customer.DNIType = *input.DNIType
	}
	if input.DNINumber != nil {
		if !utils.ValidateDNI(*input.DNINumber) {
			utils.RespondWithError(c, http.StatusBadRequest, "DNI number must contain only alphanumeric characters and hyphens")
			return
		}
		customer.DNINumber = *input.DNINumber
	}
	if input.FirstName != nil {
		customer.FirstName = *input.FirstName
	}
	if input.MiddleName != nil {
		customer.MiddleName = *input.MiddleName
	}
	if input.LastName != nil {
		customer.LastName = *input.LastName
	}
	if input.SecondLastName != nil {
		customer.SecondLastName = *input.SecondLastName
	}
	if input.Phone != nil {
		if !utils.ValidatePhone(*input.Phone) {
			utils.RespondWithError(c, http.StatusBadRequest, "Phone must contain only numbers, spaces, and phone symbols")
			return
		}
		customer.Phone = *input.Phone
	}
	if input.AlternativePhone != nil {
		customer.AlternativePhone = *input.AlternativePhone
	}
	if input.BirthDate != nil {
		customer.BirthDate = *input.BirthDate
	}
	if input.Gender != nil {
		customer.Gender = *input.Gender
	}
	if input.Address != nil {
		customer.Address = *input.Address
	}
	if input.Status != nil {
		customer.Status = *input.Status
	}
	if input.MetaInfo != nil {
		customer.MetaInfo = input.MetaInfo
	}

	if err := cc.db.Save(&customer).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			utils.RespondWithError(c, http.StatusConflict, "Customer with this DNI already exists")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update customer")
		}
		return
	}

	c.JSON(http.StatusOK, customer)
}

// Delete flips the customer to inactive. The record stays in the store
// and remains fetchable by id.
func (cc *CustomerController) Delete(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	result := cc.db.Model(&models.Customer{}).
		Where("id = ?", id).
		Update("status", models.StatusInactive)
	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete customer")
		return
	}
	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Customer not found")
		return
	}

	c.Status(http.StatusNoContent)
}

// Biometrics lists the customer's active biometric records, payloads
// excluded.
func (cc *CustomerController) Biometrics(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var customer models.Customer
	if err := cc.db.Select("id").First(&customer, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Customer not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	records, err := cc.biometrics.List(&id, nil)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, records)
}
