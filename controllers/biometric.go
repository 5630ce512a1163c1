package controllers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"powergym-backend/models"
	"powergym-backend/services"
	"powergym-backend/utils"
)

type BiometricController struct {
	biometrics *services.BiometricService
}

func NewBiometricController(db *gorm.DB) *BiometricController {
	return &BiometricController{biometrics: services.NewBiometricService(db)}
}

// readUpload pulls the multipart file out of the request. Reads are
// capped one byte past the limit so the size check can distinguish
// at-limit from over-limit without buffering an unbounded body.
func readUpload(c *gin.Context) ([]byte, bool) {
	header, err := c.FormFile("file")
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "file is required")
		return nil, false
	}

	file, err := header.Open()
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to read upload")
		return nil, false
	}
	defer file.Close()

	payload, err := io.ReadAll(io.LimitReader(file, services.MaxBiometricSize+1))
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to read upload")
		return nil, false
	}
	return payload, true
}

// Create handles the multipart upload of a new biometric sample.
func (bc *BiometricController) Create(c *gin.Context) {
	clientID, err := uuid.Parse(c.PostForm("client_id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid client_id format")
		return
	}
	bioType := models.BiometricType(c.PostForm("biometric_type"))

	payload, ok := readUpload(c)
	if !ok {
		return
	}

	record, err := bc.biometrics.Create(clientID, bioType, payload)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, record)
}

// Update replaces the stored payload; type and client are immutable.
func (bc *BiometricController) Update(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	payload, ok := readUpload(c)
	if !ok {
		return
	}

	record, err := bc.biometrics.Replace(id, payload)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, record)
}

func (bc *BiometricController) List(c *gin.Context) {
	clientID, ok := parseUUIDQuery(c, "client_id")
	if !ok {
		return
	}

	var bioType *models.BiometricType
	if raw := c.Query("biometric_type"); raw != "" {
		t := models.BiometricType(raw)
		bioType = &t
	}

	records, err := bc.biometrics.List(clientID, bioType)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, records)
}

func (bc *BiometricController) Get(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	record, err := bc.biometrics.Get(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, record)
}

// Data is the only endpoint that returns the raw payload (base64 in the
// JSON body).
func (bc *BiometricController) Data(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	record, err := bc.biometrics.GetActive(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":            record.ID,
		"client_id":     record.ClientID,
		"type":          record.Type,
		"data":          record.Data,
		"hash_checksum": record.HashChecksum,
	})
}

func (bc *BiometricController) Delete(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	if err := bc.biometrics.SoftDelete(id); err != nil {
		respondServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
