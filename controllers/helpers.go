package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"powergym-backend/services"
	"powergym-backend/utils"
)

// respondServiceError translates the domain error taxonomy into status
// codes. Anything outside the taxonomy is a store or signing failure and
// surfaces as a generic 500; the underlying message is never echoed.
func respondServiceError(c *gin.Context, err error) {
	var notFound *services.NotFoundError
	var validation *services.ValidationError
	var conflict *services.ConflictError
	var policy *services.PolicyViolationError
	var tooLarge *services.PayloadTooLargeError

	switch {
	case errors.As(err, &notFound):
		utils.RespondWithError(c, http.StatusNotFound, err.Error())
	case errors.As(err, &validation):
		utils.RespondWithError(c, http.StatusBadRequest, err.Error())
	case errors.As(err, &conflict):
		utils.RespondWithError(c, http.StatusConflict, err.Error())
	case errors.As(err, &policy):
		utils.RespondWithError(c, http.StatusBadRequest, err.Error())
	case errors.As(err, &tooLarge):
		utils.RespondWithError(c, http.StatusRequestEntityTooLarge, "File size must be less than 10MB")
	default:
		utils.RespondWithError(c, http.StatusInternalServerError, "Internal server error")
	}
}

// parseUUIDParam reads a path parameter as a UUID, responding 400 itself
// when the value is malformed.
func parseUUIDParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid "+name+" format")
		return uuid.Nil, false
	}
	return id, true
}

// parseUUIDQuery reads an optional UUID query filter. The second return
// is false when the parameter is present but malformed.
func parseUUIDQuery(c *gin.Context, name string) (*uuid.UUID, bool) {
	raw := c.Query(name)
	if raw == "" {
		return nil, true
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid "+name+" format")
		return nil, false
	}
	return &id, true
}
