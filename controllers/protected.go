package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"powergym-backend/utils"
)

// Diagnostic identity-echo endpoints, one per capability level.

func identityResponse(c *gin.Context, message string) {
	id, email, role := utils.CurrentIdentity(c)
	c.JSON(http.StatusOK, gin.H{
		"message": message,
		"user": gin.H{
			"id":    id,
			"email": email,
			"role":  role,
		},
	})
}

func AdminOnly(c *gin.Context) {
	identityResponse(c, "Admin access granted")
}

func EmployeeOnly(c *gin.Context) {
	identityResponse(c, "Employee access granted")
}

func Me(c *gin.Context) {
	identityResponse(c, "Authenticated")
}
