package handlers

import (
	"errors"
	"net/http"

	"github.com/gabrielthomsen06/USINASOFT-Back/internal/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// respondError maps service-layer errors onto the wire contract:
// validation -> 400, missing record -> 404, referential block -> 409,
// anything else -> 500. Bodies are always {"error": "<message>"}.
func respondError(c *gin.Context, err error) {
	switch {
	case services.IsValidationError(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrCredenciaisInvalidas):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrClienteReferenciado),
		errors.Is(err, services.ErrPecaReferenciada):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, gorm.ErrRecordNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

func bindError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{"error": "corpo da requisição inválido: " + err.Error()})
}

// currentUserID reads the authenticated user id placed on the context by
// the JWT middleware. Nil when the route is unauthenticated.
func currentUserID(c *gin.Context) *string {
	if id := c.GetString("user_id"); id != "" {
		return &id
	}
	return nil
}
