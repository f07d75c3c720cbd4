package httpapi

import (
	"errors"
	"net/http"

	"capstack-api/internal/finance"
	"capstack-api/internal/savings"
	"capstack-api/internal/users"
	"capstack-api/pkg/logger"

	"github.com/gin-gonic/gin"
)

// writeServiceError maps sentinel errors to status codes. Anything
// unrecognized becomes a generic 500 with the cause logged server-side only.
func writeServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, users.ErrInvalidPIN):
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "PIN must be exactly 4 digits"})
	case errors.Is(err, users.ErrEmailTaken):
		c.AbortWithStatusJSON(http.StatusConflict, gin.H{"error": "user already exists"})
	case errors.Is(err, users.ErrInvalidCredentials):
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or PIN"})
	case errors.Is(err, savings.ErrPlanLocked):
		c.AbortWithStatusJSON(http.StatusConflict, gin.H{"error": "plan is locked"})
	case errors.Is(err, savings.ErrInsufficientFunds):
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "insufficient funds"})
	case errors.Is(err, users.ErrInvalidArgument),
		errors.Is(err, savings.ErrInvalidArgument),
		errors.Is(err, finance.ErrInvalidArgument):
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, users.ErrNotFound),
		errors.Is(err, savings.ErrNotFound),
		errors.Is(err, finance.ErrNotFound):
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "not found"})
	default:
		writeInternal(c, "handling request", err)
	}
}

func writeInternal(c *gin.Context, op string, err error) {
	logger.From(c.Request.Context()).Error(op, "err", err)
	c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
}
