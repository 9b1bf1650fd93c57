package billing

import (
	"errors"
	"net/http"

	"commission-app/internal/domain/access"
	"commission-app/internal/domain/billing"
	"commission-app/internal/domain/commissions"

	"github.com/gin-gonic/gin"
)

var (
	errMethodNotFound  = errors.New("Payment method not found")
	errBadMethod       = errors.New("Invalid payment method")
	errBadCurrency     = errors.New("Unsupported currency")
	errBadPaymentType  = errors.New("Invalid payment type")
	errNoPaymentTarget = errors.New("Commission not found")
)

func mustPrincipal(c *gin.Context) (access.Principal, bool) {
	v, ok := c.Get(access.ContextKey)
	if ok {
		if p, ok := v.(access.Principal); ok {
			return p, true
		}
	}
	c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
	return nil, false
}

func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, billing.ErrNotFound),
		errors.Is(err, errMethodNotFound),
		errors.Is(err, errNoPaymentTarget),
		errors.Is(err, commissions.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, billing.ErrPaymentNotPending),
		errors.Is(err, billing.ErrInvalidAmount),
		errors.Is(err, commissions.ErrInvalidTransition),
		errors.Is(err, errBadMethod),
		errors.Is(err, errBadCurrency),
		errors.Is(err, errBadPaymentType):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error", "details": err.Error()})
	}
}
