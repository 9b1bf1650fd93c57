package commissions

import (
	"errors"
	"net/http"

	"commission-app/internal/domain/access"
	"commission-app/internal/domain/commissions"

	"github.com/gin-gonic/gin"
)

var (
	errArtistUnavailable = errors.New("Artist not found")
	errNotAccepting      = errors.New("Artist is not accepting commissions")
	errSelfCommission    = errors.New("You cannot commission yourself")
	errBadCategory       = errors.New("Category not found")
	errImageNotFound     = errors.New("Image not found")
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
	case errors.Is(err, commissions.ErrNotFound),
		errors.Is(err, errArtistUnavailable),
		errors.Is(err, errImageNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, commissions.ErrInvalidTransition),
		errors.Is(err, commissions.ErrUnknownStatus),
		errors.Is(err, commissions.ErrNotCompleted),
		errors.Is(err, commissions.ErrInvalidRating),
		errors.Is(err, errNotAccepting),
		errors.Is(err, errSelfCommission),
		errors.Is(err, errBadCategory),
		errors.Is(err, errBadDeadline):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error", "details": err.Error()})
	}
}
