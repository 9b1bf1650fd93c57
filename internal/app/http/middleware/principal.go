package middleware

import (
	"errors"
	"net/http"

	"commission-app/database"
	"commission-app/internal/domain/access"
	"commission-app/internal/domain/artists"
	"commission-app/internal/domain/users"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ResolvePrincipal loads the caller named by the token and stores an
// access.Principal on the context. It runs after AuthMiddleware. The role
// comes from the stored user, not from the token, so role changes apply to
// tokens already issued.
func ResolvePrincipal() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetUint("user_id")

		var u users.User
		if err := database.DB.Select("id", "role").First(&u, userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "User not found"})
				return
			}
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to load user", "details": err.Error()})
			return
		}

		var artistID *uint
		if u.Role == users.RoleArtist {
			var a artists.Artist
			err := database.DB.Select("id").Where("user_id = ?", u.ID).First(&a).Error
			switch {
			case err == nil:
				artistID = &a.ID
			case !errors.Is(err, gorm.ErrRecordNotFound):
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to load artist profile", "details": err.Error()})
				return
			}
		}

		p := access.Resolve(u, artistID)
		c.Set(access.ContextKey, p)
		c.Set("role", p.Role())
		c.Next()
	}
}

// RequireRole lets through principals of the given role.
func RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		v, exists := c.Get(access.ContextKey)
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
			c.Abort()
			return
		}

		p, ok := v.(access.Principal)
		if !ok || p.Role() != role {
			c.JSON(http.StatusForbidden, gin.H{"error": "Access denied"})
			c.Abort()
			return
		}

		c.Next()
	}
}
