package artists

import (
	"strings"

	"commission-app/internal/domain/artists"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

var orderings = map[string]string{
	"rating":         "rating ASC",
	"-rating":        "rating DESC",
	"minimum_price":  "minimum_price ASC",
	"-minimum_price": "minimum_price DESC",
	"created_at":     "created_at ASC",
	"-created_at":    "created_at DESC",
}

func approvedArtistsQuery(db *gorm.DB) *gorm.DB {
	return db.Model(&artists.Artist{}).Where("status = ?", artists.StatusApproved)
}

func ownArtistQuery(db *gorm.DB, userID uint) *gorm.DB {
	return db.Model(&artists.Artist{}).Where("user_id = ?", userID)
}

// applyListFilters handles ?specialty= ?accepting= ?tag= ?search=.
func applyListFilters(c *gin.Context, q *gorm.DB) *gorm.DB {
	if s := strings.TrimSpace(c.Query("specialty")); s != "" {
		q = q.Where("LOWER(specialty) LIKE ?", "%"+strings.ToLower(s)+"%")
	}
	switch c.Query("accepting") {
	case "true", "1":
		q = q.Where("is_accepting_commissions = ?", true)
	case "false", "0":
		q = q.Where("is_accepting_commissions = ?", false)
	}
	if tag := strings.TrimSpace(c.Query("tag")); tag != "" {
		q = q.Where("? = ANY(tags)", tag)
	}
	if s := strings.TrimSpace(c.Query("search")); s != "" {
		like := "%" + strings.ToLower(s) + "%"
		q = q.Where("(LOWER(display_name) LIKE ? OR LOWER(specialty) LIKE ? OR LOWER(COALESCE(description, '')) LIKE ?)", like, like, like)
	}
	return q
}

func orderFor(c *gin.Context) string {
	if o, ok := orderings[c.Query("ordering")]; ok {
		return o
	}
	return "rating DESC"
}
