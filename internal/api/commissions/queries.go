package commissions

import (
	"strings"

	"commission-app/internal/domain/access"
	"commission-app/internal/domain/commissions"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func withParties(db *gorm.DB) *gorm.DB {
	return db.Preload("Client").Preload("Artist").Preload("Category")
}

// reload fetches the commission with its parties for a response.
func reload(db *gorm.DB, id string) (*commissions.Commission, error) {
	var c commissions.Commission
	if err := withParties(db).First(&c, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func listQuery(db *gorm.DB, p access.Principal, aud commissions.Audience) *gorm.DB {
	return commissions.ScopeFor(db.Model(&commissions.Commission{}), p, aud)
}

// applyListFilters handles ?status= ?priority= ?category= ?search=.
func applyListFilters(c *gin.Context, q *gorm.DB) *gorm.DB {
	if s := c.Query("status"); s != "" {
		q = q.Where("commissions.status = ?", s)
	}
	if p := c.Query("priority"); p != "" {
		q = q.Where("commissions.priority = ?", p)
	}
	if cat := c.Query("category"); cat != "" {
		q = q.Where("commissions.category_id = ?", cat)
	}
	if s := strings.TrimSpace(c.Query("search")); s != "" {
		like := "%" + strings.ToLower(s) + "%"
		q = q.Where("(LOWER(commissions.title) LIKE ? OR LOWER(commissions.description) LIKE ?)", like, like)
	}
	return q
}

var orderings = map[string]string{
	"created_at":  "commissions.created_at ASC",
	"-created_at": "commissions.created_at DESC",
	"deadline":    "commissions.deadline ASC NULLS LAST",
	"-deadline":   "commissions.deadline DESC NULLS LAST",
	"priority":    "commissions.priority ASC",
}

func orderFor(c *gin.Context) string {
	if o, ok := orderings[c.Query("ordering")]; ok {
		return o
	}
	return "commissions.created_at DESC"
}
