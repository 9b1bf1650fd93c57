package admin

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"commission-app/database"
	"commission-app/internal/api/pagination"
	"commission-app/internal/domain/artists"
	"commission-app/internal/domain/billing"
	"commission-app/internal/domain/commissions"
	"commission-app/internal/domain/users"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type AdminUser struct {
	ID           uint      `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	Phone        *string   `json:"phone"`
	Role         string    `json:"role"`
	IsVerified   bool      `json:"is_verified"`
	AuthProvider string    `json:"auth_provider"`
	CreatedAt    time.Time `json:"created_at"`
}

type DashboardStats struct {
	TotalUsers          int64            `json:"total_users"`
	UsersByRole         map[string]int64 `json:"users_by_role"`
	NewUsersLast30Days  int64            `json:"new_users_last_30_days"`
	TotalArtists        int64            `json:"total_artists"`
	ArtistsByStatus     map[string]int64 `json:"artists_by_status"`
	TotalCommissions    int64            `json:"total_commissions"`
	CommissionsByStatus map[string]int64 `json:"commissions_by_status"`
	TotalRevenue        decimal.Decimal  `json:"total_revenue"`
	PlatformFees        decimal.Decimal  `json:"platform_fees"`
	RevenueLast30Days   decimal.Decimal  `json:"revenue_last_30_days"`
	PendingPayments     int64            `json:"pending_payments"`
}

func toAdminUser(u users.User) AdminUser {
	return AdminUser{
		ID:           u.ID,
		Username:     u.Username,
		Email:        u.Email,
		FirstName:    u.FirstName,
		LastName:     u.LastName,
		Phone:        u.Phone,
		Role:         u.Role,
		IsVerified:   u.IsVerified,
		AuthProvider: u.AuthProvider,
		CreatedAt:    u.CreatedAt,
	}
}

type groupCount struct {
	Name  string
	Count int64
}

func countBy(db *gorm.DB, model interface{}, column string) (map[string]int64, int64, error) {
	var rows []groupCount
	if err := db.Model(model).
		Select(column + " AS name, COUNT(*) AS count").
		Group(column).
		Scan(&rows).Error; err != nil {
		return nil, 0, err
	}

	out := map[string]int64{}
	var total int64
	for _, r := range rows {
		out[r.Name] = r.Count
		total += r.Count
	}
	return out, total, nil
}

func sumPayments(db *gorm.DB, column string, since *time.Time) (decimal.Decimal, error) {
	q := db.Model(&billing.Payment{}).Where("status = ?", billing.PaymentCompleted)
	if since != nil {
		q = q.Where("paid_at >= ?", *since)
	}
	var total decimal.NullDecimal
	if err := q.Select("SUM(" + column + ")").Scan(&total).Error; err != nil {
		return decimal.Zero, err
	}
	if !total.Valid {
		return decimal.Zero, nil
	}
	return total.Decimal, nil
}

func buildDashboard(db *gorm.DB, now time.Time) (*DashboardStats, error) {
	var (
		stats DashboardStats
		err   error
	)
	monthAgo := now.AddDate(0, 0, -30)

	if stats.UsersByRole, stats.TotalUsers, err = countBy(db, &users.User{}, "role"); err != nil {
		return nil, err
	}
	if err = db.Model(&users.User{}).Where("created_at >= ?", monthAgo).Count(&stats.NewUsersLast30Days).Error; err != nil {
		return nil, err
	}
	if stats.ArtistsByStatus, stats.TotalArtists, err = countBy(db, &artists.Artist{}, "status"); err != nil {
		return nil, err
	}
	if stats.CommissionsByStatus, stats.TotalCommissions, err = countBy(db, &commissions.Commission{}, "status"); err != nil {
		return nil, err
	}
	if stats.TotalRevenue, err = sumPayments(db, "amount", nil); err != nil {
		return nil, err
	}
	if stats.PlatformFees, err = sumPayments(db, "platform_fee", nil); err != nil {
		return nil, err
	}
	if stats.RevenueLast30Days, err = sumPayments(db, "amount", &monthAgo); err != nil {
		return nil, err
	}
	if err = db.Model(&billing.Payment{}).Where("status = ?", billing.PaymentPending).Count(&stats.PendingPayments).Error; err != nil {
		return nil, err
	}
	return &stats, nil
}

func AdminDashboard(c *gin.Context) {
	stats, err := buildDashboard(database.DB, time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute dashboard", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, stats)
}

func ListAllUsers(c *gin.Context) {
	q := database.DB.Model(&users.User{})
	if role := c.Query("role"); role != "" {
		if !users.ValidRole(role) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid role filter"})
			return
		}
		q = q.Where("role = ?", role)
	}
	if s := strings.TrimSpace(c.Query("search")); s != "" {
		like := "%" + strings.ToLower(s) + "%"
		q = q.Where("(LOWER(username) LIKE ? OR LOWER(email) LIKE ? OR LOWER(first_name) LIKE ? OR LOWER(last_name) LIKE ?)", like, like, like, like)
	}

	var list []users.User
	page, err := pagination.Paginate(c, q, &list, func(db *gorm.DB) *gorm.DB {
		return db.Order("created_at DESC")
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load users", "details": err.Error()})
		return
	}

	out := make([]AdminUser, 0, len(list))
	for _, u := range list {
		out = append(out, toAdminUser(u))
	}
	page.Items = out

	c.JSON(http.StatusOK, page)
}

func GetUserDetails(c *gin.Context) {
	userID := c.Param("id")
	if _, err := strconv.ParseUint(userID, 10, 64); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	var user users.User
	if err := database.DB.First(&user, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load user", "details": err.Error()})
		return
	}

	var payments []billing.Payment
	if err := database.DB.
		Where("payer_id = ? OR payee_id = ?", user.ID, user.ID).
		Order("created_at DESC").
		Find(&payments).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch payments"})
		return
	}

	var commissionCount int64
	if err := database.DB.Model(&commissions.Commission{}).
		Where("client_id = ?", user.ID).
		Count(&commissionCount).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to count commissions"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user":              toAdminUser(user),
		"payments":          payments,
		"commissions_count": commissionCount,
	})
}
