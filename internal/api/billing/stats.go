package billing

import (
	"net/http"
	"time"

	"commission-app/database"
	"commission-app/internal/domain/billing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// sumCompleted adds up column over completed payments matching q.
func sumCompleted(q *gorm.DB, column string) (decimal.Decimal, error) {
	var total decimal.NullDecimal
	if err := q.Model(&billing.Payment{}).
		Where("status = ?", billing.PaymentCompleted).
		Select("SUM(" + column + ")").
		Scan(&total).Error; err != nil {
		return decimal.Zero, err
	}
	if !total.Valid {
		return decimal.Zero, nil
	}
	return total.Decimal, nil
}

// GET /payments/stats
func MyPaymentStats(c *gin.Context) {
	p, ok := mustPrincipal(c)
	if !ok {
		return
	}
	uid := p.UserID()
	db := database.DB

	var (
		stats PaymentStats
		err   error
	)
	if stats.TotalPaid, err = sumCompleted(db.Where("payer_id = ?", uid), "amount"); err != nil {
		respondError(c, err)
		return
	}
	if stats.TotalReceived, err = sumCompleted(db.Where("payee_id = ?", uid), "net_amount"); err != nil {
		respondError(c, err)
		return
	}
	if err = db.Model(&billing.Payment{}).
		Where("payer_id = ? AND status = ?", uid, billing.PaymentPending).
		Count(&stats.PendingOutgoing).Error; err != nil {
		respondError(c, err)
		return
	}
	if err = db.Model(&billing.Payment{}).
		Where("payee_id = ? AND status = ?", uid, billing.PaymentPending).
		Count(&stats.PendingIncoming).Error; err != nil {
		respondError(c, err)
		return
	}
	if err = db.Model(&billing.Payment{}).
		Where("(payer_id = ? OR payee_id = ?) AND status = ?", uid, uid, billing.PaymentCompleted).
		Count(&stats.CompletedCount).Error; err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}

type statusCount struct {
	Status string
	Count  int64
}

// GET /admin/payments/stats
func AdminPaymentStatsHandler(c *gin.Context) {
	stats, err := buildAdminStats(database.DB, time.Now())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

func buildAdminStats(db *gorm.DB, now time.Time) (*AdminPaymentStats, error) {
	var rows []statusCount
	if err := db.Model(&billing.Payment{}).
		Select("status, COUNT(*) AS count").
		Group("status").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	stats := AdminPaymentStats{PaymentsByStatus: map[string]int64{}}
	for _, r := range rows {
		stats.PaymentsByStatus[r.Status] = r.Count
		stats.TotalPayments += r.Count
	}

	var err error
	monthAgo := now.AddDate(0, 0, -30)
	if stats.TotalVolume, err = sumCompleted(db, "amount"); err != nil {
		return nil, err
	}
	if stats.PlatformFees, err = sumCompleted(db, "platform_fee"); err != nil {
		return nil, err
	}
	if stats.VolumeLast30Days, err = sumCompleted(db.Where("paid_at >= ?", monthAgo), "amount"); err != nil {
		return nil, err
	}
	if stats.FeesLast30Days, err = sumCompleted(db.Where("paid_at >= ?", monthAgo), "platform_fee"); err != nil {
		return nil, err
	}
	return &stats, nil
}
