package commissions

import (
	"net/http"

	"commission-app/database"
	"commission-app/internal/domain/commissions"

	"github.com/gin-gonic/gin"
)

type statusCount struct {
	Status commissions.Status
	Count  int64
}

// GET /commissions/stats counts the caller's commissions per status.
func CommissionStats(c *gin.Context) {
	p, ok := mustPrincipal(c)
	if !ok {
		return
	}

	var rows []statusCount
	if err := listQuery(database.DB, p, commissions.AudienceParty).
		Select("commissions.status AS status, COUNT(*) AS count").
		Group("commissions.status").
		Scan(&rows).Error; err != nil {
		respondError(c, err)
		return
	}

	byStatus := make(map[commissions.Status]int64, len(rows))
	var total, active int64
	for _, r := range rows {
		byStatus[r.Status] = r.Count
		total += r.Count
		switch r.Status {
		case commissions.StatusAccepted, commissions.StatusInProgress, commissions.StatusRevision:
			active += r.Count
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"total_commissions": total,
		"pending":           byStatus[commissions.StatusPending],
		"active":            active,
		"completed":         byStatus[commissions.StatusCompleted],
		"delivered":         byStatus[commissions.StatusDelivered],
		"cancelled":         byStatus[commissions.StatusCancelled],
		"rejected":          byStatus[commissions.StatusRejected],
		"by_status":         byStatus,
	})
}
