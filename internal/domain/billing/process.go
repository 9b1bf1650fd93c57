package billing

import (
	"errors"
	"time"

	"commission-app/internal/domain/commissions"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Process settles a pending payment owned by payerID. When the paid
// commission is still accepted it moves into in_progress.
func Process(tx *gorm.DB, paymentID string, payerID uint, now time.Time) (*Payment, commissions.Effects, error) {
	var fx commissions.Effects

	if _, err := uuid.Parse(paymentID); err != nil {
		return nil, fx, ErrNotFound
	}

	var p Payment
	if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ? AND payer_id = ?", paymentID, payerID).
		First(&p).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fx, ErrNotFound
		}
		return nil, fx, err
	}

	if err := MarkCompleted(&p, now); err != nil {
		return nil, fx, err
	}
	if err := tx.Model(&Payment{}).
		Where("id = ?", p.ID).
		Updates(map[string]interface{}{
			"status":  p.Status,
			"paid_at": p.PaidAt,
		}).Error; err != nil {
		return nil, fx, err
	}

	var c commissions.Commission
	if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&c, "id = ?", p.CommissionID).Error; err != nil {
		return nil, fx, err
	}
	if c.Status == commissions.StatusAccepted {
		var err error
		fx, err = commissions.Transition(tx, &c, commissions.StatusInProgress, now, commissions.Validated)
		if err != nil {
			return nil, fx, err
		}
	}
	return &p, fx, nil
}
