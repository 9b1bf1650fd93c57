package commissions

import (
	"errors"
	"time"

	"commission-app/internal/domain/access"
	"commission-app/internal/domain/artists"

	"gorm.io/gorm"
)

var (
	ErrNotCompleted  = errors.New("Can only review completed commissions")
	ErrInvalidRating = errors.New("Rating must be between 1 and 5")
)

// Transition applies target to a commission loaded (and locked) in tx and
// persists the result together with the artist's completed count.
func Transition(tx *gorm.DB, c *Commission, target Status, now time.Time, mode Mode) (Effects, error) {
	fx, err := Apply(c, target, now, mode)
	if err != nil || !fx.Changed() {
		return fx, err
	}

	if err := tx.Model(&Commission{}).
		Where("id = ?", c.ID).
		Updates(map[string]interface{}{
			"status":       c.Status,
			"started_at":   c.StartedAt,
			"completed_at": c.CompletedAt,
		}).Error; err != nil {
		return fx, err
	}

	if fx.Completed {
		if err := artists.IncrementCompleted(tx, c.ArtistID); err != nil {
			return fx, err
		}
	}
	return fx, nil
}

// NextRevisionNumber is one past the number of revisions stored so far.
// Callers hold the commission row lock.
func NextRevisionNumber(tx *gorm.DB, commissionID string) (int, error) {
	var n int64
	if err := tx.Model(&Revision{}).
		Where("commission_id = ?", commissionID).
		Count(&n).Error; err != nil {
		return 0, err
	}
	return int(n) + 1, nil
}

// AddRevision appends a revision to a locked commission and syncs
// revisions_used with the new count.
func AddRevision(tx *gorm.DB, c *Commission, artwork string, notes *string) (*Revision, error) {
	n, err := NextRevisionNumber(tx, c.ID)
	if err != nil {
		return nil, err
	}

	rev := Revision{
		CommissionID:   c.ID,
		RevisionNumber: n,
		Artwork:        artwork,
		Notes:          notes,
	}
	if err := tx.Create(&rev).Error; err != nil {
		return nil, err
	}

	if err := tx.Model(&Commission{}).
		Where("id = ?", c.ID).
		Update("revisions_used", n).Error; err != nil {
		return nil, err
	}
	c.RevisionsUsed = n
	return &rev, nil
}

// SubmitReview stores the client's rating on a completed commission and
// folds it into the artist's aggregate.
func SubmitReview(tx *gorm.DB, id string, p access.Principal, rating int, review *string) (*Commission, *artists.Artist, error) {
	if rating < 1 || rating > 5 {
		return nil, nil, ErrInvalidRating
	}

	c, err := LoadForPrincipal(tx, id, p, AudienceReviewer, true)
	if err != nil {
		return nil, nil, err
	}
	if c.Status != StatusCompleted {
		return nil, nil, ErrNotCompleted
	}

	c.ClientRating = &rating
	c.ClientReview = review
	if err := tx.Model(&Commission{}).
		Where("id = ?", c.ID).
		Updates(map[string]interface{}{
			"client_rating": rating,
			"client_review": review,
		}).Error; err != nil {
		return nil, nil, err
	}

	a, err := artists.RecomputeRating(tx, c.ArtistID)
	if err != nil {
		return nil, nil, err
	}
	return c, a, nil
}
