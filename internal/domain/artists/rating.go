package artists

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// FoldRating is the mean of the ratings, rounded half away from zero to two
// decimal places. No ratings folds to zero.
func FoldRating(sum, count int64) decimal.Decimal {
	if count == 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(sum).DivRound(decimal.NewFromInt(count), 2)
}

// RecomputeRating refreshes rating and total_reviews from every rated
// commission of the artist. The artist row is locked for the rest of tx so
// concurrent reviews fold one after another.
func RecomputeRating(tx *gorm.DB, artistID uint) (*Artist, error) {
	var a Artist
	if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&a, artistID).Error; err != nil {
		return nil, err
	}

	var agg struct {
		Total int64
		Count int64
	}
	if err := tx.Table("commissions").
		Select("COALESCE(SUM(client_rating), 0) AS total, COUNT(client_rating) AS count").
		Where("artist_id = ? AND client_rating IS NOT NULL", artistID).
		Scan(&agg).Error; err != nil {
		return nil, err
	}

	if agg.Count == 0 {
		return &a, nil
	}

	a.Rating = FoldRating(agg.Total, agg.Count)
	a.TotalReviews = int(agg.Count)

	if err := tx.Model(&Artist{}).
		Where("id = ?", artistID).
		Updates(map[string]interface{}{
			"rating":        a.Rating,
			"total_reviews": a.TotalReviews,
		}).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

// IncrementCompleted bumps total_commissions in place.
func IncrementCompleted(tx *gorm.DB, artistID uint) error {
	return tx.Model(&Artist{}).
		Where("id = ?", artistID).
		UpdateColumn("total_commissions", gorm.Expr("total_commissions + 1")).Error
}
