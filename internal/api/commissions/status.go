package commissions

import (
	"fmt"
	"net/http"
	"time"

	"commission-app/database"
	"commission-app/internal/domain/artists"
	"commission-app/internal/domain/commissions"
	"commission-app/internal/domain/notifications"
	"commission-app/internal/infra/notify"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// POST /commissions/:id/status
func UpdateStatus(c *gin.Context) {
	p, ok := mustPrincipal(c)
	if !ok {
		return
	}

	var in StatusInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Status is required"})
		return
	}

	id := c.Param("id")
	var fx commissions.Effects
	err := database.Tx(c.Request.Context(), func(tx *gorm.DB) error {
		cm, err := commissions.LoadForPrincipal(tx, id, p, commissions.AudienceParty, true)
		if err != nil {
			return err
		}
		fx, err = commissions.Transition(tx, cm, commissions.Status(in.Status), time.Now(), commissions.Validated)
		return err
	})
	if err != nil {
		respondError(c, err)
		return
	}

	full, err := reload(database.DB, id)
	if err != nil {
		respondError(c, err)
		return
	}
	if fx.Changed() {
		notifyStatusChange(p, *full)
		fmt.Printf("🔁 Commission %s: %s -> %s\n", full.ID, fx.From, fx.To)
	}
	c.JSON(http.StatusOK, buildResponse(*full))
}

// POST /commissions/:id/review
func SubmitReview(c *gin.Context) {
	p, ok := mustPrincipal(c)
	if !ok {
		return
	}

	var in ReviewInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": commissions.ErrInvalidRating.Error()})
		return
	}

	var (
		cm     *commissions.Commission
		artist *artists.Artist
	)
	err := database.Tx(c.Request.Context(), func(tx *gorm.DB) error {
		var err error
		cm, artist, err = commissions.SubmitReview(tx, c.Param("id"), p, in.Rating, in.Review)
		return err
	})
	if err != nil {
		respondError(c, err)
		return
	}

	notify.Send(notifications.NewReviewReceived(artist.UserID, cm.ID, cm.Title, in.Rating))

	c.JSON(http.StatusOK, gin.H{
		"message":       "Review submitted successfully",
		"rating":        in.Rating,
		"artist_rating": artist.Rating,
		"total_reviews": artist.TotalReviews,
	})
}
