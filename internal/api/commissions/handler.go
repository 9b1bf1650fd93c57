package commissions

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"commission-app/database"
	"commission-app/internal/api/pagination"
	"commission-app/internal/domain/access"
	"commission-app/internal/domain/artists"
	"commission-app/internal/domain/commissions"
	"commission-app/internal/domain/media"
	"commission-app/internal/domain/notifications"
	"commission-app/internal/infra/notify"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// POST /commissions
func CreateCommission(c *gin.Context) {
	p, ok := mustPrincipal(c)
	if !ok {
		return
	}

	var in CreateCommissionInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	in.Title = strings.TrimSpace(in.Title)
	if in.Title == "" || len(in.Title) > 200 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Title is required (max 200 characters)"})
		return
	}
	priority := commissions.PriorityNormal
	if in.Priority != "" {
		priority = commissions.Priority(in.Priority)
		if !priority.Valid() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid priority"})
			return
		}
	}
	deadline, err := parseDeadline(in.Deadline)
	if err != nil {
		respondError(c, err)
		return
	}
	revisionsAllowed := 2
	if in.RevisionsAllowed != nil {
		if *in.RevisionsAllowed < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "revisions_allowed cannot be negative"})
			return
		}
		revisionsAllowed = *in.RevisionsAllowed
	}

	cm := commissions.Commission{
		ClientID:         p.UserID(),
		ArtistID:         in.ArtistID,
		CategoryID:       in.CategoryID,
		Title:            in.Title,
		Description:      in.Description,
		ReferenceImages:  []media.ReferenceImage{},
		Requirements:     in.Requirements,
		Status:           commissions.StatusPending,
		Priority:         priority,
		Deadline:         deadline,
		RevisionsAllowed: revisionsAllowed,
	}

	var artist artists.Artist
	err = database.Tx(c.Request.Context(), func(tx *gorm.DB) error {
		if err := tx.Where("id = ? AND status = ?", in.ArtistID, artists.StatusApproved).
			First(&artist).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errArtistUnavailable
			}
			return err
		}
		if !artist.IsAcceptingCommissions {
			return errNotAccepting
		}
		if artist.UserID == p.UserID() {
			return errSelfCommission
		}

		if in.CategoryID != nil {
			var n int64
			if err := tx.Model(&commissions.Category{}).
				Where("id = ? AND is_active = ?", *in.CategoryID, true).
				Count(&n).Error; err != nil {
				return err
			}
			if n == 0 {
				return errBadCategory
			}
		}

		return tx.Create(&cm).Error
	})
	if err != nil {
		respondError(c, err)
		return
	}

	full, err := reload(database.DB, cm.ID)
	if err != nil {
		respondError(c, err)
		return
	}

	notify.Send(notifications.NewCommissionRequest(artist.UserID, full.ID, full.Title, full.Client.FullName()))
	fmt.Printf("📝 Commission %s requested from artist %d\n", full.ID, artist.ID)

	c.JSON(http.StatusCreated, buildResponse(*full))
}

// GET /commissions
func ListCommissions(c *gin.Context) {
	p, ok := mustPrincipal(c)
	if !ok {
		return
	}

	q := applyListFilters(c, listQuery(database.DB, p, commissions.AudienceParty))

	var list []commissions.Commission
	page, err := pagination.Paginate(c, q, &list, func(db *gorm.DB) *gorm.DB {
		return withParties(db).Order(orderFor(c))
	})
	if err != nil {
		respondError(c, err)
		return
	}

	out := make([]CommissionResponse, 0, len(list))
	for _, cm := range list {
		out = append(out, buildResponse(cm))
	}
	page.Items = out
	c.JSON(http.StatusOK, page)
}

// GET /commissions/:id
func GetCommission(c *gin.Context) {
	p, ok := mustPrincipal(c)
	if !ok {
		return
	}

	cm, err := commissions.LoadForPrincipal(withParties(database.DB), c.Param("id"), p, commissions.AudienceViewer, false)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, buildResponse(*cm))
}

// PUT /commissions/:id lets the assigned artist or an admin edit the working
// fields. A status change from an artist must follow the transition table;
// an admin may set any status.
func UpdateCommission(c *gin.Context) {
	p, ok := mustPrincipal(c)
	if !ok {
		return
	}

	var in UpdateCommissionInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updates := map[string]interface{}{}
	if in.QuotedPrice != nil {
		if in.QuotedPrice.IsNegative() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "quoted_price cannot be negative"})
			return
		}
		updates["quoted_price"] = *in.QuotedPrice
	}
	if in.FinalPrice != nil {
		if in.FinalPrice.IsNegative() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "final_price cannot be negative"})
			return
		}
		updates["final_price"] = *in.FinalPrice
	}
	if in.Deadline != nil {
		d, err := parseDeadline(in.Deadline)
		if err != nil {
			respondError(c, err)
			return
		}
		updates["deadline"] = d
	}
	if in.RevisionsAllowed != nil {
		if *in.RevisionsAllowed < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "revisions_allowed cannot be negative"})
			return
		}
		updates["revisions_allowed"] = *in.RevisionsAllowed
	}
	if in.Notes != nil {
		updates["notes"] = in.Notes
	}
	if in.FinalArtwork != nil {
		updates["final_artwork"] = in.FinalArtwork
	}
	if in.Priority != nil {
		if !commissions.Priority(*in.Priority).Valid() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid priority"})
			return
		}
		updates["priority"] = *in.Priority
	}

	mode := commissions.Validated
	if access.IsAdmin(p) {
		mode = commissions.Override
	}

	var (
		id = c.Param("id")
		fx commissions.Effects
	)
	err := database.Tx(c.Request.Context(), func(tx *gorm.DB) error {
		cm, err := commissions.LoadForPrincipal(tx, id, p, commissions.AudienceManager, true)
		if err != nil {
			return err
		}
		if in.Status != nil {
			if fx, err = commissions.Transition(tx, cm, commissions.Status(*in.Status), time.Now(), mode); err != nil {
				return err
			}
		}
		if len(updates) == 0 {
			return nil
		}
		return tx.Model(&commissions.Commission{}).Where("id = ?", cm.ID).Updates(updates).Error
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
	}
	c.JSON(http.StatusOK, buildResponse(*full))
}

// notifyStatusChange tells whoever did not make the change.
func notifyStatusChange(actor access.Principal, cm commissions.Commission) {
	status := string(cm.Status)
	switch actor.(type) {
	case access.Admin:
		notify.Send(
			notifications.NewStatusChange(cm.ClientID, cm.ID, cm.Title, status),
			notifications.NewStatusChange(cm.Artist.UserID, cm.ID, cm.Title, status),
		)
	default:
		if actor.UserID() == cm.ClientID {
			notify.Send(notifications.NewStatusChange(cm.Artist.UserID, cm.ID, cm.Title, status))
			return
		}
		notify.Send(notifications.NewStatusChange(cm.ClientID, cm.ID, cm.Title, status))
	}
}

// GET /admin/commissions
func AdminListCommissions(c *gin.Context) {
	q := applyListFilters(c, database.DB.Model(&commissions.Commission{}))
	if a := c.Query("artist"); a != "" {
		q = q.Where("commissions.artist_id = ?", a)
	}
	if cl := c.Query("client"); cl != "" {
		q = q.Where("commissions.client_id = ?", cl)
	}

	var list []commissions.Commission
	page, err := pagination.Paginate(c, q, &list, func(db *gorm.DB) *gorm.DB {
		return withParties(db).Order(orderFor(c))
	})
	if err != nil {
		respondError(c, err)
		return
	}

	out := make([]CommissionResponse, 0, len(list))
	for _, cm := range list {
		out = append(out, buildResponse(cm))
	}
	page.Items = out
	c.JSON(http.StatusOK, page)
}
