package commissions

import (
	"net/http"
	"strings"

	"commission-app/database"
	"commission-app/internal/api/upload"
	"commission-app/internal/domain/access"
	"commission-app/internal/domain/commissions"
	"commission-app/internal/domain/notifications"
	"commission-app/internal/infra/notify"
	"commission-app/internal/infra/storage"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// POST /commissions/:id/revisions takes JSON with an artwork URL or a
// multipart upload in the "artwork" field.
func CreateRevision(c *gin.Context) {
	p, ok := mustPrincipal(c)
	if !ok {
		return
	}
	if _, isArtist := p.(access.Artist); !isArtist {
		c.JSON(http.StatusForbidden, gin.H{"error": "Only artists can create revisions"})
		return
	}

	var (
		in       RevisionInput
		uploaded string
		store    = storage.Default()
	)
	if strings.HasPrefix(c.ContentType(), "multipart/") {
		img, err := upload.Image(c, store, "artwork", "revisions")
		if err != nil {
			upload.Respond(c, err)
			return
		}
		uploaded = img.URL
		in.Artwork = img.URL
		if notes := c.PostForm("notes"); notes != "" {
			in.Notes = &notes
		}
	} else if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Artwork is required"})
		return
	}

	var (
		cm  *commissions.Commission
		rev *commissions.Revision
	)
	err := database.Tx(c.Request.Context(), func(tx *gorm.DB) error {
		var err error
		cm, err = commissions.LoadForPrincipal(tx, c.Param("id"), p, commissions.AudienceAssignedArtist, true)
		if err != nil {
			return err
		}
		rev, err = commissions.AddRevision(tx, cm, in.Artwork, in.Notes)
		return err
	})
	if err != nil {
		if uploaded != "" {
			storage.DeleteQuietly(store, uploaded)
		}
		respondError(c, err)
		return
	}

	notify.Send(notifications.NewRevisionSubmitted(cm.ClientID, cm.ID, cm.Title, rev.RevisionNumber))
	c.JSON(http.StatusCreated, rev)
}

// GET /commissions/:id/revisions
func ListRevisions(c *gin.Context) {
	p, ok := mustPrincipal(c)
	if !ok {
		return
	}

	cm, err := commissions.LoadForPrincipal(database.DB, c.Param("id"), p, commissions.AudienceViewer, false)
	if err != nil {
		respondError(c, err)
		return
	}

	var revs []commissions.Revision
	if err := database.DB.
		Where("commission_id = ?", cm.ID).
		Order("revision_number ASC").
		Find(&revs).Error; err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, revs)
}
