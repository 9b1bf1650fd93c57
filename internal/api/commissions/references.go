package commissions

import (
	"fmt"
	"net/http"

	"commission-app/database"
	"commission-app/internal/api/upload"
	"commission-app/internal/domain/commissions"
	"commission-app/internal/domain/media"
	"commission-app/internal/infra/storage"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// POST /commissions/:id/reference-images
func UploadReferenceImage(c *gin.Context) {
	p, ok := mustPrincipal(c)
	if !ok {
		return
	}
	id := c.Param("id")

	// Ownership is checked before anything is written to disk.
	if _, err := commissions.LoadForPrincipal(database.DB, id, p, commissions.AudienceRequester, false); err != nil {
		respondError(c, err)
		return
	}

	store := storage.Default()
	img, err := upload.Image(c, store, "image", "commission_references")
	if err != nil {
		upload.Respond(c, err)
		return
	}

	var total int
	err = database.Tx(c.Request.Context(), func(tx *gorm.DB) error {
		cm, err := commissions.LoadForPrincipal(tx, id, p, commissions.AudienceRequester, true)
		if err != nil {
			return err
		}
		images := append(cm.ReferenceImages, *img)
		total = len(images)
		return tx.Model(&commissions.Commission{}).
			Where("id = ?", cm.ID).
			Update("reference_images", datatypes.JSONSlice[media.ReferenceImage](images)).Error
	})
	if err != nil {
		storage.DeleteQuietly(store, img.URL)
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":      "Image uploaded successfully",
		"image":        img,
		"total_images": total,
	})
}

// DELETE /commissions/:id/reference-images removes every image whose URL
// matches exactly.
func DeleteReferenceImage(c *gin.Context) {
	p, ok := mustPrincipal(c)
	if !ok {
		return
	}

	var in DeleteReferenceInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Image URL is required"})
		return
	}

	err := database.Tx(c.Request.Context(), func(tx *gorm.DB) error {
		cm, err := commissions.LoadForPrincipal(tx, c.Param("id"), p, commissions.AudienceRequester, true)
		if err != nil {
			return err
		}

		kept, removed := media.RemoveByURL(cm.ReferenceImages, in.URL)
		if removed == 0 {
			return errImageNotFound
		}
		return tx.Model(&commissions.Commission{}).
			Where("id = ?", cm.ID).
			Update("reference_images", datatypes.JSONSlice[media.ReferenceImage](kept)).Error
	})
	if err != nil {
		respondError(c, err)
		return
	}

	storage.DeleteQuietly(storage.Default(), in.URL)
	fmt.Printf("🗑️ Removed reference image %s\n", in.URL)
	c.JSON(http.StatusOK, gin.H{"message": "Image deleted successfully"})
}
