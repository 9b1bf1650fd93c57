package artists

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"commission-app/database"
	"commission-app/internal/api/pagination"
	"commission-app/internal/api/upload"
	"commission-app/internal/domain/artists"
	"commission-app/internal/domain/users"
	"commission-app/internal/infra/storage"

	"github.com/gin-gonic/gin"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

func mustUserID(c *gin.Context) (uint, bool) {
	userID := c.GetUint("user_id")
	if userID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return 0, false
	}
	return userID, true
}

func applyArtistInput(a *artists.Artist, in ArtistInput) {
	if in.DisplayName != nil {
		a.DisplayName = strings.TrimSpace(*in.DisplayName)
	}
	if in.Specialty != nil {
		a.Specialty = strings.TrimSpace(*in.Specialty)
	}
	if in.Description != nil {
		a.Description = in.Description
	}
	if in.HourlyRate != nil {
		a.HourlyRate = *in.HourlyRate
	}
	if in.MinimumPrice != nil {
		a.MinimumPrice = *in.MinimumPrice
	}
	if in.MaximumPrice != nil {
		a.MaximumPrice.Decimal = *in.MaximumPrice
		a.MaximumPrice.Valid = true
	}
	if in.TurnaroundDays != nil {
		a.TurnaroundDays = *in.TurnaroundDays
	}
	if in.IsAcceptingCommissions != nil {
		a.IsAcceptingCommissions = *in.IsAcceptingCommissions
	}
	if in.Tags != nil {
		a.Tags = pq.StringArray(in.Tags)
	}
}

// GET /artists
func ListArtists(c *gin.Context) {
	q := applyListFilters(c, approvedArtistsQuery(database.DB))

	var list []artists.Artist
	page, err := pagination.Paginate(c, q, &list, func(db *gorm.DB) *gorm.DB {
		return db.Order(orderFor(c)).Order("id ASC")
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load artists", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, page)
}

// GET /artists/:id
func GetArtist(c *gin.Context) {
	if _, err := strconv.ParseUint(c.Param("id"), 10, 64); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Artist not found"})
		return
	}

	var a artists.Artist
	err := approvedArtistsQuery(database.DB).
		Preload("Portfolio", func(db *gorm.DB) *gorm.DB {
			return db.Order("sort_order ASC, created_at DESC")
		}).
		First(&a, "id = ?", c.Param("id")).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Artist not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load artist", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, a)
}

// POST /artists
func CreateArtist(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	var in ArtistInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if in.DisplayName == nil || strings.TrimSpace(*in.DisplayName) == "" ||
		in.Specialty == nil || strings.TrimSpace(*in.Specialty) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "display_name and specialty are required"})
		return
	}
	if err := in.validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	a := artists.Artist{
		UserID:                 userID,
		Status:                 artists.StatusPending,
		TurnaroundDays:         7,
		IsAcceptingCommissions: true,
	}
	applyArtistInput(&a, in)

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var n int64
		if err := ownArtistQuery(tx, userID).Count(&n).Error; err != nil {
			return err
		}
		if n > 0 {
			return errArtistExists
		}
		if err := tx.Create(&a).Error; err != nil {
			return err
		}
		return tx.Model(&users.User{}).
			Where("id = ? AND role = ?", userID, users.RoleClient).
			Update("role", users.RoleArtist).Error
	})
	if err != nil {
		if errors.Is(err, errArtistExists) || database.IsUniqueViolation(err) {
			c.JSON(http.StatusConflict, gin.H{"error": "Artist profile already exists"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create artist profile", "details": err.Error()})
		return
	}

	fmt.Printf("🎨 Artist profile %d created for user %d\n", a.ID, userID)
	c.JSON(http.StatusCreated, a)
}

var errArtistExists = errors.New("artist profile exists")

func loadOwnArtist(c *gin.Context, db *gorm.DB) (*artists.Artist, bool) {
	userID, ok := mustUserID(c)
	if !ok {
		return nil, false
	}

	var a artists.Artist
	if err := ownArtistQuery(db, userID).First(&a).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Artist profile not found"})
			return nil, false
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load artist profile", "details": err.Error()})
		return nil, false
	}
	return &a, true
}

// GET /artists/me
func GetMyArtist(c *gin.Context) {
	a, ok := loadOwnArtist(c, database.DB.Preload("Portfolio", func(db *gorm.DB) *gorm.DB {
		return db.Order("sort_order ASC, created_at DESC")
	}))
	if !ok {
		return
	}
	c.JSON(http.StatusOK, a)
}

// PUT /artists/me
func UpdateMyArtist(c *gin.Context) {
	a, ok := loadOwnArtist(c, database.DB)
	if !ok {
		return
	}

	var in ArtistInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := in.validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	applyArtistInput(a, in)
	if a.MaximumPrice.Valid && a.MaximumPrice.Decimal.LessThan(a.MinimumPrice) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Maximum price must not be below minimum price"})
		return
	}

	// Status and aggregates are not editable by the artist.
	if err := database.DB.Model(a).Select(
		"display_name", "specialty", "description", "hourly_rate", "minimum_price",
		"maximum_price", "turnaround_days", "is_accepting_commissions", "tags",
	).Updates(a).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update artist profile", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, a)
}

// GET /artists/me/portfolio
func ListMyPortfolio(c *gin.Context) {
	a, ok := loadOwnArtist(c, database.DB)
	if !ok {
		return
	}

	var items []artists.PortfolioItem
	if err := database.DB.Where("artist_id = ?", a.ID).
		Order("sort_order ASC, created_at DESC").
		Find(&items).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load portfolio", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, items)
}

// POST /artists/me/portfolio accepts JSON with an image URL or a multipart
// upload in the "image" field.
func CreatePortfolioItem(c *gin.Context) {
	a, ok := loadOwnArtist(c, database.DB)
	if !ok {
		return
	}

	var in PortfolioInput
	if strings.HasPrefix(c.ContentType(), "multipart/") {
		title := c.PostForm("title")
		desc := c.PostForm("description")
		in.Title = &title
		if desc != "" {
			in.Description = &desc
		}
		featured := c.PostForm("is_featured") == "true"
		in.IsFeatured = &featured

		img, err := upload.Image(c, storage.Default(), "image", fmt.Sprintf("artists/portfolio/%d", a.ID))
		if err != nil {
			upload.Respond(c, err)
			return
		}
		in.Image = &img.URL
	} else if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if in.Title == nil || strings.TrimSpace(*in.Title) == "" || in.Image == nil || *in.Image == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "title and image are required"})
		return
	}

	item := artists.PortfolioItem{
		ArtistID:    a.ID,
		Title:       strings.TrimSpace(*in.Title),
		Description: in.Description,
		Image:       *in.Image,
	}
	if in.IsFeatured != nil {
		item.IsFeatured = *in.IsFeatured
	}
	if in.Order != nil {
		item.SortOrder = *in.Order
	}

	if err := database.DB.Create(&item).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create portfolio item", "details": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, item)
}

func loadOwnPortfolioItem(c *gin.Context, artistID uint) (*artists.PortfolioItem, bool) {
	if _, err := strconv.ParseUint(c.Param("itemId"), 10, 64); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Portfolio item not found"})
		return nil, false
	}

	var item artists.PortfolioItem
	if err := database.DB.Where("id = ? AND artist_id = ?", c.Param("itemId"), artistID).First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Portfolio item not found"})
			return nil, false
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load portfolio item", "details": err.Error()})
		return nil, false
	}
	return &item, true
}

// PUT /artists/me/portfolio/:itemId
func UpdatePortfolioItem(c *gin.Context) {
	a, ok := loadOwnArtist(c, database.DB)
	if !ok {
		return
	}
	item, ok := loadOwnPortfolioItem(c, a.ID)
	if !ok {
		return
	}

	var in PortfolioInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if in.Title != nil {
		if strings.TrimSpace(*in.Title) == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "title cannot be empty"})
			return
		}
		item.Title = strings.TrimSpace(*in.Title)
	}
	if in.Description != nil {
		item.Description = in.Description
	}
	if in.Image != nil && *in.Image != "" {
		item.Image = *in.Image
	}
	if in.IsFeatured != nil {
		item.IsFeatured = *in.IsFeatured
	}
	if in.Order != nil {
		item.SortOrder = *in.Order
	}

	if err := database.DB.Save(item).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update portfolio item", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, item)
}

// DELETE /artists/me/portfolio/:itemId
func DeletePortfolioItem(c *gin.Context) {
	a, ok := loadOwnArtist(c, database.DB)
	if !ok {
		return
	}
	item, ok := loadOwnPortfolioItem(c, a.ID)
	if !ok {
		return
	}

	if err := database.DB.Delete(item).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete portfolio item", "details": err.Error()})
		return
	}
	storage.DeleteQuietly(storage.Default(), item.Image)

	c.Status(http.StatusNoContent)
}

// GET /admin/artists
func AdminListArtists(c *gin.Context) {
	q := database.DB.Model(&artists.Artist{})
	if s := c.Query("status"); s != "" {
		if !artists.Status(s).Valid() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status filter"})
			return
		}
		q = q.Where("status = ?", s)
	}
	q = applyListFilters(c, q)

	var list []artists.Artist
	page, err := pagination.Paginate(c, q, &list, func(db *gorm.DB) *gorm.DB {
		return db.Order("created_at DESC")
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load artists", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, page)
}

// PATCH /admin/artists/:id/status
func AdminSetArtistStatus(c *gin.Context) {
	var in StatusInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	status := artists.Status(in.Status)
	if !status.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status"})
		return
	}

	if _, err := strconv.ParseUint(c.Param("id"), 10, 64); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Artist not found"})
		return
	}

	var a artists.Artist
	if err := database.DB.First(&a, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Artist not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load artist", "details": err.Error()})
		return
	}

	if err := database.DB.Model(&a).Update("status", status).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update status", "details": err.Error()})
		return
	}
	a.Status = status

	c.JSON(http.StatusOK, gin.H{
		"message": fmt.Sprintf("Artist status updated to %s", status),
		"artist":  a,
	})
}
