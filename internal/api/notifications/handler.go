package notifications

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"commission-app/database"
	"commission-app/internal/api/pagination"
	"commission-app/internal/domain/notifications"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func mustUserID(c *gin.Context) (uint, bool) {
	uid := c.GetUint("user_id")
	if uid == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return 0, false
	}
	return uid, true
}

func own(userID uint) *gorm.DB {
	return database.DB.Model(&notifications.Notification{}).Where("user_id = ?", userID)
}

// GET /notifications supports ?is_read=true|false and ?type=.
func ListNotifications(c *gin.Context) {
	uid, ok := mustUserID(c)
	if !ok {
		return
	}

	q := own(uid)
	switch c.Query("is_read") {
	case "true":
		q = q.Where("is_read = ?", true)
	case "false":
		q = q.Where("is_read = ?", false)
	}
	if t := c.Query("type"); t != "" {
		q = q.Where("type = ?", t)
	}

	var list []notifications.Notification
	page, err := pagination.Paginate(c, q, &list, func(db *gorm.DB) *gorm.DB {
		return db.Order("created_at DESC")
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load notifications", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, page)
}

// GET /notifications/unread-count
func UnreadCount(c *gin.Context) {
	uid, ok := mustUserID(c)
	if !ok {
		return
	}

	var n int64
	if err := own(uid).Where("is_read = ?", false).Count(&n).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to count notifications", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"unread_count": n})
}

// POST /notifications/mark-all-read
func MarkAllRead(c *gin.Context) {
	uid, ok := mustUserID(c)
	if !ok {
		return
	}

	res := own(uid).Where("is_read = ?", false).
		Updates(map[string]interface{}{"is_read": true, "read_at": time.Now()})
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update notifications", "details": res.Error.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "All notifications marked as read", "updated": res.RowsAffected})
}

func loadOwn(c *gin.Context, uid uint) (*notifications.Notification, bool) {
	if _, err := strconv.ParseUint(c.Param("id"), 10, 64); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Notification not found"})
		return nil, false
	}

	var n notifications.Notification
	if err := own(uid).Where("id = ?", c.Param("id")).First(&n).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Notification not found"})
			return nil, false
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load notification", "details": err.Error()})
		return nil, false
	}
	return &n, true
}

// GET /notifications/:id
func GetNotification(c *gin.Context) {
	uid, ok := mustUserID(c)
	if !ok {
		return
	}
	n, ok := loadOwn(c, uid)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, n)
}

// POST /notifications/:id/read
func MarkRead(c *gin.Context) {
	uid, ok := mustUserID(c)
	if !ok {
		return
	}
	n, ok := loadOwn(c, uid)
	if !ok {
		return
	}

	if !n.IsRead {
		now := time.Now()
		n.IsRead = true
		n.ReadAt = &now
		if err := database.DB.Model(&notifications.Notification{}).
			Where("id = ?", n.ID).
			Updates(map[string]interface{}{"is_read": true, "read_at": now}).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update notification", "details": err.Error()})
			return
		}
	}
	c.JSON(http.StatusOK, n)
}

// DELETE /notifications/:id
func DeleteNotification(c *gin.Context) {
	uid, ok := mustUserID(c)
	if !ok {
		return
	}

	n, ok := loadOwn(c, uid)
	if !ok {
		return
	}

	res := database.DB.Delete(n)
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete notification", "details": res.Error.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}
