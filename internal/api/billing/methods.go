package billing

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"commission-app/database"
	"commission-app/internal/domain/billing"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// clearDefault unsets the user's current default method, except keep.
func clearDefault(tx *gorm.DB, userID, keep uint) error {
	return tx.Model(&billing.PaymentMethod{}).
		Where("user_id = ? AND id <> ? AND is_default = ?", userID, keep, true).
		Update("is_default", false).Error
}

func loadOwnMethod(tx *gorm.DB, id string, userID uint, lock bool) (*billing.PaymentMethod, error) {
	if _, err := strconv.ParseUint(id, 10, 64); err != nil {
		return nil, errMethodNotFound
	}
	q := tx.Where("id = ? AND user_id = ?", id, userID)
	if lock {
		q = q.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	var m billing.PaymentMethod
	if err := q.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errMethodNotFound
		}
		return nil, err
	}
	return &m, nil
}

// GET /payments/methods
func ListMethods(c *gin.Context) {
	p, ok := mustPrincipal(c)
	if !ok {
		return
	}

	var list []billing.PaymentMethod
	if err := database.DB.
		Where("user_id = ? AND is_active = ?", p.UserID(), true).
		Order("is_default DESC, created_at DESC").
		Find(&list).Error; err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// POST /payments/methods
func CreateMethod(c *gin.Context) {
	p, ok := mustPrincipal(c)
	if !ok {
		return
	}

	var in MethodInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	in.Name = strings.TrimSpace(in.Name)
	if !billing.MethodType(in.Type).Valid() || in.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Valid type and name are required"})
		return
	}

	m := billing.PaymentMethod{
		UserID:   p.UserID(),
		Type:     billing.MethodType(in.Type),
		Name:     in.Name,
		Details:  in.Details,
		IsActive: true,
	}
	if in.IsDefault != nil {
		m.IsDefault = *in.IsDefault
	}

	err := database.Tx(c.Request.Context(), func(tx *gorm.DB) error {
		if err := tx.Create(&m).Error; err != nil {
			return err
		}
		if m.IsDefault {
			return clearDefault(tx, m.UserID, m.ID)
		}
		return nil
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, m)
}

// GET /payments/methods/:id
func GetMethod(c *gin.Context) {
	p, ok := mustPrincipal(c)
	if !ok {
		return
	}

	m, err := loadOwnMethod(database.DB, c.Param("id"), p.UserID(), false)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, m)
}

// PUT /payments/methods/:id
func UpdateMethod(c *gin.Context) {
	p, ok := mustPrincipal(c)
	if !ok {
		return
	}

	var in MethodUpdateInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var m *billing.PaymentMethod
	err := database.Tx(c.Request.Context(), func(tx *gorm.DB) error {
		var err error
		if m, err = loadOwnMethod(tx, c.Param("id"), p.UserID(), true); err != nil {
			return err
		}
		if in.Name != nil {
			if name := strings.TrimSpace(*in.Name); name != "" {
				m.Name = name
			}
		}
		if in.Details != nil {
			m.Details = in.Details
		}
		if in.IsActive != nil {
			m.IsActive = *in.IsActive
		}
		if in.IsDefault != nil {
			m.IsDefault = *in.IsDefault
		}
		if err := tx.Save(m).Error; err != nil {
			return err
		}
		if m.IsDefault {
			return clearDefault(tx, m.UserID, m.ID)
		}
		return nil
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, m)
}

// DELETE /payments/methods/:id deactivates the method; payments that used it
// keep their reference.
func DeleteMethod(c *gin.Context) {
	p, ok := mustPrincipal(c)
	if !ok {
		return
	}

	if _, err := strconv.ParseUint(c.Param("id"), 10, 64); err != nil {
		respondError(c, errMethodNotFound)
		return
	}

	res := database.DB.Model(&billing.PaymentMethod{}).
		Where("id = ? AND user_id = ? AND is_active = ?", c.Param("id"), p.UserID(), true).
		Updates(map[string]interface{}{"is_active": false, "is_default": false})
	if res.Error != nil {
		respondError(c, res.Error)
		return
	}
	if res.RowsAffected == 0 {
		respondError(c, errMethodNotFound)
		return
	}
	c.Status(http.StatusNoContent)
}
