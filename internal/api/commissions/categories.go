package commissions

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"commission-app/database"
	"commission-app/internal/domain/commissions"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GET /categories lists active categories.
func ListCategories(c *gin.Context) {
	var list []commissions.Category
	if err := database.DB.
		Where("is_active = ?", true).
		Order("sort_order ASC, name ASC").
		Find(&list).Error; err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// GET /admin/categories
func AdminListCategories(c *gin.Context) {
	var list []commissions.Category
	if err := database.DB.Order("sort_order ASC, name ASC").Find(&list).Error; err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// POST /admin/categories
func AdminCreateCategory(c *gin.Context) {
	var in CategoryInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if in.Name == nil || strings.TrimSpace(*in.Name) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Name is required"})
		return
	}

	cat := commissions.Category{
		Name:     strings.TrimSpace(*in.Name),
		IsActive: true,
	}
	applyCategoryInput(&cat, in)

	if err := database.DB.Create(&cat).Error; err != nil {
		if database.IsUniqueViolation(err) {
			c.JSON(http.StatusConflict, gin.H{"error": "Category already exists"})
			return
		}
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, cat)
}

// PUT /admin/categories/:id
func AdminUpdateCategory(c *gin.Context) {
	if _, err := strconv.ParseUint(c.Param("id"), 10, 64); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": errBadCategory.Error()})
		return
	}

	var cat commissions.Category
	if err := database.DB.First(&cat, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": errBadCategory.Error()})
			return
		}
		respondError(c, err)
		return
	}

	var in CategoryInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Name cannot be empty"})
			return
		}
		cat.Name = name
	}
	applyCategoryInput(&cat, in)

	if err := database.DB.Save(&cat).Error; err != nil {
		if database.IsUniqueViolation(err) {
			c.JSON(http.StatusConflict, gin.H{"error": "Category already exists"})
			return
		}
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, cat)
}

// DELETE /admin/categories/:id deactivates the category. Existing
// commissions keep pointing at it.
func AdminDeleteCategory(c *gin.Context) {
	if _, err := strconv.ParseUint(c.Param("id"), 10, 64); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": errBadCategory.Error()})
		return
	}

	res := database.DB.Model(&commissions.Category{}).
		Where("id = ?", c.Param("id")).
		Update("is_active", false)
	if res.Error != nil {
		respondError(c, res.Error)
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": errBadCategory.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

func applyCategoryInput(cat *commissions.Category, in CategoryInput) {
	if in.Description != nil {
		cat.Description = in.Description
	}
	if in.Icon != nil {
		cat.Icon = in.Icon
	}
	if in.IsActive != nil {
		cat.IsActive = *in.IsActive
	}
	if in.Order != nil {
		cat.SortOrder = *in.Order
	}
}
