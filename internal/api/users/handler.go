package users

import (
	"errors"
	"net/http"

	"commission-app/database"
	"commission-app/internal/domain/artists"
	"commission-app/internal/domain/users"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

func loadMe(db *gorm.DB, userID uint) (*MeResponse, error) {
	var user users.User
	if err := db.Preload("Profile").First(&user, userID).Error; err != nil {
		return nil, err
	}

	resp := &MeResponse{
		User:    BuildUserDTO(user),
		Profile: BuildProfileDTO(user.Profile),
	}

	var a artists.Artist
	err := db.Where("user_id = ?", user.ID).First(&a).Error
	switch {
	case err == nil:
		resp.Artist = BuildArtistLiteDTO(&a)
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return nil, err
	}
	return resp, nil
}

func GetCurrentUser(c *gin.Context) {
	resp, err := loadMe(database.DB, c.GetUint("user_id"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load user", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, resp)
}

func UpdateCurrentUser(c *gin.Context) {
	userID := c.GetUint("user_id")

	var input UpdateMeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		updates := map[string]interface{}{}
		if input.FirstName != nil {
			updates["first_name"] = *input.FirstName
		}
		if input.LastName != nil {
			updates["last_name"] = *input.LastName
		}
		if input.Phone != nil {
			updates["phone"] = input.Phone
		}
		if len(updates) > 0 {
			if err := tx.Model(&users.User{}).Where("id = ?", userID).Updates(updates).Error; err != nil {
				return err
			}
		}

		if input.Profile == nil {
			return nil
		}

		var profile users.Profile
		if err := tx.Where(users.Profile{UserID: userID}).
			Attrs(users.Profile{Timezone: "UTC"}).
			FirstOrCreate(&profile).Error; err != nil {
			return err
		}

		in := input.Profile
		if in.Bio != nil {
			profile.Bio = in.Bio
		}
		if in.Website != nil {
			profile.Website = in.Website
		}
		if in.SocialLinks != nil {
			profile.SocialLinks = datatypes.JSONMap(in.SocialLinks)
		}
		if in.Preferences != nil {
			profile.Preferences = datatypes.JSONMap(in.Preferences)
		}
		if in.Address != nil {
			profile.Address = in.Address
		}
		if in.City != nil {
			profile.City = in.City
		}
		if in.Country != nil {
			profile.Country = in.Country
		}
		if in.Timezone != nil && *in.Timezone != "" {
			profile.Timezone = *in.Timezone
		}
		return tx.Save(&profile).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update profile", "details": err.Error()})
		return
	}

	resp, err := loadMe(database.DB, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load user", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, resp)
}
