package users

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

type MeResponse struct {
	User    UserDTO        `json:"user"`
	Profile *ProfileDTO    `json:"profile"`
	Artist  *ArtistLiteDTO `json:"artist"`
}

type UserDTO struct {
	ID           uint      `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	Phone        *string   `json:"phone"`
	Role         string    `json:"role"`
	IsVerified   bool      `json:"is_verified"`
	AuthProvider string    `json:"auth_provider"`
	CreatedAt    time.Time `json:"created_at"`
}

type ProfileDTO struct {
	Bio         *string           `json:"bio"`
	Website     *string           `json:"website"`
	SocialLinks datatypes.JSONMap `json:"social_links"`
	Preferences datatypes.JSONMap `json:"preferences"`
	Address     *string           `json:"address"`
	City        *string           `json:"city"`
	Country     *string           `json:"country"`
	Timezone    string            `json:"timezone"`
}

type ArtistLiteDTO struct {
	ID                     uint            `json:"id"`
	DisplayName            string          `json:"display_name"`
	Status                 string          `json:"status"`
	IsAcceptingCommissions bool            `json:"is_accepting_commissions"`
	Rating                 decimal.Decimal `json:"rating"`
	TotalCommissions       int             `json:"total_commissions"`
}

type UpdateMeInput struct {
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Phone     *string `json:"phone"`
	Profile   *struct {
		Bio         *string                `json:"bio"`
		Website     *string                `json:"website"`
		SocialLinks map[string]interface{} `json:"social_links"`
		Preferences map[string]interface{} `json:"preferences"`
		Address     *string                `json:"address"`
		City        *string                `json:"city"`
		Country     *string                `json:"country"`
		Timezone    *string                `json:"timezone"`
	} `json:"profile"`
}
