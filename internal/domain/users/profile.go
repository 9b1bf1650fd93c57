package users

import (
	"time"

	"gorm.io/datatypes"
)

type Profile struct {
	ID          uint `gorm:"primaryKey"`
	UserID      uint `gorm:"uniqueIndex"`
	Bio         *string
	Website     *string
	SocialLinks datatypes.JSONMap `gorm:"type:jsonb"`
	Preferences datatypes.JSONMap `gorm:"type:jsonb"`
	Address     *string
	City        *string
	Country     *string
	Timezone    string `gorm:"not null;default:'UTC'"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Profile) TableName() string { return "user_profiles" }
