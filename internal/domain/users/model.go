package users

import "time"

const (
	RoleClient = "client"
	RoleArtist = "artist"
	RoleAdmin  = "admin"
)

func ValidRole(role string) bool {
	switch role {
	case RoleClient, RoleArtist, RoleAdmin:
		return true
	}
	return false
}

type User struct {
	ID           uint   `gorm:"primaryKey"`
	Username     string `gorm:"not null;uniqueIndex:idx_users_username"`
	Email        string `gorm:"not null;uniqueIndex:idx_users_email"`
	FirstName    string
	LastName     string
	Phone        *string
	Password     *string `gorm:""`
	AuthProvider string  `gorm:"type:varchar(20);not null;default:'local'"`
	GoogleSub    *string `gorm:"uniqueIndex:idx_users_google_sub"`
	Role         string  `gorm:"type:varchar(20);not null;default:'client';index"`
	IsVerified   bool

	Profile *Profile `gorm:"constraint:OnDelete:CASCADE;"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (u User) FullName() string {
	switch {
	case u.FirstName != "" && u.LastName != "":
		return u.FirstName + " " + u.LastName
	case u.FirstName != "":
		return u.FirstName
	}
	return u.Username
}
