package dbtest

import (
	"testing"

	"commission-app/internal/domain/artists"
	"commission-app/internal/domain/commissions"
	"commission-app/internal/domain/media"
	"commission-app/internal/domain/users"

	"gorm.io/gorm"
)

// User inserts a user with the given username and role.
func User(t *testing.T, db *gorm.DB, username, role string) users.User {
	t.Helper()
	u := users.User{
		Username:     username,
		Email:        username + "@example.com",
		FirstName:    username,
		AuthProvider: "local",
		Role:         role,
	}
	if err := db.Create(&u).Error; err != nil {
		t.Fatalf("create user %s: %v", username, err)
	}
	return u
}

// Artist inserts an approved artist accepting commissions, with its user.
func Artist(t *testing.T, db *gorm.DB, username string) artists.Artist {
	t.Helper()
	u := User(t, db, username, users.RoleArtist)
	a := artists.Artist{
		UserID:                 u.ID,
		DisplayName:            username,
		Specialty:              "General",
		Status:                 artists.StatusApproved,
		IsAcceptingCommissions: true,
		TurnaroundDays:         7,
	}
	if err := db.Create(&a).Error; err != nil {
		t.Fatalf("create artist %s: %v", username, err)
	}
	return a
}

// Commission inserts a commission from client to artist in the given status.
func Commission(t *testing.T, db *gorm.DB, clientID, artistID uint, status commissions.Status) commissions.Commission {
	t.Helper()
	c := commissions.Commission{
		ClientID:         clientID,
		ArtistID:         artistID,
		Title:            "Portrait",
		Description:      "A portrait of my cat",
		ReferenceImages:  []media.ReferenceImage{},
		Status:           status,
		Priority:         commissions.PriorityNormal,
		RevisionsAllowed: 2,
	}
	if err := db.Create(&c).Error; err != nil {
		t.Fatalf("create commission: %v", err)
	}
	return c
}
