package users

import (
	"commission-app/internal/domain/artists"
	"commission-app/internal/domain/users"
)

func BuildUserDTO(u users.User) UserDTO {
	return UserDTO{
		ID:           u.ID,
		Username:     u.Username,
		Email:        u.Email,
		FirstName:    u.FirstName,
		LastName:     u.LastName,
		Phone:        u.Phone,
		Role:         u.Role,
		IsVerified:   u.IsVerified,
		AuthProvider: u.AuthProvider,
		CreatedAt:    u.CreatedAt,
	}
}

func BuildProfileDTO(p *users.Profile) *ProfileDTO {
	if p == nil {
		return nil
	}
	return &ProfileDTO{
		Bio:         p.Bio,
		Website:     p.Website,
		SocialLinks: p.SocialLinks,
		Preferences: p.Preferences,
		Address:     p.Address,
		City:        p.City,
		Country:     p.Country,
		Timezone:    p.Timezone,
	}
}

func BuildArtistLiteDTO(a *artists.Artist) *ArtistLiteDTO {
	if a == nil {
		return nil
	}
	return &ArtistLiteDTO{
		ID:                     a.ID,
		DisplayName:            a.DisplayName,
		Status:                 string(a.Status),
		IsAcceptingCommissions: a.IsAcceptingCommissions,
		Rating:                 a.Rating,
		TotalCommissions:       a.TotalCommissions,
	}
}
