package access

import (
	"testing"

	"commission-app/internal/domain/users"
)

func TestResolve(t *testing.T) {
	artistID := uint(9)

	tests := []struct {
		name     string
		user     users.User
		artistID *uint
		want     Principal
	}{
		{"client", users.User{ID: 1, Role: users.RoleClient}, nil, Client{ID: 1}},
		{"artist with profile", users.User{ID: 2, Role: users.RoleArtist}, &artistID, Artist{ID: 2, ArtistID: 9}},
		{"artist without profile", users.User{ID: 3, Role: users.RoleArtist}, nil, Client{ID: 3}},
		{"admin", users.User{ID: 4, Role: users.RoleAdmin}, &artistID, Admin{ID: 4}},
		{"unknown role", users.User{ID: 5, Role: "moderator"}, nil, Client{ID: 5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Resolve(tt.user, tt.artistID)
			if got != tt.want {
				t.Fatalf("Resolve() = %#v, want %#v", got, tt.want)
			}
			if got.UserID() != tt.user.ID {
				t.Fatalf("UserID() = %d, want %d", got.UserID(), tt.user.ID)
			}
		})
	}
}

func TestIsAdmin(t *testing.T) {
	if !IsAdmin(Admin{ID: 1}) {
		t.Fatal("expected admin")
	}
	if IsAdmin(Artist{ID: 1, ArtistID: 2}) {
		t.Fatal("artist reported as admin")
	}
}
