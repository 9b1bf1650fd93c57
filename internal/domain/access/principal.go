package access

import "commission-app/internal/domain/users"

// ContextKey is where the resolved principal lives on the request context.
const ContextKey = "principal"

// Principal is the caller of a request. The set of implementations is closed:
// Client, Artist and Admin.
type Principal interface {
	UserID() uint
	Role() string
	principal()
}

type Client struct{ ID uint }

type Artist struct {
	ID       uint
	ArtistID uint
}

type Admin struct{ ID uint }

func (c Client) UserID() uint { return c.ID }
func (a Artist) UserID() uint { return a.ID }
func (a Admin) UserID() uint  { return a.ID }

func (Client) Role() string { return users.RoleClient }
func (Artist) Role() string { return users.RoleArtist }
func (Admin) Role() string  { return users.RoleAdmin }

func (Client) principal() {}
func (Artist) principal() {}
func (Admin) principal()  {}

// Resolve builds the principal for a stored user. artistID is the id of the
// user's artist profile, if any. A user with the artist role but no profile
// acts as a client.
func Resolve(u users.User, artistID *uint) Principal {
	switch u.Role {
	case users.RoleAdmin:
		return Admin{ID: u.ID}
	case users.RoleArtist:
		if artistID != nil {
			return Artist{ID: u.ID, ArtistID: *artistID}
		}
	}
	return Client{ID: u.ID}
}

func IsAdmin(p Principal) bool {
	_, ok := p.(Admin)
	return ok
}
