package commissions

import (
	"errors"

	"commission-app/internal/domain/access"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrNotFound = errors.New("Commission not found")

// Audience picks which commissions a principal can reach for an operation.
// Ownership lives in the WHERE clause so foreign rows read as missing.
type Audience int

const (
	// AudienceParty: admin any, artist assigned, client own.
	AudienceParty Audience = iota
	// AudienceViewer: like AudienceParty, plus an artist's own requests as a client.
	AudienceViewer
	// AudienceManager: admin any, artist assigned.
	AudienceManager
	// AudienceRequester: admin any, everyone else own as client.
	AudienceRequester
	// AudienceReviewer: own as client, whatever the role.
	AudienceReviewer
	// AudienceAssignedArtist: the assigned artist only.
	AudienceAssignedArtist
)

var nothing = clause.Expr{SQL: "1 = 0"}

func ScopeFor(db *gorm.DB, p access.Principal, aud Audience) *gorm.DB {
	if aud == AudienceReviewer {
		return db.Where("commissions.client_id = ?", p.UserID())
	}

	switch who := p.(type) {
	case access.Admin:
		if aud == AudienceAssignedArtist {
			return db.Where(nothing)
		}
		return db
	case access.Artist:
		switch aud {
		case AudienceViewer:
			return db.Where("(commissions.artist_id = ? OR commissions.client_id = ?)", who.ArtistID, who.ID)
		case AudienceRequester:
			return db.Where("commissions.client_id = ?", who.ID)
		default:
			return db.Where("commissions.artist_id = ?", who.ArtistID)
		}
	case access.Client:
		switch aud {
		case AudienceManager, AudienceAssignedArtist:
			return db.Where(nothing)
		default:
			return db.Where("commissions.client_id = ?", who.ID)
		}
	}
	return db.Where(nothing)
}

// LoadForPrincipal fetches a commission the principal may act on. With lock
// set the row stays locked until tx ends.
func LoadForPrincipal(tx *gorm.DB, id string, p access.Principal, aud Audience, lock bool) (*Commission, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, ErrNotFound
	}

	q := ScopeFor(tx.Model(&Commission{}), p, aud).Where("commissions.id = ?", id)
	if lock {
		q = q.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var c Commission
	if err := q.First(&c).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}
