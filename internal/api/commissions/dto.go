package commissions

import (
	"errors"
	"time"

	"commission-app/internal/domain/commissions"
	"commission-app/internal/domain/media"

	"github.com/shopspring/decimal"
)

const dateLayout = "2006-01-02"

type CreateCommissionInput struct {
	ArtistID         uint    `json:"artist_id" binding:"required"`
	CategoryID       *uint   `json:"category_id"`
	Title            string  `json:"title" binding:"required"`
	Description      string  `json:"description" binding:"required"`
	Requirements     *string `json:"requirements"`
	Priority         string  `json:"priority"`
	Deadline         *string `json:"deadline"`
	RevisionsAllowed *int    `json:"revisions_allowed"`
}

type UpdateCommissionInput struct {
	QuotedPrice      *decimal.Decimal `json:"quoted_price"`
	FinalPrice       *decimal.Decimal `json:"final_price"`
	Deadline         *string          `json:"deadline"`
	RevisionsAllowed *int             `json:"revisions_allowed"`
	Notes            *string          `json:"notes"`
	FinalArtwork     *string          `json:"final_artwork"`
	Priority         *string          `json:"priority"`
	Status           *string          `json:"status"`
}

type StatusInput struct {
	Status string `json:"status" binding:"required"`
}

type ReviewInput struct {
	Rating int     `json:"rating" binding:"required"`
	Review *string `json:"review"`
}

type RevisionInput struct {
	Artwork string  `json:"artwork" binding:"required"`
	Notes   *string `json:"notes"`
}

type DeleteReferenceInput struct {
	URL string `json:"url" binding:"required"`
}

type CategoryInput struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Icon        *string `json:"icon"`
	IsActive    *bool   `json:"is_active"`
	Order       *int    `json:"order"`
}

// CommissionResponse is the full commission representation.
type CommissionResponse struct {
	commissions.Commission
	Deadline           *string              `json:"deadline"`
	ClientName         string               `json:"client_name"`
	ArtistName         string               `json:"artist_name"`
	AllowedTransitions []commissions.Status `json:"allowed_transitions"`
}

func buildResponse(c commissions.Commission) CommissionResponse {
	resp := CommissionResponse{
		Commission:         c,
		ClientName:         c.Client.FullName(),
		ArtistName:         c.Artist.DisplayName,
		AllowedTransitions: commissions.AllowedTargets(c.Status),
	}
	if c.Deadline != nil {
		d := c.Deadline.Format(dateLayout)
		resp.Deadline = &d
	}
	if resp.AllowedTransitions == nil {
		resp.AllowedTransitions = []commissions.Status{}
	}
	if resp.ReferenceImages == nil {
		resp.ReferenceImages = []media.ReferenceImage{}
	}
	return resp
}

var errBadDeadline = errors.New("Deadline must be a date formatted YYYY-MM-DD")

func parseDeadline(s *string) (*time.Time, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	d, err := time.Parse(dateLayout, *s)
	if err != nil {
		return nil, errBadDeadline
	}
	return &d, nil
}
