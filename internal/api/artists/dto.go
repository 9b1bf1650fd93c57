package artists

import (
	"errors"

	"github.com/shopspring/decimal"
)

type ArtistInput struct {
	DisplayName            *string          `json:"display_name"`
	Specialty              *string          `json:"specialty"`
	Description            *string          `json:"description"`
	HourlyRate             *decimal.Decimal `json:"hourly_rate"`
	MinimumPrice           *decimal.Decimal `json:"minimum_price"`
	MaximumPrice           *decimal.Decimal `json:"maximum_price"`
	TurnaroundDays         *int             `json:"turnaround_days"`
	IsAcceptingCommissions *bool            `json:"is_accepting_commissions"`
	Tags                   []string         `json:"tags"`
}

type PortfolioInput struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Image       *string `json:"image"`
	IsFeatured  *bool   `json:"is_featured"`
	Order       *int    `json:"order"`
}

type StatusInput struct {
	Status string `json:"status" binding:"required"`
}

func (in ArtistInput) validate() error {
	for _, p := range []*decimal.Decimal{in.HourlyRate, in.MinimumPrice, in.MaximumPrice} {
		if p != nil && p.IsNegative() {
			return errors.New("Prices cannot be negative")
		}
	}
	if in.MinimumPrice != nil && in.MaximumPrice != nil && in.MaximumPrice.LessThan(*in.MinimumPrice) {
		return errors.New("Maximum price must not be below minimum price")
	}
	if in.TurnaroundDays != nil && *in.TurnaroundDays < 1 {
		return errors.New("Turnaround days must be at least 1")
	}
	if in.DisplayName != nil && len(*in.DisplayName) > 100 {
		return errors.New("Display name is too long")
	}
	return nil
}
