package artists

import (
	"time"

	"commission-app/internal/domain/users"

	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusApproved  Status = "approved"
	StatusSuspended Status = "suspended"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusSuspended:
		return true
	}
	return false
}

type Artist struct {
	ID     uint       `gorm:"primaryKey" json:"id"`
	UserID uint       `gorm:"not null;uniqueIndex" json:"user_id"`
	User   users.User `gorm:"constraint:OnDelete:CASCADE;" json:"-"`

	DisplayName    string              `gorm:"size:100;not null" json:"display_name"`
	Specialty      string              `gorm:"size:200;not null" json:"specialty"`
	Description    *string             `gorm:"type:text" json:"description"`
	HourlyRate     decimal.Decimal     `gorm:"type:numeric(10,2);not null;default:0" json:"hourly_rate"`
	MinimumPrice   decimal.Decimal     `gorm:"type:numeric(10,2);not null;default:0" json:"minimum_price"`
	MaximumPrice   decimal.NullDecimal `gorm:"type:numeric(10,2)" json:"maximum_price"`
	TurnaroundDays int                 `gorm:"not null;default:7" json:"turnaround_days"`

	Status                 Status `gorm:"type:varchar(20);not null;default:'pending';index" json:"status"`
	IsAcceptingCommissions bool   `gorm:"not null" json:"is_accepting_commissions"`

	Rating           decimal.Decimal `gorm:"type:numeric(3,2);not null;default:0" json:"rating"`
	TotalReviews     int             `gorm:"not null;default:0" json:"total_reviews"`
	TotalCommissions int             `gorm:"not null;default:0" json:"total_commissions"`

	Tags pq.StringArray `gorm:"type:text[]" json:"tags"`

	Portfolio []PortfolioItem `gorm:"foreignKey:ArtistID;constraint:OnDelete:CASCADE;" json:"portfolio,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type PortfolioItem struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	ArtistID    uint      `gorm:"not null;index:idx_portfolio_artist_order,priority:1" json:"artist_id"`
	Title       string    `gorm:"size:200;not null" json:"title"`
	Description *string   `gorm:"type:text" json:"description"`
	Image       string    `gorm:"not null" json:"image"`
	IsFeatured  bool      `gorm:"not null" json:"is_featured"`
	SortOrder   int       `gorm:"not null;default:0;index:idx_portfolio_artist_order,priority:2" json:"order"`
	CreatedAt   time.Time `json:"created_at"`
}

func (PortfolioItem) TableName() string { return "artist_portfolios" }
