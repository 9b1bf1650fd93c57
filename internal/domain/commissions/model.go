package commissions

import (
	"time"

	"commission-app/internal/domain/artists"
	"commission-app/internal/domain/media"
	"commission-app/internal/domain/users"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityNormal Priority = "normal"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityNormal, PriorityHigh, PriorityUrgent:
		return true
	}
	return false
}

type Category struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"size:100;not null;uniqueIndex" json:"name"`
	Description *string   `gorm:"type:text" json:"description"`
	Icon        *string   `gorm:"size:50" json:"icon"`
	IsActive    bool      `gorm:"not null" json:"is_active"`
	SortOrder   int       `gorm:"not null;default:0" json:"order"`
	CreatedAt   time.Time `json:"created_at"`
}

func (Category) TableName() string { return "commission_categories" }

type Commission struct {
	ID string `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`

	ClientID   uint           `gorm:"not null;index" json:"client_id"`
	Client     users.User     `gorm:"constraint:OnDelete:CASCADE;" json:"-"`
	ArtistID   uint           `gorm:"not null;index" json:"artist_id"`
	Artist     artists.Artist `gorm:"constraint:OnDelete:CASCADE;" json:"-"`
	CategoryID *uint          `gorm:"index" json:"category_id"`
	Category   *Category      `gorm:"constraint:OnDelete:SET NULL;" json:"category,omitempty"`

	Title           string                                    `gorm:"size:200;not null" json:"title"`
	Description     string                                    `gorm:"type:text;not null" json:"description"`
	ReferenceImages datatypes.JSONSlice[media.ReferenceImage] `gorm:"type:jsonb;not null;default:'[]'" json:"reference_images"`
	Requirements    *string                                   `gorm:"type:text" json:"requirements"`

	Status   Status   `gorm:"type:varchar(20);not null;default:'pending';index" json:"status"`
	Priority Priority `gorm:"type:varchar(20);not null;default:'normal'" json:"priority"`

	QuotedPrice decimal.NullDecimal `gorm:"type:numeric(10,2)" json:"quoted_price"`
	FinalPrice  decimal.NullDecimal `gorm:"type:numeric(10,2)" json:"final_price"`
	Deadline    *time.Time          `gorm:"type:date" json:"deadline"`

	StartedAt   *time.Time `json:"started_at"`
	CompletedAt *time.Time `json:"completed_at"`

	RevisionsAllowed int     `gorm:"not null;default:2" json:"revisions_allowed"`
	RevisionsUsed    int     `gorm:"not null;default:0" json:"revisions_used"`
	FinalArtwork     *string `json:"final_artwork"`

	ClientRating *int    `json:"client_rating"`
	ClientReview *string `gorm:"type:text" json:"client_review"`
	Notes        *string `gorm:"type:text" json:"notes"`

	Revisions []Revision `gorm:"foreignKey:CommissionID;constraint:OnDelete:CASCADE;" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Revision is one artist-submitted iteration of artwork.
type Revision struct {
	ID             string    `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	CommissionID   string    `gorm:"type:uuid;not null;uniqueIndex:idx_revisions_commission_number,priority:1" json:"commission_id"`
	RevisionNumber int       `gorm:"not null;uniqueIndex:idx_revisions_commission_number,priority:2" json:"revision_number"`
	Artwork        string    `gorm:"not null" json:"artwork"`
	Notes          *string   `gorm:"type:text" json:"notes"`
	ClientFeedback *string   `gorm:"type:text" json:"client_feedback"`
	IsApproved     bool      `gorm:"not null" json:"is_approved"`
	CreatedAt      time.Time `json:"created_at"`
}

func (Revision) TableName() string { return "commission_revisions" }
