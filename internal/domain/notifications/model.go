package notifications

import (
	"time"

	"commission-app/internal/domain/users"

	"gorm.io/datatypes"
)

type Type string

const (
	CommissionRequest   Type = "commission_request"
	CommissionAccepted  Type = "commission_accepted"
	CommissionRejected  Type = "commission_rejected"
	CommissionUpdate    Type = "commission_update"
	CommissionCompleted Type = "commission_completed"
	RevisionSubmitted   Type = "revision_submitted"
	PaymentReceived     Type = "payment_received"
	PaymentSent         Type = "payment_sent"
	ReviewReceived      Type = "review_received"
	System              Type = "system"
)

type Notification struct {
	ID        uint              `gorm:"primaryKey" json:"id"`
	UserID    uint              `gorm:"not null;index:idx_notifications_user_read,priority:1" json:"-"`
	User      users.User        `gorm:"constraint:OnDelete:CASCADE;" json:"-"`
	Type      Type              `gorm:"type:varchar(30);not null" json:"notification_type"`
	Title     string            `gorm:"size:200;not null" json:"title"`
	Message   string            `gorm:"type:text;not null" json:"message"`
	Link      *string           `json:"link"`
	Data      datatypes.JSONMap `gorm:"type:jsonb" json:"data"`
	IsRead    bool              `gorm:"not null;index:idx_notifications_user_read,priority:2" json:"is_read"`
	ReadAt    *time.Time        `json:"read_at"`
	CreatedAt time.Time         `json:"created_at"`
}

// Sink receives notifications. Delivery is best effort: a failing sink never
// fails the operation that produced the notification.
type Sink interface {
	Notify(n Notification)
}
