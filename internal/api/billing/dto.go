package billing

import (
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

type MethodInput struct {
	Type      string            `json:"type"`
	Name      string            `json:"name"`
	Details   datatypes.JSONMap `json:"details"`
	IsDefault *bool             `json:"is_default"`
}

type MethodUpdateInput struct {
	Name      *string           `json:"name"`
	Details   datatypes.JSONMap `json:"details"`
	IsDefault *bool             `json:"is_default"`
	IsActive  *bool             `json:"is_active"`
}

type CreatePaymentInput struct {
	CommissionID    string          `json:"commission_id" binding:"required"`
	Amount          decimal.Decimal `json:"amount"`
	Currency        string          `json:"currency"`
	PaymentType     string          `json:"payment_type"`
	PaymentMethodID *uint           `json:"payment_method_id"`
	Notes           *string         `json:"notes"`
}

type PaymentStats struct {
	TotalPaid       decimal.Decimal `json:"total_paid"`
	TotalReceived   decimal.Decimal `json:"total_received"`
	PendingOutgoing int64           `json:"pending_outgoing"`
	PendingIncoming int64           `json:"pending_incoming"`
	CompletedCount  int64           `json:"completed_payments"`
}

type AdminPaymentStats struct {
	TotalPayments    int64            `json:"total_payments"`
	PaymentsByStatus map[string]int64 `json:"payments_by_status"`
	TotalVolume      decimal.Decimal  `json:"total_volume"`
	PlatformFees     decimal.Decimal  `json:"platform_fees"`
	VolumeLast30Days decimal.Decimal  `json:"volume_last_30_days"`
	FeesLast30Days   decimal.Decimal  `json:"fees_last_30_days"`
}
