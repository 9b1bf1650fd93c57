package billing

import (
	"time"

	"commission-app/internal/domain/commissions"
	"commission-app/internal/domain/users"

	"github.com/shopspring/decimal"
	"github.com/stripe/stripe-go/v75"
	"gorm.io/datatypes"
)

type PaymentStatus string

const (
	PaymentPending    PaymentStatus = "pending"
	PaymentProcessing PaymentStatus = "processing"
	PaymentCompleted  PaymentStatus = "completed"
	PaymentFailed     PaymentStatus = "failed"
	PaymentRefunded   PaymentStatus = "refunded"
	PaymentCancelled  PaymentStatus = "cancelled"
)

type PaymentType string

const (
	TypeCommission PaymentType = "commission"
	TypeDeposit    PaymentType = "deposit"
	TypeRefund     PaymentType = "refund"
	TypeTip        PaymentType = "tip"
)

func (t PaymentType) Valid() bool {
	switch t {
	case TypeCommission, TypeDeposit, TypeRefund, TypeTip:
		return true
	}
	return false
}

type MethodType string

const (
	MethodCreditCard   MethodType = "credit_card"
	MethodDebitCard    MethodType = "debit_card"
	MethodPayPal       MethodType = "paypal"
	MethodBankTransfer MethodType = "bank_transfer"
)

func (t MethodType) Valid() bool {
	switch t {
	case MethodCreditCard, MethodDebitCard, MethodPayPal, MethodBankTransfer:
		return true
	}
	return false
}

type PaymentMethod struct {
	ID        uint              `gorm:"primaryKey" json:"id"`
	UserID    uint              `gorm:"not null;index" json:"-"`
	User      users.User        `gorm:"constraint:OnDelete:CASCADE;" json:"-"`
	Type      MethodType        `gorm:"type:varchar(20);not null" json:"type"`
	Name      string            `gorm:"size:100;not null" json:"name"`
	Details   datatypes.JSONMap `gorm:"type:jsonb" json:"details"`
	IsDefault bool              `gorm:"not null" json:"is_default"`
	IsActive  bool              `gorm:"not null" json:"is_active"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
}

type Payment struct {
	ID string `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`

	CommissionID    string                 `gorm:"type:uuid;not null;index" json:"commission_id"`
	Commission      commissions.Commission `gorm:"constraint:OnDelete:CASCADE;" json:"-"`
	PayerID         uint                   `gorm:"not null;index" json:"payer_id"`
	Payer           users.User             `gorm:"constraint:OnDelete:CASCADE;" json:"-"`
	PayeeID         uint                   `gorm:"not null;index" json:"payee_id"`
	Payee           users.User             `gorm:"constraint:OnDelete:CASCADE;" json:"-"`
	PaymentMethodID *uint                  `gorm:"index" json:"payment_method_id"`
	PaymentMethod   *PaymentMethod         `gorm:"constraint:OnDelete:SET NULL;" json:"-"`

	Amount      decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"amount"`
	PlatformFee decimal.Decimal `gorm:"type:numeric(10,2);not null;default:0" json:"platform_fee"`
	NetAmount   decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"net_amount"`
	Currency    stripe.Currency `gorm:"size:3;not null" json:"currency"`

	Type          PaymentType   `gorm:"type:varchar(20);not null;default:'commission'" json:"payment_type"`
	Status        PaymentStatus `gorm:"type:varchar(20);not null;default:'pending';index" json:"status"`
	TransactionID *string       `gorm:"size:255;uniqueIndex" json:"transaction_id"`
	Notes         *string       `gorm:"type:text" json:"notes"`
	PaidAt        *time.Time    `json:"paid_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
