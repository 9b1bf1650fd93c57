package billing

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stripe/stripe-go/v75"
)

var platformFeeRate = decimal.RequireFromString("0.05")

var (
	ErrNotFound          = errors.New("Payment not found")
	ErrPaymentNotPending = errors.New("Payment is not in pending status")
	ErrInvalidAmount     = errors.New("Amount must be greater than zero")
)

// PlatformFee is 5% of amount, rounded to cents.
func PlatformFee(amount decimal.Decimal) decimal.Decimal {
	return amount.Mul(platformFeeRate).Round(2)
}

func NetAmount(amount, fee decimal.Decimal) decimal.Decimal {
	return amount.Sub(fee)
}

// NewTransactionID returns "TXN-" followed by 12 upper-case hex digits.
func NewTransactionID() string {
	hex := strings.ReplaceAll(uuid.NewString(), "-", "")
	return "TXN-" + strings.ToUpper(hex[:12])
}

// NewPayment fills in the derived money fields of a fresh pending payment.
func NewPayment(commissionID string, payerID, payeeID uint, amount decimal.Decimal, currency stripe.Currency, typ PaymentType) (*Payment, error) {
	if !amount.IsPositive() {
		return nil, ErrInvalidAmount
	}
	if typ == "" {
		typ = TypeCommission
	}

	fee := PlatformFee(amount)
	txn := NewTransactionID()
	return &Payment{
		CommissionID:  commissionID,
		PayerID:       payerID,
		PayeeID:       payeeID,
		Amount:        amount,
		PlatformFee:   fee,
		NetAmount:     NetAmount(amount, fee),
		Currency:      currency,
		Type:          typ,
		Status:        PaymentPending,
		TransactionID: &txn,
	}, nil
}

// MarkCompleted settles a pending payment.
func MarkCompleted(p *Payment, now time.Time) error {
	if p.Status != PaymentPending {
		return ErrPaymentNotPending
	}
	p.Status = PaymentCompleted
	paid := now
	p.PaidAt = &paid
	return nil
}
