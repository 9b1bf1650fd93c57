package billing

import (
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestPlatformFee(t *testing.T) {
	tests := []struct {
		amount string
		fee    string
		net    string
	}{
		{"100.00", "5", "95"},
		{"150.00", "7.5", "142.5"},
		{"19.99", "1", "18.99"},
		{"10.10", "0.51", "9.59"},
		{"0.01", "0", "0.01"},
	}

	for _, tt := range tests {
		t.Run(tt.amount, func(t *testing.T) {
			amount := decimal.RequireFromString(tt.amount)
			fee := PlatformFee(amount)
			if !fee.Equal(decimal.RequireFromString(tt.fee)) {
				t.Fatalf("PlatformFee(%s) = %s, want %s", tt.amount, fee, tt.fee)
			}
			if net := NetAmount(amount, fee); !net.Equal(decimal.RequireFromString(tt.net)) {
				t.Fatalf("NetAmount = %s, want %s", net, tt.net)
			}
		})
	}
}

func TestNewTransactionID(t *testing.T) {
	re := regexp.MustCompile(`^TXN-[0-9A-F]{12}$`)
	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		id := NewTransactionID()
		if !re.MatchString(id) {
			t.Fatalf("transaction id %q has wrong shape", id)
		}
		if seen[id] {
			t.Fatalf("duplicate transaction id %q", id)
		}
		seen[id] = true
	}
}

func TestNewPayment(t *testing.T) {
	p, err := NewPayment("c-1", 1, 2, decimal.RequireFromString("150.00"), "USD", "")
	if err != nil {
		t.Fatalf("NewPayment: %v", err)
	}
	if p.Status != PaymentPending || p.Type != TypeCommission {
		t.Fatalf("unexpected defaults: %+v", p)
	}
	if !p.PlatformFee.Equal(decimal.RequireFromString("7.50")) || !p.NetAmount.Equal(decimal.RequireFromString("142.50")) {
		t.Fatalf("fee/net = %s/%s", p.PlatformFee, p.NetAmount)
	}
	if p.TransactionID == nil {
		t.Fatal("transaction id missing")
	}

	if _, err := NewPayment("c-1", 1, 2, decimal.Zero, "USD", TypeTip); !errors.Is(err, ErrInvalidAmount) {
		t.Fatalf("zero amount err = %v", err)
	}
}

func TestMarkCompleted(t *testing.T) {
	now := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	p := &Payment{Status: PaymentPending}

	if err := MarkCompleted(p, now); err != nil {
		t.Fatalf("MarkCompleted: %v", err)
	}
	if p.Status != PaymentCompleted || p.PaidAt == nil || !p.PaidAt.Equal(now) {
		t.Fatalf("payment not settled: %+v", p)
	}

	if err := MarkCompleted(p, now.Add(time.Hour)); !errors.Is(err, ErrPaymentNotPending) {
		t.Fatalf("second MarkCompleted err = %v", err)
	}
	if !p.PaidAt.Equal(now) {
		t.Fatal("paid_at changed on rejected processing")
	}

	for _, s := range []PaymentStatus{PaymentProcessing, PaymentFailed, PaymentRefunded, PaymentCancelled} {
		if err := MarkCompleted(&Payment{Status: s}, now); !errors.Is(err, ErrPaymentNotPending) {
			t.Fatalf("status %s: err = %v", s, err)
		}
	}
}
