package notifications

import "testing"

func TestNewStatusChangeType(t *testing.T) {
	tests := map[string]Type{
		"accepted":    CommissionAccepted,
		"rejected":    CommissionRejected,
		"completed":   CommissionCompleted,
		"in_progress": CommissionUpdate,
		"delivered":   CommissionUpdate,
	}
	for status, want := range tests {
		n := NewStatusChange(3, "abc", "Portrait", status)
		if n.Type != want {
			t.Errorf("status %s: type = %s, want %s", status, n.Type, want)
		}
		if n.UserID != 3 || n.Link == nil || *n.Link != "/commissions/abc" {
			t.Errorf("status %s: unexpected notification %+v", status, n)
		}
	}
}

func TestNewPaymentProcessed(t *testing.T) {
	sent, received := NewPaymentProcessed(1, 2, "p-1", "150.00", "USD")
	if sent.UserID != 1 || sent.Type != PaymentSent {
		t.Fatalf("sent = %+v", sent)
	}
	if received.UserID != 2 || received.Type != PaymentReceived {
		t.Fatalf("received = %+v", received)
	}
}
