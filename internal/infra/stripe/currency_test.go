package stripe

import (
	"testing"

	stripego "github.com/stripe/stripe-go/v75"
)

func TestNormalizeCurrency(t *testing.T) {
	tests := []struct {
		code, def string
		want      stripego.Currency
		ok        bool
	}{
		{"usd", "usd", "USD", true},
		{" EUR ", "usd", "EUR", true},
		{"", "gbp", "GBP", true},
		{"", "", "", false},
		{"xyz", "usd", "", false},
		{"btc", "usd", "", false},
	}

	for _, tt := range tests {
		got, ok := NormalizeCurrency(tt.code, tt.def)
		if got != tt.want || ok != tt.ok {
			t.Errorf("NormalizeCurrency(%q, %q) = %q, %v; want %q, %v", tt.code, tt.def, got, ok, tt.want, tt.ok)
		}
	}
}
