package artists

import (
	"testing"

	"github.com/shopspring/decimal"
)

func dec(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func TestArtistInputValidate(t *testing.T) {
	zero := 0
	seven := 7

	tests := []struct {
		name    string
		in      ArtistInput
		wantErr bool
	}{
		{"empty", ArtistInput{}, false},
		{"valid range", ArtistInput{MinimumPrice: dec("50"), MaximumPrice: dec("500"), TurnaroundDays: &seven}, false},
		{"negative rate", ArtistInput{HourlyRate: dec("-1")}, true},
		{"inverted range", ArtistInput{MinimumPrice: dec("100"), MaximumPrice: dec("20")}, true},
		{"zero turnaround", ArtistInput{TurnaroundDays: &zero}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.in.validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("validate() err = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
