package stripe

import (
	"strings"

	stripego "github.com/stripe/stripe-go/v75"
)

// Currencies payments may be recorded in.
var supported = map[stripego.Currency]bool{
	stripego.CurrencyUSD: true,
	stripego.CurrencyEUR: true,
	stripego.CurrencyGBP: true,
	stripego.CurrencyCAD: true,
	stripego.CurrencyAUD: true,
	stripego.CurrencyJPY: true,
	stripego.CurrencyINR: true,
}

// NormalizeCurrency maps a user supplied code onto the stored upper-case ISO
// form. Empty input falls back to def. Stripe accepts codes in either case.
func NormalizeCurrency(code, def string) (stripego.Currency, bool) {
	c := strings.ToLower(strings.TrimSpace(code))
	if c == "" {
		c = strings.ToLower(strings.TrimSpace(def))
	}
	if !supported[stripego.Currency(c)] {
		return "", false
	}
	return stripego.Currency(strings.ToUpper(c)), true
}
