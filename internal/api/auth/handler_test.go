package auth

import (
	"testing"

	"commission-app/config"
	"commission-app/internal/domain/users"

	"github.com/golang-jwt/jwt/v5"
)

func TestIsPasswordStrong(t *testing.T) {
	tests := map[string]bool{
		"short1":      false,
		"lettersonly": false,
		"12345678":    false,
		"brushes42":   true,
		"Ink&Paper9":  true,
	}
	for pw, want := range tests {
		if got := isPasswordStrong(pw); got != want {
			t.Errorf("isPasswordStrong(%q) = %v, want %v", pw, got, want)
		}
	}
}

func TestIsEmailValid(t *testing.T) {
	if !isEmailValid("artist@example.com") {
		t.Error("valid email rejected")
	}
	if isEmailValid("artist@localhost") {
		t.Error("email without tld accepted")
	}
}

func TestNewArtistProfile(t *testing.T) {
	a := newArtistProfile(users.User{ID: 4, Username: "inky", FirstName: "Ada"})
	if a.UserID != 4 || a.DisplayName != "Ada" || !a.IsAcceptingCommissions || a.Status != "pending" {
		t.Fatalf("unexpected profile %+v", a)
	}
}

func TestIssueToken(t *testing.T) {
	config.JWT_SECRET = "test-secret"

	raw, err := IssueToken(users.User{ID: 12, Email: "c@example.com", Role: users.RoleClient})
	if err != nil {
		t.Fatalf("IssueToken: %v", err)
	}

	tok, err := jwt.Parse(raw, func(*jwt.Token) (interface{}, error) { return []byte("test-secret"), nil })
	if err != nil || !tok.Valid {
		t.Fatalf("token did not verify: %v", err)
	}
	claims := tok.Claims.(jwt.MapClaims)
	if claims["user_id"].(float64) != 12 || claims["role"] != "client" {
		t.Fatalf("claims = %v", claims)
	}
}
