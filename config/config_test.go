package config

import "testing"

func TestLoadEnvDefaults(t *testing.T) {
	t.Setenv("DB_URL", "postgres://localhost/commissions")
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("PORT", "9090")
	t.Setenv("TX_MAX_RETRIES", "not-a-number")

	LoadEnv()

	if DB_URL != "postgres://localhost/commissions" {
		t.Fatalf("DB_URL = %q", DB_URL)
	}
	if PORT != "9090" {
		t.Fatalf("PORT = %q", PORT)
	}
	if MEDIA_URL != "http://localhost:9090/media/" {
		t.Fatalf("MEDIA_URL = %q", MEDIA_URL)
	}
	if TX_MAX_RETRIES != 3 {
		t.Fatalf("TX_MAX_RETRIES = %d, want fallback 3", TX_MAX_RETRIES)
	}
	if DEFAULT_CURRENCY != "usd" {
		t.Fatalf("DEFAULT_CURRENCY = %q", DEFAULT_CURRENCY)
	}
}

func TestGetEnvIntParses(t *testing.T) {
	t.Setenv("SOME_INT", "7")
	if got := getEnvInt("SOME_INT", 1); got != 7 {
		t.Fatalf("getEnvInt = %d, want 7", got)
	}
	if got := getEnvInt("MISSING_INT_KEY", 5); got != 5 {
		t.Fatalf("getEnvInt fallback = %d, want 5", got)
	}
}
