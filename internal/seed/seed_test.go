package seed

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const fixture = `
admin:
  username: admin
  email: Admin@Example.com
  password: secret
categories:
  - name: Portrait
    order: 2
artists:
  - username: mira
    email: mira@example.com
    password: secret
    display_name: Mira Draws
    minimum_price: "60.00"
    tags: [portrait, pets]
`

func TestParse(t *testing.T) {
	f, err := Parse([]byte(fixture))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if f.Admin == nil || f.Admin.Username != "admin" {
		t.Fatalf("admin = %+v", f.Admin)
	}
	if len(f.Categories) != 1 || f.Categories[0].Order != 2 {
		t.Fatalf("categories = %+v", f.Categories)
	}
	if len(f.Artists) != 1 {
		t.Fatalf("artists = %+v", f.Artists)
	}
	a := f.Artists[0]
	if a.Email != "mira@example.com" || a.DisplayName != "Mira Draws" {
		t.Fatalf("inline account not decoded: %+v", a)
	}
	if len(a.Tags) != 2 || a.Tags[1] != "pets" {
		t.Fatalf("tags = %v", a.Tags)
	}
}

func TestParseRejects(t *testing.T) {
	cases := map[string]string{
		"empty":          "   \n",
		"admin no email": "admin:\n  username: a\n  password: p\n",
		"nameless cat":   "categories:\n  - icon: x\n",
		"bad price":      "artists:\n  - username: a\n    email: a@x.com\n    password: p\n    minimum_price: cheap\n",
		"not yaml":       "admin: [",
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := Parse([]byte(in)); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.yaml")
	if err := os.WriteFile(path, []byte(fixture), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err != nil {
		t.Fatalf("Load: %v", err)
	}

	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil || !strings.Contains(err.Error(), "missing.yaml") {
		t.Fatalf("err = %v", err)
	}
}

func TestFirstNonEmpty(t *testing.T) {
	if got := firstNonEmpty("", "  ", "b"); got != "b" {
		t.Fatalf("got %q", got)
	}
}
