package media

import (
	"errors"
	"testing"
)

func TestValidateReferenceImage(t *testing.T) {
	tests := []struct {
		name        string
		contentType string
		size        int64
		want        error
	}{
		{"jpeg", "image/jpeg", 1024, nil},
		{"png with params", "image/png; charset=binary", 1024, nil},
		{"gif upper", "IMAGE/GIF", 10, nil},
		{"webp at limit", "image/webp", MaxReferenceImageSize, nil},
		{"too large", "image/png", MaxReferenceImageSize + 1, ErrTooLarge},
		{"pdf", "application/pdf", 10, ErrUnsupportedType},
		{"svg", "image/svg+xml", 10, ErrUnsupportedType},
		{"empty", "", 10, ErrUnsupportedType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateReferenceImage(tt.contentType, tt.size)
			if !errors.Is(err, tt.want) {
				t.Fatalf("ValidateReferenceImage(%q, %d) = %v, want %v", tt.contentType, tt.size, err, tt.want)
			}
		})
	}
}

func TestExtension(t *testing.T) {
	tests := map[string]string{
		"image/png":        ".png",
		"image/PNG; x=y":   ".png",
		" image/webp ":     ".webp",
		"text/html":        "",
		"application/json": "",
	}
	for ct, want := range tests {
		if got := Extension(ct); got != want {
			t.Errorf("Extension(%q) = %q, want %q", ct, got, want)
		}
	}
}

func TestDetectTypeUsesContent(t *testing.T) {
	tests := []struct {
		name string
		head string
		want string
		err  error
	}{
		{"png", "\x89PNG\r\n\x1a\n rest", ".png", nil},
		{"jpeg", "\xff\xd8\xff\xe0 rest", ".jpg", nil},
		{"gif", "GIF89a rest", ".gif", nil},
		{"webp", "RIFF\x00\x00\x00\x00WEBPVP8 ", ".webp", nil},
		{"html", "<html><script>alert(1)</script></html>", "", ErrUnsupportedType},
		{"svg", `<svg xmlns="http://www.w3.org/2000/svg"></svg>`, "", ErrUnsupportedType},
		{"empty", "", "", ErrUnsupportedType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DetectType([]byte(tt.head))
			if !errors.Is(err, tt.err) || got != tt.want {
				t.Fatalf("DetectType = (%q, %v), want (%q, %v)", got, err, tt.want, tt.err)
			}
		})
	}
}

func TestRemoveByURLDropsEveryMatch(t *testing.T) {
	images := []ReferenceImage{
		{URL: "/media/a.png"},
		{URL: "/media/b.png"},
		{URL: "/media/a.png"},
		{URL: "/media/A.png"},
	}

	kept, removed := RemoveByURL(images, "/media/a.png")
	if removed != 2 {
		t.Fatalf("removed = %d, want 2", removed)
	}
	if len(kept) != 2 || kept[0].URL != "/media/b.png" || kept[1].URL != "/media/A.png" {
		t.Fatalf("kept = %+v", kept)
	}

	if _, removed := RemoveByURL(kept, "/media/missing.png"); removed != 0 {
		t.Fatalf("removed = %d for an unknown url", removed)
	}
}
