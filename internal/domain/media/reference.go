package media

import (
	"errors"
	"net/http"
	"strings"
	"time"
)

const MaxReferenceImageSize = 5 << 20

// SniffLen is how many leading bytes DetectType looks at.
const SniffLen = 512

var (
	ErrUnsupportedType = errors.New("Invalid file type. Allowed types: JPEG, PNG, GIF, WebP")
	ErrTooLarge        = errors.New("File size must be less than 5MB")
)

var allowedTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
	"image/webp": ".webp",
}

// ReferenceImage is one entry of a commission's ordered reference list.
type ReferenceImage struct {
	URL        string    `json:"url"`
	Filename   string    `json:"filename"`
	UploadedAt time.Time `json:"uploaded_at"`
}

// NormalizeType lowercases a media type and drops its parameters.
func NormalizeType(contentType string) string {
	ct := strings.ToLower(strings.TrimSpace(contentType))
	if i := strings.Index(ct, ";"); i >= 0 {
		ct = strings.TrimSpace(ct[:i])
	}
	return ct
}

// ValidateReferenceImage checks the declared content type and size of an upload.
func ValidateReferenceImage(contentType string, size int64) error {
	if _, ok := allowedTypes[NormalizeType(contentType)]; !ok {
		return ErrUnsupportedType
	}
	if size > MaxReferenceImageSize {
		return ErrTooLarge
	}
	return nil
}

// DetectType sniffs the leading bytes of an upload and returns the stored
// extension for it. The client's filename and declared type play no part.
func DetectType(head []byte) (string, error) {
	ext := Extension(http.DetectContentType(head))
	if ext == "" {
		return "", ErrUnsupportedType
	}
	return ext, nil
}

// Extension maps an allowed image type to its file extension, or "".
func Extension(contentType string) string {
	return allowedTypes[NormalizeType(contentType)]
}

// RemoveByURL drops every entry whose URL equals url exactly and reports how
// many were removed. Order of the remaining entries is kept.
func RemoveByURL(images []ReferenceImage, url string) ([]ReferenceImage, int) {
	kept := make([]ReferenceImage, 0, len(images))
	for _, img := range images {
		if img.URL != url {
			kept = append(kept, img)
		}
	}
	return kept, len(images) - len(kept)
}
