package upload

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"commission-app/internal/domain/media"
	"commission-app/internal/infra/storage"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Error carries the status code an upload failure should answer with.
type Error struct {
	Status int
	Err    error
}

func (e *Error) Error() string { return e.Err.Error() }
func (e *Error) Unwrap() error { return e.Err }

// Image validates the multipart file in field and stores it under
// prefix/<uuid><ext>, where ext comes from the sniffed file content.
func Image(c *gin.Context, store storage.Store, field, prefix string) (*media.ReferenceImage, error) {
	fh, err := c.FormFile(field)
	if err != nil {
		return nil, &Error{Status: http.StatusBadRequest, Err: errors.New("No image file provided")}
	}

	contentType := fh.Header.Get("Content-Type")
	if err := media.ValidateReferenceImage(contentType, fh.Size); err != nil {
		return nil, &Error{Status: http.StatusBadRequest, Err: err}
	}

	f, err := fh.Open()
	if err != nil {
		return nil, &Error{Status: http.StatusBadRequest, Err: errors.New("Could not read uploaded file")}
	}
	defer f.Close()

	head := make([]byte, media.SniffLen)
	n, err := io.ReadFull(f, head)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return nil, &Error{Status: http.StatusBadRequest, Err: errors.New("Could not read uploaded file")}
	}
	head = head[:n]
	ext, err := media.DetectType(head)
	if err != nil {
		return nil, &Error{Status: http.StatusBadRequest, Err: err}
	}

	key := fmt.Sprintf("%s/%s%s", prefix, uuid.NewString(), ext)
	url, err := store.Save(key, io.MultiReader(bytes.NewReader(head), f))
	if err != nil {
		return nil, &Error{Status: http.StatusInternalServerError, Err: err}
	}

	return &media.ReferenceImage{
		URL:        url,
		Filename:   fh.Filename,
		UploadedAt: time.Now().UTC(),
	}, nil
}

// Respond writes err the way handlers answer upload failures.
func Respond(c *gin.Context, err error) {
	var ue *Error
	if errors.As(err, &ue) {
		if ue.Status >= http.StatusInternalServerError {
			c.JSON(ue.Status, gin.H{"error": "Failed to store file", "details": ue.Err.Error()})
			return
		}
		c.JSON(ue.Status, gin.H{"error": ue.Err.Error()})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store file", "details": err.Error()})
}
