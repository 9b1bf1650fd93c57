package upload

import (
	"bytes"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"commission-app/internal/domain/media"
	"commission-app/internal/infra/storage"

	"github.com/gin-gonic/gin"
)

func multipartRequest(t *testing.T, field, filename, contentType string, body []byte) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	h := textproto.MIMEHeader{}
	h.Set("Content-Disposition", `form-data; name="`+field+`"; filename="`+filename+`"`)
	h.Set("Content-Type", contentType)
	part, err := w.CreatePart(h)
	if err != nil {
		t.Fatal(err)
	}
	part.Write(body)
	w.Close()

	req := httptest.NewRequest(http.MethodPost, "/upload", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return req
}

const pngHeader = "\x89PNG\r\n\x1a\n"

func TestImageStoresValidUpload(t *testing.T) {
	gin.SetMode(gin.TestMode)
	store := storage.NewLocal(t.TempDir(), "/media/")

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = multipartRequest(t, "image", "ref.png", "image/png", append([]byte(pngHeader), "pixels"...))

	img, err := Image(c, store, "image", "commissions/references/abc")
	if err != nil {
		t.Fatalf("Image: %v", err)
	}
	if !strings.HasPrefix(img.URL, "/media/commissions/references/abc/") || !strings.HasSuffix(img.URL, ".png") {
		t.Fatalf("url = %q", img.URL)
	}
	if img.Filename != "ref.png" || img.UploadedAt.IsZero() {
		t.Fatalf("unexpected image %+v", img)
	}
}

func TestImageRejectsWrongType(t *testing.T) {
	gin.SetMode(gin.TestMode)
	store := storage.NewLocal(t.TempDir(), "/media/")

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = multipartRequest(t, "image", "notes.pdf", "application/pdf", []byte("%PDF"))

	_, err := Image(c, store, "image", "x")
	var ue *Error
	if !errors.As(err, &ue) || ue.Status != http.StatusBadRequest || !errors.Is(err, media.ErrUnsupportedType) {
		t.Fatalf("err = %v", err)
	}
}

func TestImageMissingField(t *testing.T) {
	gin.SetMode(gin.TestMode)

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = multipartRequest(t, "other", "a.png", "image/png", []byte("x"))

	_, err := Image(c, storage.NewLocal(t.TempDir(), "/media/"), "image", "x")
	if err == nil {
		t.Fatal("expected an error for a missing field")
	}
	Respond(c, err)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", rec.Code)
	}
}

func TestImageIgnoresClientExtension(t *testing.T) {
	gin.SetMode(gin.TestMode)
	store := storage.NewLocal(t.TempDir(), "/media/")

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = multipartRequest(t, "image", "photo.html", "image/png", append([]byte(pngHeader), "pixels"...))

	img, err := Image(c, store, "image", "x")
	if err != nil {
		t.Fatalf("Image: %v", err)
	}
	if !strings.HasSuffix(img.URL, ".png") {
		t.Fatalf("url = %q, want a .png key", img.URL)
	}
}

func TestImageRejectsMarkupDeclaredAsImage(t *testing.T) {
	gin.SetMode(gin.TestMode)
	dir := t.TempDir()
	store := storage.NewLocal(dir, "/media/")

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = multipartRequest(t, "image", "evil.html", "image/png", []byte("<html><script>alert(1)</script></html>"))

	_, err := Image(c, store, "image", "x")
	var ue *Error
	if !errors.As(err, &ue) || ue.Status != http.StatusBadRequest || !errors.Is(err, media.ErrUnsupportedType) {
		t.Fatalf("err = %v", err)
	}
	entries, _ := os.ReadDir(filepath.Join(dir, "x"))
	if len(entries) != 0 {
		t.Fatalf("rejected upload was stored: %v", entries)
	}
}
