package middleware

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"sync"

	"commission-app/internal/infra/idempotency"

	"github.com/gin-gonic/gin"
)

const IdempotencyHeader = "Idempotency-Key"

// Idempotent replays the stored response when a request repeats an
// Idempotency-Key the same user already used. Keys are scoped per user.
// A key reused for another method, path or body is rejected with 422.
// Server errors are not stored so the client can retry them.
func Idempotent(store *idempotency.Store) gin.HandlerFunc {
	locks := &keyLocks{m: map[string]*keyLock{}}

	return func(c *gin.Context) {
		key := strings.TrimSpace(c.GetHeader(IdempotencyHeader))
		if store == nil || key == "" {
			c.Next()
			return
		}
		if len(key) > 255 {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Idempotency-Key too long"})
			return
		}

		body, err := io.ReadAll(c.Request.Body)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid body"})
			return
		}
		c.Request.Body = io.NopCloser(bytes.NewReader(body))
		hash := fingerprint(c.Request.Method, c.Request.URL.Path, body)

		scoped := fmt.Sprintf("%d:%s", c.GetUint("user_id"), key)
		unlock := locks.lock(scoped)
		defer unlock()

		rec, err := store.Get(scoped)
		switch {
		case err == nil:
			if rec.RequestHash != hash {
				c.AbortWithStatusJSON(http.StatusUnprocessableEntity, gin.H{"error": "Idempotency-Key was already used with a different request"})
				return
			}
			c.Header("Idempotent-Replayed", "true")
			c.Data(rec.StatusCode, rec.ContentType, rec.Body)
			c.Abort()
			return
		case !errors.Is(err, idempotency.ErrNotFound):
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Idempotency store unavailable", "details": err.Error()})
			return
		}

		w := &recordingWriter{ResponseWriter: c.Writer}
		c.Writer = w
		c.Next()

		if w.Status() >= http.StatusInternalServerError {
			return
		}
		if _, _, err := store.Put(scoped, idempotency.Record{
			RequestHash: hash,
			StatusCode:  w.Status(),
			ContentType: w.Header().Get("Content-Type"),
			Body:        w.buf.Bytes(),
		}); err != nil {
			log.Printf("⚠️ could not store idempotent response for %s: %v", scoped, err)
		}
	}
}

// fingerprint identifies the request a key was first used for.
func fingerprint(method, path string, body []byte) string {
	h := sha256.New()
	h.Write([]byte(method + " " + path + "\n"))
	h.Write(body)
	return hex.EncodeToString(h.Sum(nil))
}

type recordingWriter struct {
	gin.ResponseWriter
	buf bytes.Buffer
}

func (w *recordingWriter) Write(b []byte) (int, error) {
	w.buf.Write(b)
	return w.ResponseWriter.Write(b)
}

func (w *recordingWriter) WriteString(s string) (int, error) {
	w.buf.WriteString(s)
	return w.ResponseWriter.WriteString(s)
}

type keyLock struct {
	sync.Mutex
	refs int
}

type keyLocks struct {
	mu sync.Mutex
	m  map[string]*keyLock
}

func (k *keyLocks) lock(key string) func() {
	k.mu.Lock()
	l, ok := k.m[key]
	if !ok {
		l = &keyLock{}
		k.m[key] = l
	}
	l.refs++
	k.mu.Unlock()

	l.Lock()
	return func() {
		l.Unlock()
		k.mu.Lock()
		l.refs--
		if l.refs == 0 {
			delete(k.m, key)
		}
		k.mu.Unlock()
	}
}
