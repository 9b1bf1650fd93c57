package middleware

import (
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"commission-app/internal/infra/idempotency"

	"github.com/gin-gonic/gin"
)

func newIdemStore(t *testing.T) *idempotency.Store {
	t.Helper()
	s, err := idempotency.Open(filepath.Join(t.TempDir(), "idem.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

// idemRouter counts handler runs. status picks the handler's answer.
func idemRouter(store *idempotency.Store, calls *int, status int) *gin.Engine {
	r := gin.New()
	r.POST("/payments", func(c *gin.Context) {
		c.Set("user_id", uint(7))
		c.Next()
	}, Idempotent(store), func(c *gin.Context) {
		*calls++
		c.JSON(status, gin.H{"call": *calls})
	})
	return r
}

func post(r *gin.Engine, key, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/payments", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if key != "" {
		req.Header.Set(IdempotencyHeader, key)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestIdempotentReplaysFirstResponse(t *testing.T) {
	calls := 0
	r := idemRouter(newIdemStore(t), &calls, http.StatusCreated)

	first := post(r, "k1", `{"amount":"10.00"}`)
	second := post(r, "k1", `{"amount":"10.00"}`)

	if calls != 1 {
		t.Fatalf("handler ran %d times", calls)
	}
	if second.Code != http.StatusCreated || second.Body.String() != first.Body.String() {
		t.Fatalf("replay = %d %q, first = %q", second.Code, second.Body.String(), first.Body.String())
	}
	if second.Header().Get("Idempotent-Replayed") != "true" {
		t.Fatal("replay header missing")
	}
	if first.Header().Get("Idempotent-Replayed") != "" {
		t.Fatal("first response marked as replay")
	}
}

func TestIdempotentRejectsReusedKeyWithOtherBody(t *testing.T) {
	calls := 0
	r := idemRouter(newIdemStore(t), &calls, http.StatusCreated)

	post(r, "k1", `{"amount":"10.00"}`)
	w := post(r, "k1", `{"amount":"99.00"}`)

	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d", w.Code)
	}
	if calls != 1 {
		t.Fatalf("handler ran %d times", calls)
	}
}

func TestIdempotentWithoutKey(t *testing.T) {
	calls := 0
	r := idemRouter(newIdemStore(t), &calls, http.StatusCreated)

	post(r, "", `{}`)
	post(r, "", `{}`)

	if calls != 2 {
		t.Fatalf("handler ran %d times", calls)
	}
}

func TestIdempotentDoesNotStoreServerErrors(t *testing.T) {
	calls := 0
	r := idemRouter(newIdemStore(t), &calls, http.StatusInternalServerError)

	post(r, "k1", `{}`)
	w := post(r, "k1", `{}`)

	if calls != 2 {
		t.Fatalf("handler ran %d times", calls)
	}
	if w.Header().Get("Idempotent-Replayed") != "" {
		t.Fatal("server error was replayed")
	}
}

func TestIdempotentRejectsLongKey(t *testing.T) {
	calls := 0
	r := idemRouter(newIdemStore(t), &calls, http.StatusCreated)

	w := post(r, strings.Repeat("k", 256), `{}`)
	if w.Code != http.StatusBadRequest || calls != 0 {
		t.Fatalf("status = %d calls = %d", w.Code, calls)
	}
}

func TestIdempotentRejectsKeyReusedOnOtherPath(t *testing.T) {
	calls := []string{}
	r := gin.New()
	r.POST("/payments/:id/process", func(c *gin.Context) {
		c.Set("user_id", uint(7))
		c.Next()
	}, Idempotent(newIdemStore(t)), func(c *gin.Context) {
		calls = append(calls, c.Param("id"))
		c.JSON(http.StatusOK, gin.H{"id": c.Param("id")})
	})

	process := func(id string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/payments/"+id+"/process", nil)
		req.Header.Set(IdempotencyHeader, "same-key")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	if w := process("11"); w.Code != http.StatusOK {
		t.Fatalf("first process = %d", w.Code)
	}
	w := process("12")
	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("second payment = %d %s, want 422", w.Code, w.Body.String())
	}
	if w.Header().Get("Idempotent-Replayed") != "" {
		t.Fatal("response for another payment was replayed")
	}
	if len(calls) != 1 || calls[0] != "11" {
		t.Fatalf("handler calls = %v", calls)
	}

	if w := process("11"); w.Code != http.StatusOK || w.Header().Get("Idempotent-Replayed") != "true" {
		t.Fatalf("repeat of the first request = %d replayed=%q", w.Code, w.Header().Get("Idempotent-Replayed"))
	}
}
