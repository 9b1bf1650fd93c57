package idempotency_test

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"commission-app/internal/infra/idempotency"
)

func newTestStore(t *testing.T) *idempotency.Store {
	t.Helper()
	s, err := idempotency.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestGetMissing(t *testing.T) {
	s := newTestStore(t)
	if _, err := s.Get("7:missing"); !errors.Is(err, idempotency.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestPutKeepsFirstRecord(t *testing.T) {
	s := newTestStore(t)

	first, created, err := s.Put("7:key-1", idempotency.Record{
		RequestHash: "abc",
		StatusCode:  201,
		ContentType: "application/json",
		Body:        []byte(`{"id":"p-1"}`),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !created {
		t.Fatal("expected created=true on first put")
	}
	if first.CreatedAt.IsZero() {
		t.Fatal("created_at not stamped")
	}

	second, created, err := s.Put("7:key-1", idempotency.Record{StatusCode: 400, Body: []byte(`{}`)})
	if err != nil {
		t.Fatalf("unexpected error on retry: %v", err)
	}
	if created {
		t.Fatal("expected created=false for a taken key")
	}
	if second.StatusCode != 201 || string(second.Body) != `{"id":"p-1"}` {
		t.Fatalf("stored record was replaced: %+v", second)
	}

	got, err := s.Get("7:key-1")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.RequestHash != "abc" || !got.CreatedAt.Equal(first.CreatedAt) {
		t.Fatalf("Get returned %+v", got)
	}
}

func TestPurge(t *testing.T) {
	s := newTestStore(t)
	now := time.Now().UTC()

	if _, _, err := s.Put("old", idempotency.Record{StatusCode: 201, CreatedAt: now.Add(-48 * time.Hour)}); err != nil {
		t.Fatal(err)
	}
	if _, _, err := s.Put("fresh", idempotency.Record{StatusCode: 201, CreatedAt: now}); err != nil {
		t.Fatal(err)
	}

	n, err := s.Purge(now.Add(-24 * time.Hour))
	if err != nil {
		t.Fatalf("Purge: %v", err)
	}
	if n != 1 {
		t.Fatalf("purged %d records, want 1", n)
	}
	if _, err := s.Get("old"); !errors.Is(err, idempotency.ErrNotFound) {
		t.Fatalf("old record still present: %v", err)
	}
	if _, err := s.Get("fresh"); err != nil {
		t.Fatalf("fresh record gone: %v", err)
	}
}
