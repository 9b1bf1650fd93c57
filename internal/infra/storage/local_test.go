package storage

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLocalStoreSaveAndDelete(t *testing.T) {
	root := t.TempDir()
	s := NewLocal(root, "http://localhost:8080/media")

	url, err := s.Save("commissions/references/abc/one.png", strings.NewReader("png-bytes"))
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if url != "http://localhost:8080/media/commissions/references/abc/one.png" {
		t.Fatalf("url = %q", url)
	}

	data, err := os.ReadFile(filepath.Join(root, "commissions", "references", "abc", "one.png"))
	if err != nil {
		t.Fatalf("read stored file: %v", err)
	}
	if string(data) != "png-bytes" {
		t.Fatalf("stored content = %q", data)
	}

	if err := s.Delete(url); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := os.Stat(filepath.Join(root, "commissions", "references", "abc", "one.png")); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("file still present: %v", err)
	}

	if err := s.Delete(url); err != nil {
		t.Fatalf("Delete of missing file: %v", err)
	}
	if err := s.Delete("https://cdn.example.com/x.png"); err != nil {
		t.Fatalf("Delete of foreign url: %v", err)
	}
}

func TestLocalStoreKeepsKeysInsideRoot(t *testing.T) {
	root := t.TempDir()
	s := NewLocal(root, "/media/")

	url, err := s.Save("../../escape.txt", strings.NewReader("x"))
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if url != "/media/escape.txt" {
		t.Fatalf("url = %q", url)
	}
	if _, err := os.Stat(filepath.Join(root, "escape.txt")); err != nil {
		t.Fatalf("file not written inside root: %v", err)
	}
}
