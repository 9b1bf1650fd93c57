package storage

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path"
	"path/filepath"
	"strings"

	"commission-app/config"
)

var ErrOutsideRoot = errors.New("storage: path escapes media root")

// Store keeps uploaded files and hands back public URLs for them.
type Store interface {
	Save(key string, r io.Reader) (string, error)
	Delete(url string) error
}

// LocalStore writes files under Root and serves them below BaseURL.
type LocalStore struct {
	Root    string
	BaseURL string
}

func NewLocal(root, baseURL string) *LocalStore {
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}
	return &LocalStore{Root: root, BaseURL: baseURL}
}

// Default is the store configured through MEDIA_ROOT and MEDIA_URL.
func Default() Store {
	return NewLocal(config.MEDIA_ROOT, config.MEDIA_URL)
}

func (s *LocalStore) pathFor(key string) (string, error) {
	clean := path.Clean("/" + key)
	full := filepath.Join(s.Root, filepath.FromSlash(clean))
	root, err := filepath.Abs(s.Root)
	if err != nil {
		return "", err
	}
	abs, err := filepath.Abs(full)
	if err != nil {
		return "", err
	}
	if !strings.HasPrefix(abs, root+string(os.PathSeparator)) {
		return "", ErrOutsideRoot
	}
	return abs, nil
}

func (s *LocalStore) Save(key string, r io.Reader) (string, error) {
	dst, err := s.pathFor(key)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return "", fmt.Errorf("create media dir: %w", err)
	}

	f, err := os.Create(dst)
	if err != nil {
		return "", fmt.Errorf("create media file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		_ = os.Remove(dst)
		return "", fmt.Errorf("write media file: %w", err)
	}
	return s.BaseURL + strings.TrimPrefix(path.Clean("/"+key), "/"), nil
}

// Delete removes the file behind a URL this store produced. Missing files
// and foreign URLs are ignored.
func (s *LocalStore) Delete(url string) error {
	if !strings.HasPrefix(url, s.BaseURL) {
		return nil
	}
	dst, err := s.pathFor(strings.TrimPrefix(url, s.BaseURL))
	if err != nil {
		return err
	}
	if err := os.Remove(dst); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}

// DeleteQuietly is for cleanup paths where a leftover file is not worth an error.
func DeleteQuietly(s Store, url string) {
	if err := s.Delete(url); err != nil {
		log.Printf("⚠️ could not delete media %s: %v", url, err)
	}
}
