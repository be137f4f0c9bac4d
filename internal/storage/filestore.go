// Package storage provides opaque blob storage for uploaded files.
//
// Callers hold only the returned handle; they never build paths themselves.
// A handle may stop resolving after the fact (file removed out of band);
// display code renders a placeholder instead of failing.
package storage

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/google/uuid"
)

// ErrNotFound reports a handle that no longer resolves to a stored file.
var ErrNotFound = errors.New("stored file not found")

// FileStore stores opaque blobs and resolves them by handle.
type FileStore interface {
	Store(filename string, data []byte) (handle string, err error)
	Resolve(handle string) ([]byte, error)
}

// DiskStore is a FileStore backed by a single flat directory.
//
// Filename collisions are rejected by disambiguation: the stored handle
// gains a short unique suffix, so an upload never overwrites an earlier one.
type DiskStore struct {
	dir string
}

// NewDiskStore creates the directory if needed and returns a store over it.
func NewDiskStore(dir string) (*DiskStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &DiskStore{dir: dir}, nil
}

// Store writes data under a handle derived from filename. The handle is the
// caller's only reference to the blob.
func (s *DiskStore) Store(filename string, data []byte) (string, error) {
	handle := sanitizeFilename(filename)
	path := filepath.Join(s.dir, handle)

	if _, err := os.Stat(path); err == nil {
		handle = disambiguate(handle)
		path = filepath.Join(s.dir, handle)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("store file: %w", err)
	}
	return handle, nil
}

// Resolve returns the blob for handle, or ErrNotFound when the underlying
// file is gone.
func (s *DiskStore) Resolve(handle string) ([]byte, error) {
	if handle == "" || handle != sanitizeFilename(handle) {
		return nil, ErrNotFound
	}
	data, err := os.ReadFile(filepath.Join(s.dir, handle))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return data, nil
}

// sanitizeFilename strips any path components so handles cannot escape the
// store directory.
func sanitizeFilename(name string) string {
	name = filepath.Base(strings.ReplaceAll(name, "\\", "/"))
	if name == "." || name == ".." || name == "/" {
		return "file"
	}
	return name
}

// disambiguate inserts a short unique suffix before the extension.
func disambiguate(handle string) string {
	ext := filepath.Ext(handle)
	stem := strings.TrimSuffix(handle, ext)
	return fmt.Sprintf("%s-%s%s", stem, uuid.New().String()[:8], ext)
}

var (
	placeholderOnce sync.Once
	placeholderPNG  []byte
)

// PlaceholderImage returns a neutral PNG rendered when an image handle no
// longer resolves.
func PlaceholderImage() []byte {
	placeholderOnce.Do(func() {
		img := image.NewRGBA(image.Rect(0, 0, 100, 100))
		grey := color.RGBA{R: 0xAD, G: 0xD8, B: 0xE6, A: 0xFF}
		for y := 0; y < 100; y++ {
			for x := 0; x < 100; x++ {
				img.Set(x, y, grey)
			}
		}
		var buf bytes.Buffer
		if err := png.Encode(&buf, img); err == nil {
			placeholderPNG = buf.Bytes()
		}
	})
	return placeholderPNG
}
