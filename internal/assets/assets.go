// Package assets resolves the public files (images) pages reference by URL.
package assets

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"path"
	"strings"

	"github.com/spf13/afero"
)

var (
	// ErrNotFound is returned when a public asset does not exist.
	ErrNotFound = errors.New("asset not found")
	// ErrInvalidName is returned for names that are empty or escape the public root.
	ErrInvalidName = errors.New("invalid asset name")
)

// Resolver maps public asset names onto a filesystem root.
type Resolver struct {
	fs afero.Fs
}

// NewResolver creates a Resolver over fsys. Asset names are resolved from its root.
func NewResolver(fsys afero.Fs) *Resolver {
	return &Resolver{fs: fsys}
}

// NewDirResolver creates a Resolver rooted at dir on the OS filesystem.
func NewDirResolver(dir string) *Resolver {
	return NewResolver(afero.NewBasePathFs(afero.NewOsFs(), dir))
}

// Clean validates name and returns its canonical form without a leading slash.
func Clean(name string) (string, error) {
	trimmed := strings.TrimPrefix(name, "/")
	if trimmed == "" {
		return "", fmt.Errorf("%w: empty name", ErrInvalidName)
	}
	for _, part := range strings.Split(trimmed, "/") {
		if part == ".." {
			return "", fmt.Errorf("%w: %q", ErrInvalidName, name)
		}
	}
	return path.Clean(trimmed), nil
}

// URL returns the root-relative URL the asset is served at.
func URL(name string) (string, error) {
	clean, err := Clean(name)
	if err != nil {
		return "", err
	}
	return "/" + clean, nil
}

// AbsoluteURL returns the asset URL on the site at baseURL. Social previews
// need it because crawlers do not resolve relative image URLs.
func AbsoluteURL(baseURL, name string) (string, error) {
	rel, err := URL(name)
	if err != nil {
		return "", err
	}
	base, err := url.Parse(baseURL)
	if err != nil || base.Scheme == "" || base.Host == "" {
		return "", fmt.Errorf("invalid base url %q", baseURL)
	}
	return base.JoinPath(rel).String(), nil
}

// Exists reports whether the named asset is a regular file.
func (r *Resolver) Exists(name string) bool {
	_, info, err := r.stat(name)
	return err == nil && !info.IsDir()
}

// Open opens the named asset for reading. The caller closes the file.
func (r *Resolver) Open(name string) (afero.File, fs.FileInfo, error) {
	clean, info, err := r.stat(name)
	if err != nil {
		return nil, nil, err
	}
	if info.IsDir() {
		return nil, nil, fmt.Errorf("%w: %s", ErrNotFound, clean)
	}
	f, err := r.fs.Open(clean)
	if err != nil {
		return nil, nil, fmt.Errorf("open asset %s: %w", clean, err)
	}
	return f, info, nil
}

func (r *Resolver) stat(name string) (string, fs.FileInfo, error) {
	clean, err := Clean(name)
	if err != nil {
		return "", nil, err
	}
	info, err := r.fs.Stat(clean)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return clean, nil, fmt.Errorf("%w: %s", ErrNotFound, clean)
		}
		return clean, nil, fmt.Errorf("stat asset %s: %w", clean, err)
	}
	return clean, info, nil
}
