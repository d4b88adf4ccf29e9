// Package export writes the site as static files that any web server can host.
package export

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"path"

	"github.com/nfrund/foodgram/internal/assets"
	"github.com/nfrund/foodgram/internal/rendering"
	"github.com/nfrund/foodgram/internal/view"
	"github.com/nfrund/foodgram/web/src/templates/layouts"
	"github.com/nfrund/foodgram/web/src/templates/pages"
	"github.com/spf13/afero"
	cmp "maragu.dev/gomponents"
)

// Page is one page of the static site.
type Page struct {
	// Path is the URL path the page is served at, e.g. "/technologies".
	Path string
	// Meta builds the document metadata for the site hosted at baseURL.
	Meta    func(baseURL string) (layouts.PageMeta, error)
	Content func() cmp.Node
	Assets  []string
}

// Pages lists every page of the site.
var Pages = []Page{
	{
		Path:    "/technologies",
		Meta:    pages.TechnologiesPageMeta,
		Content: pages.Technologies,
		Assets:  pages.TechnologiesAssets(),
	},
}

// Result reports what an export wrote.
type Result struct {
	Files         []string
	MissingAssets []string
}

// Exporter renders pages and copies their assets into a filesystem.
type Exporter struct {
	out      afero.Fs
	renderer rendering.Renderer
	assets   *assets.Resolver
	static   fs.FS
	baseURL  string
}

// New creates an Exporter writing to out. static is the tree served under /static
// and baseURL is the address the exported site will be hosted at.
func New(out afero.Fs, renderer rendering.Renderer, resolver *assets.Resolver, static fs.FS, baseURL string) *Exporter {
	return &Exporter{out: out, renderer: renderer, assets: resolver, static: static, baseURL: baseURL}
}

// Export writes every page to <dir>/<path>/index.html, the static tree to
// <dir>/static and each referenced public asset to <dir>/<asset>.
// Missing assets are reported in the result rather than failing the export.
func (x *Exporter) Export(ctx context.Context, dir string, pageList []Page) (*Result, error) {
	res := &Result{}

	for _, p := range pageList {
		meta, err := p.Meta(x.baseURL)
		if err != nil {
			return nil, fmt.Errorf("render %s: %w", p.Path, err)
		}
		doc := layouts.Base(meta, view.AdaptGomponentToTempl(p.Content()))

		body, err := x.renderer.RenderComponent(ctx, doc)
		if err != nil {
			return nil, fmt.Errorf("render %s: %w", p.Path, err)
		}
		target := path.Join(dir, p.Path, "index.html")
		if err := x.write(target, body); err != nil {
			return nil, err
		}
		res.Files = append(res.Files, target)

		for _, name := range p.Assets {
			written, err := x.copyAsset(dir, name)
			if errors.Is(err, assets.ErrNotFound) {
				slog.Warn("Skipping missing asset", "asset", name, "page", p.Path)
				res.MissingAssets = append(res.MissingAssets, name)
				continue
			}
			if err != nil {
				return nil, err
			}
			res.Files = append(res.Files, written)
		}
	}

	staticFiles, err := x.copyStatic(dir)
	if err != nil {
		return nil, err
	}
	res.Files = append(res.Files, staticFiles...)
	return res, nil
}

func (x *Exporter) copyAsset(dir, name string) (string, error) {
	clean, err := assets.Clean(name)
	if err != nil {
		return "", err
	}
	f, _, err := x.assets.Open(clean)
	if err != nil {
		return "", err
	}
	defer f.Close()

	body, err := io.ReadAll(f)
	if err != nil {
		return "", fmt.Errorf("read asset %s: %w", clean, err)
	}
	target := path.Join(dir, clean)
	return target, x.write(target, body)
}

func (x *Exporter) copyStatic(dir string) ([]string, error) {
	var files []string
	err := fs.WalkDir(x.static, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		body, err := fs.ReadFile(x.static, p)
		if err != nil {
			return err
		}
		target := path.Join(dir, "static", p)
		files = append(files, target)
		return x.write(target, body)
	})
	if err != nil {
		return nil, fmt.Errorf("copy static files: %w", err)
	}
	return files, nil
}

func (x *Exporter) write(target string, body []byte) error {
	if err := x.out.MkdirAll(path.Dir(target), 0755); err != nil {
		return fmt.Errorf("create directory for %s: %w", target, err)
	}
	if err := afero.WriteFile(x.out, target, body, 0644); err != nil {
		return fmt.Errorf("write %s: %w", target, err)
	}
	return nil
}
