package content

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"path"
	"strings"

	"github.com/dgallion1/docnav/internal/doctree"
	"github.com/dgallion1/docnav/internal/parser"
)

// ManifestName is the per-directory CSV listing pages with no backing file.
const ManifestName = "_pages.csv"

// DirSource scans a content tree. Each supported file becomes one page:
// "a/b/index.md" is the landing page "a/b/", "a/b/c.md" is "a/b/c/".
// Entries whose name starts with "." or "_" are skipped, apart from
// manifests.
type DirSource struct {
	FS      fs.FS
	Options parser.Options
	Log     *slog.Logger
}

// NewDirSource creates a source reading from fsys.
func NewDirSource(fsys fs.FS, opts parser.Options, log *slog.Logger) *DirSource {
	return &DirSource{FS: fsys, Options: opts, Log: log}
}

// Pages walks the tree. Files that fail to parse are logged and skipped so
// one broken page doesn't take down the sidebar.
func (s *DirSource) Pages(ctx context.Context) ([]doctree.Page, error) {
	var pages []doctree.Page

	err := fs.WalkDir(s.FS, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		name := d.Name()
		if p != "." && (strings.HasPrefix(name, ".") || strings.HasPrefix(name, "_")) {
			if d.IsDir() {
				return fs.SkipDir
			}
			if name != ManifestName {
				return nil
			}
		}
		if d.IsDir() {
			return nil
		}

		if name == ManifestName {
			listed, err := s.readManifest(p)
			if err != nil {
				s.warn("skipping manifest", "file", p, "error", err)
				return nil
			}
			pages = append(pages, listed...)
			return nil
		}

		if !parser.IsSupportedExtension(name) {
			return nil
		}
		pagePath, ok := PagePath(p)
		if !ok {
			return nil
		}
		meta, err := s.parseFile(p)
		if err != nil {
			s.warn("skipping page", "file", p, "error", err)
			return nil
		}
		pages = append(pages, doctree.Page{Path: pagePath, Meta: meta})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scan content: %w", err)
	}
	return pages, nil
}

func (s *DirSource) parseFile(p string) (doctree.Metadata, error) {
	pr, err := parser.ForFile(p, s.Options)
	if err != nil {
		return doctree.Metadata{}, err
	}
	f, err := s.FS.Open(p)
	if err != nil {
		return doctree.Metadata{}, err
	}
	defer f.Close()
	return pr.Parse(f, path.Base(p))
}

func (s *DirSource) readManifest(p string) ([]doctree.Page, error) {
	f, err := s.FS.Open(p)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ParseManifest(f, path.Dir(p))
}

func (s *DirSource) warn(msg string, args ...any) {
	if s.Log != nil {
		s.Log.Warn(msg, args...)
	}
}

// PagePath maps a content file to its page path. The site's top-level
// index has no place in the navigation and reports false.
func PagePath(file string) (string, bool) {
	dir, base := path.Split(file)
	stem := strings.TrimSuffix(base, path.Ext(base))
	if stem == "index" {
		p := NormalizePath(dir)
		return p, p != ""
	}
	return NormalizePath(dir + stem), true
}
