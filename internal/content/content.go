// Package content produces the flat page list the navigation forest is
// built from.
package content

import (
	"context"
	"strings"

	"github.com/dgallion1/docnav/internal/doctree"
)

// Source supplies the current set of pages.
type Source interface {
	Pages(ctx context.Context) ([]doctree.Page, error)
}

// SourceFunc adapts a function to Source.
type SourceFunc func(ctx context.Context) ([]doctree.Page, error)

func (f SourceFunc) Pages(ctx context.Context) ([]doctree.Page, error) { return f(ctx) }

// NormalizePath converts a URL-ish path into page path form: no leading
// slash, no empty segments, and a trailing slash. The empty path stays
// empty.
func NormalizePath(p string) string {
	var segs []string
	for _, s := range strings.Split(strings.ReplaceAll(p, "\\", "/"), "/") {
		if s != "" && s != "." {
			segs = append(segs, s)
		}
	}
	if len(segs) == 0 {
		return ""
	}
	return strings.Join(segs, "/") + "/"
}
