package sidebar

import (
	"errors"
	"log/slog"
	"strings"

	"github.com/dgallion1/docnav/internal/doctree"
)

// PrependLink is an extra top-level link placed before the tree's links.
type PrependLink struct {
	Target string `json:"to"`
	Label  string `json:"title"`
}

// SectionOptions describes one navigation section rooted at a path.
type SectionOptions struct {
	Root            string
	Title           string // overrides the root page's title
	Collapse        bool   // hide links unless the current page is in this section
	Exclude         []string
	ShowDepth       int
	PrependLinks    []PrependLink
	SuppressMissing bool // don't warn when Root is not in the forest
	NoHeadingLink   bool
}

// Section is a rendered navigation section.
type Section struct {
	Root        string `json:"root"`
	Title       string `json:"title"`
	HeadingLink string `json:"heading_link,omitempty"` // empty renders the heading as plain text
	Open        bool   `json:"open"`
	Links       []Link `json:"links,omitempty"`
}

// BuildSection renders the section of forest rooted at opts.Root for a
// viewer currently on activePath. It reports false when the root does not
// exist; that is logged at warn level unless opts.SuppressMissing is set.
func BuildSection(forest []*doctree.Node, opts SectionOptions, activePath []string, log *slog.Logger) (*Section, bool) {
	root := strings.TrimPrefix(opts.Root, "/")

	entity, err := doctree.Locate(forest, root)
	if err != nil {
		if !opts.SuppressMissing && log != nil {
			attrs := []any{"root", root}
			var nf *doctree.NotFoundError
			if errors.As(err, &nf) {
				attrs = append(attrs, "segment", nf.Segment)
			}
			log.Warn("could not find nav root", attrs...)
		}
		return nil, false
	}

	title := opts.Title
	if title == "" && entity.Page != nil {
		title = entity.Page.Meta.NavTitle()
	}

	sec := &Section{
		Root:  root,
		Title: title,
	}
	if root != "" && entity.HasIndex() && !opts.NoHeadingLink {
		sec.HeadingLink = "/" + strings.TrimSuffix(root, "/") + "/"
	}

	current := strings.Join(activePath, "/")
	sec.Open = !opts.Collapse || strings.HasPrefix(current, strings.TrimSuffix(root, "/"))
	if !sec.Open {
		return sec, true
	}

	linkPath := "/" + current + "/"
	for _, pl := range opts.PrependLinks {
		sec.Links = append(sec.Links, Link{
			Target: pl.Target,
			Label:  pl.Label,
			Active: isUnder(linkPath, pl.Target),
		})
	}
	sec.Links = append(sec.Links, Children(entity.Children, Options{
		Exclude:   opts.Exclude,
		ShowDepth: opts.ShowDepth,
		LinkPath:  linkPath,
	})...)

	return sec, true
}

// Nav renders several sections against the same forest, skipping the ones
// whose root is missing.
func Nav(forest []*doctree.Node, sections []SectionOptions, activePath []string, log *slog.Logger) []*Section {
	var out []*Section
	for _, opts := range sections {
		if sec, ok := BuildSection(forest, opts, activePath, log); ok {
			out = append(out, sec)
		}
	}
	return out
}
