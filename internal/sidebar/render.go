package sidebar

import (
	"strings"

	"github.com/dgallion1/docnav/internal/doctree"
)

// Link is one rendered navigation entry.
type Link struct {
	Target    string `json:"to"`
	Label     string `json:"title"`
	Collapsed bool   `json:"collapsed"` // at or beyond the show depth
	Active    bool   `json:"active"`    // the current page lies under Target
	Children  []Link `json:"children,omitempty"`
}

// Options controls how a list of nodes is rendered.
type Options struct {
	Exclude   []string // page paths to drop with their subtrees; surrounding slashes are ignored
	ShowDepth int      // links at this depth or deeper start collapsed
	LinkPath  string   // path of the page being viewed, e.g. "/guides/python/"
}

// Children renders nodes into sorted, filtered links.
func Children(nodes []*doctree.Node, opts Options) []Link {
	exclude := make(map[string]struct{}, len(opts.Exclude))
	for _, p := range opts.Exclude {
		if p = strings.Trim(p, "/"); p == "" {
			continue
		}
		exclude[p] = struct{}{}
	}
	return render(nodes, exclude, opts.LinkPath, opts.ShowDepth, 0)
}

func render(nodes []*doctree.Node, exclude map[string]struct{}, linkPath string, showDepth, depth int) []Link {
	visible := make([]*doctree.Node, 0, len(nodes))
	for _, n := range nodes {
		if n.Page == nil || n.Page.Meta.Title == "" || n.Name == "" {
			continue
		}
		if _, skip := exclude[strings.Trim(n.Page.Path, "/")]; skip {
			continue
		}
		visible = append(visible, n)
	}
	doctree.SortNodes(visible)

	links := make([]Link, 0, len(visible))
	for _, n := range visible {
		l := Link{
			Target:    n.Page.Path,
			Label:     n.Page.Meta.NavTitle(),
			Collapsed: depth >= showDepth,
			Active:    isUnder(linkPath, n.Page.Path),
			Children:  render(n.Children, exclude, linkPath, showDepth, depth+1),
		}
		if n.Page.Meta.Link != "" {
			l.Target = n.Page.Meta.Link
			l.Active = false
		}
		links = append(links, l)
	}
	return links
}

// isUnder reports whether page sits at or below target, ignoring the
// slashes that surround either path.
func isUnder(page, target string) bool {
	page = strings.Trim(page, "/")
	target = strings.Trim(target, "/")
	if target == "" || page == "" {
		return false
	}
	return page == target || strings.HasPrefix(page, target+"/")
}
