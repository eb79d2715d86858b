package sidebar

import (
	"strings"

	g "maragu.dev/gomponents"
	"maragu.dev/gomponents/html"
)

const headerClass = "sidebar-title d-flex align-items-center"

// SectionNode renders a section as a sidebar branch.
func SectionNode(sec *Section) g.Node {
	if sec == nil {
		return nil
	}

	var header g.Node
	if sec.HeadingLink != "" {
		header = html.A(
			html.Href(sec.HeadingLink),
			html.Class(headerClass),
			g.Attr("data-sidebar-link", ""),
			html.H6(g.Text(sec.Title)),
		)
	} else {
		header = html.Div(
			html.Class(headerClass),
			g.Attr("data-sidebar-link", ""),
			html.H6(g.Text(sec.Title)),
		)
	}

	return html.Li(
		html.Class("mb-3"),
		g.Attr("data-sidebar-branch", ""),
		header,
		g.If(sec.Open, html.Ul(
			html.Class("list-unstyled"),
			g.Attr("data-sidebar-tree", ""),
			g.Group(linkNodes(sec.Links)),
		)),
	)
}

// NavNode renders several sections as one sidebar list.
func NavNode(sections []*Section) g.Node {
	nodes := make([]g.Node, 0, len(sections))
	for _, sec := range sections {
		nodes = append(nodes, SectionNode(sec))
	}
	return html.Ul(
		html.Class("list-unstyled"),
		g.Attr("data-sidebar", ""),
		g.Group(nodes),
	)
}

// LinksNode renders links without a section wrapper.
func LinksNode(links []Link) g.Node {
	return g.Group(linkNodes(links))
}

func linkNodes(links []Link) []g.Node {
	nodes := make([]g.Node, 0, len(links))
	for _, l := range links {
		nodes = append(nodes, linkNode(l))
	}
	return nodes
}

func linkNode(l Link) g.Node {
	class := "d-block"
	if l.Active {
		class += " active"
	}
	expanded := len(l.Children) > 0 && (l.Active || !l.Collapsed)

	return html.Li(
		g.Attr("data-sidebar-branch", ""),
		html.A(
			html.Href(href(l.Target)),
			html.Class(class),
			g.Attr("data-sidebar-link", ""),
			g.Text(l.Label),
		),
		g.If(expanded, html.Ul(
			html.Class("list-unstyled"),
			g.Attr("data-sidebar-tree", ""),
			g.Group(linkNodes(l.Children)),
		)),
	)
}

// href turns a page path into a site-absolute URL. External targets pass
// through untouched.
func href(target string) string {
	if strings.Contains(target, "://") || strings.HasPrefix(target, "/") {
		return target
	}
	return "/" + target
}
