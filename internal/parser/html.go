package parser

import (
	"fmt"
	"io"
	"strings"

	"github.com/dgallion1/docnav/internal/doctree"
	"golang.org/x/net/html"
)

// HTMLParser reads navigation metadata from an HTML page's <head>: the
// <title> element and <meta name="..." content="..."> tags.
type HTMLParser struct{}

func (p *HTMLParser) Parse(r io.Reader, filename string) (doctree.Metadata, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return doctree.Metadata{}, fmt.Errorf("parse html: %w", err)
	}

	var meta doctree.Metadata
	if title := findTitle(doc); title != "" {
		meta.Title = title
	}

	for _, m := range metaTags(doc) {
		switch m.name {
		case "title":
			if meta.Title == "" {
				meta.Title = m.content
			}
		case "sidebar_title", "sidebar-title":
			meta.SidebarTitle = m.content
		case "sidebar_order", "sidebar-order":
			order, err := ParseOrder(m.content)
			if err != nil {
				return doctree.Metadata{}, fmt.Errorf("%s: %w", filename, err)
			}
			meta.SidebarOrder = order
		default:
			if meta.Extra == nil {
				meta.Extra = make(map[string]any)
			}
			meta.Extra[m.name] = m.content
		}
	}

	if meta.Title == "" {
		meta.Title = findHeading(doc)
	}
	return meta, nil
}

type metaTag struct {
	name    string
	content string
}

func metaTags(n *html.Node) []metaTag {
	var out []metaTag
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "meta" {
			var tag metaTag
			for _, a := range n.Attr {
				switch strings.ToLower(a.Key) {
				case "name", "property":
					tag.name = strings.ToLower(strings.TrimSpace(a.Val))
				case "content":
					tag.content = strings.TrimSpace(a.Val)
				}
			}
			if tag.name != "" {
				out = append(out, tag)
			}
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return out
}

func textContent(n *html.Node) string {
	var buf strings.Builder
	var extract func(*html.Node)
	extract = func(n *html.Node) {
		if n.Type == html.TextNode {
			buf.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			extract(c)
		}
	}
	extract(n)
	return strings.Join(strings.Fields(buf.String()), " ")
}

func findTitle(n *html.Node) string {
	return findElementText(n, "title")
}

func findHeading(n *html.Node) string {
	return findElementText(n, "h1")
}

func findElementText(n *html.Node, tag string) string {
	if n.Type == html.ElementNode && n.Data == tag {
		return textContent(n)
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if t := findElementText(c, tag); t != "" {
			return t
		}
	}
	return ""
}
