package parser

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/dgallion1/docnav/internal/doctree"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
	"gopkg.in/yaml.v3"
)

// MarkdownParser reads YAML front matter from Markdown files, falling back
// to the first level-1 heading for the title.
type MarkdownParser struct{}

func (p *MarkdownParser) Parse(r io.Reader, filename string) (doctree.Metadata, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return doctree.Metadata{}, err
	}

	front, body, err := splitFrontMatter(src)
	if err != nil {
		return doctree.Metadata{}, fmt.Errorf("%s: %w", filename, err)
	}

	var meta doctree.Metadata
	if len(front) > 0 {
		var fields map[string]any
		if err := yaml.Unmarshal(front, &fields); err != nil {
			return doctree.Metadata{}, fmt.Errorf("%s: parse front matter: %w", filename, err)
		}
		meta, err = metadataFromFields(fields)
		if err != nil {
			return doctree.Metadata{}, fmt.Errorf("%s: %w", filename, err)
		}
	}

	if meta.Title == "" {
		meta.Title = firstHeading(body)
	}
	return meta, nil
}

// splitFrontMatter separates a leading "---" fenced block from the body.
// Input without front matter is returned whole as the body.
func splitFrontMatter(src []byte) (front, body []byte, err error) {
	src = bytes.TrimPrefix(src, []byte("\xef\xbb\xbf"))
	first, rest, ok := cutLine(src)
	if !ok && len(first) == 0 {
		return nil, src, nil
	}
	if strings.TrimSpace(string(first)) != "---" {
		return nil, src, nil
	}

	start := len(src) - len(rest)
	offset := start
	for len(rest) > 0 {
		line, next, _ := cutLine(rest)
		trimmed := strings.TrimSpace(string(line))
		if trimmed == "---" || trimmed == "..." {
			return src[start:offset], next, nil
		}
		offset += len(rest) - len(next)
		rest = next
	}
	return nil, nil, fmt.Errorf("unterminated front matter")
}

func cutLine(b []byte) (line, rest []byte, found bool) {
	line, rest, found = bytes.Cut(b, []byte("\n"))
	return bytes.TrimSuffix(line, []byte("\r")), rest, found
}

// metadataFromFields maps decoded front matter onto Metadata.
func metadataFromFields(fields map[string]any) (doctree.Metadata, error) {
	var meta doctree.Metadata
	for key, v := range fields {
		switch key {
		case "title":
			meta.Title = stringValue(v)
		case "sidebar_title":
			meta.SidebarTitle = stringValue(v)
		case "sidebar_order":
			order, err := orderValue(v)
			if err != nil {
				return doctree.Metadata{}, err
			}
			meta.SidebarOrder = order
		default:
			if meta.Extra == nil {
				meta.Extra = make(map[string]any)
			}
			meta.Extra[key] = v
		}
	}
	return meta, nil
}

func stringValue(v any) string {
	if v == nil {
		return ""
	}
	return strings.TrimSpace(fmt.Sprint(v))
}

func orderValue(v any) (*int, error) {
	switch n := v.(type) {
	case nil:
		return nil, nil
	case int:
		return &n, nil
	case float64:
		return ParseOrder(fmt.Sprint(n))
	case string:
		return ParseOrder(n)
	default:
		return nil, fmt.Errorf("sidebar_order has unsupported type %T", v)
	}
}

// firstHeading returns the text of the first level-1 heading.
func firstHeading(src []byte) string {
	if len(bytes.TrimSpace(src)) == 0 {
		return ""
	}
	doc := goldmark.New().Parser().Parse(text.NewReader(src))
	for n := doc.FirstChild(); n != nil; n = n.NextSibling() {
		if h, ok := n.(*ast.Heading); ok && h.Level == 1 {
			return strings.TrimSpace(inlineText(h, src))
		}
	}
	return ""
}

// inlineText concatenates the text segments under n.
func inlineText(n ast.Node, src []byte) string {
	var buf bytes.Buffer
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		if t, ok := c.(*ast.Text); ok {
			buf.Write(t.Segment.Value(src))
			if t.SoftLineBreak() {
				buf.WriteByte(' ')
			}
			continue
		}
		buf.WriteString(inlineText(c, src))
	}
	return buf.String()
}
