package content

import (
	"encoding/csv"
	"fmt"
	"io"
	"net/url"
	"path"
	"strings"
	"unicode"

	"github.com/dgallion1/docnav/internal/doctree"
	"github.com/dgallion1/docnav/internal/parser"
)

// ParseManifest reads a CSV page list. The header row names the columns;
// "path" is required and "title", "sidebar_title" and "sidebar_order" are
// recognized. Any other column is kept in Metadata.Extra. Relative paths
// resolve against dir, paths starting with "/" against the site root.
//
// A path holding an absolute URL is an external link. The URL is kept
// verbatim in Metadata.Link and the page is placed under dir by its
// "slug" column, falling back to a slug of its title.
func ParseManifest(r io.Reader, dir string) ([]doctree.Page, error) {
	reader := csv.NewReader(r)
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse csv: %w", err)
	}
	if len(records) == 0 {
		return nil, nil
	}

	headers := records[0]
	pathCol := -1
	for i, h := range headers {
		headers[i] = strings.ToLower(strings.TrimSpace(h))
		if headers[i] == "path" {
			pathCol = i
		}
	}
	if pathCol < 0 {
		return nil, fmt.Errorf("manifest has no path column")
	}

	var pages []doctree.Page
	for row, rec := range records[1:] {
		if pathCol >= len(rec) || strings.TrimSpace(rec[pathCol]) == "" {
			return nil, fmt.Errorf("row %d: missing path", row+2) // 1-indexed, skip header
		}

		raw := strings.TrimSpace(rec[pathCol])
		var page doctree.Page
		var slug string
		for i, cell := range rec {
			if i >= len(headers) || i == pathCol {
				continue
			}
			cell = strings.TrimSpace(cell)
			switch headers[i] {
			case "title":
				page.Meta.Title = cell
			case "sidebar_title":
				page.Meta.SidebarTitle = cell
			case "sidebar_order":
				order, err := parser.ParseOrder(cell)
				if err != nil {
					return nil, fmt.Errorf("row %d: %w", row+2, err)
				}
				page.Meta.SidebarOrder = order
			case "slug":
				slug = cell
			default:
				if cell == "" {
					continue
				}
				if page.Meta.Extra == nil {
					page.Meta.Extra = make(map[string]any)
				}
				page.Meta.Extra[headers[i]] = cell
			}
		}

		if strings.Contains(raw, "://") {
			u, err := url.Parse(raw)
			if err != nil || u.Host == "" {
				return nil, fmt.Errorf("row %d: bad link %q", row+2, raw)
			}
			if slug == "" {
				slug = slugify(page.Meta.Title)
			}
			if slug == "" {
				slug = slugify(u.Host)
			}
			page.Meta.Link = raw
			raw = path.Join(dir, strings.Trim(slug, "/"))
		} else if !strings.HasPrefix(raw, "/") {
			raw = path.Join(dir, raw)
		}
		page.Path = NormalizePath(raw)
		if page.Path == "" {
			return nil, fmt.Errorf("row %d: path %q resolves to the site root", row+2, rec[pathCol])
		}
		pages = append(pages, page)
	}
	return pages, nil
}

// slugify lowercases s and collapses every run of other characters into "-".
func slugify(s string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(s) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			dash = false
			continue
		}
		if !dash && b.Len() > 0 {
			b.WriteByte('-')
			dash = true
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
