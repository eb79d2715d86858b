// Package authnote renders the informational block shown next to
// instructions that need an organization auth token.
package authnote

import (
	"net/url"
	"strings"

	g "maragu.dev/gomponents"
	"maragu.dev/gomponents/html"
)

// Selection exposes the organization the viewer currently has selected.
type Selection interface {
	OrgSlug() (string, bool)
}

// Project is one selectable project from the viewer's code keywords.
type Project struct {
	OrgSlug     string `json:"org_slug"`
	ProjectSlug string `json:"project_slug,omitempty"`
}

// Keywords is the per-viewer keyword state: whether a user is known, the
// projects they can pick from, and which one is selected.
type Keywords struct {
	User     bool
	Projects []Project
	Selected *int // nil selects the first project
}

// OrgSlug implements Selection.
func (k Keywords) OrgSlug() (string, bool) {
	if !k.User || len(k.Projects) == 0 {
		return "", false
	}
	idx := 0
	if k.Selected != nil {
		idx = *k.Selected
	}
	if idx < 0 || idx >= len(k.Projects) {
		return "", false
	}
	slug := k.Projects[idx].OrgSlug
	return slug, slug != ""
}

// URLs holds the two sites the note links to.
type URLs struct {
	App  string // product site, e.g. https://sentry.io
	Docs string // documentation site the note is shown on
}

// DefaultURLs returns the production URLs.
func DefaultURLs() URLs {
	return URLs{
		App:  "https://sentry.io",
		Docs: "https://docs.sentry.io",
	}
}

// TokenURL returns the settings page for creating an org auth token. With
// no org selected it falls back to a redirect that picks the last visited
// organization.
func TokenURL(sel Selection, urls URLs) string {
	app := strings.TrimSuffix(urls.App, "/")
	if sel != nil {
		if slug, ok := sel.OrgSlug(); ok {
			return app + "/settings/" + url.PathEscape(slug) + "/auth-tokens/"
		}
	}
	return app + "/orgredirect/organizations/:orgslug/settings/auth-tokens/"
}

// Level is the visual style of the note.
type Level string

const (
	LevelNote    Level = "note"
	LevelWarning Level = "warning"
)

// Note is the content of one rendered note.
type Note struct {
	SignedIn bool   `json:"signed_in"`
	Level    Level  `json:"level"`
	TokenURL string `json:"token_url"`
	LoginURL string `json:"login_url,omitempty"` // only when signed out
}

// New builds the note for a viewer on pagePath.
func New(signedIn bool, pagePath string, sel Selection, urls URLs) Note {
	n := Note{
		SignedIn: signedIn,
		TokenURL: TokenURL(sel, urls),
	}
	if signedIn {
		n.Level = LevelWarning
		return n
	}
	n.Level = LevelNote
	next := strings.TrimSuffix(urls.Docs, "/") + pagePath
	n.LoginURL = strings.TrimSuffix(urls.App, "/") + "/auth/login/?next=" + url.QueryEscape(next)
	return n
}

// Node renders the note.
func (n Note) Node() g.Node {
	tokenLink := html.A(
		html.Href(n.TokenURL),
		html.Target("_blank"),
		html.Rel("noopener noreferrer"),
		g.Text("manually create an Auth Token"),
	)

	if n.SignedIn {
		return html.Div(
			html.Class("alert alert-warning"),
			g.Attr("role", "alert"),
			g.Text("You can "), tokenLink,
			g.Text(" or create a token directly from this page. A created token will only be visible once right after creation - make sure to copy it!"),
		)
	}

	return html.Div(
		html.Class("note"),
		g.Text("You can "), tokenLink,
		g.Text(" or "),
		html.A(html.Href(n.LoginURL), g.Text("sign in")),
		g.Text(" to create a token directly from this page."),
	)
}
