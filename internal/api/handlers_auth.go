package api

import (
	"net/http"
	"strings"

	"github.com/dgallion1/docnav/internal/authnote"
)

const orgCookie = "org"

// handleAuthNote renders the org auth token note for the requesting viewer.
// The viewer counts as signed in when the session cookie is present.
func (s *Server) handleAuthNote(w http.ResponseWriter, r *http.Request) {
	pagePath := r.URL.Query().Get("path")
	if !strings.HasPrefix(pagePath, "/") {
		pagePath = "/" + pagePath
	}

	signedIn := hasCookie(r, s.cfg.SessionCookie)
	kw := authnote.Keywords{User: signedIn}
	if org := orgSlug(r); org != "" {
		kw.Projects = []authnote.Project{{OrgSlug: org}}
	}

	note := authnote.New(signedIn, pagePath, kw, s.urls)
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	s.writeHTML(w, note.Node())
}

func hasCookie(r *http.Request, name string) bool {
	if name == "" {
		return false
	}
	c, err := r.Cookie(name)
	return err == nil && c.Value != ""
}

func orgSlug(r *http.Request) string {
	if org := r.URL.Query().Get("org"); org != "" {
		return org
	}
	if c, err := r.Cookie(orgCookie); err == nil {
		return c.Value
	}
	return ""
}
