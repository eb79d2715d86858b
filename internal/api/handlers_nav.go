package api

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/dgallion1/docnav/internal/doctree"
	"github.com/dgallion1/docnav/internal/sidebar"
	g "maragu.dev/gomponents"
)

// handleTree returns the whole page forest.
func (s *Server) handleTree(w http.ResponseWriter, r *http.Request) {
	snap := s.index.Snapshot()
	forest := snap.Forest
	if forest == nil {
		forest = []*doctree.Node{}
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"pages":     snap.Pages,
		"hash":      snap.Hash,
		"loaded_at": snap.LoadedAt,
		"forest":    forest,
	})
}

// handleNav renders one navigation section as JSON.
func (s *Server) handleNav(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	defer s.render.Since(start)

	sec, ok, err := s.buildSection(r.URL.Query())
	if err != nil {
		jsonError(w, err.Error(), http.StatusBadRequest)
		return
	}
	if !ok {
		jsonError(w, "navigation root not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, sec)
}

// handleNavHTML renders one navigation section as an HTML fragment. A
// missing root renders nothing.
func (s *Server) handleNavHTML(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	defer s.render.Since(start)

	sec, ok, err := s.buildSection(r.URL.Query())
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	s.writeHTML(w, sidebar.SectionNode(sec))
}

func (s *Server) writeHTML(w http.ResponseWriter, n g.Node) {
	if err := n.Render(w); err != nil {
		s.log.Error("render html", "error", err)
	}
}

func (s *Server) buildSection(q url.Values) (*sidebar.Section, bool, error) {
	opts, err := s.sectionOptions(q)
	if err != nil {
		return nil, false, err
	}
	sec, ok := sidebar.BuildSection(s.index.Forest(), opts, activePath(q.Get("path")), s.log)
	return sec, ok, nil
}

func (s *Server) sectionOptions(q url.Values) (sidebar.SectionOptions, error) {
	opts := sidebar.SectionOptions{
		Root:            q.Get("root"),
		Title:           q.Get("title"),
		Exclude:         listParam(q["exclude"]),
		SuppressMissing: s.cfg.SuppressMissing,
	}

	var err error
	if v := q.Get("show_depth"); v != "" {
		if opts.ShowDepth, err = strconv.Atoi(v); err != nil {
			return opts, fmt.Errorf("invalid show_depth %q", v)
		}
	}
	if opts.Collapse, err = boolParam(q, "collapse"); err != nil {
		return opts, err
	}
	if opts.NoHeadingLink, err = boolParam(q, "no_heading_link"); err != nil {
		return opts, err
	}
	suppress, err := boolParam(q, "suppress_missing")
	if err != nil {
		return opts, err
	}
	opts.SuppressMissing = opts.SuppressMissing || suppress

	for _, raw := range q["prepend"] {
		target, label, ok := strings.Cut(raw, "|")
		if !ok || target == "" || label == "" {
			return opts, fmt.Errorf("invalid prepend %q, want target|label", raw)
		}
		opts.PrependLinks = append(opts.PrependLinks, sidebar.PrependLink{Target: target, Label: label})
	}
	return opts, nil
}

func boolParam(q url.Values, key string) (bool, error) {
	v := q.Get(key)
	if v == "" {
		return false, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("invalid %s %q", key, v)
	}
	return b, nil
}

// listParam accepts both repeated parameters and comma-separated lists.
func listParam(values []string) []string {
	var out []string
	for _, v := range values {
		for _, item := range strings.Split(v, ",") {
			if item = strings.TrimSpace(item); item != "" {
				out = append(out, item)
			}
		}
	}
	return out
}

// activePath splits a request path like "/guides/python/" into segments.
func activePath(p string) []string {
	p = strings.Trim(p, "/")
	if p == "" {
		return nil
	}
	return strings.Split(p, "/")
}
