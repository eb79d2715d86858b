package api

import (
	"net/http"
)

// handleReload rebuilds the navigation forest from the page source.
func (s *Server) handleReload(w http.ResponseWriter, r *http.Request) {
	changed, err := s.index.Reload(r.Context())
	if err != nil {
		s.log.Error("manual reload failed", "error", err)
		jsonError(w, "reload failed: "+err.Error(), http.StatusBadGateway)
		return
	}
	snap := s.index.Snapshot()
	writeJSON(w, http.StatusOK, map[string]any{
		"changed": changed,
		"pages":   snap.Pages,
		"hash":    snap.Hash,
	})
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"render": s.render.Summary(),
		"reload": s.index.ReloadStats(),
	})
}
