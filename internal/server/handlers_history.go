package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jonathan/resume-builder/internal/types"
	"github.com/jonathan/resume-builder/internal/workspace"
)

// VersionSummary is a history entry without its document.
type VersionSummary struct {
	ID        string `json:"id"`
	Timestamp int64  `json:"timestamp"`
	Label     string `json:"label"`
	FullName  string `json:"fullName"`
}

func summarize(v types.Version) VersionSummary {
	return VersionSummary{
		ID:        v.ID,
		Timestamp: v.Timestamp,
		Label:     v.Label,
		FullName:  v.Data.Resume.PersonalInfo.FullName,
	}
}

func (s *Server) handleListHistory(w http.ResponseWriter, _ *http.Request) {
	var history []types.Version
	_ = s.read(func(ws *workspace.Workspace) error {
		history = ws.History()
		return nil
	})
	out := make([]VersionSummary, len(history))
	for i, v := range history {
		out[i] = summarize(v)
	}
	s.jsonResponse(w, http.StatusOK, out)
}

func (s *Server) handleGetVersion(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	var (
		v  types.Version
		ok bool
	)
	_ = s.read(func(ws *workspace.Workspace) error {
		v, ok = ws.Version(id)
		return nil
	})
	if !ok {
		s.errorResponse(w, workspace.ErrVersionNotFound)
		return
	}
	s.jsonResponse(w, http.StatusOK, v)
}

func (s *Server) handleSnapshot(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Label string `json:"label"`
	}
	if err := decodeJSON(r, &req, true); err != nil {
		s.errorResponse(w, err)
		return
	}
	var v types.Version
	_ = s.mutate("snapshot", func(ws *workspace.Workspace) error {
		v = ws.Snapshot(r.Context(), req.Label)
		return nil
	})
	s.jsonResponse(w, http.StatusCreated, summarize(v))
}

// handleRestoreLike serves restore and load, which differ only in wording.
func (s *Server) handleRestoreLike(action string, fn func(*workspace.Workspace, *http.Request, string) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := requireConfirm(r); err != nil {
			s.errorResponse(w, err)
			return
		}
		id := chi.URLParam(r, "id")
		var doc types.AppData
		err := s.mutate(action, func(ws *workspace.Workspace) error {
			if err := fn(ws, r, id); err != nil {
				return err
			}
			doc = ws.Document()
			return nil
		})
		if err != nil {
			s.errorResponse(w, err)
			return
		}
		s.jsonResponse(w, http.StatusOK, doc)
	}
}

func (s *Server) handleRestore(w http.ResponseWriter, r *http.Request) {
	s.handleRestoreLike("restore", func(ws *workspace.Workspace, r *http.Request, id string) error {
		return ws.Restore(r.Context(), id)
	})(w, r)
}

func (s *Server) handleLoadVersion(w http.ResponseWriter, r *http.Request) {
	s.handleRestoreLike("load_version", func(ws *workspace.Workspace, r *http.Request, id string) error {
		return ws.LoadVersion(r.Context(), id)
	})(w, r)
}

func (s *Server) handleDeleteVersion(w http.ResponseWriter, r *http.Request) {
	if err := requireConfirm(r); err != nil {
		s.errorResponse(w, err)
		return
	}
	id := chi.URLParam(r, "id")
	_ = s.mutate("delete_version", func(ws *workspace.Workspace) error {
		ws.DeleteVersion(r.Context(), id)
		return nil
	})
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleClearHistory(w http.ResponseWriter, r *http.Request) {
	if err := requireConfirm(r); err != nil {
		s.errorResponse(w, err)
		return
	}
	_ = s.mutate("clear_history", func(ws *workspace.Workspace) error {
		ws.ClearHistory(r.Context())
		return nil
	})
	w.WriteHeader(http.StatusNoContent)
}
