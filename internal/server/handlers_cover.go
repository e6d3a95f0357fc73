package server

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/jonathan/resume-builder/internal/editor"
	"github.com/jonathan/resume-builder/internal/types"
	"github.com/jonathan/resume-builder/internal/workspace"
)

func (s *Server) editCoverLetter(w http.ResponseWriter, r *http.Request, action string, fn func(types.CoverLetterData) (types.CoverLetterData, error)) {
	err := s.mutate(action, func(ws *workspace.Workspace) error {
		return ws.UpdateCoverLetter(r.Context(), fn)
	})
	if err != nil {
		s.errorResponse(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func paragraphIndex(r *http.Request) (int, error) {
	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		return 0, &ErrRequest{Field: "index", Message: "must be a number"}
	}
	return index, nil
}

func (s *Server) handleUpdateCoverLetter(w http.ResponseWriter, r *http.Request) {
	req, err := decodeFieldUpdate(r)
	if err != nil {
		s.errorResponse(w, err)
		return
	}
	s.editCoverLetter(w, r, "update_cover_letter", func(c types.CoverLetterData) (types.CoverLetterData, error) {
		return editor.UpdateCoverLetter(c, req.Field, req.Value)
	})
}

func (s *Server) handleAddParagraph(w http.ResponseWriter, r *http.Request) {
	var index int
	err := s.mutate("add_paragraph", func(ws *workspace.Workspace) error {
		return ws.UpdateCoverLetter(r.Context(), func(c types.CoverLetterData) (types.CoverLetterData, error) {
			c = editor.AddParagraph(c)
			index = len(c.Paragraphs) - 1
			return c, nil
		})
	})
	if err != nil {
		s.errorResponse(w, err)
		return
	}
	s.jsonResponse(w, http.StatusCreated, map[string]int{"index": index})
}

func (s *Server) handleUpdateParagraph(w http.ResponseWriter, r *http.Request) {
	index, err := paragraphIndex(r)
	if err != nil {
		s.errorResponse(w, err)
		return
	}
	var req struct {
		Text string `json:"text"`
	}
	if err := decodeJSON(r, &req, false); err != nil {
		s.errorResponse(w, err)
		return
	}
	s.editCoverLetter(w, r, "update_paragraph", func(c types.CoverLetterData) (types.CoverLetterData, error) {
		return editor.UpdateParagraph(c, index, req.Text), nil
	})
}

func (s *Server) handleRemoveParagraph(w http.ResponseWriter, r *http.Request) {
	index, err := paragraphIndex(r)
	if err != nil {
		s.errorResponse(w, err)
		return
	}
	s.editCoverLetter(w, r, "remove_paragraph", func(c types.CoverLetterData) (types.CoverLetterData, error) {
		return editor.RemoveParagraph(c, index), nil
	})
}
