package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jonathan/resume-builder/internal/editor"
	"github.com/jonathan/resume-builder/internal/types"
	"github.com/jonathan/resume-builder/internal/workspace"
)

// FieldUpdate sets one named field. Field names are the JSON names.
type FieldUpdate struct {
	Field string `json:"field"`
	Value any    `json:"value"`
}

// MoveRequest swaps the entry at Index with its neighbour.
type MoveRequest struct {
	Index     int    `json:"index"`
	Direction string `json:"direction"`
}

// CreatedResponse carries the id of a new entry.
type CreatedResponse struct {
	ID string `json:"id"`
}

type entryKind string

const (
	kindExperience entryKind = "experience"
	kindEducation  entryKind = "education"
	kindProject    entryKind = "project"
)

func decodeFieldUpdate(r *http.Request) (FieldUpdate, error) {
	var req FieldUpdate
	if err := decodeJSON(r, &req, false); err != nil {
		return req, err
	}
	if req.Field == "" {
		return req, &ErrRequest{Field: "field", Message: "is required"}
	}
	return req, nil
}

func decodeMove(r *http.Request) (int, editor.Direction, error) {
	var req MoveRequest
	if err := decodeJSON(r, &req, false); err != nil {
		return 0, "", err
	}
	dir, err := editor.ParseDirection(req.Direction)
	if err != nil {
		return 0, "", &ErrRequest{Field: "direction", Message: err.Error()}
	}
	return req.Index, dir, nil
}

// editResume runs fn against the live resume and answers 204 on success.
func (s *Server) editResume(w http.ResponseWriter, r *http.Request, action string, fn func(types.ResumeData) (types.ResumeData, error)) {
	err := s.mutate(action, func(ws *workspace.Workspace) error {
		return ws.UpdateResume(r.Context(), fn)
	})
	if err != nil {
		s.errorResponse(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleUpdatePersonal(w http.ResponseWriter, r *http.Request) {
	req, err := decodeFieldUpdate(r)
	if err != nil {
		s.errorResponse(w, err)
		return
	}
	s.editResume(w, r, "update_personal", func(res types.ResumeData) (types.ResumeData, error) {
		return editor.UpdatePersonalInfo(res, req.Field, req.Value)
	})
}

func (s *Server) handleSetSkills(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Skills string `json:"skills"`
	}
	if err := decodeJSON(r, &req, false); err != nil {
		s.errorResponse(w, err)
		return
	}
	s.editResume(w, r, "set_skills", func(res types.ResumeData) (types.ResumeData, error) {
		return editor.SetSkills(res, req.Skills), nil
	})
}

func (s *Server) handleAddEntry(kind entryKind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var id string
		err := s.mutate("add_"+string(kind), func(ws *workspace.Workspace) error {
			return ws.UpdateResume(r.Context(), func(res types.ResumeData) (types.ResumeData, error) {
				switch kind {
				case kindExperience:
					res, id = s.editor.AddExperience(res)
				case kindEducation:
					res, id = s.editor.AddEducation(res)
				case kindProject:
					res, id = s.editor.AddProject(res)
				}
				return res, nil
			})
		})
		if err != nil {
			s.errorResponse(w, err)
			return
		}
		s.jsonResponse(w, http.StatusCreated, CreatedResponse{ID: id})
	}
}

func (s *Server) handleUpdateEntry(kind entryKind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		req, err := decodeFieldUpdate(r)
		if err != nil {
			s.errorResponse(w, err)
			return
		}
		s.editResume(w, r, "update_"+string(kind), func(res types.ResumeData) (types.ResumeData, error) {
			switch kind {
			case kindExperience:
				return editor.UpdateExperience(res, id, req.Field, req.Value)
			case kindEducation:
				return editor.UpdateEducation(res, id, req.Field, req.Value)
			default:
				return editor.UpdateProject(res, id, req.Field, req.Value)
			}
		})
	}
}

func (s *Server) handleRemoveEntry(kind entryKind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		s.editResume(w, r, "remove_"+string(kind), func(res types.ResumeData) (types.ResumeData, error) {
			switch kind {
			case kindExperience:
				return editor.RemoveExperience(res, id), nil
			case kindEducation:
				return editor.RemoveEducation(res, id), nil
			default:
				return editor.RemoveProject(res, id), nil
			}
		})
	}
}

func (s *Server) handleMoveExperience(w http.ResponseWriter, r *http.Request) {
	index, dir, err := decodeMove(r)
	if err != nil {
		s.errorResponse(w, err)
		return
	}
	s.editResume(w, r, "move_experience", func(res types.ResumeData) (types.ResumeData, error) {
		return editor.MoveExperience(res, index, dir), nil
	})
}

func (s *Server) handleFormatBullets(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	s.editResume(w, r, "format_bullets", func(res types.ResumeData) (types.ResumeData, error) {
		return editor.FormatExperienceBullets(res, id), nil
	})
}

func (s *Server) handleAddSection(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Type types.CustomSectionType `json:"type"`
	}
	if err := decodeJSON(r, &req, false); err != nil {
		s.errorResponse(w, err)
		return
	}
	if !req.Type.Valid() {
		s.errorResponse(w, &ErrRequest{Field: "type", Message: "must be list or detailed"})
		return
	}

	var id string
	err := s.mutate("add_section", func(ws *workspace.Workspace) error {
		return ws.UpdateResume(r.Context(), func(res types.ResumeData) (types.ResumeData, error) {
			var err error
			res, id, err = s.editor.AddCustomSection(res, req.Type)
			return res, err
		})
	})
	if err != nil {
		s.errorResponse(w, err)
		return
	}
	s.jsonResponse(w, http.StatusCreated, CreatedResponse{ID: id})
}

func (s *Server) handleMoveSection(w http.ResponseWriter, r *http.Request) {
	index, dir, err := decodeMove(r)
	if err != nil {
		s.errorResponse(w, err)
		return
	}
	s.editResume(w, r, "move_section", func(res types.ResumeData) (types.ResumeData, error) {
		return editor.MoveCustomSection(res, index, dir), nil
	})
}

func (s *Server) handleUpdateSection(w http.ResponseWriter, r *http.Request) {
	sectionID := chi.URLParam(r, "sectionID")
	req, err := decodeFieldUpdate(r)
	if err != nil {
		s.errorResponse(w, err)
		return
	}
	s.editResume(w, r, "update_section", func(res types.ResumeData) (types.ResumeData, error) {
		return editor.UpdateCustomSection(res, sectionID, req.Field, req.Value)
	})
}

func (s *Server) handleRemoveSection(w http.ResponseWriter, r *http.Request) {
	sectionID := chi.URLParam(r, "sectionID")
	s.editResume(w, r, "remove_section", func(res types.ResumeData) (types.ResumeData, error) {
		return editor.RemoveCustomSection(res, sectionID), nil
	})
}

func (s *Server) handleAddItem(w http.ResponseWriter, r *http.Request) {
	sectionID := chi.URLParam(r, "sectionID")
	var id string
	err := s.mutate("add_item", func(ws *workspace.Workspace) error {
		return ws.UpdateResume(r.Context(), func(res types.ResumeData) (types.ResumeData, error) {
			res, id = s.editor.AddCustomItem(res, sectionID)
			if id == "" {
				return res, ErrSectionNotFound
			}
			return res, nil
		})
	})
	if err != nil {
		s.errorResponse(w, err)
		return
	}
	s.jsonResponse(w, http.StatusCreated, CreatedResponse{ID: id})
}

func (s *Server) handleUpdateItem(w http.ResponseWriter, r *http.Request) {
	sectionID, itemID := chi.URLParam(r, "sectionID"), chi.URLParam(r, "itemID")
	req, err := decodeFieldUpdate(r)
	if err != nil {
		s.errorResponse(w, err)
		return
	}
	s.editResume(w, r, "update_item", func(res types.ResumeData) (types.ResumeData, error) {
		return editor.UpdateCustomItem(res, sectionID, itemID, req.Field, req.Value)
	})
}

func (s *Server) handleRemoveItem(w http.ResponseWriter, r *http.Request) {
	sectionID, itemID := chi.URLParam(r, "sectionID"), chi.URLParam(r, "itemID")
	s.editResume(w, r, "remove_item", func(res types.ResumeData) (types.ResumeData, error) {
		return editor.RemoveCustomItem(res, sectionID, itemID), nil
	})
}
