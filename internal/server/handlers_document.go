package server

import (
	"fmt"
	"io"
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"github.com/jonathan/resume-builder/internal/exchange"
	"github.com/jonathan/resume-builder/internal/printing"
	"github.com/jonathan/resume-builder/internal/rendering"
	"github.com/jonathan/resume-builder/internal/types"
	"github.com/jonathan/resume-builder/internal/workspace"
)

// confirmRequest gates destructive actions.
type confirmRequest struct {
	Confirm bool `json:"confirm"`
}

// requireConfirm accepts {"confirm": true} in the body or ?confirm=true.
func requireConfirm(r *http.Request) error {
	if ok, _ := strconv.ParseBool(r.URL.Query().Get("confirm")); ok {
		return nil
	}
	var req confirmRequest
	if err := decodeJSON(r, &req, true); err != nil {
		return err
	}
	if !req.Confirm {
		return ErrConfirmationRequired
	}
	return nil
}

func (s *Server) handleGetDocument(w http.ResponseWriter, _ *http.Request) {
	var doc types.AppData
	_ = s.read(func(ws *workspace.Workspace) error {
		doc = ws.Document()
		return nil
	})
	s.jsonResponse(w, http.StatusOK, doc)
}

// NewDocumentResponse reports the safety snapshot taken before the reset.
type NewDocumentResponse struct {
	SnapshotID string        `json:"snapshotId"`
	Document   types.AppData `json:"document"`
}

func (s *Server) handleNewDocument(w http.ResponseWriter, r *http.Request) {
	if err := requireConfirm(r); err != nil {
		s.errorResponse(w, err)
		return
	}
	var resp NewDocumentResponse
	_ = s.mutate("new_document", func(ws *workspace.Workspace) error {
		v := ws.NewDocument(r.Context())
		resp = NewDocumentResponse{SnapshotID: v.ID, Document: ws.Document()}
		return nil
	})
	s.jsonResponse(w, http.StatusOK, resp)
}

// ImportResponse describes an accepted import.
type ImportResponse struct {
	Shape    exchange.Shape `json:"shape"`
	Document types.AppData  `json:"document"`
}

func (s *Server) handleImport(w http.ResponseWriter, r *http.Request) {
	raw, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		s.errorResponse(w, &ErrRequest{Message: "failed to read body: " + err.Error()})
		return
	}

	var resp ImportResponse
	err = s.mutate("import", func(ws *workspace.Workspace) error {
		res, err := ws.Import(r.Context(), raw)
		if err != nil {
			return err
		}
		resp = ImportResponse{Shape: res.Shape, Document: ws.Document()}
		return nil
	})
	if err != nil {
		s.errorResponse(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, resp)
}

func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	resumeOnly, _ := strconv.ParseBool(r.URL.Query().Get("resume_only"))

	var (
		data     []byte
		filename string
	)
	err := s.read(func(ws *workspace.Workspace) error {
		var err error
		if resumeOnly {
			data, filename, err = ws.ExportResume()
		} else {
			data, filename, err = ws.Export()
		}
		return err
	})
	if err != nil {
		s.errorResponse(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

// TemplateResponse describes the active template.
type TemplateResponse struct {
	ID   types.TemplateID `json:"id"`
	Name string           `json:"name"`
}

func (s *Server) handleListTemplates(w http.ResponseWriter, _ *http.Request) {
	var active types.TemplateID
	_ = s.read(func(ws *workspace.Workspace) error {
		active = ws.Template()
		return nil
	})
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"active":    active,
		"templates": types.Templates,
	})
}

func (s *Server) handleGetTemplate(w http.ResponseWriter, _ *http.Request) {
	var id types.TemplateID
	_ = s.read(func(ws *workspace.Workspace) error {
		id = ws.Template()
		return nil
	})
	s.jsonResponse(w, http.StatusOK, TemplateResponse{ID: id, Name: id.Name()})
}

func (s *Server) handleSetTemplate(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Template string `json:"template"`
	}
	if err := decodeJSON(r, &req, false); err != nil {
		s.errorResponse(w, err)
		return
	}
	id, err := types.ParseTemplateID(req.Template)
	if err != nil {
		s.errorResponse(w, &ErrRequest{Field: "template", Message: err.Error()})
		return
	}
	err = s.mutate("set_template", func(ws *workspace.Workspace) error {
		return ws.SetTemplate(r.Context(), id)
	})
	if err != nil {
		s.errorResponse(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, TemplateResponse{ID: id, Name: id.Name()})
}

// renderParams are the shared query parameters of /render and /print.
type renderParams struct {
	template types.TemplateID
	document rendering.Document
	doc      types.AppData
}

// renderQuery reads template (default: active) and document (default: resume)
// and snapshots the document under the lock so rendering runs unlocked.
func (s *Server) renderQuery(r *http.Request) (renderParams, error) {
	q := r.URL.Query()
	var p renderParams
	_ = s.read(func(ws *workspace.Workspace) error {
		p.template = ws.Template()
		p.doc = ws.Document()
		return nil
	})
	if t := q.Get("template"); t != "" {
		id, err := types.ParseTemplateID(t)
		if err != nil {
			return p, &ErrRequest{Field: "template", Message: err.Error()}
		}
		p.template = id
	}
	switch d := rendering.Document(q.Get("document")); d {
	case "", rendering.DocumentResume:
		p.document = rendering.DocumentResume
	case rendering.DocumentCoverLetter:
		p.document = d
	default:
		return p, &ErrRequest{Field: "document", Message: "must be resume or cover-letter"}
	}
	return p, nil
}

func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	p, err := s.renderQuery(r)
	if err != nil {
		s.errorResponse(w, err)
		return
	}
	n, err := rendering.RenderDocument(p.doc, p.document, p.template)
	if err != nil {
		s.errorResponse(w, err)
		return
	}

	format := r.URL.Query().Get("format")
	switch format {
	case "", "html":
		printLayout, _ := strconv.ParseBool(r.URL.Query().Get("print"))
		page, err := rendering.Page(n, p.template, rendering.PageOptions{
			Title: p.doc.Resume.PersonalInfo.FullName,
			Print: printLayout,
		})
		if err != nil {
			s.errorResponse(w, err)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write(page)
	case "markdown":
		md, err := rendering.Markdown(n)
		if err != nil {
			s.errorResponse(w, err)
			return
		}
		w.Header().Set("Content-Type", "text/markdown; charset=utf-8")
		_, _ = io.WriteString(w, md)
	case "text":
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = io.WriteString(w, rendering.PlainText(n))
	default:
		s.errorResponse(w, &ErrRequest{Field: "format", Message: "must be html, markdown or text"})
	}
}

func (s *Server) handlePrint(w http.ResponseWriter, r *http.Request) {
	if s.printer == nil {
		s.errorResponse(w, ErrPrintingUnavailable)
		return
	}
	p, err := s.renderQuery(r)
	if err != nil {
		s.errorResponse(w, err)
		return
	}
	n, err := rendering.RenderDocument(p.doc, p.document, p.template)
	if err != nil {
		s.errorResponse(w, err)
		return
	}
	page, err := rendering.Page(n, p.template, rendering.PageOptions{
		Title: p.doc.Resume.PersonalInfo.FullName,
		Print: true,
	})
	if err != nil {
		s.errorResponse(w, err)
		return
	}

	pdf, err := s.printer.PrintPDF(r.Context(), page)
	if err != nil {
		s.errorResponse(w, err)
		return
	}
	if pages, err := printing.PageCount(pdf); err == nil {
		w.Header().Set("X-Page-Count", strconv.Itoa(pages))
	} else {
		s.logger.Warn("Failed to count PDF pages", zap.Error(err))
	}

	filename := "resume-" + exchange.Slug(p.doc.Resume.PersonalInfo.FullName) + ".pdf"
	if p.document == rendering.DocumentCoverLetter {
		filename = "cover-letter-" + exchange.Slug(p.doc.Resume.PersonalInfo.FullName) + ".pdf"
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	_, _ = w.Write(pdf)
}
