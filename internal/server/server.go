package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/jonathan/resume-builder/internal/config"
	"github.com/jonathan/resume-builder/internal/editor"
	"github.com/jonathan/resume-builder/internal/logging"
	"github.com/jonathan/resume-builder/internal/printing"
	"github.com/jonathan/resume-builder/internal/server/middleware"
	"github.com/jonathan/resume-builder/internal/server/ratelimit"
	"github.com/jonathan/resume-builder/internal/workspace"
)

// maxBodyBytes caps request bodies, imports included.
const maxBodyBytes = 5 << 20

// Config holds server configuration
type Config struct {
	Port      int
	Workspace *workspace.Workspace
	Logger    *zap.Logger
	// Editor supplies identifiers for new entries; nil uses random UUIDs.
	Editor *editor.Editor
	// Printer serves /api/print; nil disables PDF output.
	Printer *printing.Printer
	// JWT enables bearer-token auth on /api; nil leaves the API open.
	JWT *config.JWTConfig
	// RateLimit nil disables throttling.
	RateLimit *ratelimit.Config
}

// Server represents the HTTP server
type Server struct {
	httpServer  *http.Server
	router      chi.Router
	logger      *zap.Logger
	editor      *editor.Editor
	printer     *printing.Printer
	tokens      *TokenService
	rateLimiter *ratelimit.Limiter
	events      *broadcaster

	// mu serializes every workspace call; the workspace itself is not concurrent-safe.
	mu       sync.Mutex
	ws       *workspace.Workspace
	revision int64
}

// New creates a new server instance
func New(cfg Config) (*Server, error) {
	if cfg.Workspace == nil {
		return nil, fmt.Errorf("server requires a workspace")
	}
	s := &Server{
		logger:  logging.OrNop(cfg.Logger),
		editor:  cfg.Editor,
		printer: cfg.Printer,
		events:  newBroadcaster(),
		ws:      cfg.Workspace,
	}
	if s.editor == nil {
		s.editor = editor.New(nil)
	}
	if cfg.JWT != nil {
		s.tokens = NewTokenService(cfg.JWT)
	}
	if cfg.RateLimit != nil {
		s.rateLimiter = ratelimit.NewLimiter(cfg.RateLimit)
	}

	s.router = s.routes()
	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second, // PDF printing starts a browser
		IdleTimeout:  60 * time.Second,
	}
	s.httpServer.RegisterOnShutdown(s.events.closeAll)
	return s, nil
}

// Handler returns the root handler, for tests and embedding.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.Recoverer)
	r.Use(s.withLogging)
	r.Use(s.withCORS)
	if s.rateLimiter != nil {
		r.Use(s.withRateLimit)
	}

	r.Get("/health", s.handleHealth)

	r.Route("/api", func(r chi.Router) {
		if s.tokens != nil {
			r.Use(middleware.RequireToken(s.tokens))
		}

		r.Get("/events", s.handleEvents)

		r.Get("/document", s.handleGetDocument)
		r.Post("/document/new", s.handleNewDocument)
		r.Post("/import", s.handleImport)
		r.Get("/export", s.handleExport)

		r.Get("/templates", s.handleListTemplates)
		r.Get("/template", s.handleGetTemplate)
		r.Put("/template", s.handleSetTemplate)

		r.Get("/render", s.handleRender)
		r.Get("/print", s.handlePrint)

		r.Route("/resume", func(r chi.Router) {
			r.Patch("/personal", s.handleUpdatePersonal)
			r.Put("/skills", s.handleSetSkills)

			r.Route("/experience", func(r chi.Router) {
				r.Post("/", s.handleAddEntry(kindExperience))
				r.Post("/move", s.handleMoveExperience)
				r.Patch("/{id}", s.handleUpdateEntry(kindExperience))
				r.Delete("/{id}", s.handleRemoveEntry(kindExperience))
				r.Post("/{id}/format-bullets", s.handleFormatBullets)
			})
			r.Route("/education", func(r chi.Router) {
				r.Post("/", s.handleAddEntry(kindEducation))
				r.Patch("/{id}", s.handleUpdateEntry(kindEducation))
				r.Delete("/{id}", s.handleRemoveEntry(kindEducation))
			})
			r.Route("/projects", func(r chi.Router) {
				r.Post("/", s.handleAddEntry(kindProject))
				r.Patch("/{id}", s.handleUpdateEntry(kindProject))
				r.Delete("/{id}", s.handleRemoveEntry(kindProject))
			})
			r.Route("/sections", func(r chi.Router) {
				r.Post("/", s.handleAddSection)
				r.Post("/move", s.handleMoveSection)
				r.Patch("/{sectionID}", s.handleUpdateSection)
				r.Delete("/{sectionID}", s.handleRemoveSection)
				r.Post("/{sectionID}/items", s.handleAddItem)
				r.Patch("/{sectionID}/items/{itemID}", s.handleUpdateItem)
				r.Delete("/{sectionID}/items/{itemID}", s.handleRemoveItem)
			})
		})

		r.Route("/cover-letter", func(r chi.Router) {
			r.Patch("/", s.handleUpdateCoverLetter)
			r.Post("/paragraphs", s.handleAddParagraph)
			r.Put("/paragraphs/{index}", s.handleUpdateParagraph)
			r.Delete("/paragraphs/{index}", s.handleRemoveParagraph)
		})

		r.Route("/history", func(r chi.Router) {
			r.Get("/", s.handleListHistory)
			r.Post("/", s.handleSnapshot)
			r.Delete("/", s.handleClearHistory)
			r.Get("/{id}", s.handleGetVersion)
			r.Delete("/{id}", s.handleDeleteVersion)
			r.Post("/{id}/restore", s.handleRestore)
			r.Post("/{id}/load", s.handleLoadVersion)
		})
	})
	return r
}

// Start serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Start(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.httpServer.Addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.httpServer.Addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve is Start on an existing listener.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("Server starting", zap.String("addr", ln.Addr().String()), zap.Bool("auth", s.tokens != nil))
		if err := s.httpServer.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		s.stop()
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	s.logger.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	err := s.httpServer.Shutdown(shutdownCtx)
	s.stop()
	if err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	s.logger.Info("Server stopped")
	return nil
}

func (s *Server) stop() {
	if s.rateLimiter != nil {
		s.rateLimiter.Stop()
	}
}

// Close releases background resources without serving. Used by tests.
func (s *Server) Close() {
	s.stop()
}

// read runs fn under the workspace lock.
func (s *Server) read(fn func(ws *workspace.Workspace) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(s.ws)
}

// mutate runs fn under the workspace lock and announces the change on success.
func (s *Server) mutate(action string, fn func(ws *workspace.Workspace) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := fn(s.ws); err != nil {
		return err
	}
	s.revision++
	s.events.publish(ChangeEvent{Revision: s.revision, Action: action, Template: string(s.ws.Template())})
	return nil
}

// withCORS adds CORS headers
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.logger.Info("Request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", ww.Status()),
			zap.Duration("elapsed", time.Since(start)),
			zap.String("request_id", chimw.GetReqID(r.Context())),
		)
	})
}

func (s *Server) withRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		allowed, info := s.rateLimiter.Allow(clientID(r), r.URL.Path, r.Method)
		setRateLimitHeaders(w, info)
		if !allowed {
			s.rateLimitResponse(w, info)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// clientID uses the remote IP; forwarded headers are not trusted.
func clientID(r *http.Request) string {
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}

func setRateLimitHeaders(w http.ResponseWriter, info ratelimit.Info) {
	if info.Limit > 0 {
		w.Header().Set("X-RateLimit-Limit", strconv.Itoa(info.Limit))
		w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(info.Remaining))
		w.Header().Set("X-RateLimit-Reset", strconv.FormatInt(info.ResetTime.Unix(), 10))
	}
}

func (s *Server) rateLimitResponse(w http.ResponseWriter, info ratelimit.Info) {
	body := map[string]any{
		"error":   "rate_limit_exceeded",
		"message": "Rate limit exceeded. Please try again later.",
		"limit":   info.Limit,
	}
	if info.RetryAfter > 0 {
		secs := int(info.RetryAfter.Seconds()) + 1
		body["retry_after"] = secs
		w.Header().Set("Retry-After", strconv.Itoa(secs))
	}
	s.logger.Warn("Rate limit exceeded", zap.Int("limit", info.Limit), zap.Duration("retry_after", info.RetryAfter))
	s.jsonResponse(w, http.StatusTooManyRequests, body)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// jsonResponse writes a JSON response
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.logger.Warn("Failed to encode JSON response", zap.Error(err))
	}
}

// errorResponse maps err to a status and JSON error body.
func (s *Server) errorResponse(w http.ResponseWriter, err error) {
	status := HTTPStatus(err)
	if status >= http.StatusInternalServerError {
		s.logger.Error("Request failed", zap.Error(err))
	}
	s.jsonResponse(w, status, newErrorBody(err))
}

// decodeJSON decodes the request body into v. An empty body is an error
// unless optional is set.
func decodeJSON(r *http.Request, v any, optional bool) error {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		return &ErrRequest{Message: "failed to read body: " + err.Error()}
	}
	if len(body) == 0 {
		if optional {
			return nil
		}
		return &ErrRequest{Message: "request body is required"}
	}
	if err := json.Unmarshal(body, v); err != nil {
		return &ErrRequest{Message: "invalid JSON body: " + err.Error()}
	}
	return nil
}
