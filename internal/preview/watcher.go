// Package preview keeps an HTML rendering of the stored document up to date
// while another process edits it.
package preview

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"github.com/jonathan/resume-builder/internal/logging"
	"github.com/jonathan/resume-builder/internal/rendering"
	"github.com/jonathan/resume-builder/internal/storage"
	"github.com/jonathan/resume-builder/internal/types"
	"github.com/jonathan/resume-builder/internal/workspace"
)

// DefaultDebounce is how long the slot files must stay quiet before a re-render.
const DefaultDebounce = 250 * time.Millisecond

// Watcher re-renders the stored document whenever one of its slot files changes.
type Watcher struct {
	store    storage.Store
	dir      string
	out      string
	logger   *zap.Logger
	debounce time.Duration
	document rendering.Document
	template types.TemplateID
	print    bool

	mu      sync.Mutex
	renders int
}

// Option configures a Watcher.
type Option func(*Watcher)

// WithDebounce overrides DefaultDebounce.
func WithDebounce(d time.Duration) Option {
	return func(w *Watcher) { w.debounce = d }
}

// WithDocument selects the resume (default) or the cover letter.
func WithDocument(d rendering.Document) Option {
	return func(w *Watcher) { w.document = d }
}

// WithTemplate pins a template instead of following the stored active one.
func WithTemplate(id types.TemplateID) Option {
	return func(w *Watcher) { w.template = id }
}

// WithPrintLayout renders the print-only page.
func WithPrintLayout() Option {
	return func(w *Watcher) { w.print = true }
}

// NewWatcher creates a watcher writing to out. Only file stores can be
// watched since other backends have nothing on disk to observe.
func NewWatcher(store storage.Store, out string, logger *zap.Logger, opts ...Option) (*Watcher, error) {
	dir := storage.Dir(store)
	if dir == "" {
		return nil, fmt.Errorf("live preview requires a file store, got %T", store)
	}
	if out == "" {
		return nil, fmt.Errorf("live preview requires an output path")
	}
	w := &Watcher{
		store:    store,
		dir:      dir,
		out:      out,
		logger:   logging.OrNop(logger),
		debounce: DefaultDebounce,
		document: rendering.DocumentResume,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w, nil
}

// Renders reports how many times the output has been written.
func (w *Watcher) Renders() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.renders
}

// RenderOnce reloads the workspace from the store and rewrites the output file.
func (w *Watcher) RenderOnce(ctx context.Context) error {
	ws := workspace.Load(ctx, w.store, w.logger)
	tmpl := w.template
	if tmpl == "" {
		tmpl = ws.Template()
	}
	doc := ws.Document()

	n, err := rendering.RenderDocument(doc, w.document, tmpl)
	if err != nil {
		return fmt.Errorf("failed to render preview: %w", err)
	}
	page, err := rendering.Page(n, tmpl, rendering.PageOptions{
		Title: doc.Resume.PersonalInfo.FullName,
		Print: w.print,
	})
	if err != nil {
		return fmt.Errorf("failed to render preview: %w", err)
	}
	if err := writeAtomic(w.out, page); err != nil {
		return fmt.Errorf("failed to write preview: %w", err)
	}

	w.mu.Lock()
	w.renders++
	w.mu.Unlock()
	w.logger.Info("Preview rendered",
		zap.String("out", w.out),
		zap.String("template", string(tmpl)),
		zap.String("document", string(w.document)),
	)
	return nil
}

// Run renders once, then watches the store directory until ctx is cancelled.
// Render failures are logged and do not stop the loop.
func (w *Watcher) Run(ctx context.Context) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer fw.Close()

	if err := fw.Add(w.dir); err != nil {
		return fmt.Errorf("failed to watch %s: %w", w.dir, err)
	}
	if err := w.RenderOnce(ctx); err != nil {
		w.logger.Warn("Initial preview failed", zap.Error(err))
	}

	slots := make(map[string]bool, len(storage.Keys))
	for _, key := range storage.Keys {
		slots[key] = true
	}

	timer := time.NewTimer(w.debounce)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if !slots[filepath.Base(event.Name)] {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
				continue
			}
			w.logger.Debug("Slot changed", zap.String("file", event.Name), zap.String("op", event.Op.String()))
			timer.Reset(w.debounce)

		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("Watcher error", zap.Error(err))

		case <-timer.C:
			if err := w.RenderOnce(ctx); err != nil {
				w.logger.Warn("Preview failed", zap.Error(err))
			}
		}
	}
}

func writeAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return err
	}
	name := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(name)
		return err
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(name)
		return err
	}
	if err := os.Rename(name, path); err != nil {
		_ = os.Remove(name)
		return err
	}
	return nil
}
