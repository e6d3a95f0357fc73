// Package workspace holds the live document, its version history and the
// active template, and persists all three after every mutation.
package workspace

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jonathan/resume-builder/internal/exchange"
	"github.com/jonathan/resume-builder/internal/logging"
	"github.com/jonathan/resume-builder/internal/storage"
	"github.com/jonathan/resume-builder/internal/types"
)

// Labels of implicit snapshots and the default manual label.
const (
	LabelAutoSave        = "Auto-save"
	LabelBeforeImport    = "Before Import"
	LabelBeforeNew       = "Before New Document"
	DefaultSnapshotLabel = "Manual Save"
)

// ErrVersionNotFound is returned by Restore and LoadVersion for unknown ids.
var ErrVersionNotFound = errors.New("version not found")

// Workspace is the single application state object. It is not safe for
// concurrent use; callers that share one serialize access themselves.
type Workspace struct {
	store  storage.Store
	logger *zap.Logger
	now    func() time.Time
	newID  func() string

	doc      types.AppData
	history  []types.Version
	template types.TemplateID
}

// Option configures a Workspace.
type Option func(*Workspace)

// WithClock overrides the time source used for snapshot timestamps and defaults.
func WithClock(now func() time.Time) Option {
	return func(w *Workspace) { w.now = now }
}

// WithDefaultTemplate sets the template used when none has been persisted.
func WithDefaultTemplate(id types.TemplateID) Option {
	return func(w *Workspace) {
		if _, err := types.ParseTemplateID(string(id)); err == nil {
			w.template = id
		}
	}
}

// WithIDs overrides the version identifier source.
func WithIDs(newID func() string) Option {
	return func(w *Workspace) { w.newID = newID }
}

func newWorkspace(store storage.Store, logger *zap.Logger, opts []Option) *Workspace {
	w := &Workspace{
		store:    store,
		logger:   logging.OrNop(logger),
		now:      time.Now,
		newID:    uuid.NewString,
		history:  []types.Version{},
		template: types.DefaultTemplate,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Load reads the three slots from store. A missing or unreadable slot falls
// back to its default (built-in document, empty history, classic template)
// and is logged; Load itself never fails.
func Load(ctx context.Context, store storage.Store, logger *zap.Logger, opts ...Option) *Workspace {
	w := newWorkspace(store, logger, opts)
	w.doc = types.DefaultAppData(w.now())

	if raw, ok := w.read(ctx, storage.KeyDocument); ok {
		var doc types.AppData
		if err := json.Unmarshal(raw, &doc); err != nil {
			w.logger.Warn("Stored document is corrupt, using default", zap.Error(err))
		} else {
			w.doc = doc
		}
	}

	if raw, ok := w.read(ctx, storage.KeyHistory); ok {
		var history []types.Version
		if err := json.Unmarshal(raw, &history); err != nil {
			w.logger.Warn("Stored history is corrupt, starting empty", zap.Error(err))
		} else if history != nil {
			w.history = history
		}
	}

	if raw, ok := w.read(ctx, storage.KeyTemplate); ok {
		id, err := types.ParseTemplateID(string(raw))
		if err != nil {
			w.logger.Warn("Stored template is unknown, using default", zap.String("template", string(raw)))
		} else {
			w.template = id
		}
	}

	w.logger.Debug("Workspace loaded",
		zap.String("name", w.doc.Resume.PersonalInfo.FullName),
		zap.Int("versions", len(w.history)),
		zap.String("template", string(w.template)))
	return w
}

func (w *Workspace) read(ctx context.Context, key string) ([]byte, bool) {
	raw, ok, err := w.store.Get(ctx, key)
	if err != nil {
		w.logger.Warn("Failed to read slot", zap.String("key", key), zap.Error(err))
		return nil, false
	}
	return raw, ok
}

// persist writes the given slots. Failures are logged, never returned: the
// in-memory state stays authoritative.
func (w *Workspace) persist(ctx context.Context, keys ...string) {
	for _, key := range keys {
		var (
			raw []byte
			err error
		)
		switch key {
		case storage.KeyDocument:
			raw, err = json.Marshal(w.doc)
		case storage.KeyHistory:
			raw, err = json.Marshal(w.history)
		case storage.KeyTemplate:
			raw = []byte(w.template)
		}
		if err == nil {
			err = w.store.Set(ctx, key, raw)
		}
		if err != nil {
			w.logger.Warn("Failed to persist slot", zap.String("key", key), zap.Error(err))
		}
	}
}

// Document returns a deep copy of the live document.
func (w *Workspace) Document() types.AppData {
	return w.doc.Clone()
}

// SetDocument replaces the live document with a deep copy of doc.
func (w *Workspace) SetDocument(ctx context.Context, doc types.AppData) {
	w.doc = doc.Clone()
	w.persist(ctx, storage.KeyDocument)
}

// UpdateResume applies fn to the live resume and stores the result.
// On error the document is left untouched.
func (w *Workspace) UpdateResume(ctx context.Context, fn func(types.ResumeData) (types.ResumeData, error)) error {
	resume, err := fn(w.doc.Resume.Clone())
	if err != nil {
		return err
	}
	doc := w.doc
	doc.Resume = resume
	w.SetDocument(ctx, doc)
	return nil
}

// UpdateCoverLetter applies fn to the live cover letter and stores the result.
func (w *Workspace) UpdateCoverLetter(ctx context.Context, fn func(types.CoverLetterData) (types.CoverLetterData, error)) error {
	cl, err := fn(w.doc.CoverLetter.Clone())
	if err != nil {
		return err
	}
	doc := w.doc
	doc.CoverLetter = cl
	w.SetDocument(ctx, doc)
	return nil
}

// Template returns the active template.
func (w *Workspace) Template() types.TemplateID {
	return w.template
}

// SetTemplate changes the active template.
func (w *Workspace) SetTemplate(ctx context.Context, id types.TemplateID) error {
	if _, err := types.ParseTemplateID(string(id)); err != nil {
		return err
	}
	w.template = id
	w.persist(ctx, storage.KeyTemplate)
	return nil
}

// NewDocument replaces the live document with the built-in one after an
// implicit snapshot of the current state.
func (w *Workspace) NewDocument(ctx context.Context) types.Version {
	v := w.snapshot(LabelBeforeNew)
	w.doc = types.DefaultAppData(w.now())
	w.persist(ctx, storage.KeyHistory, storage.KeyDocument)
	return v
}

// Import parses raw and, when valid, replaces the live document after an
// implicit "Before Import" snapshot. A single resume keeps the current cover
// letter. Invalid input leaves every slot untouched.
func (w *Workspace) Import(ctx context.Context, raw []byte) (exchange.Result, error) {
	res := exchange.Parse(raw)
	if !res.Valid() {
		w.logger.Info("Import rejected", zap.String("kind", string(res.Err.Kind)), zap.Error(res.Err))
		return res, res.Err
	}
	w.snapshot(LabelBeforeImport)
	w.doc = res.Package(w.doc.CoverLetter)
	w.persist(ctx, storage.KeyHistory, storage.KeyDocument)
	w.logger.Info("Imported document", zap.String("shape", string(res.Shape)))
	return res, nil
}

// Export serializes the live document as a package.
func (w *Workspace) Export() ([]byte, string, error) {
	return exchange.Export(w.doc)
}

// ExportResume serializes only the live resume.
func (w *Workspace) ExportResume() ([]byte, string, error) {
	return exchange.ExportResume(w.doc.Resume)
}
