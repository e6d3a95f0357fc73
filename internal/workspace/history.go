package workspace

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/jonathan/resume-builder/internal/storage"
	"github.com/jonathan/resume-builder/internal/types"
)

// History returns a copy of the version list, newest first.
func (w *Workspace) History() []types.Version {
	out := make([]types.Version, len(w.history))
	for i, v := range w.history {
		out[i] = v.Clone()
	}
	return out
}

// Version returns a copy of the version with the given id.
func (w *Workspace) Version(id string) (types.Version, bool) {
	for _, v := range w.history {
		if v.ID == id {
			return v.Clone(), true
		}
	}
	return types.Version{}, false
}

// Snapshot captures the live document at the head of history. An empty
// label becomes DefaultSnapshotLabel.
func (w *Workspace) Snapshot(ctx context.Context, label string) types.Version {
	if strings.TrimSpace(label) == "" {
		label = DefaultSnapshotLabel
	}
	v := w.snapshot(label)
	w.persist(ctx, storage.KeyHistory)
	return v
}

func (w *Workspace) snapshot(label string) types.Version {
	v := types.Version{
		ID:        w.newID(),
		Timestamp: w.now().UnixMilli(),
		Data:      w.doc.Clone(),
		Label:     label,
	}
	history := make([]types.Version, 0, len(w.history)+1)
	history = append(history, v)
	w.history = append(history, w.history...)
	w.logger.Debug("Snapshot taken", zap.String("id", v.ID), zap.String("label", label))
	return v.Clone()
}

// Restore copies a stored version back into the live document. The state
// being replaced is captured first as an "Auto-save" snapshot; the restored
// version stays in history.
func (w *Workspace) Restore(ctx context.Context, id string) error {
	v, ok := w.Version(id)
	if !ok {
		return ErrVersionNotFound
	}
	w.snapshot(LabelAutoSave)
	w.doc = v.Data
	w.persist(ctx, storage.KeyHistory, storage.KeyDocument)
	w.logger.Info("Restored version", zap.String("id", id), zap.String("label", v.Label))
	return nil
}

// LoadVersion is Restore as offered from the start screen.
func (w *Workspace) LoadVersion(ctx context.Context, id string) error {
	return w.Restore(ctx, id)
}

// DeleteVersion removes a version. Unknown ids are ignored.
func (w *Workspace) DeleteVersion(ctx context.Context, id string) {
	kept := make([]types.Version, 0, len(w.history))
	for _, v := range w.history {
		if v.ID != id {
			kept = append(kept, v)
		}
	}
	if len(kept) == len(w.history) {
		return
	}
	w.history = kept
	w.persist(ctx, storage.KeyHistory)
}

// ClearHistory removes every version.
func (w *Workspace) ClearHistory(ctx context.Context) {
	w.history = []types.Version{}
	w.persist(ctx, storage.KeyHistory)
}
