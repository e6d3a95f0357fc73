package preview

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/jonathan/resume-builder/internal/rendering"
	"github.com/jonathan/resume-builder/internal/storage"
	"github.com/jonathan/resume-builder/internal/types"
	"github.com/jonathan/resume-builder/internal/workspace"
)

func newFileStore(t *testing.T) *storage.FileStore {
	t.Helper()
	store, err := storage.NewFileStore(filepath.Join(t.TempDir(), "store"))
	require.NoError(t, err)
	return store
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		return ""
	}
	return string(data)
}

func TestNewWatcher_RequiresFileStore(t *testing.T) {
	_, err := NewWatcher(storage.NewMemoryStore(), "out.html", zap.NewNop())
	assert.Error(t, err)

	_, err = NewWatcher(newFileStore(t), "", zap.NewNop())
	assert.Error(t, err)
}

func TestRenderOnce_UsesStoredTemplate(t *testing.T) {
	ctx := context.Background()
	store := newFileStore(t)
	ws := workspace.Load(ctx, store, zap.NewNop())
	require.NoError(t, ws.SetTemplate(ctx, types.TemplateModern))

	out := filepath.Join(t.TempDir(), "preview.html")
	w, err := NewWatcher(store, out, zap.NewNop())
	require.NoError(t, err)

	require.NoError(t, w.RenderOnce(ctx))
	page := readFile(t, out)
	assert.Contains(t, page, "template-modern screen")
	assert.Contains(t, page, "Alex Doe")
	assert.Equal(t, 1, w.Renders())
}

func TestRenderOnce_CoverLetterPinnedTemplate(t *testing.T) {
	store := newFileStore(t)
	out := filepath.Join(t.TempDir(), "letter.html")
	w, err := NewWatcher(store, out, nil,
		WithDocument(rendering.DocumentCoverLetter),
		WithTemplate(types.TemplateMinimal),
		WithPrintLayout(),
	)
	require.NoError(t, err)

	require.NoError(t, w.RenderOnce(context.Background()))
	page := readFile(t, out)
	assert.Contains(t, page, "template-minimal print")
	assert.Contains(t, page, "cover-letter")
}

func TestRun_RerendersOnChange(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping filesystem watcher test in short mode")
	}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	store := newFileStore(t)
	out := filepath.Join(t.TempDir(), "preview.html")
	w, err := NewWatcher(store, out, zap.NewNop(), WithDebounce(20*time.Millisecond))
	require.NoError(t, err)

	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	require.Eventually(t, func() bool {
		return w.Renders() >= 1
	}, 5*time.Second, 20*time.Millisecond)

	editor := workspace.Load(ctx, store, zap.NewNop())
	require.NoError(t, editor.UpdateResume(ctx, func(r types.ResumeData) (types.ResumeData, error) {
		r.PersonalInfo.FullName = "Jane Roe"
		return r, nil
	}))

	require.Eventually(t, func() bool {
		return strings.Contains(readFile(t, out), "Jane Roe")
	}, 5*time.Second, 20*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watcher did not stop")
	}
}
