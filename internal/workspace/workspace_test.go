package workspace

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/jonathan/resume-builder/internal/editor"
	"github.com/jonathan/resume-builder/internal/exchange"
	"github.com/jonathan/resume-builder/internal/storage"
	"github.com/jonathan/resume-builder/internal/types"
)

var baseTime = time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)

func testOptions() []Option {
	tick := 0
	n := 0
	return []Option{
		WithClock(func() time.Time {
			tick++
			return baseTime.Add(time.Duration(tick) * time.Minute)
		}),
		WithIDs(func() string {
			n++
			return fmt.Sprintf("v%d", n)
		}),
	}
}

func newTestWorkspace(t *testing.T) (*Workspace, *storage.MemoryStore) {
	t.Helper()
	store := storage.NewMemoryStore()
	return Load(context.Background(), store, zap.NewNop(), testOptions()...), store
}

// failingStore rejects every write.
type failingStore struct {
	*storage.MemoryStore
}

func (failingStore) Set(context.Context, string, []byte) error {
	return errors.New("quota exceeded")
}

func TestLoad_EmptyStoreUsesDefaults(t *testing.T) {
	w, _ := newTestWorkspace(t)

	assert.Equal(t, "Alex Doe", w.Document().Resume.PersonalInfo.FullName)
	assert.Empty(t, w.History())
	assert.Equal(t, types.TemplateClassic, w.Template())
}

func TestLoad_CorruptSlotsFallBack(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()
	require.NoError(t, store.Set(ctx, storage.KeyDocument, []byte("{oops")))
	require.NoError(t, store.Set(ctx, storage.KeyHistory, []byte("42")))
	require.NoError(t, store.Set(ctx, storage.KeyTemplate, []byte("baroque")))

	core, logs := observer.New(zap.WarnLevel)
	w := Load(ctx, store, zap.New(core), testOptions()...)

	assert.Equal(t, "Alex Doe", w.Document().Resume.PersonalInfo.FullName)
	assert.Empty(t, w.History())
	assert.Equal(t, types.TemplateClassic, w.Template())
	assert.Equal(t, 3, logs.Len())
}

func TestPersistence_RoundTripThroughStore(t *testing.T) {
	ctx := context.Background()
	w, store := newTestWorkspace(t)

	require.NoError(t, w.UpdateResume(ctx, func(r types.ResumeData) (types.ResumeData, error) {
		return editor.UpdatePersonalInfo(r, "fullName", "Jane Roe")
	}))
	w.Snapshot(ctx, "first")
	require.NoError(t, w.SetTemplate(ctx, types.TemplateModern))

	reloaded := Load(ctx, store, zap.NewNop())
	assert.Equal(t, w.Document(), reloaded.Document())
	assert.Equal(t, w.History(), reloaded.History())
	assert.Equal(t, types.TemplateModern, reloaded.Template())

	raw, ok, err := store.Get(ctx, storage.KeyTemplate)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "modern", string(raw))
}

func TestPersistFailure_IsLoggedNotReturned(t *testing.T) {
	ctx := context.Background()
	core, logs := observer.New(zap.WarnLevel)
	w := Load(ctx, failingStore{storage.NewMemoryStore()}, zap.New(core), testOptions()...)

	err := w.UpdateResume(ctx, func(r types.ResumeData) (types.ResumeData, error) {
		return editor.SetSkills(r, "Go"), nil
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"Go"}, w.Document().Resume.Skills, "memory state stays authoritative")
	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "Failed to persist slot", logs.All()[0].Message)
}

func TestUpdateResume_ErrorLeavesDocument(t *testing.T) {
	ctx := context.Background()
	w, _ := newTestWorkspace(t)
	before := w.Document()

	err := w.UpdateResume(ctx, func(r types.ResumeData) (types.ResumeData, error) {
		return editor.UpdateExperience(r, "1", "salary", "lots")
	})
	require.ErrorIs(t, err, editor.ErrUnknownField)
	assert.Equal(t, before, w.Document())
}

func TestDocument_ReturnsCopy(t *testing.T) {
	w, _ := newTestWorkspace(t)
	doc := w.Document()
	doc.Resume.Skills[0] = "COBOL"
	doc.Resume.Experience[0].Company = "Elsewhere"

	assert.Equal(t, "React", w.Document().Resume.Skills[0])
	assert.Equal(t, "Tech Solutions Inc.", w.Document().Resume.Experience[0].Company)
}

func TestSnapshotRestore(t *testing.T) {
	ctx := context.Background()
	w, _ := newTestWorkspace(t)
	original := w.Document()

	v := w.Snapshot(ctx, "")
	assert.Equal(t, "Manual Save", v.Label)
	assert.Equal(t, baseTime.Add(2*time.Minute).UnixMilli(), v.Timestamp)

	require.NoError(t, w.UpdateResume(ctx, func(r types.ResumeData) (types.ResumeData, error) {
		return editor.RemoveExperience(r, "1"), nil
	}))
	assert.Empty(t, w.Document().Resume.Experience)

	require.NoError(t, w.Restore(ctx, v.ID))
	assert.Equal(t, original, w.Document())

	history := w.History()
	require.Len(t, history, 2)
	assert.Equal(t, LabelAutoSave, history[0].Label)
	assert.Empty(t, history[0].Data.Resume.Experience, "auto-save holds the replaced state")
	assert.Equal(t, v.ID, history[1].ID, "restored version is retained")
}

func TestSnapshot_NoAliasing(t *testing.T) {
	ctx := context.Background()
	w, _ := newTestWorkspace(t)
	v := w.Snapshot(ctx, "before edit")

	require.NoError(t, w.UpdateResume(ctx, func(r types.ResumeData) (types.ResumeData, error) {
		r.Skills[0] = "Elixir"
		return r, nil
	}))

	stored, ok := w.Version(v.ID)
	require.True(t, ok)
	assert.Equal(t, "React", stored.Data.Resume.Skills[0])
}

func TestRestore_UnknownID(t *testing.T) {
	ctx := context.Background()
	w, _ := newTestWorkspace(t)
	err := w.Restore(ctx, "missing")
	assert.ErrorIs(t, err, ErrVersionNotFound)
	assert.Empty(t, w.History())
	assert.ErrorIs(t, w.LoadVersion(ctx, "missing"), ErrVersionNotFound)
}

func TestDeleteVersion_Idempotent(t *testing.T) {
	ctx := context.Background()
	w, _ := newTestWorkspace(t)
	a := w.Snapshot(ctx, "a")
	b := w.Snapshot(ctx, "b")

	w.DeleteVersion(ctx, a.ID)
	w.DeleteVersion(ctx, a.ID)
	w.DeleteVersion(ctx, "missing")

	history := w.History()
	require.Len(t, history, 1)
	assert.Equal(t, b.ID, history[0].ID)
}

func TestClearHistory(t *testing.T) {
	ctx := context.Background()
	w, store := newTestWorkspace(t)
	w.Snapshot(ctx, "a")
	w.ClearHistory(ctx)
	assert.Empty(t, w.History())

	raw, _, err := store.Get(ctx, storage.KeyHistory)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(raw))
}

func TestImport_TakesSafetySnapshot(t *testing.T) {
	ctx := context.Background()
	w, _ := newTestWorkspace(t)
	before := w.Document()

	incoming := types.DefaultAppData(baseTime)
	incoming.Resume.PersonalInfo.FullName = "Sam Lee"
	raw, _, err := exchange.Export(incoming)
	require.NoError(t, err)

	res, err := w.Import(ctx, raw)
	require.NoError(t, err)
	assert.Equal(t, exchange.ShapeDual, res.Shape)
	assert.Equal(t, incoming, w.Document())

	history := w.History()
	require.Len(t, history, 1)
	assert.Equal(t, LabelBeforeImport, history[0].Label)
	assert.Equal(t, before, history[0].Data)
}

func TestImport_SingleResumeKeepsCoverLetter(t *testing.T) {
	ctx := context.Background()
	w, _ := newTestWorkspace(t)
	require.NoError(t, w.UpdateCoverLetter(ctx, func(c types.CoverLetterData) (types.CoverLetterData, error) {
		return editor.UpdateCoverLetter(c, "closing", "Best,")
	}))

	resume := types.DefaultResume()
	resume.PersonalInfo.FullName = "Solo"
	raw, _, err := exchange.ExportResume(resume)
	require.NoError(t, err)

	_, err = w.Import(ctx, raw)
	require.NoError(t, err)
	assert.Equal(t, resume, w.Document().Resume)
	assert.Equal(t, "Best,", w.Document().CoverLetter.Closing)
}

func TestImport_InvalidLeavesState(t *testing.T) {
	ctx := context.Background()
	w, store := newTestWorkspace(t)
	before := w.Document()

	_, err := w.Import(ctx, []byte(`{"resume": {}}`))
	var ve *exchange.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, exchange.KindMissingKeys, ve.Kind)

	assert.Equal(t, before, w.Document())
	assert.Empty(t, w.History())
	_, ok, _ := store.Get(ctx, storage.KeyHistory)
	assert.False(t, ok, "nothing persisted on rejected import")
}

func TestConcreteScenario(t *testing.T) {
	ctx := context.Background()
	w, _ := newTestWorkspace(t)
	ed := editor.New(nil)
	start := w.Document()
	require.Len(t, start.Resume.Experience, 1)

	var newID string
	require.NoError(t, w.UpdateResume(ctx, func(r types.ResumeData) (types.ResumeData, error) {
		var out types.ResumeData
		out, newID = ed.AddExperience(r)
		return out, nil
	}))
	exp := w.Document().Resume.Experience
	require.Len(t, exp, 2)
	assert.Equal(t, newID, exp[0].ID)
	assert.NotEqual(t, exp[1].ID, newID)

	require.NoError(t, w.UpdateResume(ctx, func(r types.ResumeData) (types.ResumeData, error) {
		return editor.RemoveExperience(r, newID), nil
	}))
	assert.Equal(t, start, w.Document())

	raw, _, err := w.Export()
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"fullName": "Alex Doe"`)

	_, err = w.Import(ctx, raw)
	require.NoError(t, err)
	assert.Equal(t, start, w.Document())
}

func TestNewDocument(t *testing.T) {
	ctx := context.Background()
	w, _ := newTestWorkspace(t)
	require.NoError(t, w.UpdateResume(ctx, func(r types.ResumeData) (types.ResumeData, error) {
		return editor.UpdatePersonalInfo(r, "fullName", "Draft")
	}))

	v := w.NewDocument(ctx)
	assert.Equal(t, LabelBeforeNew, v.Label)
	assert.Equal(t, "Draft", v.Data.Resume.PersonalInfo.FullName)
	assert.Equal(t, "Alex Doe", w.Document().Resume.PersonalInfo.FullName)
}

func TestSetTemplate_Unknown(t *testing.T) {
	w, _ := newTestWorkspace(t)
	assert.Error(t, w.SetTemplate(context.Background(), "baroque"))
	assert.Equal(t, types.TemplateClassic, w.Template())
}

func TestWithDefaultTemplate(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()

	w := Load(ctx, store, zap.NewNop(), WithDefaultTemplate(types.TemplateMinimal))
	assert.Equal(t, types.TemplateMinimal, w.Template())

	require.NoError(t, w.SetTemplate(ctx, types.TemplateModern))
	w = Load(ctx, store, zap.NewNop(), WithDefaultTemplate(types.TemplateMinimal))
	assert.Equal(t, types.TemplateModern, w.Template(), "persisted choice wins")

	w = Load(ctx, storage.NewMemoryStore(), zap.NewNop(), WithDefaultTemplate("baroque"))
	assert.Equal(t, types.TemplateClassic, w.Template())
}
