package observability

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/jonathan/resume-builder/internal/exchange"
	"github.com/jonathan/resume-builder/internal/types"
	"github.com/stretchr/testify/assert"
)

var fixedNow = time.Date(2024, 5, 1, 9, 30, 0, 0, time.UTC)

func newTestPrinter(buf *bytes.Buffer) *Printer {
	return NewPrinter(buf).WithLocation(time.UTC)
}

func TestPrintDocument(t *testing.T) {
	var buf bytes.Buffer
	p := newTestPrinter(&buf)

	p.PrintDocument(types.DefaultAppData(fixedNow), types.TemplateModern)
	output := buf.String()

	assert.Contains(t, output, "DOCUMENT")
	assert.Contains(t, output, "Alex Doe")
	assert.Contains(t, output, "Modern Clean (modern)")
	assert.Contains(t, output, "Experience")
	assert.Contains(t, output, "Senior Frontend Engineer at Tech")
	assert.Contains(t, output, "(1)")
	assert.Contains(t, output, "Future Corp")
	assert.Contains(t, output, "3 paragraphs")
	assert.NotContains(t, output, "Sections", "no custom sections to list")
}

func TestPrintDocument_CapsLongLists(t *testing.T) {
	var buf bytes.Buffer
	p := newTestPrinter(&buf)

	doc := types.DefaultAppData(fixedNow)
	for i := 0; i < 7; i++ {
		doc.Resume.Projects = append(doc.Resume.Projects, types.Project{ID: "p", Name: "Side project"})
	}
	p.PrintDocument(doc, types.TemplateClassic)

	assert.Contains(t, buf.String(), "... and 3 more")
}

func TestPrintHistory(t *testing.T) {
	var buf bytes.Buffer
	p := newTestPrinter(&buf)

	data := types.DefaultAppData(fixedNow)
	history := []types.Version{
		{ID: "v2", Timestamp: fixedNow.UnixMilli(), Label: "Auto-save", Data: data},
		{ID: "v1", Timestamp: fixedNow.Add(-time.Hour).UnixMilli(), Label: "First draft", Data: data},
	}
	p.PrintHistory(history)
	output := buf.String()

	assert.Contains(t, output, "HISTORY (2)")
	assert.Contains(t, output, "LABEL")
	assert.Contains(t, output, "2024-05-01 09:30")
	assert.Contains(t, output, "2024-05-01 08:30")
	assert.Contains(t, output, "First draft")
	assert.Less(t, strings.Index(output, "v2"), strings.Index(output, "v1"), "newest first")
}

func TestPrintHistory_Empty(t *testing.T) {
	var buf bytes.Buffer
	newTestPrinter(&buf).PrintHistory(nil)
	assert.Contains(t, buf.String(), "No saved versions.")
}

func TestPrintVersion(t *testing.T) {
	var buf bytes.Buffer
	newTestPrinter(&buf).PrintVersion(types.Version{
		ID: "v9", Timestamp: fixedNow.UnixMilli(), Label: "Before Import", Data: types.DefaultAppData(fixedNow),
	})
	output := buf.String()

	assert.Contains(t, output, "v9")
	assert.Contains(t, output, "Before Import")
	assert.Contains(t, output, "Alex Doe")
}

func TestPrintImportError(t *testing.T) {
	var buf bytes.Buffer
	p := newTestPrinter(&buf)

	p.PrintImportError(nil)
	assert.Empty(t, buf.String())

	res := exchange.Parse([]byte(`{"resume": {}}`))
	p.PrintImportError(res.Err)
	output := buf.String()
	assert.Contains(t, output, "IMPORT REJECTED")
	assert.Contains(t, output, "Invalid JSON format")
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "abcd...", truncate("abcdefghij", 7))
	assert.Equal(t, "ééé...", truncate("éééééééé", 6))
}
