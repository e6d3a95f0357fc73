package printing

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/jonathan/resume-builder/internal/rendering"
	"github.com/jonathan/resume-builder/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestError(t *testing.T) {
	cause := errors.New("boom")
	err := &Error{Message: "failed to print page", Cause: cause}
	assert.Equal(t, "failed to print page: boom", err.Error())
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "bare", (&Error{Message: "bare"}).Error())
}

func TestPrintPDF_EmptyPage(t *testing.T) {
	_, err := NewPrinter(nil).PrintPDF(context.Background(), nil)
	var pe *Error
	require.ErrorAs(t, err, &pe)
	assert.Contains(t, pe.Message, "empty")
}

func TestPageCount_RejectsGarbage(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"empty", nil},
		{"not a pdf", []byte("<html></html>")},
		{"truncated header", []byte("%PDF-1.7\n")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := PageCount(tt.data)
			var pe *Error
			assert.ErrorAs(t, err, &pe)
		})
	}
}

func TestFindChrome_MissingConfiguredBinary(t *testing.T) {
	_, ok := FindChrome("/definitely/not/chrome")
	assert.False(t, ok)
}

func TestWithTimeout_IgnoresNonPositive(t *testing.T) {
	p := NewPrinter(nil, WithTimeout(0))
	assert.Equal(t, DefaultTimeout, p.timeout)

	p = NewPrinter(nil, WithTimeout(5*time.Second), WithChromePath("/usr/bin/chromium"))
	assert.Equal(t, 5*time.Second, p.timeout)
	assert.Equal(t, "/usr/bin/chromium", p.chromePath)
}

func TestPrintPDF_DefaultResume(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping headless Chrome test in short mode")
	}
	chrome, ok := FindChrome(os.Getenv("CHROME_PATH"))
	if !ok {
		t.Skip("no Chrome binary available")
	}

	n, err := rendering.Render(types.DefaultResume(), types.TemplateClassic)
	require.NoError(t, err)
	html, err := rendering.Page(n, types.TemplateClassic, rendering.PageOptions{Title: "Resume", Print: true})
	require.NoError(t, err)

	pdf, err := NewPrinter(nil, WithChromePath(chrome)).PrintPDF(context.Background(), html)
	require.NoError(t, err)
	assert.True(t, len(pdf) > 4 && string(pdf[:4]) == "%PDF")

	pages, err := PageCount(pdf)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, pages, 1)
}
