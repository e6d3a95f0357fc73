package rendering

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBulletLines(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"bullets", "• one\n• two", []string{"one", "two"}},
		{"hyphens", "- one\n-two", []string{"one", "two"}},
		{"blank lines", "one\n\n   \ntwo", []string{"one", "two"}},
		{"only one marker", "• - nested", []string{"- nested"}},
		{"indented marker", "   • one", []string{"one"}},
		{"empty", "", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, BulletLines(tt.input))
		})
	}
}

func TestDisplayURL(t *testing.T) {
	tests := map[string]string{
		"https://www.example.com/":  "example.com",
		"http://example.com/a/":     "example.com/a",
		"github.com/alexdoe":        "github.com/alexdoe",
		"https://wwwexample.com":    "wwwexample.com",
		"ftp://files.example.com/x": "ftp://files.example.com/x",
	}
	for in, want := range tests {
		assert.Equal(t, want, DisplayURL(in), in)
	}
}

func TestLinkTarget(t *testing.T) {
	assert.Equal(t, "https://alexdoe.dev", LinkTarget("alexdoe.dev"))
	assert.Equal(t, "http://alexdoe.dev", LinkTarget("http://alexdoe.dev"))
}
