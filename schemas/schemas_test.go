package schemas

import (
	"encoding/json"
	"testing"

	"github.com/jonathan/resume-builder/internal/schemas"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedSchemas_ValidJSON(t *testing.T) {
	for name, content := range map[string]string{"app_data": AppData, "resume": Resume} {
		t.Run(name, func(t *testing.T) {
			var schemaObj map[string]interface{}
			require.NoError(t, json.Unmarshal([]byte(content), &schemaObj), "schema should be valid JSON")

			_, hasType := schemaObj["type"]
			_, hasSchema := schemaObj["$schema"]
			_, hasRequired := schemaObj["required"]
			assert.True(t, hasType && hasSchema && hasRequired)
		})
	}
}

func TestAppDataSchema(t *testing.T) {
	tests := []struct {
		name      string
		doc       string
		wantError bool
	}{
		{"both keys", `{"resume": {}, "coverLetter": {}}`, false},
		{"missing cover letter", `{"resume": {}}`, true},
		{"null resume", `{"resume": null, "coverLetter": {}}`, true},
		{"array root", `[]`, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := schemas.MustCompile("package", AppData).Validate([]byte(tt.doc))
			if tt.wantError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestResumeSchema(t *testing.T) {
	tests := []struct {
		name      string
		doc       string
		wantError bool
	}{
		{"minimal", `{"personalInfo": {}, "experience": []}`, false},
		{"missing experience", `{"personalInfo": {}}`, true},
		{"experience not a list", `{"personalInfo": {}, "experience": {}}`, true},
		{"unknown keys allowed", `{"personalInfo": {}, "experience": [], "hobbies": 1}`, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := schemas.MustCompile("resume", Resume).Validate([]byte(tt.doc))
			if tt.wantError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
