package schemas

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const personSchema = `{
	"$schema": "http://json-schema.org/draft-07/schema#",
	"type": "object",
	"required": ["name", "tags"],
	"properties": {
		"name": {"type": "string"},
		"tags": {"type": "array"}
	}
}`

func TestSchema_Validate(t *testing.T) {
	s := MustCompile("person", personSchema)
	assert.Equal(t, "person", s.Name())

	tests := []struct {
		name       string
		doc        string
		wantFields []string
	}{
		{"valid", `{"name": "Ada", "tags": []}`, nil},
		{"extra keys allowed", `{"name": "Ada", "tags": [], "age": 36}`, nil},
		{"missing field", `{"name": "Ada"}`, []string{"(root)"}},
		{"wrong types", `{"name": 7, "tags": {}}`, []string{"name", "tags"}},
		{"not an object", `[]`, []string{"(root)"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := s.Validate([]byte(tt.doc))
			if tt.wantFields == nil {
				assert.NoError(t, err)
				return
			}
			var ve *ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, "person", ve.Schema)
			assert.ElementsMatch(t, tt.wantFields, ve.Fields())
			assert.Len(t, ve.Messages(), len(tt.wantFields))
		})
	}
}

func TestValidationError_Message(t *testing.T) {
	err := MustCompile("person", personSchema).Validate([]byte(`{"name": "Ada"}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "document does not match person schema")
	assert.Contains(t, err.Error(), "tags")
}

func TestCompile_InvalidSchema(t *testing.T) {
	_, err := Compile("broken", `{ not a schema`)
	require.Error(t, err)

	var loadErr *SchemaLoadError
	require.ErrorAs(t, err, &loadErr)
	assert.Equal(t, "broken", loadErr.Schema)
	assert.NotNil(t, errors.Unwrap(err))

	assert.Panics(t, func() { MustCompile("broken", `{ not a schema`) })
}

func TestValidateJSON(t *testing.T) {
	assert.NoError(t, ValidateJSON(personSchema, []byte(`{"name": "Ada", "tags": ["x"]}`)))
	assert.Error(t, ValidateJSON(personSchema, []byte(`{}`)))

	var loadErr *SchemaLoadError
	assert.ErrorAs(t, ValidateJSON(`{ nope`, []byte(`{}`)), &loadErr)
}

func TestSchema_ConcurrentValidate(t *testing.T) {
	s := MustCompile("person", personSchema)
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, s.Validate([]byte(`{"name": "Ada", "tags": []}`)))
		}()
	}
	wg.Wait()
}
