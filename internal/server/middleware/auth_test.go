package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

type staticValidator map[string]string

func (v staticValidator) ValidateToken(token string) (string, error) {
	if s, ok := v[token]; ok {
		return s, nil
	}
	return "", errors.New("invalid token")
}

func TestRequireToken(t *testing.T) {
	validator := staticValidator{"good-token": "alex"}

	tests := []struct {
		name       string
		header     string
		wantStatus int
		wantSub    string
	}{
		{"valid", "Bearer good-token", http.StatusOK, "alex"},
		{"lowercase scheme", "bearer good-token", http.StatusOK, "alex"},
		{"missing header", "", http.StatusUnauthorized, ""},
		{"wrong scheme", "Basic good-token", http.StatusUnauthorized, ""},
		{"no token", "Bearer", http.StatusUnauthorized, ""},
		{"extra parts", "Bearer good-token extra", http.StatusUnauthorized, ""},
		{"unknown token", "Bearer bad-token", http.StatusUnauthorized, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotSub string
			handler := RequireToken(validator)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotSub, _ = Subject(r)
				w.WriteHeader(http.StatusOK)
			}))

			req := httptest.NewRequest(http.MethodGet, "/api/document", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, tt.wantSub, gotSub)
			if tt.wantStatus == http.StatusUnauthorized {
				assert.JSONEq(t, `{"error":"unauthorized"}`, w.Body.String())
				assert.NotEmpty(t, w.Header().Get("WWW-Authenticate"))
			}
		})
	}
}

func TestSubject_Missing(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	_, ok := Subject(req)
	assert.False(t, ok)
}
