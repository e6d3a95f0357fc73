// Package middleware holds HTTP middleware shared by the editor API.
package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
)

type contextKey string

const subjectKey contextKey = "subject"

// TokenValidator checks a bearer token and returns its subject.
type TokenValidator interface {
	ValidateToken(token string) (subject string, err error)
}

// RequireToken rejects requests without a valid bearer token and stores the
// token subject in the request context.
func RequireToken(v TokenValidator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := bearerToken(r.Header.Get("Authorization"))
			if !ok {
				unauthorized(w)
				return
			}
			subject, err := v.ValidateToken(token)
			if err != nil {
				unauthorized(w)
				return
			}
			ctx := context.WithValue(r.Context(), subjectKey, subject)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// Subject returns the authenticated subject, if any.
func Subject(r *http.Request) (string, bool) {
	s, ok := r.Context().Value(subjectKey).(string)
	return s, ok
}

// bearerToken parses "Bearer <token>", matching the scheme case-insensitively.
func bearerToken(header string) (string, bool) {
	parts := strings.Fields(header)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}
	return parts[1], true
}

func unauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("WWW-Authenticate", `Bearer realm="resume-builder"`)
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": "unauthorized"})
}
