package http

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

type contextKey int

const sessionIDKey contextKey = iota

const sessionCookie = "sinma_session"

// WithSession ensures every request carries a session id. A missing or
// empty cookie gets a fresh id, set on the response.
func WithSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var sid string
		if c, err := r.Cookie(sessionCookie); err == nil && c.Value != "" {
			sid = c.Value
		} else {
			sid = uuid.New().String()
			http.SetCookie(w, &http.Cookie{
				Name:     sessionCookie,
				Value:    sid,
				Path:     "/",
				HttpOnly: true,
				SameSite: http.SameSiteLaxMode,
			})
		}
		ctx := context.WithValue(r.Context(), sessionIDKey, sid)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// sessionID returns the request's session id set by WithSession.
func sessionID(r *http.Request) string {
	sid, _ := r.Context().Value(sessionIDKey).(string)
	return sid
}

// EnableCORS is a middleware to allow the storefront frontend to connect.
func EnableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}
