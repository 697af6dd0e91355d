package middleware

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/rogerio-castellano/backoffice-analytics/internal/auth"
)

type contextKey string

const sessionKey = contextKey("session")

var (
	issuer   *auth.TokenIssuer
	sessions auth.SessionStore
)

func SetTokenIssuer(t *auth.TokenIssuer) {
	issuer = t
}

func SetSessionStore(s auth.SessionStore) {
	sessions = s
}

func BearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		return "", false
	}
	token := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
	return token, token != ""
}

// Authenticate resolves the bearer token to a live session and puts it in
// the request context.
func Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := BearerToken(r)
		if !ok {
			http.Error(w, "missing or invalid token", http.StatusUnauthorized)
			return
		}

		claims, err := issuer.Parse(token)
		if err != nil {
			http.Error(w, "invalid token", http.StatusUnauthorized)
			return
		}

		session, err := sessions.Get(r.Context(), claims.SessionID())
		if err != nil {
			if !errors.Is(err, auth.ErrSessionNotFound) {
				log.Printf("Failed to load session: %v", err)
			}
			http.Error(w, "session expired", http.StatusUnauthorized)
			return
		}
		if session.UserID != claims.UserID() {
			http.Error(w, "invalid token", http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, r.WithContext(WithSession(r.Context(), session)))
	})
}

func SessionFromContext(ctx context.Context) (auth.Session, bool) {
	s, ok := ctx.Value(sessionKey).(auth.Session)
	return s, ok
}

// WithSession returns a copy of ctx carrying s.
func WithSession(ctx context.Context, s auth.Session) context.Context {
	return context.WithValue(ctx, sessionKey, s)
}
