package middleware

import (
	"context"
	"net/http"

	"github.com/duacyd/analitica/config"
)

type ctxKeySession struct{}

// RequireSession gates a handler behind a valid session cookie. It is a
// pure precondition check: unauthenticated requests are redirected to
// the login page, authenticated ones pass through with the session
// claims injected into the request context.
func RequireSession(tokens config.Token) func(HandlerFunc) HandlerFunc {
	return func(next HandlerFunc) HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) error {
			cookie, err := r.Cookie(config.SessionCookieName)
			if err != nil || cookie.Value == "" {
				http.Redirect(w, r, "/login", http.StatusFound)
				return nil
			}

			claims, err := tokens.ValidateSession(cookie.Value)
			if err != nil {
				http.Redirect(w, r, "/login", http.StatusFound)
				return nil
			}

			r = r.WithContext(context.WithValue(r.Context(), ctxKeySession{}, claims))
			return next(w, r)
		}
	}
}

// SessionFrom returns the claims injected by RequireSession, or nil on
// ungated routes.
func SessionFrom(r *http.Request) *config.Claims {
	if claims, ok := r.Context().Value(ctxKeySession{}).(*config.Claims); ok {
		return claims
	}
	return nil
}
