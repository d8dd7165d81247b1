package middleware

import (
	"net/http"

	"chatserver/internal/auth"
	"chatserver/internal/handler"
)

// RequireAuth rejects requests without a verifiable bearer credential:
// 401 when the header is missing, 403 when the token is bad or expired.
func RequireAuth(tokens *auth.TokenService, next func(w http.ResponseWriter, r *http.Request)) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		identity, err := auth.ResolveMandatory(tokens, r.Header.Get("Authorization"))
		if err != nil {
			handler.WriteError(w, err)
			return
		}

		next(w, r.WithContext(auth.ContextWithIdentity(r.Context(), identity)))
	}
}

// OptionalAuth attaches an identity when the credential verifies and
// lets the request through as Guest otherwise.
func OptionalAuth(tokens *auth.TokenService, next func(w http.ResponseWriter, r *http.Request)) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		if identity := auth.ResolveOptional(tokens, r.Header.Get("Authorization")); identity != nil {
			r = r.WithContext(auth.ContextWithIdentity(r.Context(), identity))
		}

		next(w, r)
	}
}
