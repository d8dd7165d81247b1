package auth

import (
	"context"
	"strings"

	apperr "chatserver/pkg/errors"
)

type contextKey string

const identityKey contextKey = "identity"

func ContextWithIdentity(ctx context.Context, id *Identity) context.Context {
	return context.WithValue(ctx, identityKey, id)
}

// IdentityFromContext returns the resolved identity, or nil for Guest.
func IdentityFromContext(ctx context.Context) *Identity {
	id, _ := ctx.Value(identityKey).(*Identity)
	return id
}

// bearerToken extracts the credential from an Authorization header
// value, or "" when the header is absent or carries no credential.
// The scheme word is not checked; clients send "Bearer <token>" but
// only the second word matters.
func bearerToken(header string) string {
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 {
		return ""
	}
	return parts[1]
}

// ResolveMandatory fails on a missing or unverifiable credential.
func ResolveMandatory(tokens *TokenService, authorizationHeader string) (*Identity, error) {
	credential := bearerToken(authorizationHeader)
	if credential == "" {
		return nil, apperr.ErrMissingToken
	}
	username, err := tokens.Validate(credential)
	if err != nil {
		return nil, err
	}
	return &Identity{Username: username}, nil
}

// ResolveOptional never fails: a missing or bad credential degrades to
// Guest (nil).
func ResolveOptional(tokens *TokenService, authorizationHeader string) *Identity {
	credential := bearerToken(authorizationHeader)
	if credential == "" {
		return nil
	}
	username, err := tokens.Validate(credential)
	if err != nil {
		return nil
	}
	return &Identity{Username: username}
}
