package ports

import "context"

// TokenVerifier resolves a caller identity from a bearer token. Implemented
// by the auth adapter; called by the authentication middleware.
type TokenVerifier interface {
	// Verify checks the token and returns the stable opaque user identifier
	// it carries. Returns an error wrapping domain.ErrUnauthorized if the
	// token is missing a subject, malformed, expired, or otherwise invalid.
	Verify(ctx context.Context, token string) (string, error)
}
