package middleware

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/AndrewSerra/serverless-todo-api/internal/adapters/http/dto"
	"github.com/AndrewSerra/serverless-todo-api/internal/domain"
	"github.com/AndrewSerra/serverless-todo-api/internal/platform/logging"
	"github.com/AndrewSerra/serverless-todo-api/internal/ports"
)

const bearerPrefix = "Bearer "

// userIDKey is the context key for storing the authenticated user identifier.
type userIDKey struct{}

// WithUserID returns a new context with the given user ID stored in it.
func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, userIDKey{}, userID)
}

// UserIDFromContext extracts the authenticated user ID from the context.
// Returns an empty string if the request was not authenticated.
func UserIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(userIDKey{}).(string); ok {
		return id
	}
	return ""
}

// Auth returns middleware that resolves the caller identity from the
// Authorization header's bearer token using the given verifier and stores
// the resulting user ID in the request context. Requests without a valid
// token receive an RFC 9457 401 response.
func Auth(verifier ports.TokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, err := bearerToken(r)
			if err != nil {
				dto.WriteErrorResponse(w, r, err)
				return
			}

			userID, err := verifier.Verify(r.Context(), token)
			if err != nil {
				logging.FromContext(r.Context()).WarnContext(r.Context(), "token verification failed",
					slog.String("path", r.URL.Path),
					slog.Any("error", err),
				)
				dto.WriteErrorResponse(w, r, err)
				return
			}

			ctx := WithUserID(r.Context(), userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// bearerToken extracts the token from the Authorization header.
func bearerToken(r *http.Request) (string, error) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return "", fmt.Errorf("missing authorization header: %w", domain.ErrUnauthorized)
	}
	if !strings.HasPrefix(header, bearerPrefix) {
		return "", fmt.Errorf("authorization header is not a bearer token: %w", domain.ErrUnauthorized)
	}
	return strings.TrimPrefix(header, bearerPrefix), nil
}
