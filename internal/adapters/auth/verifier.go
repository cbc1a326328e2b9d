// Package auth provides bearer token verification for the authentication
// middleware. Tokens are RS256-signed JWTs verified against a configured
// PEM public key, the way an external identity provider publishes its
// signing certificate.
package auth

import (
	"context"
	"crypto/rsa"
	"fmt"
	"os"

	"github.com/golang-jwt/jwt/v5"

	"github.com/AndrewSerra/serverless-todo-api/internal/domain"
	"github.com/AndrewSerra/serverless-todo-api/internal/ports"
)

// Compile-time interface check.
var _ ports.TokenVerifier = (*JWTVerifier)(nil)

// JWTVerifier verifies RS256-signed JWTs and extracts the subject claim as
// the caller's user ID. Only RS256 is accepted; tokens signed with any other
// algorithm are rejected before signature verification.
type JWTVerifier struct {
	key      *rsa.PublicKey
	issuer   string
	audience string
}

// Option configures a JWTVerifier.
type Option func(*JWTVerifier)

// WithIssuer requires tokens to carry the given issuer claim.
func WithIssuer(issuer string) Option {
	return func(v *JWTVerifier) {
		v.issuer = issuer
	}
}

// WithAudience requires tokens to carry the given audience claim.
func WithAudience(audience string) Option {
	return func(v *JWTVerifier) {
		v.audience = audience
	}
}

// NewJWTVerifier creates a verifier from a PEM-encoded RSA public key or
// X.509 certificate.
func NewJWTVerifier(certPEM []byte, opts ...Option) (*JWTVerifier, error) {
	key, err := jwt.ParseRSAPublicKeyFromPEM(certPEM)
	if err != nil {
		return nil, fmt.Errorf("parsing RSA public key: %w", err)
	}

	v := &JWTVerifier{key: key}
	for _, opt := range opts {
		opt(v)
	}
	return v, nil
}

// NewJWTVerifierFromFile creates a verifier from a PEM file on disk.
func NewJWTVerifierFromFile(path string, opts ...Option) (*JWTVerifier, error) {
	pem, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading cert file %s: %w", path, err)
	}
	return NewJWTVerifier(pem, opts...)
}

// Verify checks the token signature and registered claims and returns the
// subject. All failures wrap domain.ErrUnauthorized so callers can map them
// to a 401 without inspecting the cause.
func (v *JWTVerifier) Verify(_ context.Context, token string) (string, error) {
	parserOpts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()}),
		jwt.WithExpirationRequired(),
	}
	if v.issuer != "" {
		parserOpts = append(parserOpts, jwt.WithIssuer(v.issuer))
	}
	if v.audience != "" {
		parserOpts = append(parserOpts, jwt.WithAudience(v.audience))
	}

	var claims jwt.RegisteredClaims
	_, err := jwt.ParseWithClaims(token, &claims, func(_ *jwt.Token) (any, error) {
		return v.key, nil
	}, parserOpts...)
	if err != nil {
		return "", fmt.Errorf("invalid token: %w: %w", err, domain.ErrUnauthorized)
	}

	if claims.Subject == "" {
		return "", fmt.Errorf("token has no subject: %w", domain.ErrUnauthorized)
	}

	return claims.Subject, nil
}
