package providers

import (
	"context"
	"errors"
	"net/http"
	"strings"
)

var (
	ErrMissingToken = errors.New("missing bearer token")
	ErrInvalidToken = errors.New("invalid token")
)

type AuthProvider interface {
	VerifyToken(ctx context.Context, idToken string) (*TokenClaims, error)
}

type TokenClaims struct {
	UID string `json:"uid"`
}

// BearerToken extracts the token from an "Authorization: Bearer <token>" header.
func BearerToken(r *http.Request) (string, error) {
	header := r.Header.Get("Authorization")
	scheme, token, ok := strings.Cut(header, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
		return "", ErrMissingToken
	}
	return strings.TrimSpace(token), nil
}

// VerifyRequest verifies the bearer token of r.
func VerifyRequest(p AuthProvider, r *http.Request) (*TokenClaims, error) {
	token, err := BearerToken(r)
	if err != nil {
		return nil, err
	}
	return p.VerifyToken(r.Context(), token)
}
