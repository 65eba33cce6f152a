package providers

import (
	"context"
	"errors"
	"fmt"

	firebase "firebase.google.com/go"
	"firebase.google.com/go/auth"
	"google.golang.org/api/option"
)

var _ AuthProvider = &FirebaseAuthProvider{}

// idTokenVerifier is the part of the Firebase Auth client the replay server needs.
type idTokenVerifier interface {
	VerifyIDToken(ctx context.Context, idToken string) (*auth.Token, error)
}

// FirebaseAuthProvider accepts Firebase ID tokens issued for a single project.
type FirebaseAuthProvider struct {
	projectID string
	verifier  idTokenVerifier
}

func NewFirebaseAuthProvider(ctx context.Context, projectID string, apiKey string) (*FirebaseAuthProvider, error) {
	if projectID == "" {
		return nil, errors.New("firebase project id is required")
	}
	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: projectID}, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize firebase app: %w", err)
	}
	client, err := app.Auth(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get firebase auth client: %w", err)
	}
	return &FirebaseAuthProvider{
		projectID: projectID,
		verifier:  client,
	}, nil
}

func (p *FirebaseAuthProvider) VerifyToken(ctx context.Context, idToken string) (*TokenClaims, error) {
	if idToken == "" {
		return nil, ErrMissingToken
	}
	token, err := p.verifier.VerifyIDToken(ctx, idToken)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}
	if token.Audience != p.projectID {
		return nil, fmt.Errorf("%w: audience %q does not match project %q", ErrInvalidToken, token.Audience, p.projectID)
	}
	return &TokenClaims{
		UID: token.UID,
	}, nil
}
