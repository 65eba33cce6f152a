package providers

import (
	"context"
	"errors"
	"testing"

	"firebase.google.com/go/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeVerifier struct {
	token *auth.Token
	err   error
}

func (f *fakeVerifier) VerifyIDToken(ctx context.Context, idToken string) (*auth.Token, error) {
	return f.token, f.err
}

func TestFirebaseAuthProvider_VerifyToken(t *testing.T) {
	tests := []struct {
		name     string
		verifier *fakeVerifier
		token    string
		wantUID  string
		wantErr  error
	}{
		{
			name:     "valid",
			verifier: &fakeVerifier{token: &auth.Token{UID: "player-1", Audience: "salt"}},
			token:    "id-token",
			wantUID:  "player-1",
		},
		{
			name:     "empty token",
			verifier: &fakeVerifier{},
			wantErr:  ErrMissingToken,
		},
		{
			name:     "rejected by firebase",
			verifier: &fakeVerifier{err: errors.New("token expired")},
			token:    "id-token",
			wantErr:  ErrInvalidToken,
		},
		{
			name:     "other project",
			verifier: &fakeVerifier{token: &auth.Token{UID: "player-1", Audience: "elsewhere"}},
			token:    "id-token",
			wantErr:  ErrInvalidToken,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &FirebaseAuthProvider{projectID: "salt", verifier: tt.verifier}

			claims, err := p.VerifyToken(context.Background(), tt.token)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantUID, claims.UID)
		})
	}
}

func TestNewFirebaseAuthProvider_RequiresProject(t *testing.T) {
	_, err := NewFirebaseAuthProvider(context.Background(), "", "key")
	assert.Error(t, err)
}
