package service

import (
	"context"
	"fmt"
	"testing"

	"firebase.google.com/go/v4/auth"
	"github.com/golang-jwt/jwt/v5"
	"github.com/liftcal/liftcal/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockAuthClient implements FirebaseAuthClient for testing
type mockAuthClient struct {
	validTokens map[string]*auth.Token
}

func newMockAuthClient() *mockAuthClient {
	return &mockAuthClient{validTokens: make(map[string]*auth.Token)}
}

func (m *mockAuthClient) VerifyIDToken(ctx context.Context, idToken string) (*auth.Token, error) {
	if token, ok := m.validTokens[idToken]; ok {
		return token, nil
	}
	return nil, fmt.Errorf("invalid mock token")
}

func (m *mockAuthClient) addUser(tokenString, uid, email string) {
	m.validTokens[tokenString] = &auth.Token{
		UID:    uid,
		Claims: map[string]interface{}{"email": email},
	}
}

func TestLoginIssuesSessionToken(t *testing.T) {
	ctx := context.Background()
	mock := newMockAuthClient()
	mock.addUser("firebase-token", "uid-42", "lifter@example.com")

	svc := NewAuthService(mock, "test-secret-key-123")

	tokenString, err := svc.Login(ctx, "firebase-token")
	require.NoError(t, err)
	require.NotEmpty(t, tokenString)

	token, err := jwt.ParseWithClaims(tokenString, &domain.SessionClaims{}, func(*jwt.Token) (interface{}, error) {
		return []byte("test-secret-key-123"), nil
	})
	require.NoError(t, err)
	require.True(t, token.Valid)

	claims := token.Claims.(*domain.SessionClaims)
	assert.Equal(t, "uid-42", claims.UserID)
	assert.Equal(t, "lifter@example.com", claims.Email)
	assert.NotNil(t, claims.ExpiresAt)
}

func TestLoginRejectsBadToken(t *testing.T) {
	ctx := context.Background()
	svc := NewAuthService(newMockAuthClient(), "test-secret-key-123")

	_, err := svc.Login(ctx, "not-a-token")
	assert.Error(t, err)
}
