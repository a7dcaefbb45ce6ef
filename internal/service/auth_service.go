package service

import (
	"context"
	"fmt"
	"time"

	"firebase.google.com/go/v4/auth"
	"github.com/golang-jwt/jwt/v5"
	"github.com/liftcal/liftcal/internal/domain"
)

// sessionTokenTTL is the lifetime of an issued session token.
const sessionTokenTTL = 24 * time.Hour

// FirebaseAuthClient is the slice of the Firebase Admin SDK the auth
// service needs; tests substitute a mock.
type FirebaseAuthClient interface {
	VerifyIDToken(ctx context.Context, idToken string) (*auth.Token, error)
}

// AuthService exchanges Firebase ID tokens for the API's own session
// tokens so request verification never round-trips to Firebase.
type AuthService struct {
	authClient FirebaseAuthClient
	jwtSecret  string
}

// NewAuthService creates a new auth service
func NewAuthService(authClient FirebaseAuthClient, jwtSecret string) *AuthService {
	return &AuthService{
		authClient: authClient,
		jwtSecret:  jwtSecret,
	}
}

// Login verifies a Firebase ID token and issues a session token carrying
// the Firebase UID and email.
func (s *AuthService) Login(ctx context.Context, idToken string) (string, error) {
	token, err := s.authClient.VerifyIDToken(ctx, idToken)
	if err != nil {
		return "", fmt.Errorf("invalid firebase token: %w", err)
	}

	email, _ := token.Claims["email"].(string)
	return s.generateSessionToken(token.UID, email)
}

func (s *AuthService) generateSessionToken(userID, email string) (string, error) {
	now := time.Now()
	claims := domain.SessionClaims{
		UserID: userID,
		Email:  email,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(sessionTokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.jwtSecret))
	if err != nil {
		return "", fmt.Errorf("failed to sign session token: %w", err)
	}
	return signed, nil
}
