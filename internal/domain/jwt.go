package domain

import (
	"github.com/golang-jwt/jwt/v5"
)

// SessionClaims represents the custom JWT claims carried by a liftcal
// session token.
type SessionClaims struct {
	UserID string `json:"user_id"`
	Email  string `json:"email,omitempty"`
	jwt.RegisteredClaims
}
