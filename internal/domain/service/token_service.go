package service

import (
	"github.com/golang-jwt/jwt/v5"
)

// TokenService defines the contract for verifying access tokens.
// Token issuance lives with the identity provider; this service only
// validates what the transport layer hands in.
type TokenService interface {
	// ValidateToken checks the validity of a token string against a secret.
	ValidateToken(tokenString string, secret string) (*jwt.Token, error)
}
