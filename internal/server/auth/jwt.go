// Package auth implements the credential primitives of the server:
// signed identity tokens and salted password hashing.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"taskkeeper/internal/common"
)

// Claims is the token payload: registered claims plus the identity pair
// the rest of the service works with.
type Claims struct {
	jwt.RegisteredClaims
	UserID string `json:"userId"`
	Email  string `json:"email"`
}

// Payload is the verified identity carried by a token.
type Payload struct {
	UserID string
	Email  string
}

// TokenService issues and verifies HS256-signed identity tokens.
// The secret is process-wide configuration; rotating it invalidates
// every previously issued token.
type TokenService struct {
	secretKey        []byte
	validityDuration time.Duration
}

func NewTokenService(secretKey []byte, validityDuration time.Duration) *TokenService {
	return &TokenService{secretKey: secretKey, validityDuration: validityDuration}
}

// Issue signs a token for the given identity, expiring after the
// configured validity duration.
func (s *TokenService) Issue(userID, email string) (string, error) {
	now := time.Now()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.validityDuration)),
		},
		UserID: userID,
		Email:  email,
	})

	tokenString, err := token.SignedString(s.secretKey)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// Verify validates the signature and expiry of tokenString and returns the
// embedded payload. Expired tokens yield common.ErrTokenExpired; any other
// failure yields common.ErrInvalidToken.
func (s *TokenService) Verify(tokenString string) (*Payload, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return s.secretKey, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, common.ErrTokenExpired
		}
		return nil, common.ErrInvalidToken
	}

	if !token.Valid {
		return nil, common.ErrInvalidToken
	}

	return &Payload{UserID: claims.UserID, Email: claims.Email}, nil
}
