package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken is returned when a token fails verification.
var ErrInvalidToken = errors.New("invalid token")

// AccessClaims are the claims this service reads from access tokens minted by
// the external identity service. Tenancy rides on the company claim: every
// operation is scoped to it.
type AccessClaims struct {
	UserID    string `json:"user_id"`
	CompanyID string `json:"company_id"`
	Email     string `json:"email,omitempty"`
	jwt.RegisteredClaims
}

// TokenVerifier validates access tokens and extracts their claims. Token
// issuance and refresh belong to the external identity service; this side
// only verifies.
// This interface can be mocked for testing.
type TokenVerifier interface {
	Verify(ctx context.Context, token string) (*AccessClaims, error)
}

// HMACTokenVerifier verifies HS256 tokens against a shared secret.
type HMACTokenVerifier struct {
	secret []byte
	issuer string
}

// NewHMACTokenVerifier creates a verifier for the given shared secret.
// When issuer is non-empty, tokens from any other issuer are rejected.
func NewHMACTokenVerifier(secret []byte, issuer string) *HMACTokenVerifier {
	return &HMACTokenVerifier{secret: secret, issuer: issuer}
}

// Verify parses and validates the token, returning its claims.
func (v *HMACTokenVerifier) Verify(_ context.Context, tokenString string) (*AccessClaims, error) {
	claims := &AccessClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return v.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	if v.issuer != "" {
		issuer, err := claims.GetIssuer()
		if err != nil || issuer != v.issuer {
			return nil, ErrInvalidToken
		}
	}
	if claims.CompanyID == "" {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
