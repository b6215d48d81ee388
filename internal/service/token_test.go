//go:build !integration

package service

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
)

var tokenTestSecret = []byte("test-secret-key")

func mintToken(t *testing.T, secret []byte, claims AccessClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(secret)
	assert.NoError(t, err)
	return signed
}

func TestHMACTokenVerifier_Verify(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name    string
		issuer  string
		token   func(t *testing.T) string
		check   func(*testing.T, *AccessClaims, error)
	}{
		{
			name: "valid token yields the claims",
			token: func(t *testing.T) string {
				return mintToken(t, tokenTestSecret, AccessClaims{
					UserID:    "user-1",
					CompanyID: "company-1",
					Email:     "ops@example.com",
					RegisteredClaims: jwt.RegisteredClaims{
						ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
					},
				})
			},
			check: func(t *testing.T, claims *AccessClaims, err error) {
				assert.NoError(t, err)
				assert.Equal(t, "user-1", claims.UserID)
				assert.Equal(t, "company-1", claims.CompanyID)
				assert.Equal(t, "ops@example.com", claims.Email)
			},
		},
		{
			name: "wrong secret is rejected",
			token: func(t *testing.T) string {
				return mintToken(t, []byte("other-secret"), AccessClaims{
					CompanyID: "company-1",
					RegisteredClaims: jwt.RegisteredClaims{
						ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
					},
				})
			},
			check: func(t *testing.T, claims *AccessClaims, err error) {
				assert.ErrorIs(t, err, ErrInvalidToken)
				assert.Nil(t, claims)
			},
		},
		{
			name: "expired token is rejected",
			token: func(t *testing.T) string {
				return mintToken(t, tokenTestSecret, AccessClaims{
					CompanyID: "company-1",
					RegisteredClaims: jwt.RegisteredClaims{
						ExpiresAt: jwt.NewNumericDate(now.Add(-time.Hour)),
					},
				})
			},
			check: func(t *testing.T, claims *AccessClaims, err error) {
				assert.ErrorIs(t, err, ErrInvalidToken)
				assert.Nil(t, claims)
			},
		},
		{
			name: "garbage token is rejected",
			token: func(t *testing.T) string {
				return "not.a.token"
			},
			check: func(t *testing.T, claims *AccessClaims, err error) {
				assert.ErrorIs(t, err, ErrInvalidToken)
				assert.Nil(t, claims)
			},
		},
		{
			name: "missing company claim is rejected",
			token: func(t *testing.T) string {
				return mintToken(t, tokenTestSecret, AccessClaims{
					UserID: "user-1",
					RegisteredClaims: jwt.RegisteredClaims{
						ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
					},
				})
			},
			check: func(t *testing.T, claims *AccessClaims, err error) {
				assert.ErrorIs(t, err, ErrInvalidToken)
				assert.Nil(t, claims)
			},
		},
		{
			name:   "issuer mismatch is rejected",
			issuer: "identity.example.com",
			token: func(t *testing.T) string {
				return mintToken(t, tokenTestSecret, AccessClaims{
					CompanyID: "company-1",
					RegisteredClaims: jwt.RegisteredClaims{
						Issuer:    "someone-else",
						ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
					},
				})
			},
			check: func(t *testing.T, claims *AccessClaims, err error) {
				assert.ErrorIs(t, err, ErrInvalidToken)
				assert.Nil(t, claims)
			},
		},
		{
			name:   "matching issuer is accepted",
			issuer: "identity.example.com",
			token: func(t *testing.T) string {
				return mintToken(t, tokenTestSecret, AccessClaims{
					UserID:    "user-2",
					CompanyID: "company-1",
					RegisteredClaims: jwt.RegisteredClaims{
						Issuer:    "identity.example.com",
						ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
					},
				})
			},
			check: func(t *testing.T, claims *AccessClaims, err error) {
				assert.NoError(t, err)
				assert.Equal(t, "user-2", claims.UserID)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verifier := NewHMACTokenVerifier(tokenTestSecret, tt.issuer)
			claims, err := verifier.Verify(context.Background(), tt.token(t))
			tt.check(t, claims, err)
		})
	}
}
