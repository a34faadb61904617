package auth

import (
	"crypto/rsa"
	"fmt"
	"seoeval/pkg/domain"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// TokenIssuer signs RS256 access tokens whose subject is the user id.
type TokenIssuer struct {
	key *rsa.PrivateKey
	ttl time.Duration
	now func() time.Time
}

// NewTokenIssuer parses the PEM encoded RSA private key.
func NewTokenIssuer(privateKeyPEM string, ttl time.Duration) (*TokenIssuer, error) {
	key, err := jwt.ParseRSAPrivateKeyFromPEM([]byte(privateKeyPEM))
	if err != nil {
		return nil, fmt.Errorf("could not parse RSA private key: %w", err)
	}
	if ttl <= 0 {
		return nil, fmt.Errorf("token ttl must be positive")
	}

	return &TokenIssuer{
		key: key,
		ttl: ttl,
		now: time.Now,
	}, nil
}

// Issue returns a signed token for uid and its expiry.
func (i *TokenIssuer) Issue(uid domain.UserID) (string, time.Time, error) {
	now := i.now()
	exp := now.Add(i.ttl)
	claims := jwt.RegisteredClaims{
		ID:        uuid.NewString(),
		Subject:   string(uid),
		ExpiresAt: jwt.NewNumericDate(exp),
		IssuedAt:  jwt.NewNumericDate(now),
		NotBefore: jwt.NewNumericDate(now),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(i.key)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("could not sign JWT: %w", err)
	}

	return signed, exp, nil
}
