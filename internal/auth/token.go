// Package auth implements session token issuance/verification and
// password hashing.
package auth

import (
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"serenityplace/internal/errs"
)

// TokenTTL is how long an issued session token stays valid. Tokens are
// stateless; there is no server-side revocation before expiry.
const TokenTTL = 24 * time.Hour

// TokenService issues and verifies signed HS256 session tokens that
// embed the user identifier as the JWT subject.
type TokenService struct {
	signKey []byte
	ttl     time.Duration
}

func NewTokenService(signKey []byte) *TokenService {
	return &TokenService{signKey: signKey, ttl: TokenTTL}
}

// Issue creates a signed token for the given user, expiring after the
// service TTL.
func (s *TokenService) Issue(userID int64) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   strconv.FormatInt(userID, 10),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
	}
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := tok.SignedString(s.signKey)
	if err != nil {
		return "", fmt.Errorf("signing token: %w", err)
	}
	return signed, nil
}

// Verify checks signature and expiry and returns the embedded user ID.
// Any failure (malformed, expired, bad signature, wrong algorithm) maps
// to errs.ErrUnauthorized; the caller still has to resolve the ID
// against the user store.
func (s *TokenService) Verify(tokenStr string) (int64, error) {
	tok, err := jwt.ParseWithClaims(tokenStr, &jwt.RegisteredClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return s.signKey, nil
	})
	if err != nil || !tok.Valid {
		return 0, errs.ErrUnauthorized
	}
	claims, ok := tok.Claims.(*jwt.RegisteredClaims)
	if !ok || claims.Subject == "" {
		return 0, errs.ErrUnauthorized
	}
	id, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		return 0, errs.ErrUnauthorized
	}
	return id, nil
}
