package session

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/eshoplabs/go-shop-state/internal/model"
)

var ErrInvalidToken = errors.New("invalid token")

type tokenClaims struct {
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

func mintToken(user *model.User, secret []byte, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := tokenClaims{
		Username: user.Username,
		Role:     string(user.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
}

// verifyToken checks the signature and expiry and returns the claims.
func verifyToken(raw string, secret []byte) (*tokenClaims, error) {
	token, err := jwt.ParseWithClaims(raw, &tokenClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	claims, ok := token.Claims.(*tokenClaims)
	if !ok {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// tokenExpired reports whether raw carries an expiry in the past. The
// signature is still required; a token we did not mint counts as expired.
func tokenExpired(raw string, secret []byte) bool {
	token, err := jwt.ParseWithClaims(raw, &tokenClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return secret, nil
	}, jwt.WithoutClaimsValidation())
	if err != nil || !token.Valid {
		return true
	}
	claims, ok := token.Claims.(*tokenClaims)
	if !ok || claims.ExpiresAt == nil {
		return true
	}
	return claims.ExpiresAt.Before(time.Now())
}
