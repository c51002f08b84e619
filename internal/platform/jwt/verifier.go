package jwtmw

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Verification errors. Callers that expose results over HTTP must
// collapse all of these into a single generic 401 response.
var (
	// ErrTokenMalformed is returned when the token cannot be parsed or decoded.
	ErrTokenMalformed = errors.New("token is malformed")

	// ErrSignatureInvalid is returned when the signature does not match the secret.
	ErrSignatureInvalid = errors.New("token signature is invalid")

	// ErrTokenExpired is returned when the embedded expiry is in the past.
	ErrTokenExpired = errors.New("token has expired")

	// ErrTokenInvalid is returned for any other verification failure,
	// including a missing or non-numeric subject claim.
	ErrTokenInvalid = errors.New("token is invalid")
)

// Verifier checks a signed JWT token and extracts the subject user ID.
// The secret is injected at construction so tests can use a fixed value.
type Verifier struct {
	secret []byte
	now    func() time.Time
}

// NewVerifier creates a new Verifier with the provided secret.
func NewVerifier(secret string) *Verifier {
	return &Verifier{
		secret: []byte(secret),
		now:    time.Now,
	}
}

// Verify parses the token string, checks the signature and expiry, and
// returns the embedded user ID. The signature check happens before any
// claim is trusted.
func (v *Verifier) Verify(tokenStr string) (uint, error) {
	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		// 署名アルゴリズムをチェック（HMACのみ許可）
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return v.secret, nil
	}, jwt.WithTimeFunc(v.now))

	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenMalformed):
			return 0, ErrTokenMalformed
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return 0, ErrSignatureInvalid
		case errors.Is(err, jwt.ErrTokenExpired):
			return 0, ErrTokenExpired
		default:
			return 0, ErrTokenInvalid
		}
	}
	if !token.Valid {
		return 0, ErrTokenInvalid
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, ErrTokenInvalid
	}
	// JWT numbers are decoded as float64
	sub, ok := claims["sub"].(float64)
	if !ok {
		return 0, ErrTokenInvalid
	}

	return uint(sub), nil
}
