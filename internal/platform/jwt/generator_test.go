package jwtmw

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TestNewGenerator は各種設定でGeneratorが正しく生成されることを検証します。
func TestNewGenerator(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name               string
		secret             string
		expiration         time.Duration
		expectedExpiration time.Duration
	}{
		{"standard config", "my-secret-key", time.Hour, time.Hour},
		{"session expiration", "secret", 7 * 24 * time.Hour, 7 * 24 * time.Hour},
		{"zero expiration falls back to default", "secret", 0, DefaultExpiration},
		{"negative expiration falls back to default", "secret", -time.Minute, DefaultExpiration},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			gen := NewGenerator(tt.secret, tt.expiration)

			if gen == nil {
				t.Fatal("expected generator to be non-nil")
			}
			if string(gen.secret) != tt.secret {
				t.Errorf("expected secret %q, got %q", tt.secret, string(gen.secret))
			}
			if gen.expiration != tt.expectedExpiration {
				t.Errorf("expected expiration %v, got %v", tt.expectedExpiration, gen.expiration)
			}
		})
	}
}

// TestGenerator_GenerateToken は生成されたJWTトークンが有効で正しいクレームを含むことを検証します。
func TestGenerator_GenerateToken(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		userID     uint
		email      string
		expiration time.Duration
	}{
		{"basic user", 1, "user@example.com", time.Hour},
		{"user with special email", 42, "user+tag@example.com", time.Hour},
		{"large user id", 999999, "test@test.com", 24 * time.Hour},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			gen := NewGenerator("test-secret", tt.expiration)
			tokenStr, err := gen.GenerateToken(tt.userID, tt.email)

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tokenStr == "" {
				t.Fatal("expected non-empty token")
			}

			// Verify the token can be parsed
			token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
				return []byte("test-secret"), nil
			})
			if err != nil {
				t.Fatalf("failed to parse token: %v", err)
			}
			if !token.Valid {
				t.Error("expected token to be valid")
			}

			claims, ok := token.Claims.(jwt.MapClaims)
			if !ok {
				t.Fatal("expected MapClaims")
			}
			if sub, _ := claims["sub"].(float64); uint(sub) != tt.userID {
				t.Errorf("expected sub %d, got %v", tt.userID, claims["sub"])
			}
			if email, _ := claims["email"].(string); email != tt.email {
				t.Errorf("expected email %q, got %q", tt.email, claims["email"])
			}
		})
	}
}

// TestGenerator_GenerateToken_Expiry は埋め込まれた有効期限が発行時刻+TTLであることを検証します。
func TestGenerator_GenerateToken_Expiry(t *testing.T) {
	t.Parallel()

	issued := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	gen := NewGenerator("test-secret", 7*24*time.Hour)
	gen.now = func() time.Time { return issued }

	tokenStr, err := gen.GenerateToken(7, "user@example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	}, jwt.WithTimeFunc(func() time.Time { return issued }))
	if err != nil {
		t.Fatalf("failed to parse token: %v", err)
	}

	claims := token.Claims.(jwt.MapClaims)
	exp, _ := claims["exp"].(float64)
	if int64(exp) != issued.Add(7*24*time.Hour).Unix() {
		t.Errorf("expected exp %d, got %d", issued.Add(7*24*time.Hour).Unix(), int64(exp))
	}
	iat, _ := claims["iat"].(float64)
	if int64(iat) != issued.Unix() {
		t.Errorf("expected iat %d, got %d", issued.Unix(), int64(iat))
	}
}
