package jwt

import (
	"testing"
	"time"

	"hitbox/backend/internal/config"

	jwtlib "github.com/golang-jwt/jwt/v5"
)

func setSecret(t *testing.T, secret string) {
	t.Helper()
	old := config.AppConfig
	config.AppConfig = &config.Config{JWTSecret: secret}
	t.Cleanup(func() { config.AppConfig = old })
}

func TestGenerateAndParseToken(t *testing.T) {
	setSecret(t, "test-secret")

	token, err := GenerateToken(42)
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}

	userID, expiresAt, err := ParseToken(token)
	if err != nil {
		t.Fatalf("ParseToken() error = %v", err)
	}
	if userID != 42 {
		t.Errorf("userID = %d, want 42", userID)
	}

	ttl := time.Until(expiresAt)
	if ttl < TokenTTL-time.Minute || ttl > TokenTTL {
		t.Errorf("token TTL = %v, want about %v", ttl, TokenTTL)
	}
}

func TestParseTokenWrongSecret(t *testing.T) {
	setSecret(t, "test-secret")
	token, err := GenerateToken(42)
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}

	setSecret(t, "other-secret")
	if _, _, err := ParseToken(token); err == nil {
		t.Error("ParseToken() accepted a token signed with another secret")
	}
}

func TestParseTokenExpired(t *testing.T) {
	setSecret(t, "test-secret")

	claims := jwtlib.MapClaims{
		"sub": 42,
		"exp": time.Now().Add(-time.Minute).Unix(),
		"iat": time.Now().Add(-2 * time.Hour).Unix(),
	}
	token, err := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("signing token: %v", err)
	}

	if _, _, err := ParseToken(token); err == nil {
		t.Error("ParseToken() accepted an expired token")
	}
}

func TestParseTokenMangled(t *testing.T) {
	setSecret(t, "test-secret")

	if _, _, err := ParseToken("not.a.token"); err == nil {
		t.Error("ParseToken() accepted garbage")
	}
}
