package utils

import (
	"testing"

	"github.com/golang-jwt/jwt/v5"
)

func TestNewAccessTokenClaims(t *testing.T) {
	at, err := NewAccessToken("test-secret", 42, "admin", 15)
	if err != nil {
		t.Fatalf("NewAccessToken: %v", err)
	}
	tok, err := jwt.Parse(at.Token, func(tok *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	if err != nil || !tok.Valid {
		t.Fatalf("parse issued token: %v", err)
	}
	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		t.Fatal("claims are not MapClaims")
	}
	if sub, _ := claims["sub"].(float64); uint64(sub) != 42 {
		t.Errorf("sub = %v, want 42", claims["sub"])
	}
	if role, _ := claims["role"].(string); role != "admin" {
		t.Errorf("role = %v, want admin", claims["role"])
	}
}

func TestRefreshTokenHashing(t *testing.T) {
	rt, err := NewRefreshToken(30)
	if err != nil {
		t.Fatalf("NewRefreshToken: %v", err)
	}
	if len(rt.Raw) != 96 {
		t.Errorf("raw token length = %d, want 96 hex chars", len(rt.Raw))
	}
	h1, h2 := HashRefreshRaw(rt.Raw), HashRefreshRaw(rt.Raw)
	if h1 != h2 {
		t.Error("hash is not deterministic")
	}
	if h1 == rt.Raw {
		t.Error("hash must differ from the raw token")
	}
	if len(h1) != 64 {
		t.Errorf("hash length = %d, want 64", len(h1))
	}
}
