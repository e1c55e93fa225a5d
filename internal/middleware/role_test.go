package middleware

import (
	"net/http"
	"testing"
)

func TestRequireRole(t *testing.T) {
	adminTok := signToken(t, "secret", 1, "admin")
	userTok := signToken(t, "secret", 2, "user")

	t.Run("admin passes", func(t *testing.T) {
		rec, _ := runProtected(t, "Bearer "+adminTok, JWTAuth("secret"), RequireRole("admin"))
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", rec.Code)
		}
	})

	t.Run("user forbidden", func(t *testing.T) {
		rec, _ := runProtected(t, "Bearer "+userTok, JWTAuth("secret"), RequireRole("admin"))
		if rec.Code != http.StatusForbidden {
			t.Fatalf("status = %d, want 403", rec.Code)
		}
	})

	t.Run("no identity forbidden", func(t *testing.T) {
		rec, _ := runProtected(t, "", RequireRole("admin"))
		if rec.Code != http.StatusForbidden {
			t.Fatalf("status = %d, want 403", rec.Code)
		}
	})
}
