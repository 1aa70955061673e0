package utils

import (
	"testing"
	"time"

	"cafehub/pkg/config"
	"cafehub/pkg/models"
)

func init() {
	config.AppConfig = &config.Config{JWTSecret: "test-secret"}
}

func TestGenerateTokenRoundTrip(t *testing.T) {
	token, err := GenerateToken(7, "owner@example.com", models.RoleOwner)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	claims, err := VerifyToken(token)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if claims.ID != 7 || claims.Email != "owner@example.com" || claims.Role != models.RoleOwner {
		t.Fatalf("unexpected claims %+v", claims)
	}
}

func TestAuthCodeRoundTripAndShortExpiry(t *testing.T) {
	code, err := GenerateAuthCode(3, "staff@example.com", models.RoleStaff)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	claims, err := VerifyToken(code)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if claims.ID != 3 || claims.Role != models.RoleStaff {
		t.Fatalf("unexpected claims %+v", claims)
	}

	// a login code outlives a redirect, not a session
	if claims.ExpiresAt.Time.After(time.Now().Add(10 * time.Minute)) {
		t.Fatalf("auth code expiry too far out: %v", claims.ExpiresAt.Time)
	}
}

func TestVerifyTokenRejectsGarbage(t *testing.T) {
	if _, err := VerifyToken("not-a-token"); err == nil {
		t.Fatal("expected error for malformed token")
	}
}
