package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/adiwijaya/warungpos-backend/pkg/config"
	"github.com/adiwijaya/warungpos-backend/pkg/enums"
)

func TestMintAndParseSessionToken(t *testing.T) {
	cfg := config.JWTConfig{
		Secret:            "secret",
		Issuer:            "warungpos",
		ExpirationMinutes: 30,
	}
	now := time.Now().UTC()

	payload := SessionTokenPayload{
		UserID:   "u2",
		Username: "kasir1",
		Name:     "Siti (Kasir)",
		Role:     enums.UserRoleCashier,
	}

	token, err := MintSessionToken(cfg, now, payload)
	if err != nil {
		t.Fatalf("mint session token: %v", err)
	}

	claims, err := ParseSessionToken(cfg, token)
	if err != nil {
		t.Fatalf("parse session token: %v", err)
	}

	if claims.UserID != "u2" {
		t.Fatalf("expected user_id u2, got %s", claims.UserID)
	}
	if claims.Username != "kasir1" {
		t.Fatalf("unexpected username %s", claims.Username)
	}
	if claims.Name != "Siti (Kasir)" {
		t.Fatalf("unexpected name %s", claims.Name)
	}
	if claims.Role != enums.UserRoleCashier {
		t.Fatalf("unexpected role %s", claims.Role)
	}

	// RegisteredClaims is embedded, so access fields directly.
	if claims.Issuer != cfg.Issuer {
		t.Fatalf("expected issuer %s, got %s", cfg.Issuer, claims.Issuer)
	}

	exp := now.Add(time.Duration(cfg.ExpirationMinutes) * time.Minute)
	diff := claims.ExpiresAt.Sub(exp)
	if diff < 0 {
		diff = -diff
	}
	if diff >= time.Second {
		t.Fatalf("expected exp roughly %v, got %v (diff %v)", exp.UTC(), claims.ExpiresAt.UTC(), diff)
	}
}

func TestMintSessionTokenValidation(t *testing.T) {
	cfg := config.JWTConfig{Secret: "secret", Issuer: "warungpos", ExpirationMinutes: 30}
	now := time.Now()

	if _, err := MintSessionToken(cfg, now, SessionTokenPayload{Username: "x", Role: enums.UserRoleAdmin}); err == nil {
		t.Fatal("expected error for missing user id")
	}
	if _, err := MintSessionToken(cfg, now, SessionTokenPayload{UserID: "u1", Role: "manager"}); err == nil {
		t.Fatal("expected error for invalid role")
	}

	noSecret := cfg
	noSecret.Secret = ""
	if _, err := MintSessionToken(noSecret, now, SessionTokenPayload{UserID: "u1", Role: enums.UserRoleAdmin}); err == nil {
		t.Fatal("expected error for missing secret")
	}
}

func TestParseSessionTokenRejectsTampering(t *testing.T) {
	cfg := config.JWTConfig{Secret: "secret", Issuer: "warungpos", ExpirationMinutes: 30}
	token, err := MintSessionToken(cfg, time.Now(), SessionTokenPayload{
		UserID: "u1", Username: "admin", Name: "Budi (Admin)", Role: enums.UserRoleAdmin,
	})
	if err != nil {
		t.Fatalf("mint: %v", err)
	}

	otherSecret := cfg
	otherSecret.Secret = "other"
	if _, err := ParseSessionToken(otherSecret, token); err == nil {
		t.Fatal("expected signature mismatch")
	}

	otherIssuer := cfg
	otherIssuer.Issuer = "someone-else"
	if _, err := ParseSessionToken(otherIssuer, token); err == nil {
		t.Fatal("expected issuer mismatch")
	}

	mangled := strings.Replace(token, ".", "x", 1)
	if _, err := ParseSessionToken(cfg, mangled); err == nil {
		t.Fatal("expected parse failure for mangled token")
	}
}
