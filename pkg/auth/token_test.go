package auth

import (
	"testing"
	"time"

	"github.com/delito/admin-api/pkg/config"
	"github.com/golang-jwt/jwt/v5"
)

func TestMintAndParseAdminToken(t *testing.T) {
	cfg := config.JWTConfig{Secret: "secret", Issuer: "delito-admin"}
	now := time.Now().UTC()

	token, err := MintAdminToken(cfg, now, "admin-7", RoleAdmin, time.Hour)
	if err != nil {
		t.Fatalf("mint admin token: %v", err)
	}

	claims, err := ParseAdminToken(cfg, token)
	if err != nil {
		t.Fatalf("parse admin token: %v", err)
	}
	if claims.AdminID() != "admin-7" {
		t.Fatalf("expected admin-7, got %s", claims.AdminID())
	}
	if !claims.IsAdmin() {
		t.Fatalf("expected admin role")
	}
	if claims.Issuer != cfg.Issuer {
		t.Fatalf("expected issuer %s, got %s", cfg.Issuer, claims.Issuer)
	}
}

func TestParseAdminTokenRejectsExpired(t *testing.T) {
	cfg := config.JWTConfig{Secret: "secret", Issuer: "delito-admin"}
	token, err := MintAdminToken(cfg, time.Now().Add(-2*time.Hour), "admin-7", RoleAdmin, time.Hour)
	if err != nil {
		t.Fatalf("mint admin token: %v", err)
	}
	if _, err := ParseAdminToken(cfg, token); err == nil {
		t.Fatalf("expected expired token to fail")
	}
}

func TestParseAdminTokenRejectsWrongSecretAndIssuer(t *testing.T) {
	cfg := config.JWTConfig{Secret: "secret", Issuer: "delito-admin"}
	token, err := MintAdminToken(cfg, time.Now(), "admin-7", RoleAdmin, time.Hour)
	if err != nil {
		t.Fatalf("mint admin token: %v", err)
	}
	if _, err := ParseAdminToken(config.JWTConfig{Secret: "other", Issuer: "delito-admin"}, token); err == nil {
		t.Fatalf("expected wrong secret to fail")
	}
	if _, err := ParseAdminToken(config.JWTConfig{Secret: "secret", Issuer: "someone-else"}, token); err == nil {
		t.Fatalf("expected wrong issuer to fail")
	}
}

func TestParseAdminTokenRejectsNoneAlgorithm(t *testing.T) {
	cfg := config.JWTConfig{Secret: "secret"}
	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, AdminClaims{Role: RoleAdmin, RegisteredClaims: jwt.RegisteredClaims{Subject: "x"}})
	raw, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("sign none: %v", err)
	}
	if _, err := ParseAdminToken(cfg, raw); err == nil {
		t.Fatalf("expected alg none to be rejected")
	}
}

func TestIsAdmin(t *testing.T) {
	if (&AdminClaims{Role: "customer"}).IsAdmin() {
		t.Fatalf("customer must not be admin")
	}
	if !(&AdminClaims{Role: RoleSuperAdmin}).IsAdmin() {
		t.Fatalf("super admin should be admin")
	}
	var nilClaims *AdminClaims
	if nilClaims.IsAdmin() || nilClaims.AdminID() != "" {
		t.Fatalf("nil claims must be safe")
	}
}
