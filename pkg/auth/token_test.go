package auth

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/ravikumar1136/sail-backend/pkg/config"
)

func testJWTConfig() config.JWTConfig {
	return config.JWTConfig{
		Secret:            "secret",
		Issuer:            "sail-backend",
		ExpirationMinutes: 1440,
		CookieName:        "auth_token",
	}
}

func TestMintAndParseToken(t *testing.T) {
	cfg := testJWTConfig()
	now := time.Now().UTC()
	userID := uuid.New()

	token, err := MintToken(cfg, now, TokenPayload{
		UserID: userID,
		Name:   "Ravi Kumar",
		Email:  "ravi@example.com",
	})
	if err != nil {
		t.Fatalf("mint token: %v", err)
	}

	claims, err := ParseToken(cfg, token)
	if err != nil {
		t.Fatalf("parse token: %v", err)
	}

	if claims.UserID != userID {
		t.Fatalf("expected user id %s, got %s", userID, claims.UserID)
	}
	if claims.Email != "ravi@example.com" {
		t.Fatalf("unexpected email %q", claims.Email)
	}
	if got := claims.ExpiresAt.Time.Sub(now); got < 23*time.Hour || got > 25*time.Hour {
		t.Fatalf("expected roughly one day expiry, got %s", got)
	}
}

func TestParseTokenRejectsExpired(t *testing.T) {
	cfg := testJWTConfig()
	issued := time.Now().UTC().Add(-48 * time.Hour)

	token, err := MintToken(cfg, issued, TokenPayload{UserID: uuid.New()})
	if err != nil {
		t.Fatalf("mint token: %v", err)
	}

	if _, err := ParseToken(cfg, token); err == nil {
		t.Fatal("expected expired token to be rejected")
	}
}

func TestParseTokenRejectsWrongSecret(t *testing.T) {
	cfg := testJWTConfig()
	token, err := MintToken(cfg, time.Now().UTC(), TokenPayload{UserID: uuid.New()})
	if err != nil {
		t.Fatalf("mint token: %v", err)
	}

	other := cfg
	other.Secret = "different"
	if _, err := ParseToken(other, token); err == nil {
		t.Fatal("expected signature mismatch to be rejected")
	}
}

func TestCookieRoundTrip(t *testing.T) {
	cfg := testJWTConfig()
	rec := httptest.NewRecorder()
	SetCookie(rec, cfg, "tok-value")

	header := rec.Header().Get("Set-Cookie")
	if !strings.Contains(header, "auth_token=tok-value") {
		t.Fatalf("cookie not set: %q", header)
	}
	if !strings.Contains(header, "HttpOnly") || !strings.Contains(header, "SameSite=Lax") {
		t.Fatalf("cookie missing security attributes: %q", header)
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: cfg.CookieName, Value: "tok-value"})
	if got := TokenFromRequest(req, cfg); got != "tok-value" {
		t.Fatalf("expected token from cookie, got %q", got)
	}

	bearerReq := httptest.NewRequest(http.MethodGet, "/", nil)
	bearerReq.Header.Set("Authorization", "Bearer header-tok")
	if got := TokenFromRequest(bearerReq, cfg); got != "header-tok" {
		t.Fatalf("expected bearer fallback, got %q", got)
	}

	clearRec := httptest.NewRecorder()
	ClearCookie(clearRec, cfg)
	if header := clearRec.Header().Get("Set-Cookie"); !strings.Contains(header, "Max-Age=0") {
		t.Fatalf("expected cookie deletion, got %q", header)
	}
}
