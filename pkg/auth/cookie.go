package auth

import (
	"net/http"
	"strings"

	"github.com/ravikumar1136/sail-backend/pkg/config"
)

// SetCookie attaches the signed token as an HTTP-only, SameSite=Lax cookie
// whose lifetime matches the token's.
func SetCookie(w http.ResponseWriter, cfg config.JWTConfig, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     cfg.CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(cfg.TokenTTL().Seconds()),
		HttpOnly: true,
		Secure:   cfg.CookieSecure,
		SameSite: http.SameSiteLaxMode,
	})
}

// ClearCookie expires the auth cookie immediately.
func ClearCookie(w http.ResponseWriter, cfg config.JWTConfig) {
	http.SetCookie(w, &http.Cookie{
		Name:     cfg.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   cfg.CookieSecure,
		SameSite: http.SameSiteLaxMode,
	})
}

// TokenFromRequest extracts the raw token from the auth cookie, falling back
// to a bearer Authorization header.
func TokenFromRequest(r *http.Request, cfg config.JWTConfig) string {
	if cookie, err := r.Cookie(cfg.CookieName); err == nil && cookie.Value != "" {
		return cookie.Value
	}
	header := r.Header.Get("Authorization")
	if token, ok := strings.CutPrefix(header, "Bearer "); ok {
		return strings.TrimSpace(token)
	}
	return ""
}
