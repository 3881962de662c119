package auth

import (
	"net/http"
	"strings"
)

const bearerPrefix = "Bearer "

// CredentialFromRequest returns the bearer token, falling back to the session cookie
func CredentialFromRequest(r *http.Request, cookieName string) string {
	if header := r.Header.Get("Authorization"); len(header) > len(bearerPrefix) &&
		strings.EqualFold(header[:len(bearerPrefix)], bearerPrefix) {
		return strings.TrimSpace(header[len(bearerPrefix):])
	}

	if cookie, err := r.Cookie(cookieName); err == nil {
		return cookie.Value
	}

	return ""
}
