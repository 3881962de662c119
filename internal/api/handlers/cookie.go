package handlers

import (
	"net/http"
	"time"
)

// CookieSettings describe the session cookie of one login surface
type CookieSettings struct {
	Name     string
	Secure   bool
	SameSite http.SameSite
}

// SetSessionCookie hands the session token to the browser
func SetSessionCookie(w http.ResponseWriter, s CookieSettings, token string, expiresAt time.Time, ttl time.Duration) {
	http.SetCookie(w, &http.Cookie{
		Name:     s.Name,
		Value:    token,
		Path:     "/",
		Expires:  expiresAt,
		MaxAge:   int(ttl.Seconds()),
		HttpOnly: true,
		Secure:   s.Secure,
		SameSite: s.SameSite,
	})
}

// ClearSessionCookie expires the session cookie immediately
func ClearSessionCookie(w http.ResponseWriter, s CookieSettings) {
	http.SetCookie(w, &http.Cookie{
		Name:     s.Name,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   s.Secure,
		SameSite: s.SameSite,
	})
}
