package middleware

import (
	"context"
	"net/http"

	"github.com/Liandro13/method-passion-site/internal/api/handlers"
	"github.com/Liandro13/method-passion-site/internal/auth"
	"github.com/Liandro13/method-passion-site/internal/domain"
)

type contextKey string

const (
	identityKey   contextKey = "identity"
	credentialKey contextKey = "credential"
)

const (
	msgUnauthorized = "authentication required"
	msgForbidden    = "access denied"
)

// WithIdentity stores the caller identity in ctx
func WithIdentity(ctx context.Context, identity domain.Identity) context.Context {
	return context.WithValue(ctx, identityKey, identity)
}

// GetIdentity returns the caller identity, guest when none was attached
func GetIdentity(ctx context.Context) domain.Identity {
	identity, ok := ctx.Value(identityKey).(domain.Identity)
	if !ok {
		return domain.GuestIdentity()
	}
	return identity
}

// GetCredential returns the raw token the identity was resolved from
func GetCredential(ctx context.Context) string {
	credential, _ := ctx.Value(credentialKey).(string)
	return credential
}

// Identify resolves the request credential and always attaches an identity
func Identify(resolver auth.Resolver, cookieName string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			credential := auth.CredentialFromRequest(r, cookieName)
			identity := resolver.Resolve(r.Context(), credential)

			ctx := WithIdentity(r.Context(), identity)
			ctx = context.WithValue(ctx, credentialKey, credential)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireRole answers 401 for anonymous callers and 403 for other roles
func RequireRole(roles ...domain.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identity := GetIdentity(r.Context())
			if !identity.IsAuthenticated() {
				handlers.RespondUnauthorized(w, msgUnauthorized)
				return
			}
			if !identity.HasRole(roles...) {
				handlers.RespondForbidden(w, msgForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
