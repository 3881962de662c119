package jwks

import (
	"context"
	"errors"

	"github.com/golang-jwt/jwt/v5"

	"github.com/Liandro13/method-passion-site/internal/auth"
	"github.com/Liandro13/method-passion-site/internal/domain"
)

var errMissingKid = errors.New("jwks: token has no kid header")

// PublicMetadata is the role payload the identity provider attaches to tokens
type PublicMetadata struct {
	Role           string  `json:"role"`
	Accommodations []int64 `json:"accommodations"`
}

type Claims struct {
	jwt.RegisteredClaims
	Name           string         `json:"name,omitempty"`
	PublicMetadata PublicMetadata `json:"public_metadata"`
}

// Resolver verifies RS256 bearer tokens against a key set
type Resolver struct {
	keys         KeyProvider
	policy       *auth.RolePolicy
	timeProvider TimeProvider
	logger       Logger
}

func NewResolver(keys KeyProvider, policy *auth.RolePolicy, logger Logger) *Resolver {
	return &Resolver{
		keys:         keys,
		policy:       policy,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

func (r *Resolver) Resolve(ctx context.Context, credential string) domain.Identity {
	if credential == "" {
		return domain.GuestIdentity()
	}

	claims := &Claims{}
	_, err := jwt.ParseWithClaims(credential, claims, func(token *jwt.Token) (interface{}, error) {
		kid, _ := token.Header["kid"].(string)
		if kid == "" {
			return nil, errMissingKid
		}
		return r.keys.Key(ctx, kid)
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()}),
		jwt.WithTimeFunc(r.timeProvider.Now),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		r.logger.Debug("JWKSResolver: token rejected: %v", err)
		return domain.GuestIdentity()
	}

	return r.policy.Identity(
		claims.Subject,
		claims.Name,
		claims.PublicMetadata.Role,
		nil,
		claims.PublicMetadata.Accommodations,
	)
}
