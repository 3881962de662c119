package jwks

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/go-jose/go-jose/v4"
	"github.com/sony/gobreaker"
)

var (
	ErrUnknownKey  = errors.New("jwks: no key with this kid")
	ErrFetchFailed = errors.New("jwks: failed to fetch key set")
)

const maxKeySetBytes = 1 << 20

// KeySet caches a remote JSON Web Key Set.
// A cached set older than ttl is refetched; an unknown kid forces one refetch.
type KeySet struct {
	url          string
	client       *http.Client
	ttl          time.Duration
	cb           *gobreaker.CircuitBreaker
	timeProvider TimeProvider
	logger       Logger

	mu        sync.RWMutex
	keys      jose.JSONWebKeySet
	fetchedAt time.Time
}

func NewKeySet(url string, ttl, timeout time.Duration, logger Logger) *KeySet {
	return &KeySet{
		url:          url,
		client:       &http.Client{Timeout: timeout},
		ttl:          ttl,
		cb:           newBreaker("jwks", logger),
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

func newBreaker(name string, logger Logger) *gobreaker.CircuitBreaker {
	return gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        name,
		MaxRequests: 1,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures > 2
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			logger.Warn("Circuit breaker '%s' changed from '%s' to '%s'", name, from, to)
		},
	})
}

// Key returns the verification key for kid
func (k *KeySet) Key(ctx context.Context, kid string) (interface{}, error) {
	if key, fresh := k.cached(kid); key != nil {
		return key, nil
	} else if fresh {
		k.logger.Debug("KeySet: kid=%s unknown, forcing refresh", kid)
	}

	if err := k.refresh(ctx); err != nil {
		return nil, err
	}

	if key, _ := k.cached(kid); key != nil {
		return key, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownKey, kid)
}

// cached looks kid up in the current set. A stale set never answers.
func (k *KeySet) cached(kid string) (key interface{}, fresh bool) {
	k.mu.RLock()
	defer k.mu.RUnlock()

	if k.fetchedAt.IsZero() || k.timeProvider.Now().Sub(k.fetchedAt) >= k.ttl {
		return nil, false
	}

	for _, jwk := range k.keys.Key(kid) {
		if jwk.Use == "" || jwk.Use == "sig" {
			return jwk.Key, true
		}
	}
	return nil, true
}

func (k *KeySet) refresh(ctx context.Context) error {
	result, err := k.cb.Execute(func() (interface{}, error) {
		return k.fetch(ctx)
	})
	if err != nil {
		k.logger.Error("KeySet: refresh from %s failed: %v", k.url, err)
		if errors.Is(err, ErrFetchFailed) {
			return err
		}
		return fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}

	set := result.(*jose.JSONWebKeySet)

	k.mu.Lock()
	k.keys = *set
	k.fetchedAt = k.timeProvider.Now()
	k.mu.Unlock()

	return nil
}

func (k *KeySet) fetch(ctx context.Context) (*jose.JSONWebKeySet, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, k.url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: build request: %v", ErrFetchFailed, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := k.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d", ErrFetchFailed, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxKeySetBytes))
	if err != nil {
		return nil, fmt.Errorf("%w: read body: %v", ErrFetchFailed, err)
	}

	var set jose.JSONWebKeySet
	if err := json.Unmarshal(body, &set); err != nil {
		return nil, fmt.Errorf("%w: decode: %v", ErrFetchFailed, err)
	}

	return &set, nil
}
