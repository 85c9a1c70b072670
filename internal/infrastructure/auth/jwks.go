package auth

import (
	"context"
	"crypto/rsa"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"math/big"
	"net/http"
	"strings"
	"sync"
	"time"

	"likenovel/internal/shared/logger"
)

const (
	defaultJWKSTTL     = 5 * time.Minute
	defaultHTTPTimeout = 5 * time.Second
)

type jwksDocument struct {
	Keys []jwk `json:"keys"`
}

type jwk struct {
	Kty string `json:"kty"`
	Kid string `json:"kid"`
	N   string `json:"n"`
	E   string `json:"e"`
}

// JWKSCache holds the identity provider's signing keys. One fetch runs at a time; callers
// arriving during a fetch wait for it and share its result. A failed refresh serves the
// previous key set when there is one.
type JWKSCache struct {
	url    string
	client *http.Client
	ttl    time.Duration
	logger logger.Interface
	now    func() time.Time

	mu       sync.Mutex
	keys     map[string]*rsa.PublicKey
	loadedAt time.Time
}

func NewJWKSCache(url string, ttl, timeout time.Duration, logger logger.Interface) *JWKSCache {
	if ttl <= 0 {
		ttl = defaultJWKSTTL
	}
	if timeout <= 0 {
		timeout = defaultHTTPTimeout
	}
	return &JWKSCache{
		url:    url,
		client: &http.Client{Timeout: timeout},
		ttl:    ttl,
		logger: logger,
		now:    time.Now,
	}
}

// Keys returns the cached key set, refreshing it once the TTL has passed.
func (c *JWKSCache) Keys(ctx context.Context) (map[string]*rsa.PublicKey, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.keys != nil && c.now().Sub(c.loadedAt) < c.ttl {
		return c.keys, nil
	}

	keys, err := c.fetch(ctx)
	if err != nil {
		if c.keys != nil {
			c.logger.Warnw("jwks refresh failed, serving stale keys", "error", err)
			return c.keys, nil
		}
		return nil, err
	}
	c.keys = keys
	c.loadedAt = c.now()
	return keys, nil
}

// SigningKey returns the key for kid, or nil when kid is empty or unknown.
func (c *JWKSCache) SigningKey(ctx context.Context, kid string) *rsa.PublicKey {
	if kid == "" {
		return nil
	}
	keys, err := c.Keys(ctx)
	if err != nil {
		c.logger.Warnw("jwks unavailable", "error", err)
		return nil
	}
	return keys[kid]
}

func (c *JWKSCache) fetch(ctx context.Context) (map[string]*rsa.PublicKey, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("jwks fetch: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("jwks fetch failed: status=%d body=%s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var doc jwksDocument
	if err := json.NewDecoder(resp.Body).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode jwks: %w", err)
	}

	keys := make(map[string]*rsa.PublicKey, len(doc.Keys))
	for _, k := range doc.Keys {
		if !strings.EqualFold(k.Kty, "RSA") || k.Kid == "" {
			continue
		}
		pub, err := rsaKeyFromJWK(k)
		if err != nil {
			c.logger.Warnw("skipping malformed jwk", "kid", k.Kid, "error", err)
			continue
		}
		keys[k.Kid] = pub
	}
	return keys, nil
}

func rsaKeyFromJWK(k jwk) (*rsa.PublicKey, error) {
	nBytes, err := base64.RawURLEncoding.DecodeString(k.N)
	if err != nil {
		return nil, fmt.Errorf("decode jwk n for %s: %w", k.Kid, err)
	}
	eBytes, err := base64.RawURLEncoding.DecodeString(k.E)
	if err != nil {
		return nil, fmt.Errorf("decode jwk e for %s: %w", k.Kid, err)
	}
	e := new(big.Int).SetBytes(eBytes)
	if !e.IsInt64() || e.Int64() <= 1 {
		return nil, fmt.Errorf("invalid jwk exponent for %s", k.Kid)
	}
	return &rsa.PublicKey{N: new(big.Int).SetBytes(nBytes), E: int(e.Int64())}, nil
}
