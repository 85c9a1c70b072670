package auth

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"likenovel/internal/shared/config"
	"likenovel/internal/shared/errors"
	"likenovel/internal/shared/logger"
)

func newVerifier(t *testing.T, p *fakeProvider, staticPEM string) *OIDCVerifier {
	t.Helper()
	cfg := config.OIDCConfig{
		BaseURL:   p.server.URL,
		PublicKey: staticPEM,
		Clients: config.OIDCClientsConfig{
			Standard:   config.OIDCClientConfig{ClientID: "web", ClientSecret: "s1"},
			KeepSignin: config.OIDCClientConfig{ClientID: "web-keep", ClientSecret: "s2"},
		},
	}
	jwks := NewJWKSCache(cfg.CertsURL(), time.Minute, time.Second, logger.NewNopLogger())
	v, err := NewOIDCVerifier(cfg, jwks, logger.NewNopLogger())
	require.NoError(t, err)
	return v
}

func providerClaims(issuer, azp string, exp time.Time) *oidcClaims {
	return &oidcClaims{
		Azp: azp,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   "kc-123",
			ExpiresAt: jwt.NewNumericDate(exp),
		},
	}
}

func TestOIDCVerifier_AcceptsActiveToken(t *testing.T) {
	key := newKey(t)
	p := newFakeProvider(t, jwkFor("k1", &key.PublicKey))
	v := newVerifier(t, p, "")

	token := signToken(t, key, "k1", providerClaims(p.server.URL, "web-keep", time.Now().Add(time.Hour)))
	principal, err := v.Verify(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, "kc-123", principal.Subject)
	assert.Equal(t, "web-keep", p.lastAuthUsr.Load())
}

func TestOIDCVerifier_InactiveTokenIsExpired(t *testing.T) {
	key := newKey(t)
	p := newFakeProvider(t, jwkFor("k1", &key.PublicKey))
	p.active.Store(false)
	v := newVerifier(t, p, "")

	token := signToken(t, key, "k1", providerClaims(p.server.URL, "web", time.Now().Add(time.Hour)))
	_, err := v.Verify(context.Background(), token)
	assert.ErrorIs(t, err, errors.ErrExpiredAccessToken)
	assert.True(t, errors.HasStatus(err, 401))
}

func TestOIDCVerifier_FallsBackToStaticKey(t *testing.T) {
	key := newKey(t)
	p := newFakeProvider(t)
	v := newVerifier(t, p, publicPEM(t, &key.PublicKey))

	token := signToken(t, key, "unknown-kid", providerClaims(p.server.URL, "web", time.Now().Add(time.Hour)))
	principal, err := v.Verify(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, "web", p.lastAuthUsr.Load())
	assert.Equal(t, "kc-123", principal.Subject)
}

func TestOIDCVerifier_Rejections(t *testing.T) {
	key := newKey(t)
	other := newKey(t)
	p := newFakeProvider(t, jwkFor("k1", &key.PublicKey))
	v := newVerifier(t, p, "")

	tests := []struct {
		name  string
		token string
	}{
		{name: "not a jwt", token: "abc.def"},
		{name: "expired", token: signToken(t, key, "k1", providerClaims(p.server.URL, "web", time.Now().Add(-time.Minute)))},
		{name: "wrong issuer", token: signToken(t, key, "k1", providerClaims("https://elsewhere", "web", time.Now().Add(time.Hour)))},
		{name: "wrong key", token: signToken(t, other, "k1", providerClaims(p.server.URL, "web", time.Now().Add(time.Hour)))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := v.Verify(context.Background(), tt.token)
			assert.ErrorIs(t, err, errors.ErrExpiredAccessToken)
		})
	}
}
