package auth

import (
	"context"
	"crypto/rsa"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"likenovel/internal/shared/config"
	"likenovel/internal/shared/errors"
	"likenovel/internal/shared/logger"
)

// Principal is what a verified bearer token says about its holder. Local admin tokens carry
// the user id directly; identity-provider tokens carry only the subject.
type Principal struct {
	Subject string
	Azp     string
	UserID  int64
}

type oidcClaims struct {
	Azp string `json:"azp"`
	jwt.RegisteredClaims
}

type introspectionResponse struct {
	Active bool `json:"active"`
}

// OIDCVerifier validates identity-provider access tokens locally and then asks the
// provider whether the token is still active.
type OIDCVerifier struct {
	cfg       config.OIDCConfig
	jwks      *JWKSCache
	staticKey *rsa.PublicKey
	client    *http.Client
	logger    logger.Interface
}

func NewOIDCVerifier(cfg config.OIDCConfig, jwks *JWKSCache, logger logger.Interface) (*OIDCVerifier, error) {
	v := &OIDCVerifier{
		cfg:    cfg,
		jwks:   jwks,
		client: &http.Client{Timeout: defaultHTTPTimeout},
		logger: logger,
	}
	if cfg.HTTPTimeout > 0 {
		v.client.Timeout = cfg.HTTPTimeout
	}
	if strings.TrimSpace(cfg.PublicKey) != "" {
		key, err := jwt.ParseRSAPublicKeyFromPEM([]byte(normalizePEM(cfg.PublicKey, "PUBLIC KEY")))
		if err != nil {
			return nil, fmt.Errorf("failed to parse oidc public key: %w", err)
		}
		v.staticKey = key
	}
	return v, nil
}

// Verify returns the token's principal. Every failure is reported as an expired token.
func (v *OIDCVerifier) Verify(ctx context.Context, token string) (*Principal, error) {
	if strings.Count(token, ".") != 2 {
		return nil, errors.ErrExpiredAccessToken
	}

	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{"RS256"}),
		jwt.WithIssuer(v.cfg.BaseURL),
		jwt.WithExpirationRequired(),
	}
	if v.cfg.Audience != "" {
		opts = append(opts, jwt.WithAudience(v.cfg.Audience))
	}

	claims := &oidcClaims{}
	_, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		kid, _ := t.Header["kid"].(string)
		if key := v.jwks.SigningKey(ctx, kid); key != nil {
			return key, nil
		}
		if v.staticKey != nil {
			return v.staticKey, nil
		}
		return nil, fmt.Errorf("no signing key for kid %q", kid)
	}, opts...)
	if err != nil {
		v.logger.Debugw("oidc token rejected", "error", err)
		return nil, errors.ErrExpiredAccessToken
	}

	active, err := v.introspect(ctx, token, claims.Azp)
	if err != nil {
		v.logger.Warnw("token introspection failed", "error", err)
		return nil, errors.ErrExpiredAccessToken
	}
	if !active {
		return nil, errors.ErrExpiredAccessToken
	}

	return &Principal{Subject: claims.Subject, Azp: claims.Azp}, nil
}

func (v *OIDCVerifier) introspect(ctx context.Context, token, azp string) (bool, error) {
	form := url.Values{}
	form.Set("token", token)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, v.cfg.IntrospectURL(), strings.NewReader(form.Encode()))
	if err != nil {
		return false, err
	}
	client := v.cfg.ClientFor(azp)
	req.SetBasicAuth(client.ClientID, client.ClientSecret)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")

	resp, err := v.client.Do(req)
	if err != nil {
		return false, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return false, fmt.Errorf("introspection status %d", resp.StatusCode)
	}

	var body introspectionResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return false, fmt.Errorf("decode introspection: %w", err)
	}
	return body.Active, nil
}

// normalizePEM accepts either a full PEM block or the bare base64 body that is common in
// environment variables.
func normalizePEM(s, blockType string) string {
	s = strings.TrimSpace(strings.ReplaceAll(s, `\n`, "\n"))
	if strings.HasPrefix(s, "-----BEGIN") {
		return s
	}
	return "-----BEGIN " + blockType + "-----\n" + s + "\n-----END " + blockType + "-----"
}
