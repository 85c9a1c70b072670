package auth

import (
	"crypto/rsa"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"likenovel/internal/shared/config"
	"likenovel/internal/shared/errors"
)

const defaultAdminTokenSeconds = 3600

type AdminClaims struct {
	UserID int64  `json:"user_id"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

// AdminTokenService issues and decodes the RS256 tokens handed out by the admin login.
type AdminTokenService struct {
	key    *rsa.PrivateKey
	issuer string
	ttl    time.Duration
	now    func() time.Time
}

// NewAdminTokenService returns a disabled service when no private key is configured; Issue
// then fails and no bearer is ever decoded as a local token.
func NewAdminTokenService(cfg config.AdminTokenConfig) (*AdminTokenService, error) {
	seconds := cfg.ExpiresSeconds
	if seconds <= 0 {
		seconds = defaultAdminTokenSeconds
	}
	s := &AdminTokenService{
		issuer: cfg.Issuer,
		ttl:    time.Duration(seconds) * time.Second,
		now:    time.Now,
	}
	if strings.TrimSpace(cfg.PrivateKey) == "" {
		return s, nil
	}
	priv, err := jwt.ParseRSAPrivateKeyFromPEM([]byte(normalizePEM(cfg.PrivateKey, "RSA PRIVATE KEY")))
	if err != nil {
		return nil, fmt.Errorf("failed to parse admin token private key: %w", err)
	}
	s.key = priv
	return s, nil
}

func (s *AdminTokenService) Enabled() bool {
	return s != nil && s.key != nil && s.issuer != ""
}

// Issue signs a token for userID valid for the configured lifetime.
func (s *AdminTokenService) Issue(userID int64, email string) (string, time.Time, error) {
	if !s.Enabled() {
		return "", time.Time{}, fmt.Errorf("admin token signing is not configured")
	}
	now := s.now()
	exp := now.Add(s.ttl)
	claims := &AdminClaims{
		UserID: userID,
		Email:  email,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.issuer,
			Subject:   strconv.FormatInt(userID, 10),
			ExpiresAt: jwt.NewNumericDate(exp),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(s.key)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign admin token: %w", err)
	}
	return signed, exp, nil
}

// Decode verifies signature, issuer and expiry.
func (s *AdminTokenService) Decode(token string) (*AdminClaims, error) {
	if !s.Enabled() {
		return nil, errors.ErrExpiredAccessToken
	}
	claims := &AdminClaims{}
	_, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		return &s.key.PublicKey, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()}),
		jwt.WithIssuer(s.issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil || claims.UserID <= 0 {
		return nil, errors.ErrExpiredAccessToken
	}
	return claims, nil
}

// IssuedLocally reports whether the unverified issuer claim names this service.
func (s *AdminTokenService) IssuedLocally(token string) bool {
	if !s.Enabled() {
		return false
	}
	claims := jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, &claims); err != nil {
		return false
	}
	return claims.Issuer == s.issuer
}
