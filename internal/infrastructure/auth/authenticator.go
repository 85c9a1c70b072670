package auth

import (
	"context"
	"strconv"
)

// Authenticator routes a bearer token to the local admin token service or the identity
// provider depending on its issuer.
type Authenticator struct {
	oidc  *OIDCVerifier
	admin *AdminTokenService
}

func NewAuthenticator(oidc *OIDCVerifier, admin *AdminTokenService) *Authenticator {
	return &Authenticator{oidc: oidc, admin: admin}
}

func (a *Authenticator) Authenticate(ctx context.Context, token string) (*Principal, error) {
	if a.admin.IssuedLocally(token) {
		claims, err := a.admin.Decode(token)
		if err != nil {
			return nil, err
		}
		return &Principal{Subject: "admin:" + strconv.FormatInt(claims.UserID, 10), UserID: claims.UserID}, nil
	}
	return a.oidc.Verify(ctx, token)
}
