// Package oidc signs users in through an external OpenID Connect issuer.
package oidc

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	gooidc "github.com/coreos/go-oidc/v3/oidc"
	"golang.org/x/oauth2"
)

var ErrNonceMismatch = errors.New("oidc: nonce mismatch")

type Config struct {
	ClientID     string
	ClientSecret string
	RedirectURL  string
	DiscoveryURL string
	Scope        string
	HTTPClient   *http.Client
}

// Identity is what the issuer vouches for.
type Identity struct {
	Subject string
	Email   string
	Name    string
}

// Provider wraps discovery, the authorization code flow and id_token
// verification.
type Provider struct {
	oauth    *oauth2.Config
	verifier *gooidc.IDTokenVerifier
	client   *http.Client
}

func NewProvider(ctx context.Context, cfg Config) (*Provider, error) {
	switch {
	case cfg.ClientID == "":
		return nil, errors.New("oidc: client id is required")
	case cfg.ClientSecret == "":
		return nil, errors.New("oidc: client secret is required")
	case cfg.RedirectURL == "":
		return nil, errors.New("oidc: redirect url is required")
	case cfg.DiscoveryURL == "":
		return nil, errors.New("oidc: discovery url is required")
	}

	client := cfg.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: 15 * time.Second}
	}

	op, err := gooidc.NewProvider(gooidc.ClientContext(ctx, client), issuerFromDiscovery(cfg.DiscoveryURL))
	if err != nil {
		return nil, fmt.Errorf("oidc: discovery: %w", err)
	}

	scope := cfg.Scope
	if scope == "" {
		scope = "openid profile email"
	}

	return &Provider{
		oauth: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			RedirectURL:  cfg.RedirectURL,
			Scopes:       strings.Fields(scope),
			Endpoint:     op.Endpoint(),
		},
		verifier: op.Verifier(&gooidc.Config{ClientID: cfg.ClientID}),
		client:   client,
	}, nil
}

// Begin returns the authorization URL plus the state and nonce the caller
// must keep until the callback.
func (p *Provider) Begin() (authURL, state, nonce string, err error) {
	if state, err = randomToken(32); err != nil {
		return "", "", "", fmt.Errorf("oidc: state: %w", err)
	}
	if nonce, err = randomToken(32); err != nil {
		return "", "", "", fmt.Errorf("oidc: nonce: %w", err)
	}
	authURL = p.oauth.AuthCodeURL(state, gooidc.Nonce(nonce), oauth2.SetAuthURLParam("prompt", "select_account"))
	return authURL, state, nonce, nil
}

// Exchange trades an authorization code for a verified identity.
func (p *Provider) Exchange(ctx context.Context, code, nonce string) (*Identity, error) {
	if code == "" {
		return nil, errors.New("oidc: authorization code is required")
	}
	ctx = gooidc.ClientContext(ctx, p.client)

	tok, err := p.oauth.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("oidc: exchange: %w", err)
	}
	raw, ok := tok.Extra("id_token").(string)
	if !ok || raw == "" {
		return nil, errors.New("oidc: token response has no id_token")
	}
	idTok, err := p.verifier.Verify(ctx, raw)
	if err != nil {
		return nil, fmt.Errorf("oidc: verify id_token: %w", err)
	}

	var claims idClaims
	if err := idTok.Claims(&claims); err != nil {
		return nil, fmt.Errorf("oidc: claims: %w", err)
	}
	return claims.identity(idTok.Subject, idTok.Nonce, nonce)
}

type idClaims struct {
	Email             string `json:"email"`
	EmailVerified     *bool  `json:"email_verified"`
	Name              string `json:"name"`
	PreferredUsername string `json:"preferred_username"`
}

func (c idClaims) identity(subject, gotNonce, wantNonce string) (*Identity, error) {
	if wantNonce == "" || gotNonce != wantNonce {
		return nil, ErrNonceMismatch
	}
	if c.Email == "" {
		return nil, errors.New("oidc: id_token has no email")
	}
	if c.EmailVerified != nil && !*c.EmailVerified {
		return nil, errors.New("oidc: email not verified")
	}
	name := c.Name
	if name == "" {
		name = c.PreferredUsername
	}
	return &Identity{Subject: subject, Email: c.Email, Name: name}, nil
}

func issuerFromDiscovery(u string) string {
	u = strings.TrimSuffix(u, "/")
	u = strings.TrimSuffix(u, "/.well-known/openid-configuration")
	return u
}

func randomToken(n int) (string, error) {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
