// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package auth exchanges a Google sign-in credential for a backend session
// and manages the persisted session credential.
package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/engagement-pulse/internal/apiclient"
	"github.com/MKhiriev/engagement-pulse/internal/logger"
	"github.com/MKhiriev/engagement-pulse/internal/session"
	"github.com/MKhiriev/engagement-pulse/internal/utils"
	"github.com/MKhiriev/engagement-pulse/models"
)

const (
	googleLoginPath  = "/auth/google"
	googleVerifyPath = "/auth/google/verify"
)

var (
	// ErrEmptyCredential is returned before any request when the Google
	// credential is blank.
	ErrEmptyCredential = errors.New("google credential is empty")

	// ErrNoAccessToken is returned when the backend accepted the credential
	// but sent no access token.
	ErrNoAccessToken = errors.New("backend returned no access token")

	// ErrNotSignedIn is returned by Whoami when no session is stored.
	ErrNotSignedIn = errors.New("not signed in")
)

// Identity describes the signed-in user.
type Identity struct {
	User models.UserProfile

	// Claims holds the token claims when the token is a JWT. HasClaims is
	// false for opaque tokens.
	Claims    utils.TokenClaims
	HasClaims bool

	// Expired reports an expiry claim in the past. The session is not
	// refreshed; the next request will be rejected and cleared.
	Expired bool
}

// Service signs the user in and out.
type Service struct {
	api    apiclient.Requester
	store  session.Store
	logger *logger.Logger
	now    func() time.Time
}

// NewService returns a Service that talks to the backend through api and
// persists the credential in store.
func NewService(api apiclient.Requester, store session.Store, log *logger.Logger) *Service {
	return &Service{
		api:    api,
		store:  store,
		logger: log,
		now:    time.Now,
	}
}

// LoginWithGoogle exchanges credential at POST /auth/google and stores the
// returned token and user together.
func (s *Service) LoginWithGoogle(ctx context.Context, credential string) (models.Credential, error) {
	return s.exchange(ctx, googleLoginPath, credential)
}

// Verify re-validates credential at POST /auth/google/verify. The response
// is persisted the same way as a login.
func (s *Service) Verify(ctx context.Context, credential string) (models.Credential, error) {
	return s.exchange(ctx, googleVerifyPath, credential)
}

func (s *Service) exchange(ctx context.Context, path, credential string) (models.Credential, error) {
	credential = strings.TrimSpace(credential)
	if credential == "" {
		return models.Credential{}, ErrEmptyCredential
	}

	resp, err := s.api.Post(ctx, path, models.GoogleAuthRequest{Credential: credential})
	if err != nil {
		return models.Credential{}, err
	}

	var authResp models.AuthResponse
	if err = resp.Decode(&authResp); err != nil {
		return models.Credential{}, fmt.Errorf("google sign-in: %w", err)
	}

	token := authResp.AccessToken
	if token == "" && resp.Header != nil {
		// some deployments only send the token back as a header
		token, _ = utils.ParseBearerToken(resp.Header.Get("Authorization"))
	}
	if token == "" {
		return models.Credential{}, ErrNoAccessToken
	}

	cred := models.Credential{Token: token, User: authResp.User}
	if err = s.store.Set(ctx, cred); err != nil {
		return models.Credential{}, fmt.Errorf("save session: %w", err)
	}

	s.logger.Info().Str("user_id", cred.User.ID).Str("path", path).Msg("signed in")
	return cred, nil
}

// Logout clears the stored credential. Logging out twice is not an error.
func (s *Service) Logout(ctx context.Context) error {
	if err := s.store.Clear(ctx); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	s.logger.Info().Msg("signed out")
	return nil
}

// Whoami returns the stored profile together with the token claims.
func (s *Service) Whoami(ctx context.Context) (Identity, error) {
	cred, err := s.store.Get(ctx)
	if errors.Is(err, session.ErrNotFound) {
		return Identity{}, ErrNotSignedIn
	}
	if err != nil {
		return Identity{}, fmt.Errorf("read session: %w", err)
	}

	id := Identity{User: cred.User}

	claims, err := utils.ParseTokenClaims(cred.Token)
	if err != nil {
		s.logger.Debug().Err(err).Msg("session token is not a jwt")
		return id, nil
	}

	id.Claims = claims
	id.HasClaims = true
	id.Expired = claims.Expired(s.now())
	return id, nil
}
