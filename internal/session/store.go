// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

//go:generate mockgen -source=store.go -destination=../mock/session_store_mock.go -package=mock

// Package session persists the signed-in user's credential: the bearer token
// and the user profile it was issued for.
package session

import (
	"context"
	"errors"

	"github.com/MKhiriev/engagement-pulse/models"
)

// Session keys. The token and the user profile are always written and
// removed together.
const (
	KeyToken = "token"
	KeyUser  = "user"
)

var (
	// ErrNotFound is returned by Get when no token is stored. A profile left
	// behind without a token also reads as not found.
	ErrNotFound = errors.New("session not found")

	// ErrEmptyToken is returned by Set when the credential carries no token.
	ErrEmptyToken = errors.New("session token is empty")
)

// Store keeps the session credential. Implementations are safe for
// concurrent use, and Clear on an empty store is a no-op.
type Store interface {
	Get(ctx context.Context) (models.Credential, error)
	Set(ctx context.Context, cred models.Credential) error
	Clear(ctx context.Context) error
}
