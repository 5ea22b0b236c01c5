// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package apiclient

import (
	"context"
	"errors"
	"net/http"

	"github.com/MKhiriev/engagement-pulse/internal/logger"
	"github.com/MKhiriev/engagement-pulse/internal/utils"
	"github.com/MKhiriev/engagement-pulse/models"
)

const (
	// LoginPath is the login entry point handed to the session-invalidated
	// callback.
	LoginPath = "/login"

	// RequestIDHeader carries the logical request identifier. All attempts of
	// one logical request send the same value.
	RequestIDHeader = "X-Request-ID"
)

// RequestDecorator adds headers to an outgoing attempt. Decorators run in
// order on a fresh header set for every attempt.
type RequestDecorator func(ctx context.Context, req Request, header http.Header)

// ResponseObserver inspects every failed attempt before the retry loop
// decides whether to try again. Observers run in order.
type ResponseObserver func(ctx context.Context, req Request, failure *Error)

// SessionInvalidatedFunc is called after the session credential has been
// cleared because the backend rejected it. loginPath is the login entry point
// the caller should send the user to.
type SessionInvalidatedFunc func(ctx context.Context, loginPath string)

// CredentialStore is the part of the session store the client needs.
type CredentialStore interface {
	Get(ctx context.Context) (models.Credential, error)
	Clear(ctx context.Context) error
}

// Pipeline is the ordered set of decorators and observers wrapped around each
// attempt.
type Pipeline struct {
	decorators []RequestDecorator
	observers  []ResponseObserver
}

// NewPipeline returns an empty pipeline.
func NewPipeline() *Pipeline {
	return &Pipeline{}
}

// Use appends request decorators.
func (p *Pipeline) Use(d ...RequestDecorator) *Pipeline {
	p.decorators = append(p.decorators, d...)
	return p
}

// Observe appends response observers.
func (p *Pipeline) Observe(o ...ResponseObserver) *Pipeline {
	p.observers = append(p.observers, o...)
	return p
}

// Decorate runs all decorators and returns the resulting headers.
func (p *Pipeline) Decorate(ctx context.Context, req Request) http.Header {
	header := make(http.Header)
	for _, d := range p.decorators {
		d(ctx, req, header)
	}
	return header
}

// Notify hands failure to every observer.
func (p *Pipeline) Notify(ctx context.Context, req Request, failure *Error) {
	for _, o := range p.observers {
		o(ctx, req, failure)
	}
}

// BearerAuth attaches "Authorization: Bearer <token>" when store holds a
// token. With no token, or when the store cannot be read, the header is left
// out entirely.
func BearerAuth(store CredentialStore) RequestDecorator {
	return func(ctx context.Context, req Request, header http.Header) {
		cred, err := store.Get(ctx)
		if err != nil {
			logger.FromContext(ctx).Debug().Err(err).Msg("no session credential, sending request unauthenticated")
			return
		}
		if !cred.IsAuthenticated() {
			return
		}
		header.Set("Authorization", "Bearer "+cred.Token)
	}
}

// RequestID sets RequestIDHeader from the logical request identifier stored
// in ctx, generating one when absent.
func RequestID() RequestDecorator {
	return func(ctx context.Context, req Request, header http.Header) {
		id, ok := utils.GetRequestIDFromContext(ctx)
		if !ok {
			id = utils.NewRequestID()
		}
		header.Set(RequestIDHeader, id)
	}
}

// InvalidateSession clears the session credential on every 401 attempt and
// then calls onInvalidated with LoginPath. It fires once per failing
// attempt, including attempts that will be retried. onInvalidated may be
// nil.
func InvalidateSession(store CredentialStore, onInvalidated SessionInvalidatedFunc) ResponseObserver {
	return func(ctx context.Context, req Request, failure *Error) {
		if !errors.Is(failure, ErrUnauthorized) {
			return
		}

		log := logger.FromContext(ctx)
		// the attempt context may already be past its deadline
		clearCtx := context.WithoutCancel(ctx)
		if err := store.Clear(clearCtx); err != nil {
			log.Error().Err(err).Msg("failed to clear session credential after 401")
		}
		log.Warn().Str("path", req.Path).Msg("authentication rejected, session cleared")

		if onInvalidated != nil {
			onInvalidated(clearCtx, LoginPath)
		}
	}
}

// LogFailures records timeouts, aborted requests and server errors for
// diagnostics. It never mutates state.
func LogFailures() ResponseObserver {
	return func(ctx context.Context, req Request, failure *Error) {
		log := logger.FromContext(ctx)

		switch {
		case errors.Is(failure, ErrTimeout):
			log.Error().Err(failure).Int("attempt", failure.Attempt).
				Msg("request timeout - server may be slow or unavailable")
		case errors.Is(failure, ErrServer):
			log.Error().Err(failure).Int("attempt", failure.Attempt).Int("status", failure.StatusCode).
				Msg("server error - please try again later")
		case errors.Is(failure, ErrNetwork):
			log.Warn().Err(failure).Int("attempt", failure.Attempt).Msg("network failure")
		}
	}
}
