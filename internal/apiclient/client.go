// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package apiclient

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/sethvargo/go-retry"

	"github.com/MKhiriev/engagement-pulse/internal/config"
	"github.com/MKhiriev/engagement-pulse/internal/logger"
	"github.com/MKhiriev/engagement-pulse/internal/utils"
)

// Client performs requests against the engagement backend with a per-attempt
// timeout, linear-backoff retries and the configured decorator/observer
// pipeline. A Client is safe for concurrent use; concurrent calls share
// nothing but the session store.
type Client struct {
	http     *utils.HTTPClient
	baseURL  string
	policy   Policy
	pipeline *Pipeline
	logger   *logger.Logger

	// onRetry is called when attempt n > 1 starts, with the backoff that
	// preceded it; tests use it to observe the schedule.
	onRetry func(attempt int, waited time.Duration)
}

// Option customises a Client at construction time.
type Option func(*Client)

// WithPolicy replaces DefaultPolicy.
func WithPolicy(p Policy) Option {
	return func(c *Client) { c.policy = p }
}

// WithSession wires the session store into the pipeline: BearerAuth as a
// decorator and InvalidateSession as an observer.
func WithSession(store CredentialStore, onInvalidated SessionInvalidatedFunc) Option {
	return func(c *Client) {
		c.pipeline.Use(BearerAuth(store))
		c.pipeline.Observe(InvalidateSession(store, onInvalidated))
	}
}

// WithDecorators appends request decorators after the built-in ones.
func WithDecorators(d ...RequestDecorator) Option {
	return func(c *Client) { c.pipeline.Use(d...) }
}

// WithObservers appends response observers after the built-in ones.
func WithObservers(o ...ResponseObserver) Option {
	return func(c *Client) { c.pipeline.Observe(o...) }
}

// New constructs a Client for cfg.BaseURL. The pipeline always starts with
// the RequestID decorator and the LogFailures observer; options append to it.
//
// Returns an error if cfg.BaseURL is empty or cannot be parsed as a URL.
func New(cfg config.ClientAPI, log *logger.Logger, opts ...Option) (*Client, error) {
	baseURL, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid api base url: %w", err)
	}

	c := &Client{
		http:     utils.NewHTTPClient(log),
		baseURL:  baseURL,
		policy:   DefaultPolicy(),
		pipeline: NewPipeline().Use(RequestID()).Observe(LogFailures()),
		logger:   log,
	}
	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// BaseURL returns the normalised base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// CallOption customises a single logical request.
type CallOption func(*callOptions)

type callOptions struct {
	timeout time.Duration
}

// WithCallTimeout bounds the whole logical request, retries and backoff
// waits included. When it fires the call fails with ErrTimeout.
func WithCallTimeout(d time.Duration) CallOption {
	return func(o *callOptions) { o.timeout = d }
}

// CallTimeout returns the overall timeout selected by opts, or 0 when none
// is set.
func CallTimeout(opts ...CallOption) time.Duration {
	var co callOptions
	for _, opt := range opts {
		opt(&co)
	}
	return co.timeout
}

// Get performs GET baseURL+path with optional query params.
func (c *Client) Get(ctx context.Context, path string, params url.Values, opts ...CallOption) (*Response, error) {
	req, err := NewRequest(c.baseURL, http.MethodGet, path, nil, params)
	if err != nil {
		return nil, err
	}
	return c.Do(ctx, req, opts...)
}

// Post performs POST baseURL+path with body JSON-encoded.
func (c *Client) Post(ctx context.Context, path string, body any, opts ...CallOption) (*Response, error) {
	req, err := NewRequest(c.baseURL, http.MethodPost, path, body, nil)
	if err != nil {
		return nil, err
	}
	return c.Do(ctx, req, opts...)
}

// Do runs the logical request described by req.
//
// Attempts are retried on any failure up to Policy.MaxAttempts, waiting
// Policy.Delay*n after attempt n. Every failure passes through the observers
// before the retry decision. When all attempts fail, the final attempt's
// *Error is returned unchanged. If ctx (or the call timeout) ends first, the
// result is an *Error of kind ErrTimeout or ErrNetwork wrapping the context
// error; a spent call timeout also matches ErrCallTimeout.
func (c *Client) Do(ctx context.Context, req Request, opts ...CallOption) (*Response, error) {
	if timeout := CallTimeout(opts...); timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeoutCause(ctx, timeout, ErrCallTimeout)
		defer cancel()
	}

	requestID, ok := utils.GetRequestIDFromContext(ctx)
	if !ok {
		requestID = utils.NewRequestID()
		ctx = utils.WithRequestID(ctx, requestID)
	}
	log := c.logger.WithRequestID(requestID)
	ctx = log.WithContext(ctx)

	maxAttempts := c.policy.attempts()

	var (
		resp     *Response
		attempt  int
		lastFail *Error
	)
	err := retry.Do(ctx, c.policy.backoff(), func(ctx context.Context) error {
		attempt++
		if attempt > 1 {
			waited := c.policy.DelayAfter(attempt - 1)
			log.Info().
				Str("method", req.Method).
				Str("path", req.Path).
				Dur("waited", waited).
				Msgf("retrying request (attempt %d/%d)", attempt, maxAttempts)
			if c.onRetry != nil {
				c.onRetry(attempt, waited)
			}
		}

		r, fail := c.attempt(ctx, req, attempt)
		if fail != nil {
			lastFail = fail
			return retry.RetryableError(fail)
		}
		resp = r
		return nil
	})
	if err != nil {
		var apiErr *Error
		if errors.As(err, &apiErr) {
			return nil, apiErr
		}
		if lastFail != nil {
			log.Debug().Err(lastFail).Msg("logical request interrupted after failed attempt")
		}
		cause := context.Cause(ctx)
		if cause == nil {
			cause = err
		}
		return nil, interrupted(req, cause, attempt)
	}

	resp.Attempts = attempt
	return resp, nil
}

// attempt performs one physical call under the attempt timeout.
func (c *Client) attempt(ctx context.Context, req Request, n int) (*Response, *Error) {
	attemptCtx, cancel := context.WithTimeout(ctx, c.policy.Timeout)
	defer cancel()

	r := c.http.R().
		SetContext(attemptCtx).
		SetHeaderMultiValues(c.pipeline.Decorate(attemptCtx, req))
	if req.Body != nil {
		r.SetBody(req.Body)
	}
	if len(req.Query) > 0 {
		r.SetQueryParamsFromValues(req.Query)
	}

	logger.FromContext(ctx).Debug().Str("method", req.Method).Str("url", req.URL).Int("attempt", n).Msg("sending request")

	resp, err := r.Execute(req.Method, req.URL)
	if err != nil {
		if cause := context.Cause(ctx); errors.Is(cause, ErrCallTimeout) {
			// the call budget ran out while this attempt was in flight
			err = fmt.Errorf("%w: %w", cause, err)
		}
		fail := mapTransportError(req, err, n)
		c.pipeline.Notify(attemptCtx, req, fail)
		return nil, fail
	}
	if fail := mapHTTPError(req, resp, n); fail != nil {
		c.pipeline.Notify(attemptCtx, req, fail)
		return nil, fail
	}

	return &Response{
		StatusCode: resp.StatusCode(),
		Header:     resp.Header(),
		Body:       resp.Body(),
	}, nil
}

// interrupted builds the error for a logical request stopped by its context
// rather than by an attempt failure.
func interrupted(req Request, ctxErr error, attempts int) *Error {
	kind := ErrNetwork
	if errors.Is(ctxErr, context.DeadlineExceeded) {
		kind = ErrTimeout
	}

	return &Error{
		Kind:    kind,
		Method:  req.Method,
		URL:     req.URL,
		Attempt: attempts,
		Err:     ctxErr,
	}
}
