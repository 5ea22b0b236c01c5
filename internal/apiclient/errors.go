// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package apiclient

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

// Failure kinds. Every error returned by [Client] is an [*Error] whose Kind
// is one of these values, so callers can use errors.Is directly on the
// returned error.
var (
	// ErrTimeout means no response arrived within the attempt timeout or the
	// caller's call timeout (the latter also matches ErrCallTimeout).
	ErrTimeout = errors.New("request timed out")
	// ErrUnauthorized means the backend answered 401. The session has
	// already been cleared when the caller sees it.
	ErrUnauthorized = errors.New("authentication rejected")
	// ErrServer means the backend answered with a status >= 500.
	ErrServer = errors.New("server error")
	// ErrNetwork is a transport-level failure: connection refused, reset,
	// DNS failure or an aborted request.
	ErrNetwork = errors.New("network failure")
	// ErrClient covers every other non-2xx status, passed through
	// uninterpreted.
	ErrClient = errors.New("client error")
)

// ErrCallTimeout marks an ErrTimeout caused by the overall budget set with
// WithCallTimeout rather than by a single attempt running out of time. It
// wraps context.DeadlineExceeded.
var ErrCallTimeout = fmt.Errorf("call timeout exceeded: %w", context.DeadlineExceeded)

// ErrInvalidPath is returned before any network activity when a request path
// is not a relative endpoint such as "/engagement/channels".
var ErrInvalidPath = errors.New("invalid request path")

// Error describes one failed attempt. When retries are exhausted the caller
// receives the final attempt's *Error as is.
type Error struct {
	// Kind is one of ErrTimeout, ErrUnauthorized, ErrServer, ErrNetwork,
	// ErrClient.
	Kind error

	Method string
	URL    string

	// StatusCode is the HTTP status, or 0 when no response was received.
	StatusCode int
	// Body is the trimmed response body of a non-2xx reply.
	Body string

	// Attempt is the 1-based attempt number that produced the failure.
	Attempt int

	// Err is the underlying transport error, nil for status failures.
	Err error
}

func (e *Error) Error() string {
	prefix := fmt.Sprintf("%s %s", e.Method, e.URL)

	if e.StatusCode != 0 {
		body := e.Body
		if body == "" {
			body = http.StatusText(e.StatusCode)
		}
		return fmt.Sprintf("%s: %v: http %d: %s", prefix, e.Kind, e.StatusCode, body)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v: %v", prefix, e.Kind, e.Err)
	}
	return fmt.Sprintf("%s: %v", prefix, e.Kind)
}

// Unwrap exposes both the kind and the transport cause to errors.Is/As.
func (e *Error) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

// Timeout reports whether the failure is a timeout. It lets *Error satisfy
// the informal `interface{ Timeout() bool }` used by net.Error consumers.
func (e *Error) Timeout() bool {
	return errors.Is(e.Kind, ErrTimeout)
}

// mapHTTPError converts a non-2xx resty response into an *Error. It returns
// nil for 2xx responses.
func mapHTTPError(req Request, resp *resty.Response, attempt int) *Error {
	code := resp.StatusCode()
	if code >= http.StatusOK && code < http.StatusMultipleChoices {
		return nil
	}

	var kind error
	switch {
	case code == http.StatusUnauthorized:
		kind = ErrUnauthorized
	case code >= http.StatusInternalServerError:
		kind = ErrServer
	default:
		kind = ErrClient
	}

	return &Error{
		Kind:       kind,
		Method:     req.Method,
		URL:        req.URL,
		StatusCode: code,
		Body:       strings.TrimSpace(string(resp.Body())),
		Attempt:    attempt,
	}
}

// mapTransportError classifies an error returned before any response was
// received.
func mapTransportError(req Request, err error, attempt int) *Error {
	return &Error{
		Kind:    transportKind(err),
		Method:  req.Method,
		URL:     req.URL,
		Attempt: attempt,
		Err:     err,
	}
}

func transportKind(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return ErrTimeout
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return ErrTimeout
	}

	return ErrNetwork
}
