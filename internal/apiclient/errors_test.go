package apiclient

import (
	"context"
	"errors"
	"fmt"
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
)

type timeoutErr struct{}

func (timeoutErr) Error() string   { return "i/o timeout" }
func (timeoutErr) Timeout() bool   { return true }
func (timeoutErr) Temporary() bool { return true }

var _ net.Error = timeoutErr{}

func TestTransportKind(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{name: "deadline", err: fmt.Errorf("get: %w", context.DeadlineExceeded), want: ErrTimeout},
		{name: "net timeout", err: &net.OpError{Op: "dial", Err: timeoutErr{}}, want: ErrTimeout},
		{name: "refused", err: &net.OpError{Op: "dial", Err: errors.New("connection refused")}, want: ErrNetwork},
		{name: "canceled", err: context.Canceled, want: ErrNetwork},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, transportKind(tt.err))
		})
	}
}

func TestError_Message(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		want string
	}{
		{
			name: "status with body",
			err:  &Error{Kind: ErrServer, Method: "GET", URL: "http://h/x", StatusCode: 503, Body: "maintenance"},
			want: "GET http://h/x: server error: http 503: maintenance",
		},
		{
			name: "status without body",
			err:  &Error{Kind: ErrUnauthorized, Method: "GET", URL: "http://h/x", StatusCode: 401},
			want: "GET http://h/x: authentication rejected: http 401: Unauthorized",
		},
		{
			name: "transport",
			err:  &Error{Kind: ErrNetwork, Method: "POST", URL: "http://h/y", Err: errors.New("connection reset")},
			want: "POST http://h/y: network failure: connection reset",
		},
		{
			name: "bare",
			err:  &Error{Kind: ErrTimeout, Method: "GET", URL: "http://h/z"},
			want: "GET http://h/z: request timed out",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestError_Is(t *testing.T) {
	cause := context.DeadlineExceeded
	err := error(&Error{Kind: ErrTimeout, Err: cause})

	assert.ErrorIs(t, err, ErrTimeout)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.NotErrorIs(t, err, ErrServer)

	var to interface{ Timeout() bool }
	assert.True(t, errors.As(err, &to))
	assert.True(t, to.Timeout())

	assert.False(t, (&Error{Kind: ErrServer}).Timeout())
}
