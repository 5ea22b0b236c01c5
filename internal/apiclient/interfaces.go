package apiclient

//go:generate mockgen -source=interfaces.go -destination=../mock/requester_mock.go -package=mock

import (
	"context"
	"net/url"
)

// Requester is the request surface of [Client] that endpoint bindings
// depend on.
type Requester interface {
	Get(ctx context.Context, path string, params url.Values, opts ...CallOption) (*Response, error)
	Post(ctx context.Context, path string, body any, opts ...CallOption) (*Response, error)
}

var _ Requester = (*Client)(nil)
