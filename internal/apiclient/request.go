// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package apiclient

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
)

// Request is the descriptor of one logical request. It is built once per
// call by NewRequest and replayed unchanged by every attempt.
type Request struct {
	Method string
	// Path is the endpoint relative to the base URL, e.g.
	// "/engagement/channels".
	Path string
	// Body is JSON-encoded when non-nil.
	Body any
	// Query holds optional query parameters.
	Query url.Values
	// URL is baseURL + Path, without the query string.
	URL string
}

// NewRequest builds a descriptor for method against baseURL+path. The query
// values are copied, so later changes by the caller do not leak into
// in-flight attempts.
//
// Returns ErrInvalidPath if path is empty, does not start with '/', or is an
// absolute URL.
func NewRequest(baseURL, method, path string, body any, query url.Values) (Request, error) {
	if path == "" || !strings.HasPrefix(path, "/") || strings.Contains(path, "://") {
		return Request{}, fmt.Errorf("%w: %q", ErrInvalidPath, path)
	}

	var q url.Values
	if len(query) > 0 {
		q = make(url.Values, len(query))
		for k, v := range query {
			q[k] = append([]string(nil), v...)
		}
	}

	return Request{
		Method: method,
		Path:   path,
		Body:   body,
		Query:  q,
		URL:    strings.TrimRight(baseURL, "/") + path,
	}, nil
}

// Response is a successful (2xx) reply.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
	// Attempts is the number of attempts the logical request took.
	Attempts int
}

// Decode unmarshals the JSON body into v. An empty body leaves v untouched.
func (r *Response) Decode(v any) error {
	if len(r.Body) == 0 {
		return nil
	}
	if err := json.Unmarshal(r.Body, v); err != nil {
		return fmt.Errorf("decode response body: %w", err)
	}
	return nil
}

// normalizeBaseURL trims and validates the configured base URL, adding an
// http:// scheme when none is given.
func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}
