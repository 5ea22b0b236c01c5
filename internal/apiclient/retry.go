// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package apiclient

import (
	"time"

	"github.com/sethvargo/go-retry"
)

const (
	// DefaultTimeout bounds a single attempt.
	DefaultTimeout = 10 * time.Second
	// DefaultMaxAttempts is the total number of attempts per logical request.
	DefaultMaxAttempts = 3
	// DefaultRetryDelay is the backoff base: the wait after attempt n is
	// DefaultRetryDelay * n.
	DefaultRetryDelay = time.Second
)

// Policy bounds the latency and the number of attempts of a logical request.
type Policy struct {
	// MaxAttempts is the total number of attempts, including the first one.
	// Values below 1 are treated as 1.
	MaxAttempts int
	// Delay is the linear backoff base.
	Delay time.Duration
	// Timeout bounds every single attempt.
	Timeout time.Duration
}

// DefaultPolicy returns 3 attempts, a 1s linear backoff base and a 10s
// attempt timeout.
func DefaultPolicy() Policy {
	return Policy{
		MaxAttempts: DefaultMaxAttempts,
		Delay:       DefaultRetryDelay,
		Timeout:     DefaultTimeout,
	}
}

func (p Policy) attempts() int {
	if p.MaxAttempts < 1 {
		return 1
	}
	return p.MaxAttempts
}

// DelayAfter returns the wait between attempt n and n+1.
func (p Policy) DelayAfter(n int) time.Duration {
	return p.Delay * time.Duration(n)
}

// backoff returns a fresh linear backoff for one logical request: it yields
// Delay*1, Delay*2, ... and stops after MaxAttempts-1 waits.
func (p Policy) backoff() retry.Backoff {
	n := 0
	linear := retry.BackoffFunc(func() (time.Duration, bool) {
		n++
		return p.DelayAfter(n), false
	})

	return retry.WithMaxRetries(uint64(p.attempts()-1), linear)
}
