// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package apiclient is the request layer between the engagement-pulse
// callers and the backend REST API.
//
// A [Client] turns every call into a logical request made of up to
// [DefaultMaxAttempts] attempts. Each attempt:
//
//  1. runs the request decorators ([RequestID], [BearerAuth]) on a fresh
//     header set;
//  2. is sent with a [DefaultTimeout] deadline;
//  3. on failure, is handed to the response observers ([InvalidateSession],
//     [LogFailures]) before the retry decision.
//
// Waits between attempts grow linearly ([DefaultRetryDelay] * n). When all
// attempts fail, the last attempt's [*Error] is returned as is; its Kind
// (ErrTimeout, ErrUnauthorized, ErrServer, ErrNetwork, ErrClient) can be
// tested with errors.Is.
package apiclient
