// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// UserProfile is the signed-in user as returned by the auth endpoints and
// persisted next to the bearer token.
type UserProfile struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email,omitempty"`
	Picture string `json:"picture,omitempty"`
}

// Credential is the session credential: the bearer token plus the profile
// of the user it was issued to. Both halves are written and removed together.
type Credential struct {
	Token string      `json:"token"`
	User  UserProfile `json:"user"`
}

// IsAuthenticated reports whether the credential carries a usable token.
// A profile without a token is treated as unauthenticated.
func (c Credential) IsAuthenticated() bool {
	return c.Token != ""
}

// GoogleAuthRequest is the body of POST /auth/google and
// POST /auth/google/verify.
type GoogleAuthRequest struct {
	// Credential is the Google ID token obtained by the sign-in flow.
	Credential string `json:"credential"`
}

// AuthResponse is the reply of the auth endpoints.
type AuthResponse struct {
	AccessToken string      `json:"access_token"`
	User        UserProfile `json:"user"`
}
