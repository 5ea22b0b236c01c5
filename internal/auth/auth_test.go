package auth

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/engagement-pulse/internal/apiclient"
	"github.com/MKhiriev/engagement-pulse/internal/config"
	"github.com/MKhiriev/engagement-pulse/internal/logger"
	"github.com/MKhiriev/engagement-pulse/internal/mock"
	"github.com/MKhiriev/engagement-pulse/internal/session"
	"github.com/MKhiriev/engagement-pulse/models"
)

var ada = models.UserProfile{ID: "u-1", Name: "Ada", Email: "ada@example.com"}

func newTestAuthSvc(t *testing.T) (*Service, *mock.MockRequester, *mock.MockStore) {
	t.Helper()
	ctrl := gomock.NewController(t)
	api := mock.NewMockRequester(ctrl)
	store := mock.NewMockStore(ctrl)
	return NewService(api, store, logger.Nop()), api, store
}

func authResponse(t *testing.T, token string, user models.UserProfile) *apiclient.Response {
	t.Helper()
	body, err := json.Marshal(models.AuthResponse{AccessToken: token, User: user})
	require.NoError(t, err)
	return &apiclient.Response{StatusCode: http.StatusOK, Body: body, Header: http.Header{}}
}

func signedToken(t *testing.T, claims jwt.RegisteredClaims) string {
	t.Helper()
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return tok
}

// ── LoginWithGoogle / Verify ─────────────────────────────────────────────────

func TestService_LoginWithGoogle_Success(t *testing.T) {
	svc, api, store := newTestAuthSvc(t)
	ctx := context.Background()

	gomock.InOrder(
		api.EXPECT().Post(ctx, "/auth/google", models.GoogleAuthRequest{Credential: "google-id-token"}, gomock.Any()).
			Return(authResponse(t, "access-1", ada), nil),
		store.EXPECT().Set(ctx, models.Credential{Token: "access-1", User: ada}).Return(nil),
	)

	cred, err := svc.LoginWithGoogle(ctx, " google-id-token ")
	require.NoError(t, err)
	assert.Equal(t, "access-1", cred.Token)
	assert.Equal(t, ada, cred.User)
}

func TestService_Verify_UsesVerifyEndpoint(t *testing.T) {
	svc, api, store := newTestAuthSvc(t)
	ctx := context.Background()

	api.EXPECT().Post(ctx, "/auth/google/verify", gomock.Any(), gomock.Any()).
		Return(authResponse(t, "access-2", ada), nil)
	store.EXPECT().Set(ctx, gomock.Any()).Return(nil)

	cred, err := svc.Verify(ctx, "google-id-token")
	require.NoError(t, err)
	assert.Equal(t, "access-2", cred.Token)
}

func TestService_LoginWithGoogle_TokenFromHeader(t *testing.T) {
	svc, api, store := newTestAuthSvc(t)
	ctx := context.Background()

	resp := authResponse(t, "", ada)
	resp.Header.Set("Authorization", "Bearer header-token")
	api.EXPECT().Post(ctx, "/auth/google", gomock.Any(), gomock.Any()).Return(resp, nil)
	store.EXPECT().Set(ctx, models.Credential{Token: "header-token", User: ada}).Return(nil)

	cred, err := svc.LoginWithGoogle(ctx, "cred")
	require.NoError(t, err)
	assert.Equal(t, "header-token", cred.Token)
}

func TestService_LoginWithGoogle_Errors(t *testing.T) {
	ctx := context.Background()
	rejected := &apiclient.Error{Kind: apiclient.ErrUnauthorized, StatusCode: http.StatusUnauthorized}
	storeErr := errors.New("disk full")

	tests := []struct {
		name       string
		credential string
		setup      func(api *mock.MockRequester, store *mock.MockStore)
		check      func(t *testing.T, err error)
	}{
		{
			name:       "empty credential",
			credential: "   ",
			setup:      func(*mock.MockRequester, *mock.MockStore) {},
			check:      func(t *testing.T, err error) { assert.ErrorIs(t, err, ErrEmptyCredential) },
		},
		{
			name:       "backend rejects",
			credential: "cred",
			setup: func(api *mock.MockRequester, _ *mock.MockStore) {
				api.EXPECT().Post(ctx, "/auth/google", gomock.Any(), gomock.Any()).Return(nil, rejected)
			},
			check: func(t *testing.T, err error) { assert.Same(t, rejected, err) },
		},
		{
			name:       "no access token",
			credential: "cred",
			setup: func(api *mock.MockRequester, _ *mock.MockStore) {
				api.EXPECT().Post(ctx, "/auth/google", gomock.Any(), gomock.Any()).Return(authResponse(t, "", ada), nil)
			},
			check: func(t *testing.T, err error) { assert.ErrorIs(t, err, ErrNoAccessToken) },
		},
		{
			name:       "malformed body",
			credential: "cred",
			setup: func(api *mock.MockRequester, _ *mock.MockStore) {
				api.EXPECT().Post(ctx, "/auth/google", gomock.Any(), gomock.Any()).
					Return(&apiclient.Response{Body: []byte(`[`)}, nil)
			},
			check: func(t *testing.T, err error) { assert.ErrorContains(t, err, "google sign-in") },
		},
		{
			name:       "store fails",
			credential: "cred",
			setup: func(api *mock.MockRequester, store *mock.MockStore) {
				api.EXPECT().Post(ctx, "/auth/google", gomock.Any(), gomock.Any()).Return(authResponse(t, "tok", ada), nil)
				store.EXPECT().Set(ctx, gomock.Any()).Return(storeErr)
			},
			check: func(t *testing.T, err error) { assert.ErrorIs(t, err, storeErr) },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, api, store := newTestAuthSvc(t)
			tt.setup(api, store)

			_, err := svc.LoginWithGoogle(ctx, tt.credential)
			require.Error(t, err)
			tt.check(t, err)
		})
	}
}

// ── Logout ───────────────────────────────────────────────────────────────────

func TestService_Logout(t *testing.T) {
	svc, _, store := newTestAuthSvc(t)
	ctx := context.Background()

	store.EXPECT().Clear(ctx).Return(nil)
	assert.NoError(t, svc.Logout(ctx))

	clearErr := errors.New("locked")
	store.EXPECT().Clear(ctx).Return(clearErr)
	assert.ErrorIs(t, svc.Logout(ctx), clearErr)
}

// ── Whoami ───────────────────────────────────────────────────────────────────

func TestService_Whoami(t *testing.T) {
	now := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	valid := signedToken(t, jwt.RegisteredClaims{
		Subject:   "u-1",
		Issuer:    "engagement-pulse",
		ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
	})
	expired := signedToken(t, jwt.RegisteredClaims{
		Subject:   "u-1",
		ExpiresAt: jwt.NewNumericDate(now.Add(-time.Hour)),
	})

	tests := []struct {
		name      string
		cred      models.Credential
		getErr    error
		wantErr   error
		hasClaims bool
		expired   bool
	}{
		{name: "valid jwt", cred: models.Credential{Token: valid, User: ada}, hasClaims: true},
		{name: "expired jwt", cred: models.Credential{Token: expired, User: ada}, hasClaims: true, expired: true},
		{name: "opaque token", cred: models.Credential{Token: "opaque", User: ada}},
		{name: "not signed in", getErr: session.ErrNotFound, wantErr: ErrNotSignedIn},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _, store := newTestAuthSvc(t)
			svc.now = func() time.Time { return now }
			store.EXPECT().Get(gomock.Any()).Return(tt.cred, tt.getErr)

			id, err := svc.Whoami(context.Background())
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, ada, id.User)
			assert.Equal(t, tt.hasClaims, id.HasClaims)
			assert.Equal(t, tt.expired, id.Expired)
			if tt.hasClaims {
				assert.Equal(t, "u-1", id.Claims.Subject)
			}
		})
	}
}

// ── end to end: login, authorized call, 401 clears the session ──────────────

func TestLoginThenRejectedRequestClearsSession(t *testing.T) {
	r := chi.NewRouter()
	r.Post("/auth/google", func(w http.ResponseWriter, req *http.Request) {
		var in models.GoogleAuthRequest
		require.NoError(t, json.NewDecoder(req.Body).Decode(&in))
		assert.Equal(t, "google-cred", in.Credential)
		_ = json.NewEncoder(w).Encode(models.AuthResponse{AccessToken: "session-token", User: ada})
	})
	r.Get("/engagement/channels", func(w http.ResponseWriter, req *http.Request) {
		assert.Equal(t, "Bearer session-token", req.Header.Get("Authorization"))
		w.WriteHeader(http.StatusUnauthorized)
	})
	srv := httptest.NewServer(r)
	defer srv.Close()

	store := session.NewMemoryStore()
	var redirectedTo string
	client, err := apiclient.New(config.ClientAPI{BaseURL: srv.URL}, logger.Nop(),
		apiclient.WithPolicy(apiclient.Policy{MaxAttempts: 1, Timeout: time.Second}),
		apiclient.WithSession(store, func(_ context.Context, loginPath string) { redirectedTo = loginPath }),
	)
	require.NoError(t, err)

	svc := NewService(client, store, logger.Nop())
	ctx := context.Background()

	_, err = svc.LoginWithGoogle(ctx, "google-cred")
	require.NoError(t, err)

	id, err := svc.Whoami(ctx)
	require.NoError(t, err)
	assert.Equal(t, ada, id.User)

	_, err = client.Get(ctx, "/engagement/channels", nil)
	assert.ErrorIs(t, err, apiclient.ErrUnauthorized)
	assert.Equal(t, apiclient.LoginPath, redirectedTo)

	_, err = svc.Whoami(ctx)
	assert.ErrorIs(t, err, ErrNotSignedIn)
}
