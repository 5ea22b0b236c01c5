package apiclient

import (
	"context"
	"errors"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/engagement-pulse/internal/config"
	"github.com/MKhiriev/engagement-pulse/internal/logger"
	"github.com/MKhiriev/engagement-pulse/models"
)

// fakeStore is an in-memory CredentialStore that counts Clear calls.
type fakeStore struct {
	mu     sync.Mutex
	cred   models.Credential
	getErr error
	clears int
}

func newFakeStore(token string) *fakeStore {
	s := &fakeStore{}
	if token != "" {
		s.cred = models.Credential{Token: token, User: models.UserProfile{ID: "u-1", Name: "Ada"}}
	}
	return s
}

func (s *fakeStore) Get(_ context.Context) (models.Credential, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.getErr != nil {
		return models.Credential{}, s.getErr
	}
	return s.cred, nil
}

func (s *fakeStore) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clears++
	s.cred = models.Credential{}
	return nil
}

func (s *fakeStore) Clears() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.clears
}

var errStoreUnavailable = errors.New("store unavailable")

// fastPolicy keeps backoff waits short enough for unit tests.
func fastPolicy() Policy {
	return Policy{MaxAttempts: 3, Delay: 5 * time.Millisecond, Timeout: 2 * time.Second}
}

func newTestServer(t *testing.T, r chi.Router) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv
}

func newTestClient(t *testing.T, baseURL string, opts ...Option) *Client {
	t.Helper()
	opts = append([]Option{WithPolicy(fastPolicy())}, opts...)
	c, err := New(config.ClientAPI{BaseURL: baseURL}, logger.Nop(), opts...)
	require.NoError(t, err)
	return c
}

// waitRecorder collects the backoff waits that preceded each retry.
type waitRecorder struct {
	mu    sync.Mutex
	waits []time.Duration
}

func (w *waitRecorder) record(_ int, d time.Duration) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.waits = append(w.waits, d)
}

func (w *waitRecorder) Waits() []time.Duration {
	w.mu.Lock()
	defer w.mu.Unlock()
	return append([]time.Duration(nil), w.waits...)
}
