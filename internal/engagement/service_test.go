package engagement

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/engagement-pulse/internal/apiclient"
	"github.com/MKhiriev/engagement-pulse/internal/config"
	"github.com/MKhiriev/engagement-pulse/internal/logger"
	"github.com/MKhiriev/engagement-pulse/internal/mock"
	"github.com/MKhiriev/engagement-pulse/models"
)

func newTestService(t *testing.T) (Service, *mock.MockRequester) {
	t.Helper()
	ctrl := gomock.NewController(t)
	api := mock.NewMockRequester(ctrl)
	return NewService(api, logger.Nop()), api
}

func jsonResponse(t *testing.T, v any) *apiclient.Response {
	t.Helper()
	body, err := json.Marshal(v)
	require.NoError(t, err)
	return &apiclient.Response{StatusCode: http.StatusOK, Body: body, Attempts: 1}
}

// ── Channels ─────────────────────────────────────────────────────────────────

func TestService_Channels(t *testing.T) {
	svc, api := newTestService(t)
	ctx := context.Background()

	want := []models.Channel{{ChannelID: "C1", ChannelName: "general", IsActive: true}}
	api.EXPECT().Get(ctx, "/engagement/channels", gomock.Nil(), gomock.Any()).Return(jsonResponse(t, want), nil)

	got, err := svc.Channels(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestService_Channels_PassesCallOptions(t *testing.T) {
	svc, api := newTestService(t)
	ctx := context.Background()

	api.EXPECT().Get(ctx, "/engagement/channels", gomock.Nil(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, _ url.Values, opts ...apiclient.CallOption) (*apiclient.Response, error) {
			assert.Len(t, opts, 1)
			return jsonResponse(t, []models.Channel{}), nil
		})

	got, err := svc.Channels(ctx, apiclient.WithCallTimeout(15*time.Second))
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestService_Channels_ReturnsClientErrorUnchanged(t *testing.T) {
	svc, api := newTestService(t)
	ctx := context.Background()

	apiErr := &apiclient.Error{Kind: apiclient.ErrServer, StatusCode: http.StatusInternalServerError, Attempt: 3}
	api.EXPECT().Get(ctx, "/engagement/channels", gomock.Nil(), gomock.Any()).Return(nil, apiErr)

	_, err := svc.Channels(ctx)
	assert.Same(t, apiErr, err)
}

func TestService_Channels_DecodeError(t *testing.T) {
	svc, api := newTestService(t)
	ctx := context.Background()

	api.EXPECT().Get(ctx, "/engagement/channels", gomock.Nil(), gomock.Any()).
		Return(&apiclient.Response{Body: []byte(`{"not":"a list"}`)}, nil)

	_, err := svc.Channels(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "get channels")
}

// ── AddChannel ───────────────────────────────────────────────────────────────

func TestService_AddChannel(t *testing.T) {
	svc, api := newTestService(t)
	ctx := context.Background()

	in := models.Channel{ChannelID: " C9 ", ChannelName: "random", IsActive: true}
	sent := models.Channel{ChannelID: "C9", ChannelName: "random", IsActive: true}
	api.EXPECT().Post(ctx, "/engagement/channels", sent, gomock.Any()).Return(jsonResponse(t, sent), nil)

	got, err := svc.AddChannel(ctx, in)
	require.NoError(t, err)
	assert.Equal(t, sent, got)
}

func TestService_AddChannel_EmptyID(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.AddChannel(context.Background(), models.Channel{ChannelName: "x"})
	assert.ErrorIs(t, err, ErrEmptyChannelID)
}

func TestService_AddChannel_EmptyName(t *testing.T) {
	svc, _ := newTestService(t)

	for _, name := range []string{"", "   "} {
		_, err := svc.AddChannel(context.Background(), models.Channel{ChannelID: "C9", ChannelName: name})
		assert.ErrorIs(t, err, ErrEmptyChannelName)
	}
}

// ── DailySentiment ───────────────────────────────────────────────────────────

func TestService_DailySentiment(t *testing.T) {
	tests := []struct {
		name       string
		channelID  string
		date       time.Time
		wantPath   string
		wantParams any
	}{
		{
			name:       "with date",
			channelID:  "C1",
			date:       time.Date(2024, 3, 7, 15, 4, 5, 0, time.UTC),
			wantPath:   "/engagement/sentiment/daily/C1",
			wantParams: url.Values{"date": {"2024-03-07"}},
		},
		{
			name:       "without date",
			channelID:  "C1",
			wantPath:   "/engagement/sentiment/daily/C1",
			wantParams: gomock.Nil(),
		},
		{
			name:       "escaped channel id",
			channelID:  "team/ops",
			wantPath:   "/engagement/sentiment/daily/team%2Fops",
			wantParams: gomock.Nil(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, api := newTestService(t)
			ctx := context.Background()

			api.EXPECT().Get(ctx, tt.wantPath, tt.wantParams, gomock.Any()).
				Return(jsonResponse(t, map[string]any{"channel_id": tt.channelID, "total_messages": 12, "top_words": []string{"ship"}}), nil)

			got, err := svc.DailySentiment(ctx, tt.channelID, tt.date)
			require.NoError(t, err)
			assert.Equal(t, tt.channelID, got.ChannelID)
			assert.Equal(t, 12, got.TotalMessages)
			assert.Contains(t, got.Extra, "top_words")
		})
	}
}

func TestService_DailySentiment_EmptyChannel(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.DailySentiment(context.Background(), "  ", time.Now())
	assert.ErrorIs(t, err, ErrEmptyChannelID)
}

// ── WeeklyTrends / BurnoutWarnings ───────────────────────────────────────────

func TestService_WeeklyTrends(t *testing.T) {
	svc, api := newTestService(t)
	ctx := context.Background()

	want := models.WeeklyTrends{
		WeekStart:     "2024-03-04",
		WeekEnd:       "2024-03-10",
		TotalMessages: 420,
		PositiveTrend: 0.6,
		BurnoutRisk:   "low",
		Insights:      []string{"Engagement is up"},
		Channels:      []string{"C1"},
	}
	api.EXPECT().Get(ctx, "/engagement/trends/weekly", gomock.Nil(), gomock.Any()).Return(jsonResponse(t, want), nil)

	got, err := svc.WeeklyTrends(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestService_BurnoutWarnings(t *testing.T) {
	svc, api := newTestService(t)
	ctx := context.Background()

	want := []models.BurnoutWarning{{
		ChannelID:      "C2",
		ChannelName:    "oncall",
		RiskLevel:      "high",
		Indicators:     []string{"late night messages"},
		Recommendation: "rotate on-call",
		Timestamp:      "2024-03-07T10:00:00Z",
	}}
	api.EXPECT().Get(ctx, "/engagement/burnout-warnings", gomock.Nil(), gomock.Any()).Return(jsonResponse(t, want), nil)

	got, err := svc.BurnoutWarnings(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

// ── end to end through apiclient ─────────────────────────────────────────────

func TestService_ThroughClient(t *testing.T) {
	r := chi.NewRouter()
	r.Get("/engagement/sentiment/daily/{channelID}", func(w http.ResponseWriter, req *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"channel_id": chi.URLParam(req, "channelID"),
			"date":       req.URL.Query().Get("date"),
			"positive":   0.5,
		})
	})
	srv := httptest.NewServer(r)
	defer srv.Close()

	client, err := apiclient.New(config.ClientAPI{BaseURL: srv.URL}, logger.Nop())
	require.NoError(t, err)

	svc := NewService(client, logger.Nop())
	got, err := svc.DailySentiment(context.Background(), "C5", time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC))

	require.NoError(t, err)
	assert.Equal(t, "C5", got.ChannelID)
	assert.Equal(t, "2024-01-02", got.Date)
	assert.InDelta(t, 0.5, got.Positive, 1e-9)
}
