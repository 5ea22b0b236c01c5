package engagement

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/MKhiriev/engagement-pulse/internal/apiclient"
	"github.com/MKhiriev/engagement-pulse/internal/logger"
	"github.com/MKhiriev/engagement-pulse/models"
)

const (
	channelsPath        = "/engagement/channels"
	dailySentimentPath  = "/engagement/sentiment/daily/"
	weeklyTrendsPath    = "/engagement/trends/weekly"
	burnoutWarningsPath = "/engagement/burnout-warnings"

	// DateLayout is the format of the ?date= query parameter.
	DateLayout = "2006-01-02"
)

// ErrEmptyChannelID is returned before any request when a channel ID is
// required but blank.
var ErrEmptyChannelID = errors.New("channel id is empty")

// ErrEmptyChannelName is returned by AddChannel when the name is blank.
var ErrEmptyChannelName = errors.New("channel name is empty")

// service returns request failures from api as they are, so callers can
// match the *apiclient.Error of the final attempt directly.
type service struct {
	api    apiclient.Requester
	logger *logger.Logger
}

// NewService returns a Service issuing its requests through api.
func NewService(api apiclient.Requester, log *logger.Logger) Service {
	return &service{api: api, logger: log}
}

func (s *service) Channels(ctx context.Context, opts ...apiclient.CallOption) ([]models.Channel, error) {
	resp, err := s.api.Get(ctx, channelsPath, nil, opts...)
	if err != nil {
		return nil, err
	}

	channels := make([]models.Channel, 0)
	if err = resp.Decode(&channels); err != nil {
		return nil, fmt.Errorf("get channels: %w", err)
	}
	return channels, nil
}

func (s *service) AddChannel(ctx context.Context, ch models.Channel, opts ...apiclient.CallOption) (models.Channel, error) {
	ch.ChannelID = strings.TrimSpace(ch.ChannelID)
	if ch.ChannelID == "" {
		return models.Channel{}, ErrEmptyChannelID
	}
	ch.ChannelName = strings.TrimSpace(ch.ChannelName)
	if ch.ChannelName == "" {
		return models.Channel{}, ErrEmptyChannelName
	}

	resp, err := s.api.Post(ctx, channelsPath, ch, opts...)
	if err != nil {
		return models.Channel{}, err
	}

	var created models.Channel
	if err = resp.Decode(&created); err != nil {
		return models.Channel{}, fmt.Errorf("add channel %s: %w", ch.ChannelID, err)
	}

	s.logger.Info().Str("channel_id", created.ChannelID).Msg("channel added")
	return created, nil
}

func (s *service) DailySentiment(ctx context.Context, channelID string, date time.Time, opts ...apiclient.CallOption) (models.DailySentiment, error) {
	channelID = strings.TrimSpace(channelID)
	if channelID == "" {
		return models.DailySentiment{}, ErrEmptyChannelID
	}

	var params url.Values
	if !date.IsZero() {
		params = url.Values{"date": {date.Format(DateLayout)}}
	}

	resp, err := s.api.Get(ctx, dailySentimentPath+url.PathEscape(channelID), params, opts...)
	if err != nil {
		return models.DailySentiment{}, err
	}

	var sentiment models.DailySentiment
	if err = resp.Decode(&sentiment); err != nil {
		return models.DailySentiment{}, fmt.Errorf("get daily sentiment of %s: %w", channelID, err)
	}
	return sentiment, nil
}

func (s *service) WeeklyTrends(ctx context.Context, opts ...apiclient.CallOption) (models.WeeklyTrends, error) {
	resp, err := s.api.Get(ctx, weeklyTrendsPath, nil, opts...)
	if err != nil {
		return models.WeeklyTrends{}, err
	}

	var trends models.WeeklyTrends
	if err = resp.Decode(&trends); err != nil {
		return models.WeeklyTrends{}, fmt.Errorf("get weekly trends: %w", err)
	}
	return trends, nil
}

func (s *service) BurnoutWarnings(ctx context.Context, opts ...apiclient.CallOption) ([]models.BurnoutWarning, error) {
	resp, err := s.api.Get(ctx, burnoutWarningsPath, nil, opts...)
	if err != nil {
		return nil, err
	}

	warnings := make([]models.BurnoutWarning, 0)
	if err = resp.Decode(&warnings); err != nil {
		return nil, fmt.Errorf("get burnout warnings: %w", err)
	}
	return warnings, nil
}
