package utils

import (
	"fmt"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/engagement-pulse/internal/logger"
)

// ContentTypeJSON is the content type sent with every backend request.
const ContentTypeJSON = "application/json"

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly,
// while allowing extension with additional application-specific behavior.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates and returns a new HTTPClient preconfigured for the
// engagement backend:
//   - JSON Content-Type and Accept headers on every request;
//   - resty's own retry machinery disabled (retries are owned by the caller);
//   - resty's internal warnings routed to log.
//
// Each call returns an independent client instance with its own
// configuration, connection pool, and state.
func NewHTTPClient(log *logger.Logger) *HTTPClient {
	c := resty.New().
		SetHeader("Content-Type", ContentTypeJSON).
		SetHeader("Accept", ContentTypeJSON).
		SetRetryCount(0).
		SetLogger(restyLogger{log: log})

	return &HTTPClient{Client: c}
}

// restyLogger adapts *logger.Logger to resty.Logger.
type restyLogger struct {
	log *logger.Logger
}

func (l restyLogger) Errorf(format string, v ...any) {
	l.log.Error().Str("component", "resty").Msg(trimf(format, v...))
}

func (l restyLogger) Warnf(format string, v ...any) {
	l.log.Warn().Str("component", "resty").Msg(trimf(format, v...))
}

func (l restyLogger) Debugf(format string, v ...any) {
	l.log.Debug().Str("component", "resty").Msg(trimf(format, v...))
}

func trimf(format string, v ...any) string {
	return strings.TrimSpace(fmt.Sprintf(format, v...))
}
