package dashboard

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/engagement-pulse/internal/apiclient"
	"github.com/MKhiriev/engagement-pulse/internal/app"
)

// Describe turns a Load failure into the message shown to the user. Only an
// attempt timeout is reported as a slow server; a section that used up its
// whole call budget gets the generic connection hint.
func Describe(err error) string {
	if err == nil {
		return ""
	}

	msg := app.MsgDashboardLoadFailed

	var apiErr *apiclient.Error
	switch {
	case errors.Is(err, apiclient.ErrCallTimeout):
		// the section's overall budget ran out, not a single slow attempt
		return msg + app.MsgCheckSlackConnection
	case errors.Is(err, apiclient.ErrTimeout):
		return msg + app.MsgServerSlow
	case errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusInternalServerError:
		return msg + app.MsgServerError
	default:
		return msg + app.MsgCheckSlackConnection
	}
}
