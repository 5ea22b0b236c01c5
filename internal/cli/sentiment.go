package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/engagement-pulse/internal/engagement"
)

func newSentimentCmd(getDeps func() *deps) *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "sentiment <channel-id>",
		Short: "Show the daily sentiment of a channel",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var day time.Time
			if date != "" {
				var err error
				day, err = time.Parse(engagement.DateLayout, date)
				if err != nil {
					return fmt.Errorf("invalid --date %q, expected YYYY-MM-DD", date)
				}
			}

			d := getDeps()
			s, err := d.dashboard.Sentiment(cmd.Context(), args[0], day)
			if err != nil {
				return err
			}
			fmt.Fprintln(d.out, renderSentiment(s))
			return nil
		},
	}

	cmd.Flags().StringVarP(&date, "date", "d", "", "Day to show (YYYY-MM-DD, default: backend's current day)")
	return cmd
}
