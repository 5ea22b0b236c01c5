package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/MKhiriev/engagement-pulse/internal/dashboard"
	"github.com/MKhiriev/engagement-pulse/internal/tui"
	"github.com/MKhiriev/engagement-pulse/internal/workers"
)

func newDashboardCmd(getDeps func() *deps) *cobra.Command {
	var watch bool

	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Show channels, weekly trends and burnout warnings",
		Long: "Load the dashboard once and print it. With --watch it keeps refreshing: " +
			"on a terminal as an interactive screen (r refreshes, q quits), " +
			"otherwise by printing every snapshot.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			d := getDeps()
			ctx := cmd.Context()

			if !watch {
				snap, err := d.dashboard.Load(ctx)
				if err != nil {
					return errors.New(dashboard.Describe(err))
				}
				fmt.Fprintln(d.out, tui.RenderSnapshot(snap))
				return nil
			}

			if isTerminal(d.out) {
				ui := tui.NewDashboard(d.logger)
				loader := dashboard.NewLoader(d.engagement, d.logger, dashboard.WithProgress(ui.Progress))
				if err := ui.Run(ctx, loader, d.cfg.Dashboard.RefreshInterval); err != nil && !errors.Is(err, tui.ErrUserQuit) {
					return fmt.Errorf("run dashboard: %w", err)
				}
				return nil
			}

			refresher := workers.NewDashboardRefresher(d.dashboard, d.cfg.Dashboard.RefreshInterval,
				func(snap dashboard.Snapshot, err error) {
					if err != nil {
						fmt.Fprintln(d.errOut, errorStyle.Render(dashboard.Describe(err)))
						return
					}
					fmt.Fprintln(d.out, tui.RenderSnapshot(snap))
				}, d.logger)

			workers.New(refresher).Run(ctx)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "Keep refreshing every --refresh-interval until interrupted")
	return cmd
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
