package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/engagement-pulse/internal/tui"
	"github.com/MKhiriev/engagement-pulse/models"
)

func newChannelsCmd(getDeps func() *deps) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "channels",
		Short: "List or add monitored channels",
	}

	cmd.AddCommand(newChannelsListCmd(getDeps), newChannelsAddCmd(getDeps))
	return cmd
}

func newChannelsListCmd(getDeps func() *deps) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List monitored channels",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			d := getDeps()
			channels, err := d.engagement.Channels(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintln(d.out, tui.RenderChannels(channels))
			return nil
		},
	}
}

func newChannelsAddCmd(getDeps func() *deps) *cobra.Command {
	var (
		name     string
		inactive bool
	)

	cmd := &cobra.Command{
		Use:   "add <channel-id>",
		Short: "Start monitoring a channel",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d := getDeps()
			created, err := d.engagement.AddChannel(cmd.Context(), models.Channel{
				ChannelID:   args[0],
				ChannelName: name,
				IsActive:    !inactive,
			})
			if err != nil {
				return err
			}
			fmt.Fprintln(d.out, renderChannel(created))
			return nil
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "Channel name")
	_ = cmd.MarkFlagRequired("name")
	cmd.Flags().BoolVar(&inactive, "inactive", false, "Register the channel without collecting messages")
	return cmd
}
