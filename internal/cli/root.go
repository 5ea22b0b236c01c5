// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/engagement-pulse/internal/config"
	"github.com/MKhiriev/engagement-pulse/models"
)

// invocation owns the backend wiring of one command run. The wiring is
// built lazily by PersistentPreRunE and released by Close.
type invocation struct {
	deps *deps
}

func (i *invocation) get() *deps { return i.deps }

// Close releases the wiring. It is safe to call when nothing was built.
func (i *invocation) Close() error {
	if i.deps == nil {
		return nil
	}
	return i.deps.Close()
}

func newRootCmd(info models.BuildInfo) (*cobra.Command, *invocation) {
	var (
		flags config.Flags
		inv   invocation
	)

	rootCmd := &cobra.Command{
		Use:   "pulse",
		Short: "Employee engagement pulse",
		Long:  "pulse shows channel sentiment, weekly trends and burnout warnings from the engagement backend.",
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Annotations[annotationNoDeps] == "true" {
				return nil
			}
			d, err := newDeps(cmd.Context(), &flags, cmd.OutOrStdout(), cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			inv.deps = d
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags.Register(rootCmd.PersistentFlags())

	rootCmd.AddCommand(
		newDashboardCmd(inv.get),
		newChannelsCmd(inv.get),
		newSentimentCmd(inv.get),
		newLoginCmd(inv.get),
		newLogoutCmd(inv.get),
		newWhoamiCmd(inv.get),
		newVersionCmd(info),
	)

	return rootCmd, &inv
}

// Execute runs the pulse command line with args and prints a failure to the
// command's error output.
func Execute(ctx context.Context, info models.BuildInfo, args []string) error {
	rootCmd, inv := newRootCmd(info)
	rootCmd.SetArgs(args)
	return run(ctx, rootCmd, inv)
}

// run executes rootCmd and releases the wiring whether or not the command
// succeeded; cobra skips post-run hooks after a failed RunE.
func run(ctx context.Context, rootCmd *cobra.Command, inv *invocation) error {
	err := rootCmd.ExecuteContext(ctx)
	if closeErr := inv.Close(); closeErr != nil && err == nil {
		err = fmt.Errorf("release resources: %w", closeErr)
	}
	if err != nil {
		fmt.Fprintln(rootCmd.ErrOrStderr(), renderError(err))
	}
	return err
}

// annotationNoDeps marks commands that run without backend wiring.
const annotationNoDeps = "pulse/no-deps"
