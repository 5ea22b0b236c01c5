package cli

import (
	"fmt"

	"github.com/common-nighthawk/go-figure"
	"github.com/spf13/cobra"

	"github.com/MKhiriev/engagement-pulse/models"
)

func newVersionCmd(info models.BuildInfo) *cobra.Command {
	return &cobra.Command{
		Use:         "version",
		Short:       "Print version information",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{annotationNoDeps: "true"},
		Run: func(cmd *cobra.Command, _ []string) {
			out := cmd.OutOrStdout()
			fmt.Fprint(out, figure.NewFigure("pulse", "cybermedium", true).String())
			fmt.Fprintf(out, "Build version: %s\n", info.Version)
			fmt.Fprintf(out, "Build date: %s\n", info.Date)
			fmt.Fprintf(out, "Build commit: %s\n", info.Commit)
		},
	}
}
