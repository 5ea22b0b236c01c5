package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/engagement-pulse/internal/cli"
	"github.com/MKhiriev/engagement-pulse/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	info := models.NewBuildInfo(buildVersion, buildDate, buildCommit)
	if err := cli.Execute(ctx, info, os.Args[1:]); err != nil {
		stop()
		os.Exit(1)
	}
}
