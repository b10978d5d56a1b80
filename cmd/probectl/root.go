package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/hamed0406/serviceprobe/internal/config"
	"github.com/hamed0406/serviceprobe/internal/logging"
	"github.com/hamed0406/serviceprobe/internal/probe"
	"github.com/hamed0406/serviceprobe/internal/storage"
)

var (
	flagHost   string
	flagPort   int
	flagBucket string

	rootCmd = &cobra.Command{
		Use:   "probectl",
		Short: "Drive test runs against a target service",
		Long: `probectl checks a target service is ready, fetches a path from it,
matches the response body against an expected string and persists the
verdict as an object key (or prints it when no bucket is configured).`,
	}
)

func init() {
	// Flags default from the environment so probectl and the API server
	// read the same deployment config.
	cfg := config.FromEnv()
	rootCmd.PersistentFlags().StringVar(&flagHost, "host", cfg.TargetHost, "target host")
	rootCmd.PersistentFlags().IntVar(&flagPort, "port", cfg.TargetPort, "target port")
	rootCmd.PersistentFlags().StringVar(&flagBucket, "bucket", cfg.ResultBucket, "result bucket (empty prints keys to stdout)")
}

func buildProbe(ctx context.Context) (*probe.Probe, error) {
	var store storage.ObjectStore
	if flagBucket != "" {
		s3store, err := storage.NewS3(ctx)
		if err != nil {
			return nil, err
		}
		store = s3store
	}
	return probe.New(logging.NewConsole(), store, flagHost, flagPort, flagBucket), nil
}
