package main

import (
	"context"
	"log"
	"net/http"

	"go.uber.org/zap"

	"github.com/hamed0406/serviceprobe/internal/config"
	"github.com/hamed0406/serviceprobe/internal/httpapi"
	"github.com/hamed0406/serviceprobe/internal/logging"
	"github.com/hamed0406/serviceprobe/internal/notify"
	"github.com/hamed0406/serviceprobe/internal/probe"
	"github.com/hamed0406/serviceprobe/internal/repo"
	"github.com/hamed0406/serviceprobe/internal/repo/memory"
	"github.com/hamed0406/serviceprobe/internal/repo/postgres"
	"github.com/hamed0406/serviceprobe/internal/runner"
	"github.com/hamed0406/serviceprobe/internal/scheduler"
	"github.com/hamed0406/serviceprobe/internal/storage"
)

func main() {
	cfg := config.FromEnv()
	logger, err := logging.NewLogger(cfg.LogDir)
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	ctx := context.Background()

	var store storage.ObjectStore
	if cfg.ResultBucket != "" {
		s3store, err := storage.NewS3(ctx)
		if err != nil {
			log.Fatal(err)
		}
		store = s3store
	}

	var specs repo.SpecStore
	var runs repo.RunStore
	if cfg.DatabaseURL != "" {
		pg, err := postgres.New(ctx, cfg.DatabaseURL, logger)
		if err != nil {
			log.Fatal(err)
		}
		defer pg.Close()
		specs, runs = pg, pg
	} else {
		mem := memory.New()
		specs, runs = mem, mem
	}

	p := probe.New(logger, store, cfg.TargetHost, cfg.TargetPort, cfg.ResultBucket)
	p.Grace = cfg.Grace
	p.Client.Timeout = cfg.HTTPTimeout

	var notifier notify.Notifier
	if s := notify.NewSlack(cfg.SlackWebhook); s != nil {
		notifier = s
	}

	drv := runner.New(logger, p, runs, notifier)
	go scheduler.NewRepeater(logger, specs, drv, cfg.Repeat).Run(ctx)

	api := httpapi.NewServer(logger, specs, runs, drv, p)

	logger.Info("api_listen", zap.String("addr", cfg.Addr))
	if err := http.ListenAndServe(cfg.Addr, api.Router()); err != nil {
		log.Fatal(err)
	}
}
