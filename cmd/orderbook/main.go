package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"main/internal/config"
	"main/internal/feed"
	"main/internal/ingest/bybit"
	"main/internal/obs"
	"main/internal/sink"
)

func main() {
	configPath := flag.String("config", "", "Path to YAML config (optional)")
	flag.Parse()

	// Stdout carries frames only; every lifecycle message goes to stderr.
	obs.InitLogging()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("config load failed: %v", err)
	}

	stopProfiler := obs.StartProfiler("feed.orderbook", cfg.Pyroscope.ServerAddress)
	defer stopProfiler()

	// Claim SIGPIPE so a write into a closed stdout pipe surfaces as EPIPE
	// on the sink instead of killing the process with a signal; the sink
	// maps it to the quiet-exit path.
	signal.Notify(make(chan os.Signal, 1), syscall.SIGPIPE)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	runCfg := feed.Config{
		URL:    cfg.Feed.WSUrl,
		Topics: []string{bybit.OrderbookTopic(cfg.Feed.OrderbookDepth, cfg.Feed.Symbol)},
		Retry: feed.RetryConfig{
			Enabled:        cfg.Retry.Enabled,
			InitialBackoff: cfg.Retry.InitialBackoff,
			MaxBackoff:     cfg.Retry.MaxBackoff,
		},
	}

	if err := feed.Run(ctx, runCfg, sink.NewStdout(), feed.OrderbookPump()); err != nil {
		log.Fatalf("orderbook feed: %v", err)
	}
}
