package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/okian/playrank/internal/playloggen"
	"github.com/okian/playrank/pkg/logger"
)

// Default configuration constants.
const (
	defaultRows    = 100_000
	defaultPlayers = 1_000
	filePermission = 0o600
)

func main() {
	var (
		rows     = flag.Int("rows", defaultRows, "Number of data rows to generate")
		players  = flag.Int("players", defaultPlayers, "Number of distinct players")
		seed     = flag.Int64("seed", time.Now().UnixNano(), "Random seed (equal seeds give equal logs)")
		interval = flag.Duration("interval", time.Minute, "Timestamp step between rows")
		output   = flag.String("output", "", "Output file (default: stdout)")
	)
	flag.Parse()

	if err := logger.Init(); err != nil {
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		os.Exit(1)
	}
	log := logger.Get()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	out := os.Stdout
	if *output != "" {
		f, err := os.OpenFile(*output, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, filePermission)
		if err != nil {
			log.Error(ctx, "failed to create output file", logger.String("output", *output), logger.Error(err))
			stop()
			os.Exit(1) //nolint:gocritic // stop already called
		}
		defer func() {
			if err := f.Close(); err != nil {
				log.Error(ctx, "failed to close output file", logger.Error(err))
			}
		}()
		out = f
	}

	stats, err := playloggen.Generate(ctx, out, playloggen.Config{
		Rows:     *rows,
		Players:  *players,
		Seed:     *seed,
		Interval: *interval,
	})
	if err != nil {
		log.Error(ctx, "failed to generate play log", logger.Error(err))
		stop()
		os.Exit(1) //nolint:gocritic // stop already called
	}

	log.Info(ctx, "play log generated",
		logger.Int("rows", stats.Rows),
		logger.Int("players", stats.Players),
		logger.Int64("seed", *seed),
	)
}
