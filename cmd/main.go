// Command playrank prints a mean-score ranking report for a play log.
//
//	playrank [-config file.yaml] <play_log.csv>
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	app "github.com/okian/playrank/internal/app"
	"github.com/okian/playrank/internal/config"
	"github.com/okian/playrank/pkg/logger"
)

// Exit codes.
const (
	exitOK      = 0
	exitFailure = 1
	exitUsage   = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("playrank", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", "", "YAML config file (overrides "+config.EnvConfigPath+")")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "usage: playrank [-config file] <play_log.csv>\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return exitUsage
	}
	logPath := fs.Arg(0)

	if err := logger.InitWithWriter(stderr); err != nil {
		fmt.Fprintf(stderr, "failed to initialize logging: %v\n", err)
		return exitFailure
	}
	defer func() {
		if err := logger.Sync(); err != nil {
			fmt.Fprintf(stderr, "failed to sync logger: %v\n", err)
		}
	}()
	log := logger.Get()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Load configuration (defaults -> optional file -> env)
	cfg, err := config.Load(ctx, *configPath)
	if err != nil {
		fmt.Fprintf(stderr, "failed to load config: %v\n", err)
		return exitFailure
	}

	// Apply configured log level (fallback to info on invalid input)
	if err := logger.SetLevelString(cfg.LogLevel); err != nil {
		log.Warn(ctx, "invalid log_level; falling back to info", logger.String("log_level", cfg.LogLevel), logger.Error(err))
		_ = logger.SetLevelString("info")
	}

	svc := app.New(append(app.FromConfig(cfg), app.WithLogger(log.Named("service")))...)

	out := bufio.NewWriter(stdout)
	if err := svc.Run(ctx, logPath, out); err != nil {
		fmt.Fprintf(stderr, "playrank: %v\n", err)
		return exitFailure
	}
	if err := out.Flush(); err != nil {
		fmt.Fprintf(stderr, "playrank: write report: %v\n", err)
		return exitFailure
	}
	return exitOK
}
