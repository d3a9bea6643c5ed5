// Command fivewords prints every group of five-letter words that uses
// each letter at most once.
//
// Usage:
//
//	fivewords [flags] [file ...]
//
// Words are read one per line from the files, or from stdin when no file
// is given or a file is "-". Solutions go to stdout, diagnostics to stderr.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/EinfachAndy/fivewords"
	"github.com/EinfachAndy/fivewords/corpus"
	"github.com/EinfachAndy/fivewords/internal/config"
	"github.com/EinfachAndy/fivewords/internal/logging"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	flag.IntVar(&cfg.GroupSize, "size", cfg.GroupSize, "Number of words per group")
	flag.IntVar(&cfg.Workers, "workers", cfg.Workers, "Goroutines building each level")
	flag.BoolVar(&cfg.Sorted, "sorted", cfg.Sorted, "Sort the solution lines")
	flag.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [flags] [file ...]\n", os.Args[0])
		flag.PrintDefaults()
		fmt.Fprintln(flag.CommandLine.Output(), config.Usage())
	}
	flag.Parse()

	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	log, err := logging.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, flag.Args(), log); err != nil {
		log.Error("fivewords failed", zap.Error(err))
		_ = log.Sync()
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, paths []string, log *zap.Logger) error {
	words, err := corpus.ReadFiles(paths, os.Stdin)
	if err != nil {
		return err
	}

	s := fivewords.New(
		fivewords.WithLogger(log),
		fivewords.WithWorkers(cfg.Workers),
		fivewords.WithSorted(cfg.Sorted),
		fivewords.WithGroupSize(cfg.GroupSize),
	)

	_, err = s.Solve(ctx, words, os.Stdout)

	return err
}
