// Command uniqueletters keeps the five-letter words without repeated
// letters.
//
// Usage:
//
//	uniqueletters [file ...]
//
// Words are read from the files, or from stdin when none is given.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

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

	flag.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level")
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

	paths := flag.Args()
	if len(paths) == 0 {
		paths = []string{corpus.Stdin}
	}

	for _, path := range paths {
		if err := filter(path, os.Stdout, log); err != nil {
			log.Error("filter failed", zap.String("path", path), zap.Error(err))
			_ = log.Sync()
			os.Exit(1)
		}
	}
}

func filter(path string, w io.Writer, log *zap.Logger) error {
	var r io.Reader = os.Stdin
	if path != corpus.Stdin {
		f, err := os.Open(path)
		if err != nil {
			return err
		}
		defer f.Close()
		r = f
	}

	n, err := corpus.Filter(r, w, log)
	log.Debug("filtered", zap.String("path", path), zap.Int("kept", n))

	return err
}
