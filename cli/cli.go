// Package cli wires configuration, logging, signal handling, and the run
// loop into a runnable binary. The two shipped commands differ only in how
// an input record becomes a byte source.
package cli

import (
	"context"
	stderrors "errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/pflag"

	"github.com/allada/pconcat/config"
	"github.com/allada/pconcat/errors"
	"github.com/allada/pconcat/joiner"
	"github.com/allada/pconcat/logger"
	"github.com/allada/pconcat/task"
	"github.com/allada/pconcat/version"
	"github.com/allada/pconcat/writer"
)

// ParserFactory builds the record parser for a binary once configuration is
// loaded. Factories that need remote clients create them here.
type ParserFactory func(ctx context.Context, cfg *config.Config) (task.Parser, error)

// Main runs a binary to completion and exits with the run's status code.
func Main(name string, newParser ParserFactory) {
	os.Exit(run(name, os.Args[1:], os.Stdin, newParser))
}

func run(name string, args []string, input *os.File, newParser ParserFactory) int {
	cfg, err := config.Load(name, args)
	if stderrors.Is(err, pflag.ErrHelp) {
		return 0
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", name, err)
		return errors.ExitCode(err)
	}
	if cfg.Version {
		fmt.Printf("%s %s\n", name, version.Short())
		return 0
	}

	log := logger.New(&cfg.Logging, name)
	logger.SetGlobalLogger(log)
	log = log.WithFields(logger.Fields(logger.FieldRunID, uuid.NewString()))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	parse, err := newParser(ctx, cfg)
	if err != nil {
		log.WithError(err).Error("initialization failed")
		return errors.ExitCode(err)
	}

	w, err := writer.New(cfg.OutputFile)
	if err != nil {
		werr := errors.WriterFailed(err)
		log.WithError(werr).Error("cannot open output destination")
		return werr.ExitStatus()
	}

	start := time.Now()
	written, runErr := joiner.Run(ctx, task.FromReader(input, parse), w, joiner.Options{
		Parallel:   cfg.Parallel,
		BufferSize: cfg.BufferBytes,
		ChunkSize:  cfg.ChunkBytes,
		Logger:     log.WithComponent("joiner"),
	})
	if cerr := w.Close(); cerr != nil && runErr == nil {
		runErr = errors.WriterFailed(cerr)
	}

	if runErr != nil {
		log.WithError(runErr).Error("run failed", logger.Fields(logger.FieldBytes, written))
		return errors.ExitCode(runErr)
	}
	log.Info("run complete", logger.DurationFields(time.Since(start), written))
	return 0
}
