package cli

import (
	"context"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/m-mizutani/antithesis-trigger/pkg/cli/config"
	"github.com/m-mizutani/antithesis-trigger/pkg/domain/interfaces"
	"github.com/m-mizutani/antithesis-trigger/pkg/domain/model"
	"github.com/m-mizutani/antithesis-trigger/pkg/domain/types"
	"github.com/m-mizutani/antithesis-trigger/pkg/infra/antithesis"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

// deps are the process level collaborators of a run
type deps struct {
	newLauncher func(timeout time.Duration) interfaces.Launcher
	console     io.Writer
}

func defaultDeps() *deps {
	return &deps{
		newLauncher: func(timeout time.Duration) interfaces.Launcher {
			return antithesis.NewClient(antithesis.WithTimeout(timeout))
		},
		console: os.Stdout,
	}
}

// Run runs the CLI application
func Run(ctx context.Context, args []string) error {
	return run(ctx, args, defaultDeps())
}

func run(ctx context.Context, args []string, d *deps) error {
	loggerCfg := config.Logger{Output: d.console}
	var logger *slog.Logger

	app := &cli.Command{
		Name:    "antithesis-trigger",
		Usage:   "Launch Antithesis tests from GitHub Actions",
		Version: types.Version,
		Flags:   loggerCfg.Flags(),
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			var err error
			logger, err = loggerCfg.Configure()
			if err != nil {
				return nil, err
			}

			logger = logger.With("invocation_id", uuid.NewString())
			slog.SetDefault(logger)
			ctx = ctxlog.With(ctx, logger)
			return ctx, nil
		},
		// GitHub Actions runs the container without arguments
		DefaultCommand: "trigger",
		Commands: []*cli.Command{
			cmdTrigger(d),
		},
	}

	if err := app.Run(ctx, args); err != nil {
		if logger == nil {
			logger = slog.Default()
		}
		// launch failures are already logged and emitted as a workflow error command
		if goerr.HasTag(err, model.ErrTagRejected) || goerr.HasTag(err, model.ErrTagTransport) {
			logger.Debug("Trigger failed", slog.Any("error", err))
		} else {
			logger.Error("CLI execution failed", slog.Any("error", err))
		}
		return err
	}

	return nil
}
