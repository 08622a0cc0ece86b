package cli

import (
	"context"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/m-mizutani/antithesis-trigger/pkg/cli/config"
	githubctrl "github.com/m-mizutani/antithesis-trigger/pkg/controller/github"
	"github.com/m-mizutani/antithesis-trigger/pkg/domain/interfaces"
	"github.com/m-mizutani/antithesis-trigger/pkg/domain/model"
	"github.com/m-mizutani/antithesis-trigger/pkg/domain/types"
	"github.com/m-mizutani/antithesis-trigger/pkg/infra/actions"
	githubinfra "github.com/m-mizutani/antithesis-trigger/pkg/infra/github"
	"github.com/m-mizutani/antithesis-trigger/pkg/infra/paramfile"
	"github.com/m-mizutani/antithesis-trigger/pkg/usecase"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

func cmdTrigger(d *deps) *cli.Command {
	var (
		antithesisCfg config.Antithesis
		runCfg        config.Run
		githubCfg     config.GitHub
		sentryCfg     config.Sentry
	)

	var flags []cli.Flag
	flags = append(flags, antithesisCfg.Flags()...)
	flags = append(flags, runCfg.Flags()...)
	flags = append(flags, githubCfg.Flags()...)
	flags = append(flags, sentryCfg.Flags()...)

	return &cli.Command{
		Name:    "trigger",
		Aliases: []string{"t"},
		Usage:   "Launch a notebook and report a pending commit status",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := ctxlog.From(ctx)

			if err := sentryCfg.Configure(types.Version); err != nil {
				return err
			}
			defer sentry.Flush(2 * time.Second)

			event, err := githubctrl.LoadEvent(ctx, githubCfg.Runner)
			if err != nil {
				return err
			}

			fileParams, err := paramfile.Load(runCfg.ParametersFile)
			if err != nil {
				return err
			}

			var reporter interfaces.StatusReporter
			if githubCfg.Token != "" {
				reporter, err = githubinfra.NewClient(githubCfg.Token, githubCfg.APIURL)
				if err != nil {
					return err
				}
			}

			launcher := d.newLauncher(antithesisCfg.Timeout)
			triggerUC := usecase.NewTrigger(launcher, reporter)

			input := &model.TriggerInput{
				Tenant:               antithesisCfg.Tenant,
				ServiceDomain:        antithesisCfg.ServiceDomain,
				NotebookName:         antithesisCfg.NotebookName,
				Username:             antithesisCfg.Username,
				Password:             antithesisCfg.Password,
				GitHubToken:          githubCfg.Token,
				Images:               runCfg.Images,
				ConfigImage:          runCfg.ConfigImage,
				Description:          runCfg.Description,
				Recipients:           runCfg.Recipients,
				TestName:             runCfg.TestName,
				AdditionalParameters: runCfg.AdditionalParameters,
				FileParameters:       fileParams,
				Event:                event,
			}

			logger.Info("Notebook to run",
				"tenant", input.Tenant,
				"notebook", input.NotebookName,
				"event_name", event.EventName,
			)

			outcome := triggerUC.Run(ctx, input)

			output := actions.NewOutput(githubCfg.OutputPath, d.console)
			if err := output.Report(outcome); err != nil {
				logger.Warn("Failed to write step output", "error", err)
			}

			if err := outcome.Err(); err != nil {
				if sentryCfg.Enabled() {
					sentry.CaptureException(err)
				}
				return goerr.Wrap(err, "trigger failed", goerr.V("tenant", input.Tenant), goerr.V("notebook", input.NotebookName))
			}

			return nil
		},
	}
}
