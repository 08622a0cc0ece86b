package usecase

import (
	"context"

	"github.com/m-mizutani/antithesis-trigger/pkg/domain/interfaces"
	"github.com/m-mizutani/antithesis-trigger/pkg/domain/model"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
)

type triggerUseCase struct {
	launcher interfaces.Launcher
	reporter interfaces.StatusReporter
}

// NewTrigger creates a new instance of TriggerUseCase. reporter may be nil when no
// GitHub token is available, in which case status updates are skipped.
func NewTrigger(launcher interfaces.Launcher, reporter interfaces.StatusReporter) interfaces.TriggerUseCase {
	return &triggerUseCase{
		launcher: launcher,
		reporter: reporter,
	}
}

// Run launches the notebook and, when a callback url and a token are present, reports a
// pending commit status. A failed status update never changes the outcome.
func (uc *triggerUseCase) Run(ctx context.Context, input *model.TriggerInput) *model.Outcome {
	logger := ctxlog.From(ctx)

	url := input.LaunchURL()
	logger.Info("Request URL", "url", url)

	event := input.Event
	if event == nil {
		event = &model.EventContext{}
	}

	callbackURL, hasCallback := model.BuildCallbackURL(event.StatusesURL(), event.SHA)
	logger.Info("Callback URL", "url", callbackURL, "enabled", hasCallback)

	prov := model.ResolveProvenance(event)
	logger.Info("Resolved provenance", "provenance", prov.Fields())

	params := input.FileParameters.Merge(model.ParseParameters(ctx, input.AdditionalParameters))
	logger.Info("Additional parameters", "params", params)

	body := model.AssembleRequestBody(ctx, input, prov, callbackURL, params)
	logger.Debug("Request body", "body", body)

	resp, err := uc.launcher.Launch(ctx, url, body, model.BasicAuth{
		Username: input.Username,
		Password: input.Password,
	})
	if err != nil {
		logger.Error("Failed to submit request", "error", err, "url", url)
		return model.NewTransportFailureOutcome(err)
	}

	if !resp.Accepted() {
		outcome := model.NewRejectedOutcome(resp.StatusCode)
		logger.Error(outcome.Message, "status_code", resp.StatusCode, "url", url)
		return outcome
	}

	logger.Info("Launch request accepted", "status_code", resp.StatusCode)

	if hasCallback && input.GitHubToken != "" {
		if err := uc.reportPending(ctx, input, event, callbackURL); err != nil {
			logger.Error("Failed to create commit status", "error", err)
		}
	} else {
		logger.Debug("Skip commit status update",
			"has_callback", hasCallback,
			"has_token", input.GitHubToken != "",
		)
	}

	return model.NewSuccessOutcome()
}

func (uc *triggerUseCase) reportPending(ctx context.Context, input *model.TriggerInput, event *model.EventContext, callbackURL string) error {
	if uc.reporter == nil {
		return goerr.New("status reporter is not configured")
	}

	status := &model.CommitStatus{
		Owner:       event.StatusOwner(),
		Repo:        event.StatusRepo(),
		SHA:         event.SHA,
		State:       model.CommitStatePending,
		Description: model.PendingDescription,
		Context:     input.StatusContext(),
	}

	if err := uc.reporter.CreateCommitStatus(ctx, status); err != nil {
		return goerr.Wrap(err, "failed to report pending status",
			goerr.V("owner", status.Owner),
			goerr.V("repo", status.Repo),
			goerr.V("sha", status.SHA),
			goerr.V("callback_url", callbackURL),
		)
	}

	ctxlog.From(ctx).Info("Reported pending status",
		"owner", status.Owner,
		"repo", status.Repo,
		"sha", status.SHA,
		"context", status.Context,
	)
	return nil
}
