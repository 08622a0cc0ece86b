package github

import (
	"context"
	"encoding/json"
	"os"

	"github.com/google/go-github/v75/github"
	"github.com/m-mizutani/antithesis-trigger/pkg/domain/model"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
)

// RunnerEnv holds the GitHub Actions runner variables describing the workflow run
type RunnerEnv struct {
	EventName  string
	EventPath  string
	Ref        string
	SHA        string
	Repository string
	Actor      string
}

// eventPayload picks the parts shared by every event type that are used by the action.
// Decoding into this instead of github.ParseWebHook keeps unknown event types such as
// schedule working.
type eventPayload struct {
	Repository  *github.Repository  `json:"repository,omitempty"`
	PullRequest *github.PullRequest `json:"pull_request,omitempty"`
	HeadCommit  *github.HeadCommit  `json:"head_commit,omitempty"`
}

// LoadEvent builds the event context from the runner environment. A missing event file
// yields a context without payload data.
func LoadEvent(ctx context.Context, env RunnerEnv) (*model.EventContext, error) {
	logger := ctxlog.From(ctx)

	var payload []byte
	if env.EventPath != "" {
		raw, err := os.ReadFile(env.EventPath)
		switch {
		case err == nil:
			payload = raw
		case os.IsNotExist(err):
			logger.Warn("Event payload file not found", "path", env.EventPath)
		default:
			return nil, goerr.Wrap(err, "failed to read event payload", goerr.V("path", env.EventPath))
		}
	}

	return ParseEvent(env, payload)
}

// ParseEvent converts the event payload into an EventContext
func ParseEvent(env RunnerEnv, payload []byte) (*model.EventContext, error) {
	event := &model.EventContext{
		EventName:  env.EventName,
		Ref:        env.Ref,
		SHA:        env.SHA,
		Repository: env.Repository,
		Actor:      env.Actor,
	}

	if len(payload) == 0 {
		return event, nil
	}

	var p eventPayload
	if err := json.Unmarshal(payload, &p); err != nil {
		return nil, goerr.Wrap(err, "failed to parse event payload", goerr.V("event_name", env.EventName))
	}

	if repo := p.Repository; repo != nil {
		event.Repo = &model.Repository{
			Name:        repo.GetName(),
			OwnerName:   repo.GetOwner().GetName(),
			OwnerLogin:  repo.GetOwner().GetLogin(),
			HTMLURL:     repo.GetHTMLURL(),
			StatusesURL: repo.GetStatusesURL(),
		}
	}

	// Use Get*() helper methods for nil-safe field access
	if pr := p.PullRequest; pr != nil {
		event.PullRequest = &model.PullRequest{
			Number:      pr.GetNumber(),
			Title:       pr.GetTitle(),
			HTMLURL:     pr.GetHTMLURL(),
			UserLogin:   pr.GetUser().GetLogin(),
			UpdatedAt:   pr.GetUpdatedAt().Time,
			HeadSHA:     pr.GetHead().GetSHA(),
			HeadLabel:   pr.GetHead().GetLabel(),
			HeadHTMLURL: pr.GetHead().GetRepo().GetHTMLURL(),
		}
	}

	if commit := p.HeadCommit; commit != nil {
		event.HeadCommit = &model.HeadCommit{
			ID:        commit.GetID(),
			Message:   commit.GetMessage(),
			Timestamp: commit.GetTimestamp().Time,
		}
	}

	return event, nil
}
