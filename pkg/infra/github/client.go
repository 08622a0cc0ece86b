package github

import (
	"context"
	"net/http"
	"strings"

	"github.com/google/go-github/v75/github"
	"github.com/m-mizutani/antithesis-trigger/pkg/domain/interfaces"
	"github.com/m-mizutani/antithesis-trigger/pkg/domain/model"
	"github.com/m-mizutani/goerr/v2"
)

// DefaultAPIURL is the API endpoint of github.com
const DefaultAPIURL = "https://api.github.com"

type client struct {
	githubClient *github.Client
}

// NewClient creates a new GitHub client authenticated with token. apiURL other than
// DefaultAPIURL selects a GitHub Enterprise Server endpoint.
func NewClient(token, apiURL string) (interfaces.StatusReporter, error) {
	if token == "" {
		return nil, goerr.New("GitHub token is required")
	}

	githubClient := github.NewClient(&http.Client{}).WithAuthToken(token)

	apiURL = strings.TrimRight(apiURL, "/")
	if apiURL != "" && apiURL != DefaultAPIURL {
		var err error
		githubClient, err = githubClient.WithEnterpriseURLs(apiURL, apiURL)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to configure GitHub Enterprise URLs", goerr.V("api_url", apiURL))
		}
	}

	return &client{
		githubClient: githubClient,
	}, nil
}

// CreateCommitStatus creates a commit status for the sha
func (c *client) CreateCommitStatus(ctx context.Context, status *model.CommitStatus) error {
	repoStatus := &github.RepoStatus{
		State:       github.Ptr(status.State),
		Description: github.Ptr(status.Description),
		Context:     github.Ptr(status.Context),
	}
	if status.TargetURL != "" {
		repoStatus.TargetURL = github.Ptr(status.TargetURL)
	}

	if _, _, err := c.githubClient.Repositories.CreateStatus(ctx, status.Owner, status.Repo, status.SHA, repoStatus); err != nil {
		return goerr.Wrap(err, "failed to create commit status",
			goerr.V("owner", status.Owner),
			goerr.V("repo", status.Repo),
			goerr.V("sha", status.SHA),
		)
	}

	return nil
}
