package config

import (
	githubctrl "github.com/m-mizutani/antithesis-trigger/pkg/controller/github"
	githubinfra "github.com/m-mizutani/antithesis-trigger/pkg/infra/github"
	"github.com/urfave/cli/v3"
)

// GitHub holds GitHub token and runner configuration
type GitHub struct {
	Token      string `masq:"secret"`
	APIURL     string
	OutputPath string
	Runner     githubctrl.RunnerEnv
}

// Flags returns CLI flags for GitHub configuration
func (c *GitHub) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "github-token",
			Usage:       "Token used to report commit status and passed as callback credential",
			Destination: &c.Token,
			Sources:     cli.EnvVars("INPUT_GITHUB_TOKEN"),
		},
		&cli.StringFlag{
			Name:        "github-api-url",
			Usage:       "GitHub API endpoint",
			Value:       githubinfra.DefaultAPIURL,
			Destination: &c.APIURL,
			Sources:     cli.EnvVars("GITHUB_API_URL"),
		},
		&cli.StringFlag{
			Name:        "github-output",
			Usage:       "Step output file",
			Destination: &c.OutputPath,
			Sources:     cli.EnvVars("GITHUB_OUTPUT"),
		},
		&cli.StringFlag{
			Name:        "github-event-name",
			Usage:       "Name of the triggering event",
			Destination: &c.Runner.EventName,
			Sources:     cli.EnvVars("GITHUB_EVENT_NAME"),
		},
		&cli.StringFlag{
			Name:        "github-event-path",
			Usage:       "Path of the event payload file",
			Destination: &c.Runner.EventPath,
			Sources:     cli.EnvVars("GITHUB_EVENT_PATH"),
		},
		&cli.StringFlag{
			Name:        "github-ref",
			Usage:       "Ref of the triggering event",
			Destination: &c.Runner.Ref,
			Sources:     cli.EnvVars("GITHUB_REF"),
		},
		&cli.StringFlag{
			Name:        "github-sha",
			Usage:       "Commit sha of the triggering event",
			Destination: &c.Runner.SHA,
			Sources:     cli.EnvVars("GITHUB_SHA"),
		},
		&cli.StringFlag{
			Name:        "github-repository",
			Usage:       "Repository slug, owner/repo",
			Destination: &c.Runner.Repository,
			Sources:     cli.EnvVars("GITHUB_REPOSITORY"),
		},
		&cli.StringFlag{
			Name:        "github-actor",
			Usage:       "User that triggered the workflow",
			Destination: &c.Runner.Actor,
			Sources:     cli.EnvVars("GITHUB_ACTOR"),
		},
	}
}
