package cli_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/m-mizutani/antithesis-trigger/pkg/cli"
	"github.com/m-mizutani/antithesis-trigger/pkg/domain/model"
	"github.com/m-mizutani/antithesis-trigger/pkg/infra/actions"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
)

type fakeLauncher struct {
	status int
	urls   []string
	bodies []model.RequestBody
}

func (f *fakeLauncher) Launch(ctx context.Context, url string, body model.RequestBody, auth model.BasicAuth) (*model.LaunchResponse, error) {
	f.urls = append(f.urls, url)
	f.bodies = append(f.bodies, body)
	return &model.LaunchResponse{StatusCode: f.status}, nil
}

func triggerArgs(outputPath string) []string {
	return []string{
		"antithesis-trigger", "--log-format", "json", "trigger",
		"--tenant", "test_tenant",
		"--notebook-name", "test_notebook",
		"--username", "u",
		"--password", "p",
		"--github-token", "",
		"--github-event-path", "",
		"--github-repository", "some-owner/some-repo",
		"--github-ref", "refs/heads/main",
		"--github-output", outputPath,
		"--additional-parameters", "antithesis.duration=30",
	}
}

func TestRun_MissingRequiredInputs(t *testing.T) {
	for _, key := range []string{"INPUT_TENANT", "INPUT_NOTEBOOK_NAME", "INPUT_USERNAME", "INPUT_PASSWORD"} {
		if _, ok := os.LookupEnv(key); ok {
			t.Skipf("%s is set in the environment", key)
		}
	}

	err := cli.Run(context.Background(), []string{"antithesis-trigger", "--log-format", "text", "trigger"})
	gt.Error(t, err)
}

func TestRun_InvalidLogLevel(t *testing.T) {
	err := cli.Run(context.Background(), []string{"antithesis-trigger", "--log-level", "verbose", "trigger"})
	gt.Error(t, err)
}

func TestRun_InvalidParametersFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "params.toml")
	gt.NoError(t, os.WriteFile(path, []byte("[nested]\nkey = 1\n"), 0600))

	err := cli.Run(context.Background(), []string{
		"antithesis-trigger", "--log-format", "text", "trigger",
		"--tenant", "t",
		"--notebook-name", "n",
		"--username", "u",
		"--password", "p",
		"--github-event-path", "",
		"--parameters-file", path,
	})
	gt.Error(t, err)
}

func TestRun_TriggerAccepted(t *testing.T) {
	outputPath := filepath.Join(t.TempDir(), "github_output")
	launcher := &fakeLauncher{status: 202}
	var console bytes.Buffer

	gt.NoError(t, cli.RunWith(context.Background(), triggerArgs(outputPath), launcher, &console))

	gt.A(t, launcher.urls).Length(1)
	gt.Value(t, launcher.urls[0]).Equal("https://test_tenant.antithesis.com/api/v1/launch_experiment/test_notebook")
	gt.Value(t, launcher.bodies[0][model.KeyRepoOwner]).Equal(any("some-owner"))
	gt.Value(t, launcher.bodies[0][model.KeyBranch]).Equal(any("main"))
	gt.Value(t, launcher.bodies[0]["antithesis.duration"]).Equal(any("30"))

	raw, err := os.ReadFile(outputPath)
	gt.NoError(t, err)
	gt.String(t, string(raw)).Equal(actions.ResultOutputName + "=Success\n")
	gt.String(t, console.String()).NotContains("::error::")
}

func TestRun_TriggerRejected(t *testing.T) {
	outputPath := filepath.Join(t.TempDir(), "github_output")
	launcher := &fakeLauncher{status: 404}
	var console bytes.Buffer

	err := cli.RunWith(context.Background(), triggerArgs(outputPath), launcher, &console)
	gt.Error(t, err)
	gt.True(t, goerr.HasTag(err, model.ErrTagRejected))

	out := console.String()
	gt.String(t, out).Contains("::error::Failed to submit request, received a non-2XX response code : 404")
	gt.String(t, out).NotContains("CLI execution failed")

	_, statErr := os.Stat(outputPath)
	gt.True(t, os.IsNotExist(statErr))
}
