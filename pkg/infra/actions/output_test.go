package actions_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/m-mizutani/antithesis-trigger/pkg/domain/model"
	"github.com/m-mizutani/antithesis-trigger/pkg/infra/actions"
	"github.com/m-mizutani/gt"
)

func TestOutput_Report_Success(t *testing.T) {
	path := filepath.Join(t.TempDir(), "output")
	var console bytes.Buffer

	out := actions.NewOutput(path, &console)
	gt.NoError(t, out.Report(model.NewSuccessOutcome()))

	raw, err := os.ReadFile(path)
	gt.NoError(t, err)
	gt.Value(t, string(raw)).Equal("result=Success\n")
	gt.String(t, console.String()).Contains("Success")
}

func TestOutput_Report_Failure(t *testing.T) {
	path := filepath.Join(t.TempDir(), "output")
	var console bytes.Buffer

	out := actions.NewOutput(path, &console)
	gt.NoError(t, out.Report(model.NewRejectedOutcome(404)))

	gt.String(t, console.String()).Contains("::error::Failed to submit request, received a non-2XX response code : 404")
	_, err := os.Stat(path)
	gt.True(t, os.IsNotExist(err))
}

func TestOutput_Report_FailureEscapesNewlines(t *testing.T) {
	var console bytes.Buffer
	out := actions.NewOutput("", &console)
	gt.NoError(t, out.Report(&model.Outcome{Kind: model.OutcomeTransportFailure, Message: "line1\nline2"}))
	gt.String(t, console.String()).Contains("line1%0Aline2")
}

func TestOutput_SetOutput_Multiline(t *testing.T) {
	path := filepath.Join(t.TempDir(), "output")
	out := actions.NewOutput(path, &bytes.Buffer{})

	gt.NoError(t, out.SetOutput("a", "1"))
	gt.NoError(t, out.SetOutput("b", "x\ny"))

	raw, err := os.ReadFile(path)
	gt.NoError(t, err)
	gt.String(t, string(raw)).HasPrefix("a=1\nb<<ghadelimiter_")
	gt.String(t, string(raw)).Contains("\nx\ny\n")
}

func TestOutput_SetOutput_NoPath(t *testing.T) {
	out := actions.NewOutput("", &bytes.Buffer{})
	gt.NoError(t, out.SetOutput("a", "1"))
}
