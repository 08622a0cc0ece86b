package actions

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/m-mizutani/antithesis-trigger/pkg/domain/model"
	"github.com/m-mizutani/goerr/v2"
)

// ResultOutputName is the step output carrying the outcome of the run
const ResultOutputName = "result"

// Output writes the process level outcome signal of a GitHub Actions step
type Output struct {
	outputPath string
	console    io.Writer
}

// NewOutput creates an Output. outputPath is $GITHUB_OUTPUT; when empty, step outputs
// are only echoed to console.
func NewOutput(outputPath string, console io.Writer) *Output {
	return &Output{
		outputPath: outputPath,
		console:    console,
	}
}

// Report emits the outcome: a `result=Success` step output on success, an error
// workflow command otherwise.
func (x *Output) Report(outcome *model.Outcome) error {
	if outcome.Succeeded() {
		color.New(color.FgGreen).Fprintf(x.console, "%s: %s\n", ResultOutputName, outcome.Kind)
		return x.SetOutput(ResultOutputName, string(outcome.Kind))
	}

	color.New(color.FgRed).Fprintf(x.console, "::error::%s\n", escapeData(outcome.Message))
	return nil
}

// SetOutput appends a step output to the $GITHUB_OUTPUT file
func (x *Output) SetOutput(name, value string) error {
	if x.outputPath == "" {
		return nil
	}

	f, err := os.OpenFile(x.outputPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return goerr.Wrap(err, "failed to open step output file", goerr.V("path", x.outputPath))
	}
	defer f.Close()

	line := fmt.Sprintf("%s=%s\n", name, value)
	if strings.ContainsAny(value, "\r\n") {
		delimiter := "ghadelimiter_" + uuid.NewString()
		line = fmt.Sprintf("%s<<%s\n%s\n%s\n", name, delimiter, value, delimiter)
	}

	if _, err := f.WriteString(line); err != nil {
		return goerr.Wrap(err, "failed to write step output", goerr.V("name", name))
	}
	return nil
}

// escapeData escapes workflow command data
func escapeData(s string) string {
	r := strings.NewReplacer("%", "%25", "\r", "%0D", "\n", "%0A")
	return r.Replace(s)
}
