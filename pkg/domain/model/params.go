package model

import (
	"context"
	"regexp"
	"strings"

	"github.com/m-mizutani/ctxlog"
)

// Parameters is a set of user supplied key/value pairs sent along with the launch request
type Parameters map[string]string

var lineSeparator = regexp.MustCompile(`\r|\n`)

// ParseParameters parses newline separated `key=value` lines.
// Blank lines are skipped. Lines without `=` are skipped with a warning. The first `=`
// is the only delimiter, so a value may contain `=` but a key never does.
func ParseParameters(ctx context.Context, text string) Parameters {
	logger := ctxlog.From(ctx)
	params := Parameters{}

	if text == "" {
		return params
	}

	for _, line := range lineSeparator.Split(text, -1) {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}

		name, value, found := strings.Cut(trimmed, "=")
		if !found {
			logger.Warn("Parameter line could not be parsed and is skipped",
				"line", line,
			)
			continue
		}

		params[strings.TrimSpace(name)] = strings.TrimSpace(value)
	}

	return params
}

// Merge returns a new Parameters with values of other overwriting p
func (p Parameters) Merge(other Parameters) Parameters {
	merged := make(Parameters, len(p)+len(other))
	for k, v := range p {
		merged[k] = v
	}
	for k, v := range other {
		merged[k] = v
	}
	return merged
}
