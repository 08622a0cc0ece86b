package paramfile

import (
	"fmt"
	"os"

	"github.com/m-mizutani/antithesis-trigger/pkg/domain/model"
	"github.com/m-mizutani/goerr/v2"
	"github.com/pelletier/go-toml/v2"
)

// Load reads a TOML file of top level `key = value` entries. Quoted keys may contain dots,
// e.g. `"antithesis.duration" = 30`. Scalar values are converted to strings; tables and
// arrays are rejected.
func Load(path string) (model.Parameters, error) {
	if path == "" {
		return model.Parameters{}, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read parameters file", goerr.V("path", path))
	}

	return Parse(raw)
}

// Parse decodes TOML parameters
func Parse(raw []byte) (model.Parameters, error) {
	var values map[string]any
	if err := toml.Unmarshal(raw, &values); err != nil {
		return nil, goerr.Wrap(err, "failed to parse parameters file")
	}

	params := make(model.Parameters, len(values))
	for k, v := range values {
		switch v.(type) {
		case map[string]any, []any:
			return nil, goerr.New("parameter value must be a scalar", goerr.V("key", k))
		}
		params[k] = fmt.Sprint(v)
	}

	return params, nil
}
