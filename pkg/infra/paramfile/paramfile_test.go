package paramfile_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/m-mizutani/antithesis-trigger/pkg/domain/model"
	"github.com/m-mizutani/antithesis-trigger/pkg/infra/paramfile"
	"github.com/m-mizutani/gt"
)

func TestParse(t *testing.T) {
	params, err := paramfile.Parse([]byte(`
"antithesis.duration" = 30
"custom.flag" = true
name = "nightly run"
ratio = 0.5
`))
	gt.NoError(t, err)
	gt.Value(t, params).Equal(model.Parameters{
		"antithesis.duration": "30",
		"custom.flag":         "true",
		"name":                "nightly run",
		"ratio":               "0.5",
	})
}

func TestParse_RejectsNested(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{name: "table", raw: "[section]\nkey = \"v\"\n"},
		{name: "array", raw: "list = [1, 2]\n"},
		{name: "broken", raw: "key = \n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := paramfile.Parse([]byte(tt.raw))
			gt.Error(t, err)
		})
	}
}

func TestLoad(t *testing.T) {
	t.Run("empty path", func(t *testing.T) {
		params, err := paramfile.Load("")
		gt.NoError(t, err)
		gt.Number(t, len(params)).Equal(0)
	})

	t.Run("file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "params.toml")
		gt.NoError(t, os.WriteFile(path, []byte(`key = "value"`), 0600))

		params, err := paramfile.Load(path)
		gt.NoError(t, err)
		gt.Value(t, params).Equal(model.Parameters{"key": "value"})
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := paramfile.Load(filepath.Join(t.TempDir(), "missing.toml"))
		gt.Error(t, err)
	})
}
