package console

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/km-arc/go-curp/curp"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestAnalyze_Table(t *testing.T) {
	out, err := run(t, "analyze", "gomc800101hdflrs09")
	require.NoError(t, err)

	assert.Contains(t, out, "CURP: GOMC800101HDFLRS09")
	assert.Contains(t, out, "TIPO")
	assert.Contains(t, out, "Apellido Paterno")
	assert.Contains(t, out, "- "+curp.SuccessMessage)
}

func TestAnalyze_InvalidExitsWithError(t *testing.T) {
	out, err := run(t, "analyze", "GOMC800101HDFLRS09", "GOMC800230HDFLRS09")

	require.Error(t, err)
	assert.Equal(t, "1 of 2 CURPs invalid", err.Error())
	assert.Equal(t, 2, strings.Count(out, "CURP: "))
}

func TestAnalyze_JSON(t *testing.T) {
	out, err := run(t, "analyze", "-o", "json", "GOMC800101HDFLRS09")
	require.NoError(t, err)

	var reports []map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &reports))
	require.Len(t, reports, 1)
	assert.Equal(t, "GOMC800101HDFLRS09", reports[0]["curp"])
	assert.Equal(t, true, reports[0]["valid"])
}

func TestAnalyze_YAML(t *testing.T) {
	out, err := run(t, "analyze", "--output", "yaml", "GOMC800101XDFLRS09")
	require.Error(t, err)

	var reports []struct {
		CURP       string `yaml:"curp"`
		Valid      bool   `yaml:"valid"`
		Violations []struct {
			Field string `yaml:"field"`
			Kind  string `yaml:"kind"`
		} `yaml:"violations"`
	}
	require.NoError(t, yaml.Unmarshal([]byte(out), &reports), out)
	require.Len(t, reports, 1)
	assert.False(t, reports[0].Valid)
	require.Len(t, reports[0].Violations, 1)
	assert.Equal(t, "Sexo", reports[0].Violations[0].Field)
	assert.Equal(t, "grammar", reports[0].Violations[0].Kind)
}

func TestAnalyze_UnknownFormat(t *testing.T) {
	_, err := run(t, "analyze", "-o", "xml", "GOMC800101HDFLRS09")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown output format")
}

func TestAnalyze_RequiresArgs(t *testing.T) {
	_, err := run(t, "analyze")
	assert.Error(t, err)
}

func TestStates(t *testing.T) {
	out, err := run(t, "states")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Equal(t, curp.StateCodes(), lines)
}

func TestServe_RejectsArgs(t *testing.T) {
	_, err := run(t, "serve", "extra")
	assert.Error(t, err)
}
