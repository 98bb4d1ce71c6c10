package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xtding233/upgradesim/internal/report"
	"github.com/xtding233/upgradesim/internal/simulate"
)

const zeroReport = report.Header + "\n" +
	"0: 0\n1: 0\n2: 0\n3: 0\n4: 0\n5: 0\n6: 0\n7: 0\n8: 0\n9: 0\n10: 0\n"

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	t.Setenv("UPGRADESIM_LOG_LEVEL", "disabled")
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestZeroTrialsFromStdin(t *testing.T) {
	out, err := execute(t, "common 0\n")
	require.NoError(t, err)
	assert.Equal(t, zeroReport, out)
}

func TestUnknownRarityPrintsZeroReport(t *testing.T) {
	out, err := execute(t, "unknown_tier\n100")
	require.NoError(t, err)
	assert.Equal(t, zeroReport, out)
}

func TestPositionalArgs(t *testing.T) {
	out, err := execute(t, "", "epic", "1000", "--seed", "5")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 12)
	assert.Equal(t, report.Header, lines[0])
	assert.True(t, strings.HasPrefix(lines[11], "10: "))

	again, err := execute(t, "", "epic", "1000", "--seed", "5")
	require.NoError(t, err)
	assert.Equal(t, out, again)
}

func TestStartLevelTerminal(t *testing.T) {
	out, err := execute(t, "", "artefact", "50", "--start-level", "10")
	require.NoError(t, err)
	assert.Equal(t, zeroReport, out)
}

func TestJSONFormat(t *testing.T) {
	out, err := execute(t, "rare 200", "--format", "json", "--seed", "9")
	require.NoError(t, err)

	var res simulate.Result
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, "rare", res.Rarity)
	assert.Equal(t, uint64(9), res.Seed)
	assert.Equal(t, res.Attempts, res.Histogram.Total())
}

func TestBadInput(t *testing.T) {
	_, err := execute(t, "common lots")
	assert.ErrorContains(t, err, "invalid trials")

	_, err = execute(t, "common")
	assert.ErrorContains(t, err, "read rarity and trials")

	_, err = execute(t, "", "common")
	assert.Error(t, err)

	_, err = execute(t, "common 1", "--format", "xml")
	assert.ErrorIs(t, err, report.ErrUnknownFormat)
}

func TestTableCommand(t *testing.T) {
	out, err := execute(t, "", "table")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 6)
	assert.True(t, strings.HasPrefix(lines[0], "common:"))
}

func TestBatchCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "runs.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
defaults:
  trials: 100
  seed: 1
runs:
  - name: first
    rarity: common
  - name: second
    rarity: legendary
    trials: 0
`), 0o644))

	_, err := execute(t, "", "batch", path)
	assert.ErrorContains(t, err, "runs[1].trials must be >= 1")

	require.NoError(t, os.WriteFile(path, []byte(`
defaults:
  trials: 100
  seed: 1
runs:
  - name: first
    rarity: common
  - name: second
    rarity: legendary
`), 0o644))
	out, err := execute(t, "", "batch", path)
	require.NoError(t, err)
	assert.Contains(t, out, "# first (common, 100 trials, seed 1)")
	assert.Contains(t, out, "# second (legendary, 100 trials, seed 1)")
	assert.Equal(t, 2, strings.Count(out, report.Header))
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "", "version")
	require.NoError(t, err)
	assert.Equal(t, "upgradesim (devel)\n", out)
}

func TestTrialCapDoesNotApplyToCLI(t *testing.T) {
	t.Setenv("UPGRADESIM_MAX_TRIALS", "100")

	out, err := execute(t, "legendary 5000\n", "--format", "json", "--seed", "3")
	require.NoError(t, err)
	var res simulate.Result
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, 5000, res.Trials)
	assert.Equal(t, res.Attempts, res.Histogram.Total())
	assert.Greater(t, res.Attempts, 100)

	out, err = execute(t, "unknown_tier 5000\n")
	require.NoError(t, err)
	assert.Equal(t, zeroReport, out)
}

func TestTrialCountAboveServerDefault(t *testing.T) {
	out, err := execute(t, "common 20000000\n", "--seed", "1")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, report.Header+"\n"))
	assert.Contains(t, out, "\n10: 1\n")

	out, err = execute(t, "unknown_tier 20000000\n")
	require.NoError(t, err)
	assert.Equal(t, zeroReport, out)
}
