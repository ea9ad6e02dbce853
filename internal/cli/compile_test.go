package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd()
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestCompileScenario(t *testing.T) {
	out, err := execute(t, "compile", "--local",
		"MMP=C44;MA=4;RFG=24,12;FL=8;RDG=2;SNP=10;NP=C4;MIN=7")
	require.NoError(t, err)

	var rec map[string]any
	require.NoError(t, yaml.Unmarshal([]byte(out), &rec))

	assert.Equal(t, "constant", rec["match_bonus_type"])
	assert.Equal(t, 4, rec["match_bonus"])
	assert.Equal(t, 44, rec["mismatch_penalty"])
	assert.Equal(t, 10, rec["snp_penalty"])
	assert.Equal(t, 24, rec["ref_gap_open"])
	assert.Equal(t, 12, rec["ref_gap_extend"])
	assert.Equal(t, 2, rec["read_gap_open"])
	assert.Equal(t, 3, rec["read_gap_extend"])
}

func TestCompileEmptyPolicyPrintsDefaults(t *testing.T) {
	fromCompile, err := execute(t, "compile")
	require.NoError(t, err)

	fromDefaults, err := execute(t, "defaults")
	require.NoError(t, err)

	assert.Equal(t, fromDefaults, fromCompile)
}

func TestCompileJSONFormat(t *testing.T) {
	out, err := execute(t, "compile", "--format", "json", "MA=4")
	require.NoError(t, err)

	var rec map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &rec))
	assert.Equal(t, float64(4), rec["match_bonus"])

	// Global-mode score floor is -Inf, encoded as a string.
	floor, ok := rec["score_floor"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "-inf", floor["const"])
}

func TestCompileRejectsMalformedPolicy(t *testing.T) {
	_, err := execute(t, "compile", "MA")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "setting 1")
}

func TestCompileEnforcesSeedMismatchRange(t *testing.T) {
	_, err := execute(t, "compile", "SEED=3")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "seed mismatches")
}

func TestCompileRejectsUnknownFormat(t *testing.T) {
	_, err := execute(t, "compile", "--format", "xml", "MA=4")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown output format")
}

func TestCompileWithProfileOverlay(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "profile.yaml")
	require.NoError(t, os.WriteFile(path, []byte("snp_penalty: 42\n"), 0o644))

	out, err := execute(t, "compile", "--profile", path)
	require.NoError(t, err)

	var rec map[string]any
	require.NoError(t, yaml.Unmarshal([]byte(out), &rec))
	assert.Equal(t, 42, rec["snp_penalty"])
}

func TestDefaultsModeFlags(t *testing.T) {
	out, err := execute(t, "defaults", "--noisy-hpolymer")
	require.NoError(t, err)

	var rec map[string]any
	require.NoError(t, yaml.Unmarshal([]byte(out), &rec))
	assert.Equal(t, 3, rec["read_gap_open"])
	assert.Equal(t, 1, rec["read_gap_extend"])

	out, err = execute(t, "defaults", "--local")
	require.NoError(t, err)
	require.NoError(t, yaml.Unmarshal([]byte(out), &rec))
	assert.Equal(t, 2, rec["match_bonus"])
}
