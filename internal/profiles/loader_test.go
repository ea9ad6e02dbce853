package profiles

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cbrueffer/bowtie2/pkg/policy"
)

func TestParseOverlayKeepsOmittedDefaults(t *testing.T) {
	prof, err := Parse([]byte("mismatch_penalty: 9\nseed_length: 30\n"))
	require.NoError(t, err)

	assert.Equal(t, 9, prof.MismatchPenalty)
	assert.Equal(t, 30, prof.SeedLength)

	// Everything else stays at the builtin values.
	assert.Equal(t, policy.CostConstant, prof.MismatchPenaltyType)
	assert.Equal(t, policy.DefaultSNPPenalty, prof.SNPPenalty)
	assert.Equal(t, policy.IvalSqrt, prof.IvalKind)
	assert.True(t, math.IsInf(prof.FloorConst, -1))
}

func TestParseEmptyOverlayIsBuiltin(t *testing.T) {
	prof, err := Parse([]byte(""))
	require.NoError(t, err)
	assert.Equal(t, policy.Builtin().Record(false, false), prof.Record(false, false))
	assert.Equal(t, policy.Builtin().Record(true, true), prof.Record(true, true))
}

func TestParseRejectsBadYAML(t *testing.T) {
	_, err := Parse([]byte("seed_length: [nope"))
	assert.Error(t, err)
}

func TestParseRejectsInvalidEnum(t *testing.T) {
	_, err := Parse([]byte("ival_kind: log\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid profile")
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "profile.yaml")
	require.NoError(t, os.WriteFile(path, []byte("snp_penalty: 12\n"), 0o644))

	prof, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 12, prof.SNPPenalty)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}
