package contract

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KobeFor3ver/goatgames-daily-report/schema"
)

func TestGetPlainLabel(t *testing.T) {
	assert.Equal(t, "Met", GetPlainLabel(schema.MetLevel))
	assert.Equal(t, "Near", GetPlainLabel(schema.NearLevel))
	assert.Equal(t, "Behind", GetPlainLabel(schema.BehindLevel))
	assert.Equal(t, "AtRisk", GetPlainLabel(schema.AtRiskLevel))
	assert.Equal(t, "Unknown", GetPlainLabel(schema.UnknownLevel))
}

func TestGetColorLabelKeepsText(t *testing.T) {
	// The colored label always contains the plain text, with or without
	// ANSI escapes depending on the environment.
	for _, level := range []schema.CompletionLevel{
		schema.MetLevel, schema.NearLevel, schema.BehindLevel, schema.AtRiskLevel, schema.UnknownLevel,
	} {
		assert.Contains(t, GetColorLabel(level), string(level))
	}
}

func TestSelectOutputFileStdout(t *testing.T) {
	f, err := SelectOutputFile("")
	require.NoError(t, err)
	assert.Equal(t, os.Stdout, f)
}

func TestSelectOutputFileCreates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")
	f, err := SelectOutputFile(path)
	require.NoError(t, err)
	defer f.Close()
	assert.NotEqual(t, os.Stdout, f)
	_, err = os.Stat(path)
	assert.NoError(t, err)
}

func TestParseBoolString(t *testing.T) {
	for _, s := range []string{"yes", "true", "1", "YES", "True"} {
		v, err := ParseBoolString(s)
		require.NoError(t, err)
		assert.True(t, v)
	}
	for _, s := range []string{"no", "false", "0", "NO"} {
		v, err := ParseBoolString(s)
		require.NoError(t, err)
		assert.False(t, v)
	}
	_, err := ParseBoolString("maybe")
	assert.Error(t, err)
}
