package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	c, err := Load("")
	require.NoError(t, err)
	assert.False(t, c.ZeroAsMissing)
	assert.Equal(t, 5, c.HeadRows)
	assert.Equal(t, ".", c.ChartDir)
	assert.Equal(t, "png", c.ChartFormat)
	assert.Equal(t, 8.0, c.ChartWidthIn)
	assert.Equal(t, 5.0, c.ChartHeightIn)
	assert.Equal(t, "", c.Delimiter)
	assert.Equal(t, "warn", c.LogLevel)
}

func TestSaveLoadRoundTripAndEnv(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	path := filepath.Join(t.TempDir(), "cfg", "config.yaml")
	c, err := Load("")
	require.NoError(t, err)
	require.NoError(t, c.Set("zero_as_missing", "true"))
	require.NoError(t, c.Set("chart_format", ".SVG"))
	require.NoError(t, c.Set("head_rows", "12"))
	require.NoError(t, Save(c, path))

	back, err := Load(path)
	require.NoError(t, err)
	assert.True(t, back.ZeroAsMissing)
	assert.Equal(t, "svg", back.ChartFormat)
	assert.Equal(t, 12, back.HeadRows)

	t.Setenv("DATAEXPLORER_HEAD_ROWS", "3")
	env, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 3, env.HeadRows)
}

func TestSetRejectsBadValues(t *testing.T) {
	c := Defaults()
	require.NoError(t, c.Validate())
	assert.Error(t, c.Set("head_rows", "many"))
	assert.Error(t, c.Set("zero_as_missing", "sometimes"))
	assert.Error(t, c.Set("chart_format", "gif"))
	assert.Error(t, c.Set("chart_width_in", "0"))
	assert.Error(t, c.Set("api_key", "x"))
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}
