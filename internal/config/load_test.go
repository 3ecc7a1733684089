package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	opts, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, DefaultOptions().Normalize(), opts)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "header.yaml")
	data := []byte("rotate_step: 30\nbackground_color: \"#ff0000\"\nbase_height: 100\n")
	require.NoError(t, os.WriteFile(path, data, 0644))

	opts, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 30.0, opts.RotateStep)
	assert.Equal(t, "#ff0000", opts.BackgroundColor)
	assert.Equal(t, 100.0, opts.BaseHeight)
	assert.Equal(t, float64(DefaultTopOffset), opts.TopOffset)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "header.yaml")
	require.NoError(t, os.WriteFile(path, []byte("rotate_step: 30\n"), 0644))
	t.Setenv("CIRCLEREFRESH_ROTATE_STEP", "45")
	t.Setenv("CIRCLEREFRESH_TEXT", "Loading")

	opts, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 45.0, opts.RotateStep)
	assert.Equal(t, "Loading", opts.Text)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestWriteThenLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "header.yaml")
	opts := DefaultOptions()
	opts.RotateStep = 20
	opts.Text = "Wait"

	require.NoError(t, Write(path, opts))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, opts.Normalize(), loaded)
}
