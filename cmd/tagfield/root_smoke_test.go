package main

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gravitrone/tagfield/internal/config"
)

func TestRunTUINonInteractiveReturnsError(t *testing.T) {
	dir := t.TempDir()
	oldHome := os.Getenv("HOME")
	os.Setenv("HOME", dir)
	defer os.Setenv("HOME", oldHome)

	// Test processes have piped stdio, so the terminal guard trips.
	err := runTUI("tags", "", nil, "", false)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "terminal")
}

func TestRunTUIUnknownPresetErrors(t *testing.T) {
	dir := t.TempDir()
	oldHome := os.Getenv("HOME")
	os.Setenv("HOME", dir)
	defer os.Setenv("HOME", oldHome)

	err := runTUI("tags", "", nil, "nope", false)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unknown preset")
}

func TestResolveOptionsPrecedence(t *testing.T) {
	cfg := &config.Config{
		Options: []string{"base"},
		Presets: map[string][]string{
			"colors": {"red", "blue"},
			"sizes":  {"small"},
		},
		DefaultPreset: "sizes",
	}

	// Explicit flag options win over everything.
	opts, err := resolveOptions(cfg, []string{" red ", "", "blue"}, "colors")
	require.NoError(t, err)
	assert.Equal(t, []string{"red", "blue"}, opts)

	// A named preset beats the default preset.
	opts, err = resolveOptions(cfg, nil, "colors")
	require.NoError(t, err)
	assert.Equal(t, []string{"red", "blue"}, opts)

	// No flags: the default preset applies.
	opts, err = resolveOptions(cfg, nil, "")
	require.NoError(t, err)
	assert.Equal(t, []string{"small"}, opts)

	// Without a default preset the base pool applies.
	cfg.DefaultPreset = ""
	opts, err = resolveOptions(cfg, nil, "")
	require.NoError(t, err)
	assert.Equal(t, []string{"base"}, opts)

	_, err = resolveOptions(cfg, nil, "missing")
	assert.Error(t, err)
}

func TestResolveOptionsWithoutConfig(t *testing.T) {
	opts, err := resolveOptions(nil, nil, "")
	require.NoError(t, err)
	assert.Nil(t, opts)

	_, err = resolveOptions(nil, nil, "colors")
	assert.Error(t, err)
}

func TestMainHelpFlagDoesNotExit(t *testing.T) {
	oldArgs := os.Args
	os.Args = []string{"tagfield", "--help"}
	defer func() { os.Args = oldArgs }()

	// main() should return normally for help (no os.Exit).
	main()
}
