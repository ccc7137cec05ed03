package cmd

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gravitrone/tagfield/internal/config"
)

func TestSlugifyArgsOneResultPerLine(t *testing.T) {
	var out bytes.Buffer
	err := RunSlugify(strings.NewReader(""), &out, []string{"Hello World", "Data_Science"}, false)
	require.NoError(t, err)
	assert.Equal(t, "hello-world\ndata-science\n", out.String())
}

func TestSlugifyReadsStdinWhenNoArgs(t *testing.T) {
	var out bytes.Buffer
	in := strings.NewReader("Foo Bar\n#Urgent\n")
	err := RunSlugify(in, &out, nil, false)
	require.NoError(t, err)
	assert.Equal(t, "foo-bar\nurgent\n", out.String())
}

func TestSlugifyJoinDedupes(t *testing.T) {
	var out bytes.Buffer
	err := RunSlugify(strings.NewReader(""), &out, []string{"Red,red", "Blue"}, true)
	require.NoError(t, err)
	assert.Equal(t, "red,blue\n", out.String())
}

func TestSlugifyCmdExecutes(t *testing.T) {
	cmd := SlugifyCmd()
	cmd.SetArgs([]string{"Hello_World"})
	assert.NoError(t, cmd.Execute())
}

func TestPresetsAddListRemoveLifecycle(t *testing.T) {
	dir := t.TempDir()
	oldHome := os.Getenv("HOME")
	os.Setenv("HOME", dir)
	defer os.Setenv("HOME", oldHome)

	add := PresetsCmd()
	add.SetArgs([]string{"add", "colors", "Red, Green", "Blue"})
	require.NoError(t, add.Execute())

	loaded, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, []string{"Red", "Green", "Blue"}, loaded.Presets["colors"])

	list := PresetsCmd()
	list.SetArgs([]string{"list"})
	require.NoError(t, list.Execute())

	remove := PresetsCmd()
	remove.SetArgs([]string{"remove", "colors"})
	require.NoError(t, remove.Execute())

	loaded, err = config.Load()
	require.NoError(t, err)
	assert.Empty(t, loaded.Presets)
}

func TestPresetsAddSlugNormalizesPool(t *testing.T) {
	dir := t.TempDir()
	oldHome := os.Getenv("HOME")
	os.Setenv("HOME", dir)
	defer os.Setenv("HOME", oldHome)

	add := PresetsCmd()
	add.SetArgs([]string{"add", "topics", "--slug", "Data Science", "URGENT,urgent"})
	require.NoError(t, add.Execute())

	loaded, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, []string{"data-science", "urgent"}, loaded.Presets["topics"])
}

func TestPresetsRemoveUnknownErrors(t *testing.T) {
	dir := t.TempDir()
	oldHome := os.Getenv("HOME")
	os.Setenv("HOME", dir)
	defer os.Setenv("HOME", oldHome)

	require.NoError(t, (&config.Config{Presets: map[string][]string{"colors": {"red"}}}).Save())

	cmd := PresetsCmd()
	cmd.SetArgs([]string{"remove", "nope"})
	err := cmd.Execute()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "preset not found")
}

func TestPresetsUseSetsDefault(t *testing.T) {
	dir := t.TempDir()
	oldHome := os.Getenv("HOME")
	os.Setenv("HOME", dir)
	defer os.Setenv("HOME", oldHome)

	require.NoError(t, (&config.Config{Presets: map[string][]string{"colors": {"red"}}}).Save())

	use := PresetsCmd()
	use.SetArgs([]string{"use", "colors"})
	require.NoError(t, use.Execute())

	loaded, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, "colors", loaded.DefaultPreset)

	bad := PresetsCmd()
	bad.SetArgs([]string{"use", "nope"})
	assert.Error(t, bad.Execute())
}

func TestPresetsRemoveClearsDefault(t *testing.T) {
	dir := t.TempDir()
	oldHome := os.Getenv("HOME")
	os.Setenv("HOME", dir)
	defer os.Setenv("HOME", oldHome)

	cfg := &config.Config{
		Presets:       map[string][]string{"colors": {"red"}},
		DefaultPreset: "colors",
	}
	require.NoError(t, cfg.Save())

	cmd := PresetsCmd()
	cmd.SetArgs([]string{"remove", "colors"})
	require.NoError(t, cmd.Execute())

	loaded, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, "", loaded.DefaultPreset)
}

func TestPresetsUnknownSubcommandDeterministicError(t *testing.T) {
	cmd := PresetsCmd()
	cmd.SetArgs([]string{"nope"})
	err := cmd.Execute()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unknown command")
}

func TestPresetsHelpWorks(t *testing.T) {
	cmd := PresetsCmd()
	cmd.SetArgs([]string{"--help"})
	assert.NoError(t, cmd.Execute())
}

func TestParseOptionsSplitsAndTrims(t *testing.T) {
	out := parseOptions([]string{"Red, Green", "", " Blue ", ","})
	assert.Equal(t, []string{"Red", "Green", "Blue"}, out)
}
