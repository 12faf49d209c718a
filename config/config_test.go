package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/philipp01105/conlog/core"
	"github.com/philipp01105/conlog/formatter"
	"github.com/philipp01105/conlog/handler/consolehandler"
)

const sample = `
verbosity = "very_verbose"
color = "never"
level = "notice"

[styles.error]
foreground = "bright-red"
options = ["bold", "underline"]

[styles.highlight]
foreground = "#ff8800"
`

func TestParse(t *testing.T) {
	cfg, err := Parse([]byte(sample))
	require.NoError(t, err)

	v, err := cfg.VerbosityLevel()
	require.NoError(t, err)
	assert.Equal(t, core.VerbosityVeryVerbose, v)

	l, err := cfg.StreamLevel()
	require.NoError(t, err)
	assert.Equal(t, core.NoticeLevel, l)
	assert.Equal(t, consolehandler.ColorNever, cfg.ColorMode())

	table, err := cfg.StyleTable()
	require.NoError(t, err)
	spec, ok := table.Get("error")
	require.True(t, ok)
	assert.Equal(t, "bright-red", spec.Foreground)
	assert.Equal(t, []string{"bold", "underline"}, spec.Options)
	assert.True(t, table.Has("highlight"))
	assert.True(t, table.Has("emergency"), "defaults stay in place")
}

func TestParse_Defaults(t *testing.T) {
	cfg, err := Parse(nil)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)

	v, err := cfg.VerbosityLevel()
	require.NoError(t, err)
	assert.Equal(t, core.VerbosityNormal, v)
	assert.Equal(t, consolehandler.ColorAuto, cfg.ColorMode())
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"syntax", "verbosity = "},
		{"verbosity", `verbosity = "loud"`},
		{"color", `color = "sometimes"`},
		{"level", `level = "fatal"`},
		{"style color", "[styles.info]\nforeground = \"mauve-ish\""},
		{"style option", "[styles.info]\noptions = [\"sparkle\"]"},
		{"style name", "[styles.\"a<b\"]\nforeground = \"red\""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc))
			assert.Error(t, err)
		})
	}
}

func TestLoadAndSave(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "config.toml")

	cfg := DefaultConfig()
	cfg.Verbosity = "debug"
	cfg.Styles = map[string]formatter.StyleSpec{
		"info": formatter.NewStyle("cyan", "", "italic"),
	}
	require.NoError(t, Save(cfg, path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", loaded.Verbosity)
	assert.Equal(t, "cyan", loaded.Styles["info"].Foreground)
}

func TestLoad_ErrorMentionsPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.toml")
	require.NoError(t, os.WriteFile(path, []byte(`color = "sometimes"`), 0644))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), path)
}

func TestLoadDefault(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	assert.Equal(t, filepath.Join(dir, "conlog", "config.toml"), DefaultPath())

	cfg, err := LoadDefault()
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg, "missing file falls back to defaults")

	require.NoError(t, os.MkdirAll(filepath.Join(dir, "conlog"), 0755))
	require.NoError(t, os.WriteFile(DefaultPath(), []byte(`verbosity = "quiet"`), 0644))
	cfg, err = LoadDefault()
	require.NoError(t, err)
	assert.Equal(t, "quiet", cfg.Verbosity)
}

func TestNewOutput(t *testing.T) {
	cfg, err := Parse([]byte(sample))
	require.NoError(t, err)

	var buf bytes.Buffer
	out, err := cfg.NewOutput(&buf)
	require.NoError(t, err)
	assert.Equal(t, core.VerbosityVeryVerbose, out.Verbosity())
	assert.False(t, out.IsDecorated())

	require.NoError(t, out.WriteLine("<highlight>hot</highlight>"))
	assert.Equal(t, "hot\n", buf.String())
}
