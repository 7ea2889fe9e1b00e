package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "xsddump.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, &Config{LogLevel: "warn", Format: "yaml"}, cfg)

	cfg, err = Load(writeConfig(t, ""))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `log_level: debug
log_pretty: true
max_depth: 64
permissive_occurs: true
anonymous_restriction_base: true
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, &Config{
		LogLevel:         "debug",
		LogPretty:        true,
		Format:           "yaml",
		MaxDepth:         64,
		PermissiveOccurs: true,
		AnonymousBase:    true,
	}, cfg)
	assert.NoError(t, cfg.ReadOptions().Validate())
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{name: "unknown key", content: "colour: blue\n", want: "colour"},
		{name: "bad format", content: "format: json\n", want: "unsupported format"},
		{name: "negative depth", content: "max_depth: -1\n", want: "max_depth"},
		{name: "not yaml", content: "log_level: [\n", want: "decode config"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}

	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
