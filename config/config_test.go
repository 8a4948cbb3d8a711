/*
File    : di/config/config_test.go
Project : di compiler front-end
*/

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "dlc.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func newFlags() *pflag.FlagSet {
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("color", "auto", "")
	flags.Bool("warn-errors", false, "")
	flags.String("log-level", "warn", "")
	return flags
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("", newFlags())
	require.NoError(t, err)
	assert.Equal(t, "auto", cfg.Color)
	assert.False(t, cfg.WarnErrors)
	assert.Equal(t, "warn", cfg.LogLevel)
}

func TestLoad_FromFile(t *testing.T) {
	path := writeConfig(t, "color: never\nwarn-errors: true\nlog-level: debug\n")
	cfg, err := Load(path, newFlags())
	require.NoError(t, err)
	assert.Equal(t, "never", cfg.Color)
	assert.True(t, cfg.WarnErrors)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoad_FlagsOverrideFile(t *testing.T) {
	path := writeConfig(t, "color: never\n")
	flags := newFlags()
	require.NoError(t, flags.Parse([]string{"--color", "always"}))
	cfg, err := Load(path, flags)
	require.NoError(t, err)
	assert.Equal(t, "always", cfg.Color)
}

func TestLoad_BadColorMode(t *testing.T) {
	path := writeConfig(t, "color: sometimes\n")
	_, err := Load(path, newFlags())
	assert.Error(t, err)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"), newFlags())
	assert.Error(t, err)
}
