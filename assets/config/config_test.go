/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "assettool.yaml")
	require.NoError(t, os.WriteFile(p, []byte(body), 0o644))
	return p
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{EnvConfigPath, EnvLogLevel, EnvFontsStagingDir, EnvFontsOutputDir} {
		t.Setenv(k, "")
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "/tmp/cp-fonts", cfg.Fonts.StagingDir)
	assert.Equal(t, "public/fonts", cfg.Fonts.OutputDir)

	var names []string
	for _, f := range cfg.Fonts.Files {
		names = append(names, f.Name)
	}
	assert.Equal(t, []string{
		"DMSans-Regular.ttf",
		"DMSans-Medium.ttf",
		"Baloo2-Regular.ttf",
		"Baloo2-SemiBold.ttf",
		"Baloo2-Bold.ttf",
	}, names)
	require.Len(t, cfg.Fonts.Remote, 5)
	assert.Equal(t, "DM Sans", cfg.Fonts.Remote[1].Family)
	assert.Equal(t, 500, cfg.Fonts.Remote[1].Weight)
	assert.Equal(t, "Baloo 2", cfg.Fonts.Remote[4].Family)
	assert.True(t, cfg.Fonts.Verify)
	assert.False(t, cfg.Fonts.Strict)
	assert.Empty(t, cfg.Fonts.CSSFile)

	assert.Equal(t, 0, cfg.Trim.Padding)
	assert.Equal(t, "_trimmed", cfg.Trim.Suffix)
	assert.Equal(t, 1, cfg.Trim.Workers)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoadNoFile(t *testing.T) {
	clearEnv(t)
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadFile(t *testing.T) {
	clearEnv(t)
	p := writeConfig(t, `fonts:
  output_dir: web/fonts
  files:
    - name: Inter-Regular.ttf
      weight: 400
  css_file: web/fonts.css
  strict: true
trim:
  padding: 10
  workers: 4
log:
  level: debug
  format: json
`)
	cfg, err := Load(p)
	require.NoError(t, err)

	assert.Equal(t, "/tmp/cp-fonts", cfg.Fonts.StagingDir)
	assert.Equal(t, "web/fonts", cfg.Fonts.OutputDir)
	assert.Equal(t, []FontFile{{Name: "Inter-Regular.ttf", Weight: 400}}, cfg.Fonts.Files)
	assert.Equal(t, "web/fonts.css", cfg.Fonts.CSSFile)
	assert.True(t, cfg.Fonts.Strict)
	assert.True(t, cfg.Fonts.Verify)
	assert.Equal(t, 10, cfg.Trim.Padding)
	assert.Equal(t, 4, cfg.Trim.Workers)
	assert.Equal(t, "_trimmed", cfg.Trim.Suffix)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestLoadUsesConfigPathEnv(t *testing.T) {
	clearEnv(t)
	p := writeConfig(t, "trim:\n  padding: 3\n")
	t.Setenv(EnvConfigPath, p)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.Trim.Padding)
}

func TestLoadEnvOverrides(t *testing.T) {
	clearEnv(t)
	p := writeConfig(t, "fonts:\n  staging_dir: /srv/staging\nlog:\n  level: error\n")
	t.Setenv(EnvFontsStagingDir, "/var/fonts")
	t.Setenv(EnvFontsOutputDir, "dist/fonts")
	t.Setenv(EnvLogLevel, "trace")

	cfg, err := Load(p)
	require.NoError(t, err)
	assert.Equal(t, "/var/fonts", cfg.Fonts.StagingDir)
	assert.Equal(t, "dist/fonts", cfg.Fonts.OutputDir)
	assert.Equal(t, "trace", cfg.Log.Level)
}

func TestLoadErrors(t *testing.T) {
	clearEnv(t)

	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "read config file")
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = Load(writeConfig(t, "fonts: [unclosed"))
	assert.ErrorContains(t, err, "parse config file")

	_, err = Load(writeConfig(t, "trim:\n  workers: 0\n"))
	assert.ErrorContains(t, err, "validate config")
}

func TestValidate(t *testing.T) {
	testcases := []struct {
		name   string
		modify func(c *Config)
		errMsg string
	}{
		{"empty staging dir", func(c *Config) { c.Fonts.StagingDir = "" }, "fonts.staging_dir must not be empty"},
		{"empty output dir", func(c *Config) { c.Fonts.OutputDir = "" }, "fonts.output_dir must not be empty"},
		{"empty name", func(c *Config) { c.Fonts.Files[0].Name = "" }, "fonts.files[0]: name must not be empty"},
		{"not ttf", func(c *Config) { c.Fonts.Files[1].Name = "DMSans.otf" }, "fonts.files[1]: DMSans.otf is not a .ttf file"},
		{"path", func(c *Config) { c.Fonts.Files[1].Name = "sub/DMSans.ttf" }, "must be a plain file name"},
		{"duplicate", func(c *Config) { c.Fonts.Files[4].Name = "DMSans-Regular.ttf" }, "fonts.files[4]: duplicate DMSans-Regular.ttf"},
		{"weight", func(c *Config) { c.Fonts.Files[2].Weight = 1200 }, "weight 1200 out of range"},
		{"remote", func(c *Config) { c.Fonts.Remote[0].URL = "" }, "fonts.remote[0]: name and url are required"},
		{"remote weight", func(c *Config) { c.Fonts.Remote[3].Weight = -5 }, "fonts.remote[3]: weight -5 out of range"},
		{"padding", func(c *Config) { c.Trim.Padding = -1 }, "trim.padding must not be negative: -1"},
		{"workers", func(c *Config) { c.Trim.Workers = 0 }, "trim.workers must be at least 1: 0"},
		{"log level", func(c *Config) { c.Log.Level = "loud" }, "log.level"},
		{"log format", func(c *Config) { c.Log.Format = "xml" }, "invalid log.format: xml"},
	}

	for _, tcase := range testcases {
		t.Run(tcase.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tcase.modify(cfg)
			assert.ErrorContains(t, cfg.Validate(), tcase.errMsg)
		})
	}

	upper := DefaultConfig()
	upper.Fonts.Files[0].Name = "DMSans-Regular.TTF"
	assert.NoError(t, upper.Validate())
}
