/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

// Package config loads the asset tool configuration from YAML with environment overrides.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/creatorplaybook/assettool/common"
)

// Environment variables read by Load.
const (
	EnvConfigPath      = "ASSETTOOL_CONFIG"
	EnvLogLevel        = "ASSETTOOL_LOG_LEVEL"
	EnvFontsStagingDir = "ASSETTOOL_FONTS_STAGING_DIR"
	EnvFontsOutputDir  = "ASSETTOOL_FONTS_OUTPUT_DIR"
)

// Config holds all configuration of the asset tool.
type Config struct {
	Fonts FontsConfig `yaml:"fonts"`
	Trim  TrimConfig  `yaml:"trim"`
	Log   LogConfig   `yaml:"log"`
}

// FontsConfig holds font conversion and download settings.
type FontsConfig struct {
	StagingDir string       `yaml:"staging_dir"`
	OutputDir  string       `yaml:"output_dir"`
	Files      []FontFile   `yaml:"files"`
	Remote     []RemoteFont `yaml:"remote"`

	// CSSFile, when set, receives an @font-face stylesheet for the converted fonts.
	CSSFile      string `yaml:"css_file"`
	CSSURLPrefix string `yaml:"css_url_prefix"`

	Verify bool `yaml:"verify"` // decode the WOFF2 output and compare it with the source tables
	Strict bool `yaml:"strict"` // fail a font on table checksum mismatches
}

// FontFile is a TTF file name in the staging directory and the CSS weight it is served with.
type FontFile struct {
	Name   string `yaml:"name"`
	Weight int    `yaml:"weight"`
}

// RemoteFont is a pre-built WOFF2 file to download. Family and Weight describe it in the stylesheet.
type RemoteFont struct {
	Name   string `yaml:"name"`
	URL    string `yaml:"url"`
	Family string `yaml:"family"`
	Weight int    `yaml:"weight"`
}

// TrimConfig holds image trimming defaults.
type TrimConfig struct {
	Padding int    `yaml:"padding"`
	Suffix  string `yaml:"suffix"`
	Workers int    `yaml:"workers"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string        `yaml:"level"`
	Format string        `yaml:"format"` // console or json
	File   LogFileConfig `yaml:"file"`
}

// LogFileConfig enables a rotated log file next to the console output.
type LogFileConfig struct {
	Path       string `yaml:"path"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAgeDays int    `yaml:"max_age_days"`
	Compress   bool   `yaml:"compress"`
}

// Load reads configuration from the YAML file at `path` on top of the defaults and applies environment
// overrides. An empty `path` falls back to $ASSETTOOL_CONFIG, and to defaults only when that is unset.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path == "" {
		path = os.Getenv(EnvConfigPath)
	}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config file: %w", err)
		}
		common.Log.Debug("Loaded config from %s", path)
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return cfg, nil
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() *Config {
	return &Config{
		Fonts: FontsConfig{
			StagingDir: "/tmp/cp-fonts",
			OutputDir:  "public/fonts",
			Files: []FontFile{
				{Name: "DMSans-Regular.ttf", Weight: 400},
				{Name: "DMSans-Medium.ttf", Weight: 500},
				{Name: "Baloo2-Regular.ttf", Weight: 400},
				{Name: "Baloo2-SemiBold.ttf", Weight: 600},
				{Name: "Baloo2-Bold.ttf", Weight: 700},
			},
			Remote: []RemoteFont{
				{
					Name:   "DMSans-Regular.woff2",
					URL:    "https://fonts.gstatic.com/s/dmsans/v14/rP2Hp2ywxg089UriCZOIHQ.woff2",
					Family: "DM Sans",
					Weight: 400,
				},
				{
					Name:   "DMSans-Medium.woff2",
					URL:    "https://fonts.gstatic.com/s/dmsans/v14/rP2Cp2ywxg089UriAWCrOB8.woff2",
					Family: "DM Sans",
					Weight: 500,
				},
				{
					Name:   "Baloo2-Regular.woff2",
					URL:    "https://fonts.gstatic.com/s/baloo2/v16/wXKrE3kTposypRydz1uW1s.woff2",
					Family: "Baloo 2",
					Weight: 400,
				},
				{
					Name:   "Baloo2-SemiBold.woff2",
					URL:    "https://fonts.gstatic.com/s/baloo2/v16/wXKpE3kTposypRyd76v_FeJ.woff2",
					Family: "Baloo 2",
					Weight: 600,
				},
				{
					Name:   "Baloo2-Bold.woff2",
					URL:    "https://fonts.gstatic.com/s/baloo2/v16/wXKpE3kTposypRyd76v_FeJ.woff2",
					Family: "Baloo 2",
					Weight: 700,
				},
			},
			CSSURLPrefix: "/fonts/",
			Verify:       true,
		},
		Trim: TrimConfig{
			Suffix:  "_trimmed",
			Workers: 1,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "console",
			File: LogFileConfig{
				MaxSizeMB:  10,
				MaxBackups: 3,
				MaxAgeDays: 28,
			},
		},
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	var errs []error

	if c.Fonts.StagingDir == "" {
		errs = append(errs, errors.New("fonts.staging_dir must not be empty"))
	}
	if c.Fonts.OutputDir == "" {
		errs = append(errs, errors.New("fonts.output_dir must not be empty"))
	}
	seen := map[string]bool{}
	for i, f := range c.Fonts.Files {
		switch {
		case f.Name == "":
			errs = append(errs, fmt.Errorf("fonts.files[%d]: name must not be empty", i))
		case !strings.EqualFold(filepath.Ext(f.Name), ".ttf"):
			errs = append(errs, fmt.Errorf("fonts.files[%d]: %s is not a .ttf file", i, f.Name))
		case filepath.Base(f.Name) != f.Name:
			errs = append(errs, fmt.Errorf("fonts.files[%d]: %s must be a plain file name", i, f.Name))
		case seen[f.Name]:
			errs = append(errs, fmt.Errorf("fonts.files[%d]: duplicate %s", i, f.Name))
		}
		seen[f.Name] = true
		if f.Weight < 0 || f.Weight > 1000 {
			errs = append(errs, fmt.Errorf("fonts.files[%d]: weight %d out of range", i, f.Weight))
		}
	}
	for i, r := range c.Fonts.Remote {
		if r.Name == "" || r.URL == "" {
			errs = append(errs, fmt.Errorf("fonts.remote[%d]: name and url are required", i))
		}
		if r.Weight < 0 || r.Weight > 1000 {
			errs = append(errs, fmt.Errorf("fonts.remote[%d]: weight %d out of range", i, r.Weight))
		}
	}

	if c.Trim.Padding < 0 {
		errs = append(errs, fmt.Errorf("trim.padding must not be negative: %d", c.Trim.Padding))
	}
	if c.Trim.Workers < 1 {
		errs = append(errs, fmt.Errorf("trim.workers must be at least 1: %d", c.Trim.Workers))
	}

	if _, err := common.ParseLogLevel(c.Log.Level); err != nil {
		errs = append(errs, fmt.Errorf("log.level: %w", err))
	}
	if c.Log.Format != "console" && c.Log.Format != "json" {
		errs = append(errs, fmt.Errorf("invalid log.format: %s", c.Log.Format))
	}

	return errors.Join(errs...)
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv(EnvFontsStagingDir); v != "" {
		cfg.Fonts.StagingDir = v
	}
	if v := os.Getenv(EnvFontsOutputDir); v != "" {
		cfg.Fonts.OutputDir = v
	}
}
