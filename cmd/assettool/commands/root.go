/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

// Package commands implements the assettool command line.
package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"time"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/creatorplaybook/assettool/assets/config"
	"github.com/creatorplaybook/assettool/common"
)

// ExitError ends the program with Code after the command already reported the failure.
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("exit status %d", e.Code)
}

// app holds the state shared by the commands of one invocation.
type app struct {
	cfgFile string
	verbose bool
	noColor bool

	cfg *config.Config
}

// Execute runs the command line with the process arguments.
func Execute(ctx context.Context) error {
	return NewRootCommand().ExecuteContext(ctx)
}

// NewRootCommand builds the assettool command tree.
func NewRootCommand() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "assettool",
		Short: "Web asset build tools: font conversion and image trimming",
		Long: `assettool prepares static web assets.

It converts the staged TrueType fonts to WOFF2, downloads prebuilt WOFF2 fonts,
and crops the transparent padding off PNG images.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd.ErrOrStderr())
		},
	}

	root.PersistentFlags().StringVarP(&a.cfgFile, "config", "c", "", "config file path (default $"+config.EnvConfigPath+")")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")
	root.PersistentFlags().BoolVar(&a.noColor, "no-color", false, "disable colored output")

	root.AddCommand(newFontsCommand(a), newTrimCommand(a))
	return root
}

// init loads .env and the configuration and installs the logger.
func (a *app) init(stderr io.Writer) error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load .env: %w", err)
	}
	if a.noColor {
		color.NoColor = true
	}

	cfg, err := config.Load(a.cfgFile)
	if err != nil {
		return err
	}
	a.cfg = cfg

	logger, err := newLogger(cfg.Log, a.verbose, stderr)
	if err != nil {
		return err
	}
	common.SetLogger(logger)
	return nil
}

// newLogger builds the logger described by `cfg`. `verbose` raises the level to at least debug.
func newLogger(cfg config.LogConfig, verbose bool, stderr io.Writer) (common.Logger, error) {
	level, err := common.ParseLogLevel(cfg.Level)
	if err != nil {
		return nil, err
	}
	if verbose && level < common.LogLevelDebug {
		level = common.LogLevelDebug
	}

	var w io.Writer = stderr
	if cfg.Format != "json" {
		w = zerolog.ConsoleWriter{Out: stderr, TimeFormat: time.Kitchen, NoColor: color.NoColor}
	}
	if cfg.File.Path != "" {
		file := common.NewRotatingFile(cfg.File.Path, cfg.File.MaxSizeMB, cfg.File.MaxBackups, cfg.File.MaxAgeDays, cfg.File.Compress)
		w = zerolog.MultiLevelWriter(w, file)
	}
	return common.NewWriterLogger(level, w), nil
}
