/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package commands

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/creatorplaybook/assettool/assets/fontconv"
	"github.com/creatorplaybook/assettool/assets/fontfetch"
	"github.com/creatorplaybook/assettool/common"
)

func newFontsCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fonts",
		Short: "Build the web fonts",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "convert",
			Short: "Convert the staged TTF fonts to WOFF2",
			Long: `Convert the configured TTF files of the staging directory (default /tmp/cp-fonts)
to WOFF2 files in the output directory (default public/fonts).

Fails only when the staging directory is missing. Fonts that are missing or fail
to convert are reported and counted, the command still exits 0.`,
			Args: cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				_, err := fontconv.New(a.cfg.Fonts, cmd.OutOrStdout()).Run(cmd.Context())
				return err
			},
		},
		&cobra.Command{
			Use:   "fetch",
			Short: "Download prebuilt WOFF2 fonts from Google Fonts",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				f := fontfetch.New(cmd.OutOrStdout())
				if isatty.IsTerminal(os.Stderr.Fd()) {
					f.Progress = cmd.ErrOrStderr()
				}
				results, err := f.FetchAll(cmd.Context(), a.cfg.Fonts.OutputDir, a.cfg.Fonts.Remote)
				if err != nil {
					fmt.Fprintf(cmd.ErrOrStderr(), "\n%s Error downloading fonts: %v\n", color.RedString("✗"), err)
					fmt.Fprintf(cmd.OutOrStdout(), "\n%s", fontfetch.ManualHint)
					return &ExitError{Code: 1}
				}
				if css := a.cfg.Fonts.CSSFile; css != "" {
					if err := fontconv.WriteStylesheet(css, a.cfg.Fonts.CSSURLPrefix, results); err != nil {
						return fmt.Errorf("write stylesheet: %w", err)
					}
					common.Log.Info("Wrote %s", css)
				}
				return nil
			},
		},
	)
	return cmd
}
