/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/creatorplaybook/assettool/assets/imgtrim"
)

func newTrimCommand(a *app) *cobra.Command {
	var (
		padding int
		workers int
		suffix  string
	)

	// Flags left unset fall back to the trim section of the configuration.
	resolve := func(cmd *cobra.Command) {
		if !cmd.Flags().Changed("padding") {
			padding = a.cfg.Trim.Padding
		}
		if f := cmd.Flags().Lookup("workers"); f != nil && !f.Changed {
			workers = a.cfg.Trim.Workers
		}
		if f := cmd.Flags().Lookup("suffix"); f != nil && !f.Changed {
			suffix = a.cfg.Trim.Suffix
		}
	}

	fileCmd := &cobra.Command{
		Use:   "file <input.png> <output.png>",
		Short: "Crop the transparent padding off one image",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			resolve(cmd)
			res, err := imgtrim.TrimFile(args[0], args[1], padding)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Trimmed: %s -> %s (%dx%d -> %dx%d)\n", args[0], args[1],
				res.SourceSize.X, res.SourceSize.Y, res.Size.X, res.Size.Y)
			return nil
		},
	}
	fileCmd.Flags().IntVarP(&padding, "padding", "p", 0, "pixels kept around the content")

	batchCmd := &cobra.Command{
		Use:   "batch <input-dir> <output-dir>",
		Short: "Crop the transparent padding off every PNG of a directory",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			resolve(cmd)
			report, err := imgtrim.BatchTrim(cmd.Context(), args[0], args[1], imgtrim.BatchOptions{
				Padding: padding,
				Suffix:  suffix,
				Workers: workers,
				Out:     cmd.OutOrStdout(),
			})
			if err != nil {
				return err
			}
			if n := len(report.Failed); n > 0 {
				return fmt.Errorf("%d of %d images failed", n, n+len(report.Results))
			}
			return nil
		},
	}
	batchCmd.Flags().IntVarP(&padding, "padding", "p", 0, "pixels kept around the content")
	batchCmd.Flags().IntVarP(&workers, "workers", "w", 1, "images trimmed concurrently")
	batchCmd.Flags().StringVar(&suffix, "suffix", imgtrim.DefaultSuffix, "inserted before the output file extension")

	cmd := &cobra.Command{
		Use:   "trim",
		Short: "Crop transparent padding off PNG images",
	}
	cmd.AddCommand(fileCmd, batchCmd)
	return cmd
}
