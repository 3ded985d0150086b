// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/jpegify/internal/discover"
)

var scanCmd = &cobra.Command{
	Use:   "scan [input_dir]",
	Short: "List candidate images without converting",
	Long: `Scan walks the input directory and prints the images that a
conversion run would process, one path per line. Nothing is written.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		input := "."
		if len(args) > 0 {
			input = args[0]
		}

		cfg := pipelineConfig()
		paths, err := discover.Find(input, cfg.Discovery)
		if err != nil {
			return fmt.Errorf("scanning %s: %w", input, err)
		}

		out := cmd.OutOrStdout()
		for _, p := range paths {
			fmt.Fprintln(out, p)
		}
		fmt.Fprintf(out, "\n%d candidate image(s)\n", len(paths))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(scanCmd)
}
