// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/pdiddy/jpegify/internal/convert"
	"github.com/pdiddy/jpegify/internal/discover"
	"github.com/pdiddy/jpegify/internal/report"
)

// resolveDirs maps the positional arguments to input and output
// directories. Defaults: input is the current directory, output is
// <input>/images.
func resolveDirs(args []string) (input, output string) {
	input = "."
	if len(args) > 0 {
		input = args[0]
	}
	output = filepath.Join(input, "images")
	if len(args) > 1 {
		output = args[1]
	}
	return input, output
}

// runConvert is the root command body: discover candidates under the
// input directory, convert each to JPEG, then print the summary and
// markdown references.
func runConvert(cmd *cobra.Command, args []string) error {
	input, output := resolveDirs(args)

	if err := os.MkdirAll(output, 0o755); err != nil {
		return fmt.Errorf("creating output directory %s: %w", output, err)
	}

	cfg := pipelineConfig()
	cfg.Conversion.OutputDir = output
	if cmd.Flags().Changed("quality") {
		q, err := cmd.Flags().GetInt("quality")
		if err != nil {
			return err
		}
		cfg.Conversion.Quality = q
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Searching for images in: %s\n", input)
	fmt.Fprintf(out, "Output directory: %s\n\n", output)

	paths, err := discover.Find(input, cfg.Discovery)
	if err != nil {
		return fmt.Errorf("scanning %s: %w", input, err)
	}
	if len(paths) == 0 {
		fmt.Fprintln(out, "No images found to convert.")
		return nil
	}

	fmt.Fprintf(out, "Found %d image(s) to convert:\n\n", len(paths))

	result := convert.Batch(paths, cfg.Conversion, out)

	fmt.Fprintln(out)
	report.Summary(result, out)
	fmt.Fprintf(out, "Images saved to: %s\n", output)

	if successes := result.Successes(); len(successes) > 0 {
		fmt.Fprintf(out, "\n---\nMarkdown image references:\n\n")
		report.Markdown(successes, input, out)
	}

	if manifest, _ := cmd.Flags().GetString("manifest"); manifest != "" {
		if err := report.WriteManifest(result, input, output, manifest); err != nil {
			return err
		}
		fmt.Fprintf(out, "\nManifest written to: %s\n", manifest)
	}
	return nil
}
