// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package report renders the results of a conversion run: markdown
// image references, a console summary table, and an optional YAML
// manifest.
package report

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/pdiddy/jpegify/internal/convert"
	"github.com/pdiddy/jpegify/pkg/types"
)

// Markdown writes one image-embed line per successful conversion, of
// the form ![<stem>](<path>), where the path is the output file's path
// relative to root. When no relative path exists (output directory
// outside the root), the output path is used as-is.
func Markdown(successes []types.Conversion, root string, w io.Writer) {
	for _, c := range successes {
		path := c.Output
		if rel, err := filepath.Rel(root, c.Output); err == nil {
			path = rel
		}
		stem := strings.TrimSuffix(filepath.Base(c.Output), filepath.Ext(c.Output))
		fmt.Fprintf(w, "![%s](%s)\n", stem, filepath.ToSlash(path))
	}
}

// Summary renders a table of successful conversions with output sizes,
// followed by the converted/failed counts. With no successes only the
// counts are printed.
func Summary(result convert.BatchResult, w io.Writer) {
	successes := result.Successes()
	if len(successes) > 0 {
		tw := table.NewWriter()
		tw.SetStyle(table.StyleRounded)
		tw.AppendHeader(table.Row{"Source", "Output", "Size"})
		for _, c := range successes {
			tw.AppendRow(table.Row{filepath.Base(c.Source), filepath.Base(c.Output), outputSize(c.Output)})
		}
		tw.SetColumnConfigs([]table.ColumnConfig{
			{Number: 3, Align: text.AlignRight},
		})
		fmt.Fprintln(w, tw.Render())
	}
	fmt.Fprintf(w, "%d image(s) converted, %d failed (total: %d)\n",
		result.Converted, result.Failed, result.Total())
}

// outputSize returns the file size formatted for the summary table, or
// "?" when the file cannot be stated.
func outputSize(path string) string {
	info, err := os.Stat(path)
	if err != nil {
		return "?"
	}
	return formatBytes(info.Size())
}

// formatBytes renders n as a human-readable byte count (B, KiB, MiB).
func formatBytes(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := int64(unit), 0
	for m := n / unit; m >= unit; m /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(n)/float64(div), "KMG"[exp])
}
