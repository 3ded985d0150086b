// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/fatih/color"

	"github.com/pdiddy/jpegify/pkg/types"
)

// BatchResult holds the outcome of a batch conversion run.
type BatchResult struct {
	// Results records every attempt, successes and failures, in
	// processing order.
	Results []types.Conversion

	Converted int
	Failed    int
}

// Total returns the total number of files processed.
func (r BatchResult) Total() int {
	return r.Converted + r.Failed
}

// HasFailures reports whether any files failed conversion.
func (r BatchResult) HasFailures() bool {
	return r.Failed > 0
}

// Successes returns only the conversions that produced an output file,
// in processing order.
func (r BatchResult) Successes() []types.Conversion {
	out := make([]types.Conversion, 0, r.Converted)
	for _, c := range r.Results {
		if c.Status == types.ConversionDone {
			out = append(out, c)
		}
	}
	return out
}

// Batch converts each path in sequence, printing a per-file status line
// to w. A failed file is reported with its cause and skipped; the run
// continues with the next candidate.
func Batch(paths []string, cfg types.ConversionConfig, w io.Writer) BatchResult {
	var result BatchResult
	for _, p := range paths {
		outPath, err := File(p, cfg)
		if err != nil {
			fmt.Fprintf(w, "%s Error converting %s: %v\n", color.RedString("✗"), filepath.Base(p), err)
			result.Failed++
			result.Results = append(result.Results, types.Conversion{
				Source: p,
				Status: types.ConversionFailed,
				Error:  err.Error(),
			})
			continue
		}
		fmt.Fprintf(w, "%s Converted: %s → %s\n", color.GreenString("✓"), filepath.Base(p), filepath.Base(outPath))
		result.Converted++
		result.Results = append(result.Results, types.Conversion{
			Source: p,
			Output: outPath,
			Status: types.ConversionDone,
		})
	}
	return result
}
