// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package report

import (
	"fmt"
	"os"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/jpegify/internal/convert"
	"github.com/pdiddy/jpegify/pkg/types"
)

// Manifest is the YAML record of one conversion run.
type Manifest struct {
	// Root is the input directory the run scanned.
	Root string `yaml:"root"`

	// OutputDir is the directory converted files were written to.
	OutputDir string `yaml:"output_dir"`

	// GeneratedAt is the manifest creation time, RFC 3339, UTC.
	GeneratedAt string `yaml:"generated_at"`

	Converted int `yaml:"converted"`
	Failed    int `yaml:"failed"`

	// Conversions lists every attempt in processing order.
	Conversions []types.Conversion `yaml:"conversions"`
}

// WriteManifest writes the run summary as YAML to path.
func WriteManifest(result convert.BatchResult, root, outputDir, path string) error {
	m := Manifest{
		Root:        root,
		OutputDir:   outputDir,
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
		Converted:   result.Converted,
		Failed:      result.Failed,
		Conversions: result.Results,
	}
	data, err := yaml.Marshal(&m)
	if err != nil {
		return fmt.Errorf("marshaling manifest: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing manifest %s: %w", path, err)
	}
	return nil
}
