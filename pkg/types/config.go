package types

// DiscoveryConfig holds settings for the image discovery stage.
type DiscoveryConfig struct {
	// ExcludeDirs lists directory names pruned during traversal
	// (version control, dependency caches, build output).
	ExcludeDirs []string `json:"exclude_dirs" yaml:"exclude_dirs"`

	// Extensions lists the recognized image file extensions,
	// lowercase with leading dot (e.g. ".png").
	Extensions []string `json:"extensions" yaml:"extensions"`
}

// ConversionConfig holds settings for the conversion stage.
type ConversionConfig struct {
	// Quality is the JPEG encoding quality, 1-100 (default 85).
	Quality int `json:"quality" yaml:"quality"`

	// OutputDir is the directory converted files are written to.
	// Flat: source subdirectory structure is not preserved.
	OutputDir string `json:"output_dir" yaml:"output_dir"`
}

// PipelineConfig groups all stage configurations for a conversion run.
type PipelineConfig struct {
	Discovery  DiscoveryConfig  `json:"discovery" yaml:"discovery"`
	Conversion ConversionConfig `json:"conversion" yaml:"conversion"`
}

// DefaultQuality is the JPEG quality used when none is configured.
const DefaultQuality = 85

// DefaultExcludeDirs returns the directory names excluded from discovery
// by default.
func DefaultExcludeDirs() []string {
	return []string{".git", "node_modules", "dist", "__pycache__", ".next"}
}

// DefaultExtensions returns the recognized image extensions. JPEG
// extensions are part of the recognized set, but discovery never returns
// files that are already JPEG.
func DefaultExtensions() []string {
	return []string{".png", ".jpg", ".jpeg", ".gif", ".webp", ".bmp", ".tiff", ".tif", ".svg"}
}

// DefaultPipelineConfig returns a PipelineConfig with all defaults applied.
// The zero OutputDir is resolved by the caller against the input root.
func DefaultPipelineConfig() PipelineConfig {
	return PipelineConfig{
		Discovery: DiscoveryConfig{
			ExcludeDirs: DefaultExcludeDirs(),
			Extensions:  DefaultExtensions(),
		},
		Conversion: ConversionConfig{
			Quality: DefaultQuality,
		},
	}
}
