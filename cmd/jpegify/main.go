// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the jpegify CLI.
package main

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/jpegify/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the jpegify CLI. Running it with no
// subcommand performs a full discover-convert-report pass.
var rootCmd = &cobra.Command{
	Use:   "jpegify [input_dir] [output_dir]",
	Short: "Convert images to JPEG for README compatibility",
	Long: `jpegify recursively scans a directory tree for images in assorted
formats (PNG, GIF, WebP, BMP, TIFF) and converts each into a JPEG,
flattening transparency onto a white background. Converted files land in
the output directory and a markdown image reference is printed for each,
ready to paste into a README.

With no arguments the current directory is scanned and output goes to
./images. Pass an input directory, or an input and an output directory,
to override.`,
	Args: cobra.MaximumNArgs(2),
	RunE: runConvert,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./jpegify.yaml or ~/.config/jpegify/config.yaml)")
	rootCmd.Flags().Int("quality", types.DefaultQuality, "JPEG encoding quality (1-100)")
	rootCmd.Flags().String("manifest", "", "write a YAML manifest of the run to this path")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("jpegify")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "jpegify"))
		}
	}

	viper.SetDefault("quality", types.DefaultQuality)
	viper.SetDefault("exclude_dirs", types.DefaultExcludeDirs())
	viper.SetDefault("extensions", types.DefaultExtensions())

	viper.SetEnvPrefix("JPEGIFY")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// pipelineConfig builds the run configuration from viper state, falling
// back to compiled defaults for any unset key.
func pipelineConfig() types.PipelineConfig {
	cfg := types.DefaultPipelineConfig()
	if v := viper.GetInt("quality"); v > 0 {
		cfg.Conversion.Quality = v
	}
	if v := viper.GetStringSlice("exclude_dirs"); len(v) > 0 {
		cfg.Discovery.ExcludeDirs = v
	}
	if v := viper.GetStringSlice("extensions"); len(v) > 0 {
		cfg.Discovery.Extensions = v
	}
	return cfg
}

func main() {
	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-interrupt
		fmt.Fprintln(os.Stderr, "\n\nConversion cancelled by user.")
		os.Exit(1)
	}()

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
