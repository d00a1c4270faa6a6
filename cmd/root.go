package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var flagDir string

var rootCmd = &cobra.Command{
	Use:   "darkroom",
	Short: "darkroom 🎞 - batch image conversion, trimming, resizing, watermarking, and upscaling",
	Long:  "darkroom 🎞 processes every image in a working directory in one pass: format conversion, watermark-strip trimming, resizing, watermark compositing, and remote crisp upscaling, with live progress and cooperative cancellation.",
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.SetHelpCommand(&cobra.Command{Hidden: true})
	rootCmd.PersistentFlags().StringVarP(&flagDir, "dir", "d", "", "working directory (overrides the saved one)")
}
