package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"darkroom/internal/ops"
)

var trimPixels int

var trimCmd = &cobra.Command{
	Use:   "trim --pixels <n>",
	Short: "Crop a watermark strip off the bottom of matching images",
	Long:  "Crops the given number of pixels off each image's height, narrowing the width symmetrically so the aspect ratio is preserved. Images no taller than the trim amount are skipped.",
	RunE: func(cmd *cobra.Command, args []string) error {
		if trimPixels <= 0 {
			return fmt.Errorf("--pixels must be positive, got %d", trimPixels)
		}
		return runBatch(&ops.Trim{Pixels: trimPixels}, "")
	},
}

func init() {
	trimCmd.Flags().IntVarP(&trimPixels, "pixels", "p", 0, "rows to crop off the bottom")
	_ = trimCmd.MarkFlagRequired("pixels")

	rootCmd.AddCommand(trimCmd)
}
