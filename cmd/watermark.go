package cmd

import (
	"github.com/spf13/cobra"

	"darkroom/internal/ops"
)

var (
	watermarkWidth  int
	watermarkHeight int
	watermarkMark   string
)

var watermarkCmd = &cobra.Command{
	Use:   "watermark --width <w> --height <h> --mark <image>",
	Short: "Resize matching images and stamp a watermark bottom-right",
	Long:  "Stretches every matching image to the given size, then composites the watermark image at the bottom-right corner. The watermark is scaled down to fit if needed, never up.",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := checkDimensions(watermarkWidth, watermarkHeight); err != nil {
			return err
		}
		op := &ops.Watermark{
			Width:    watermarkWidth,
			Height:   watermarkHeight,
			MarkPath: watermarkMark,
		}
		return runBatch(op, "")
	},
}

func init() {
	watermarkCmd.Flags().IntVarP(&watermarkWidth, "width", "W", 0, "target width in pixels")
	watermarkCmd.Flags().IntVarP(&watermarkHeight, "height", "H", 0, "target height in pixels")
	watermarkCmd.Flags().StringVarP(&watermarkMark, "mark", "m", "", "watermark image path")
	_ = watermarkCmd.MarkFlagRequired("width")
	_ = watermarkCmd.MarkFlagRequired("height")
	_ = watermarkCmd.MarkFlagRequired("mark")

	rootCmd.AddCommand(watermarkCmd)
}
