package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"darkroom/internal/ops"
)

var (
	resizeWidth  int
	resizeHeight int
)

var resizeCmd = &cobra.Command{
	Use:   "resize --width <w> --height <h>",
	Short: "Stretch matching images to an exact size",
	Long:  "Stretches every matching image to exactly the given width and height, ignoring the original aspect ratio, overwriting in place.",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := checkDimensions(resizeWidth, resizeHeight); err != nil {
			return err
		}
		return runBatch(&ops.Resize{Width: resizeWidth, Height: resizeHeight}, "")
	},
}

func checkDimensions(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("width and height must be positive, got %dx%d", width, height)
	}
	return nil
}

func init() {
	resizeCmd.Flags().IntVarP(&resizeWidth, "width", "W", 0, "target width in pixels")
	resizeCmd.Flags().IntVarP(&resizeHeight, "height", "H", 0, "target height in pixels")
	_ = resizeCmd.MarkFlagRequired("width")
	_ = resizeCmd.MarkFlagRequired("height")

	rootCmd.AddCommand(resizeCmd)
}
