package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"darkroom/internal/ops"
)

var (
	convertFrom string
	convertTo   string
)

var convertCmd = &cobra.Command{
	Use:   "convert --from <format> --to <format>",
	Short: "Re-encode matching images in another format",
	Long:  "Re-encodes every matching image in the working directory, writing the result next to the source with the new extension and removing the source. Supported pairs:\n\n" + pairTable(),
	RunE: func(cmd *cobra.Command, args []string) error {
		pair, err := ops.FindPair(convertFrom, convertTo)
		if err != nil {
			return err
		}
		return runBatch(&ops.Convert{Pair: pair}, pair.SourcePattern)
	},
}

func pairTable() string {
	var b strings.Builder
	for _, pair := range ops.ConversionPairs {
		fmt.Fprintf(&b, "  %s (%s) -> %s (%s)\n", pair.SourceLabel, pair.SourcePattern, pair.TargetLabel, pair.TargetExt)
	}
	return b.String()
}

func init() {
	convertCmd.Flags().StringVar(&convertFrom, "from", "", "source format (webp, png, jpg)")
	convertCmd.Flags().StringVar(&convertTo, "to", "", "target format (png, jpg)")
	_ = convertCmd.MarkFlagRequired("from")
	_ = convertCmd.MarkFlagRequired("to")

	rootCmd.AddCommand(convertCmd)
}
