package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"darkroom/internal/config"
)

var dirCmd = &cobra.Command{
	Use:   "dir [path]",
	Short: "Show or set the saved working directory",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			dir := config.LoadWorkDir()
			if dir == "" {
				fmt.Fprintln(os.Stdout, "No working directory set.")
				return nil
			}
			fmt.Fprintln(os.Stdout, dir)
			return nil
		}

		abs, err := filepath.Abs(args[0])
		if err != nil {
			return fmt.Errorf("resolve path: %w", err)
		}
		if err := os.MkdirAll(abs, 0o755); err != nil {
			return err
		}
		if err := config.SaveWorkDir(abs); err != nil {
			return fmt.Errorf("save working directory: %w", err)
		}
		fmt.Fprintln(os.Stdout, "Working directory set to", abs)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(dirCmd)
}
