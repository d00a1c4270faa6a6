package cmd

import (
	"github.com/spf13/cobra"

	"darkroom/internal/config"
	"darkroom/internal/ops"
	"darkroom/internal/upscale"
)

var upscaleURL string

var upscaleCmd = &cobra.Command{
	Use:   "upscale",
	Short: "Upscale matching images through the crisp-upscale service",
	Long:  "Sends every matching image to the remote crisp-upscale service and replaces it with the upscaled result (written as .webp; the original is removed once the result is on disk). Requires a bearer token in " + config.TokenEnvVar + ".",
	RunE: func(cmd *cobra.Command, args []string) error {
		client := upscale.NewClient(config.APIToken(), upscaleURL)
		return runBatch(&ops.RemoteUpscale{Client: client}, "")
	},
}

func init() {
	upscaleCmd.Flags().StringVar(&upscaleURL, "url", "", "override the upscale service endpoint")

	rootCmd.AddCommand(upscaleCmd)
}
