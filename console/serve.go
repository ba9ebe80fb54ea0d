package console

import (
	"github.com/spf13/cobra"

	"github.com/km-arc/go-curp/app/providers"
	"github.com/km-arc/go-curp/framework/app"
)

func newServeCmd() *cobra.Command {
	var envFiles []string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the web form and JSON API",
		Long: `Start the HTTP server. Settings come from the environment and from
the given .env files (default .env); see APP_PORT, LOG_LEVEL, THROTTLE_RPS,
THROTTLE_BURST and CURP_CACHE_SIZE.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			application := app.New(envFiles...)
			application.Register(&providers.AppServiceProvider{})
			return application.Run(cmd.Context())
		},
	}

	cmd.Flags().StringSliceVar(&envFiles, "env-file", nil, "Env files to load (default .env)")
	return cmd
}
