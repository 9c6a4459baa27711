package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"cpu-scheduler-sim/api"
)

func newServeCmd(root *rootOptions) *cobra.Command {
	var port int

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the scheduling API over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := root.loadEnvironment()
			if err != nil {
				return err
			}
			serveCfg := *cfg
			if port != 0 {
				serveCfg.Port = port
			}

			app := api.NewApp(api.NewSchedulerHandlerImpl(&serveCfg, logger))
			addr := fmt.Sprintf(":%d", serveCfg.Port)
			logger.Info("listening", "addr", addr)
			return app.Listen(addr)
		},
	}

	cmd.Flags().IntVar(&port, "port", 0, "Listen port (overrides config)")
	return cmd
}
