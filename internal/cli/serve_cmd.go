package cli

import (
	"net/http"

	"github.com/apricot12/concierge/internal/config"
	appLog "github.com/apricot12/concierge/internal/log"
	"github.com/apricot12/concierge/internal/web"
	"github.com/spf13/cobra"
)

func newServeCmd(app *App) *cobra.Command {
	var listen string
	var configPath string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP chat and calendar API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("listen") {
				cfg.Listen = listen
			}
			appLog.SetLevel(appLog.ParseLevel(cfg.LogLevel))

			server := web.NewServer(app.Assistant, app.Events)
			appLog.Info("listening", "addr", cfg.Listen)
			return http.ListenAndServe(cfg.Listen, server.Handler())
		},
	}

	cmd.Flags().StringVar(&listen, "listen", "127.0.0.1:3000", "HTTP listen address")
	cmd.Flags().StringVar(&configPath, "config", "concierge.yaml", "Path to YAML config file")

	return cmd
}
