package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/framed-app/framed/internal/web"
)

func newServeCommand(ctx *commandContext) *cobra.Command {
	var listen string
	var dev bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the preview API",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := ctx.newApp(cmd)
			if err != nil {
				return err
			}
			sc, err := web.ServerConfigFromEnv(a.Config.Server.Listen, a.Config.Server.Dev)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("listen") {
				sc.ListenAddr = listen
			}
			if cmd.Flags().Changed("dev") {
				sc.DevMode = dev
			}

			runCtx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return a.Serve(runCtx, sc)
		},
	}

	cmd.Flags().StringVar(&listen, "listen", "", "Listen address (overrides server.listen and "+web.EnvListenAddr+")")
	cmd.Flags().BoolVar(&dev, "dev", false, "Enable permissive CORS for local development")
	return cmd
}
