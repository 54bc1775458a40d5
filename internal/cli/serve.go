package cli

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/lumen/internal/server"
	"github.com/mesh-intelligence/lumen/internal/service"
	"github.com/mesh-intelligence/lumen/pkg/state"
)

func (a *app) newServeCmd() *cobra.Command {
	var listen string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the HTTP API",
		Long: "Serve the JSON API and the /api/state/stream websocket until interrupted.\n" +
			"The listen address comes from --listen, LUMEN_LISTEN_ADDR or config.yaml.",
		RunE: func(cmd *cobra.Command, args []string) error {
			addr := a.cfg.ListenAddr
			if listen != "" {
				addr = listen
			}

			backend, err := a.attachBackend()
			if err != nil {
				return err
			}
			defer backend.Detach()

			svc := service.New(backend, state.New(), service.WithLogger(a.log))
			if err := svc.Refresh(); err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			a.log.WithField("database", backend.Path()).Info("catalog loaded")
			return server.New(svc, addr, a.log).Run(ctx)
		},
	}

	cmd.Flags().StringVar(&listen, "listen", "", "listen address (default from config: localhost:8080)")
	return cmd
}
