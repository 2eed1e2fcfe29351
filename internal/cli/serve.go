package cli

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	httpH "github.com/sky-flux/leitner/internal/http/handlers"
	"github.com/sky-flux/leitner/internal/observability"
	"github.com/sky-flux/leitner/internal/server"
)

func newServeCmd(a *app) *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if addr != "" {
				a.cfg.Server.Addr = addr
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			shutdownTracing, err := observability.InitTracing(ctx, a.log, a.cfg.Tracing, nil)
			if err != nil {
				return err
			}
			defer func() {
				if err := shutdownTracing(cmd.Context()); err != nil {
					a.log.Warn("otel shutdown", "error", err)
				}
			}()

			svc, closeDeck, err := a.openDeck()
			if err != nil {
				return err
			}
			defer closeDeck()

			if a.cfg.Log.Mode == "production" || a.cfg.Log.Mode == "prod" {
				gin.SetMode(gin.ReleaseMode)
			}
			routerCfg := server.RouterConfig{
				Log:           a.log,
				DeckHandler:   httpH.NewDeckHandler(a.log, svc),
				HealthHandler: httpH.NewHealthHandler(),
			}
			if a.cfg.Tracing.Enabled {
				routerCfg.ServiceName = a.cfg.Tracing.ServiceName
			}
			return server.Run(ctx, a.log, a.cfg.Server.Addr, server.NewRouter(routerCfg), a.cfg.Server.ShutdownTimeout)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides LEITNER_ADDR)")
	return cmd
}
