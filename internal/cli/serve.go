package cli

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/ikansh/ikansh-dev/internal/config"
	"github.com/ikansh/ikansh-dev/internal/content"
	"github.com/ikansh/ikansh-dev/internal/metrics"
	"github.com/ikansh/ikansh-dev/internal/store"
	"github.com/ikansh/ikansh-dev/internal/web"
)

func serveCmd(opts *rootOptions) *cobra.Command {
	var port string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the portfolio over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, log, err := opts.setup(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			if port != "" {
				cfg.Port = port
			}
			if err := setGinMode(cfg); err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			profile, err := content.Load(cfg.ContentPath)
			if err != nil {
				return err
			}
			st, err := store.Open(ctx, cfg.DatabasePath)
			if err != nil {
				return err
			}
			defer st.Close()
			log.Info("store.opened", "path", cfg.DatabasePath)

			hasher, err := hasherFor(cfg)
			if err != nil {
				return err
			}
			svc, lim := contactService(cfg, st, log)

			srv, err := web.New(web.Deps{
				Profile:          profile,
				Store:            st,
				Contact:          svc,
				Limiter:          lim,
				Hasher:           hasher,
				Metrics:          metrics.New(),
				Admin:            cfg.Admin,
				Log:              log,
				VisitorRetention: cfg.VisitorRetention,
			})
			if err != nil {
				return err
			}
			return srv.Run(ctx, cfg.Addr())
		},
	}

	cmd.Flags().StringVarP(&port, "port", "p", "", "listen port (overrides PORT)")
	return cmd
}

func setGinMode(cfg config.Config) error {
	switch cfg.GinMode {
	case gin.DebugMode, gin.ReleaseMode, gin.TestMode:
		gin.SetMode(cfg.GinMode)
		return nil
	}
	return fmt.Errorf("GIN_MODE: unknown mode %q", cfg.GinMode)
}
