// Package cli wires configuration, storage and the two front ends behind a
// cobra command tree.
package cli

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/ikansh/ikansh-dev/internal/config"
	"github.com/ikansh/ikansh-dev/internal/contact"
	"github.com/ikansh/ikansh-dev/internal/logger"
	"github.com/ikansh/ikansh-dev/internal/mailer"
	"github.com/ikansh/ikansh-dev/internal/privacy"
	"github.com/ikansh/ikansh-dev/internal/store"
)

func Execute(version string) error {
	return newRootCmd(version).Execute()
}

type rootOptions struct {
	envFile string
}

func newRootCmd(version string) *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:          "ikansh",
		Short:        "ikansh.dev portfolio: web server and terminal edition",
		SilenceUsage: true,
	}
	cmd.PersistentFlags().StringVar(&opts.envFile, "env", ".env", "dotenv file to load before reading the environment")

	cmd.AddCommand(serveCmd(opts), tuiCmd(opts), versionCmd(version))
	return cmd
}

// setup loads the configuration and installs the logger, writing to out.
func (o *rootOptions) setup(out io.Writer) (config.Config, *slog.Logger, error) {
	cfg, err := config.Load(o.envFile)
	if err != nil {
		return config.Config{}, nil, err
	}
	log, err := logger.Setup(logger.Config{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
		Output: out,
	})
	if err != nil {
		return config.Config{}, nil, err
	}
	return cfg, log, nil
}

func hasherFor(cfg config.Config) (privacy.Hasher, error) {
	if cfg.VisitorSalt != "" {
		return privacy.NewHasher(cfg.VisitorSalt), nil
	}
	return privacy.NewRandomHasher()
}

func contactService(cfg config.Config, st *store.Store, log *slog.Logger) (*contact.Service, *contact.Limiter) {
	m := mailer.New(mailer.Config{
		Host: cfg.SMTP.Host,
		Port: cfg.SMTP.Port,
		User: cfg.SMTP.User,
		Pass: cfg.SMTP.Pass,
		To:   cfg.SMTP.To,
	})
	if !m.Enabled() {
		log.Warn("mailer.disabled", "reason", "SMTP_USER/SMTP_PASS not set; messages are only stored")
	}
	lim := contact.NewLimiter(cfg.ContactPerMinute)
	return contact.NewService(st, m, lim, log), lim
}

func versionCmd(version string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version)
		},
	}
}
