package cli

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/ikansh/ikansh-dev/internal/content"
	"github.com/ikansh/ikansh-dev/internal/persona"
	"github.com/ikansh/ikansh-dev/internal/store"
	"github.com/ikansh/ikansh-dev/internal/tui"
)

func tuiCmd(opts *rootOptions) *cobra.Command {
	var (
		who     string
		offline bool
	)

	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Browse the portfolio in the terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, err := persona.Parse(who)
			if err != nil {
				return err
			}
			// The screen belongs to bubbletea; logs are dropped.
			cfg, log, err := opts.setup(nil)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			profile, err := content.Load(cfg.ContentPath)
			if err != nil {
				return err
			}
			topts := tui.Options{Profile: profile, Persona: p}

			if !offline {
				st, err := store.Open(ctx, cfg.DatabasePath)
				if err != nil {
					return err
				}
				defer st.Close()
				svc, _ := contactService(cfg, st, log)
				topts.Submitter = svc
			}
			return tui.Run(ctx, topts)
		},
	}

	cmd.Flags().StringVar(&who, "persona", string(persona.Default), "starting persona (ika or genesis)")
	cmd.Flags().BoolVar(&offline, "offline", false, "do not open the database; the contact form is disabled")
	return cmd
}
