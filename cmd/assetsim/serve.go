package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/lifeplan/assetsim/internal/server"
)

func newServeCmd(root *rootOptions) *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve projections over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, err := root.engine()
			if err != nil {
				return err
			}
			persister, store, err := root.persister()
			if err != nil {
				return err
			}
			defer store.Close()

			if addr == "" {
				addr = root.settings.ListenAddr
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			logger := root.logger()
			logger.Infof("listening on %s (store %s)", addr, root.settings.StoreDriver)
			return server.New(engine, persister, root.localeName(), logger).ListenAndServe(ctx, addr)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (default from ASSETSIM_LISTEN_ADDR)")
	return cmd
}
