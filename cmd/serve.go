package main

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/sells-group/leadscout/internal/research"
	"github.com/sells-group/leadscout/internal/server"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API for enrichment and insight requests",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		deps := newDeps(cfg)
		researcher := research.New(cfg, deps)
		synthesizer := newSynthesizer(cfg, deps, researcher)

		port := servePort
		if port == 0 {
			port = cfg.Server.Port
		}

		return server.New(researcher, synthesizer).ListenAndServe(ctx, port)
	},
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "server port (default from config)")
	rootCmd.AddCommand(serveCmd)
}
