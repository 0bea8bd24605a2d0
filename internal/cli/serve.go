package cli

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/ppinet/centrality"
	"github.com/katalvlaran/ppinet/config"
	"github.com/katalvlaran/ppinet/server"
)

func (c *CLI) serveCommand() *cobra.Command {
	var configPath, addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the centrality API over HTTP",
		Long: `Serve the centrality API over HTTP.

Routes:
  GET  /healthz      liveness
  GET  /variants     supported measures
  POST /centrality   score posted interaction records
  POST /network      fetch proteins from STRING and score them`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Resolve(configPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("addr") {
				cfg.Server.Addr = addr
			}

			variant, err := centrality.ParseVariant(cfg.Analysis.Variant)
			if err != nil {
				return err
			}
			runner, err := c.newRunner(cfg)
			if err != nil {
				return err
			}

			srv := server.New(runner, c.Logger)
			srv.DefaultVariant = variant
			srv.MinScore = cfg.String.MinScore
			printInfo(cmd.OutOrStdout(), "serving on %s", cfg.Server.Addr)

			return srv.Serve(cmd.Context(), cfg.Server.Addr)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "TOML configuration file")
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config, :8080)")

	return cmd
}
