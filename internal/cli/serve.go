package cmd

import (
	"fmt"

	"github.com/rohmanhakim/msgrender/internal/server"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP render endpoint.",
	Long: `serve exposes the render pipeline over HTTP:

  POST /v1/render  {"message": "..."}  ->  {"html": "...", "direction": "ltr|rtl"}
  GET  /healthz

Requests are rate limited per client; see --rpm.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		logger := buildLogger(cfg)
		defer logger.Sync()

		p := buildPipelineWithLogger(cfg, logger)
		srv := server.New(p, logger, server.Param{
			ListenAddr:        cfg.ListenAddr(),
			RequestsPerMinute: cfg.RequestsPerMinute(),
		})

		logger.Info("starting msgrender server",
			zap.String("addr", cfg.ListenAddr()),
			zap.Bool("allow_raw_html", cfg.AllowRawHTML()),
			zap.Bool("cache_enabled", cfg.CacheEnabled()),
		)
		if err := srv.Listen(); err != nil {
			return fmt.Errorf("server exited: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
