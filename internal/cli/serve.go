package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ondernemersloket/loket/internal/catalog"
	"github.com/ondernemersloket/loket/internal/config"
	"github.com/ondernemersloket/loket/internal/database"
	"github.com/ondernemersloket/loket/internal/logger"
	"github.com/ondernemersloket/loket/internal/notifier"
	"github.com/ondernemersloket/loket/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the portal HTTP API",
	Long: `Serve starts the portal API with the matching endpoints, profile
store and the websocket notification feed.

Examples:
  loket serve
  loket serve --config=./config.toml`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	log, err := logger.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return err
	}
	defer log.Sync()

	programs, err := catalog.Load(cfg.Catalog.Path)
	if err != nil {
		return err
	}
	log.Info("catalog loaded", zap.Int("programs", len(programs)))

	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	hub := notifier.NewHub(log.Named("notifier"),
		time.Duration(cfg.Notifier.IntervalSeconds)*time.Second)

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	if cfg.Notifier.Enabled {
		go hub.Run(ctx)
	}

	srv, err := server.New(cfg, log, programs, db, hub)
	if err != nil {
		return err
	}

	return srv.ListenAndServe()
}
