// Command geotool runs maintenance jobs against the location database.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"location-api/internal/config"
	"location-api/internal/logging"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "geotool",
	Short: "maintenance jobs for the location database",
	Long: `
geotool seeds the geocoding cache from CSV files and backfills coordinates
for listings that were saved with an address only.
`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "configs", "directory containing app.env")
}

func loadConfig() (config.Config, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return cfg, err
	}
	logging.Setup(cfg.LogLevel, cfg.Environment)
	return cfg, nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		log.Error().Err(err).Msg("geotool failed")
		stop()
		os.Exit(1)
	}
}
