package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"pharmatool/internal/config"
	"pharmatool/internal/envfile"
	"pharmatool/internal/store"
)

var (
	cfg    config.Config
	logger zerolog.Logger

	flagDB      string
	flagEnvFile string
)

var rootCmd = &cobra.Command{
	Use:   "pharmatool",
	Short: "Maintenance toolkit for the Blue Pharma bot database",
	Long: `Operational commands for the pharmacy Telegram bot: order history
cleanup, bulk upload templates and imports, admin setup, contact and
schema inspection, and the fuzzy medicine search used by the bot.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		envPath := flagEnvFile
		if envPath == "" {
			envPath = ".env"
		}
		if err := envfile.Load(envPath); err != nil {
			return err
		}
		cfg = config.Load()
		if flagDB != "" {
			cfg.DatabasePath = flagDB
		}
		if flagEnvFile != "" {
			cfg.EnvFile = flagEnvFile
		}
		logger = config.SetupLogger(cfg)
		return nil
	},
}

func openStore() (*store.Store, error) {
	s, err := store.Open(cfg.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("open database %s: %w", cfg.DatabasePath, err)
	}
	return s, nil
}

func main() {
	rootCmd.PersistentFlags().StringVar(&flagDB, "db", "", "database path (default from DATABASE_PATH)")
	rootCmd.PersistentFlags().StringVar(&flagEnvFile, "env-file", "", "settings file (default .env)")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
