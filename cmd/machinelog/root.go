// ABOUTME: Root command wiring for the machinelog CLI.
// ABOUTME: Loads configuration, opens the database, and sets up logging.

package main

import (
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/harper/machinelog/internal/config"
	"github.com/harper/machinelog/internal/db"
	"github.com/harper/machinelog/internal/logging"
)

var (
	cfg    *config.Config
	dbConn *sql.DB
)

var rootCmd = &cobra.Command{
	Use:     "machinelog",
	Short:   "Track maintenance interventions on industrial machines",
	Long:    `machinelog records who fixed what on which machine, keeps the supporting files, and finds past interventions similar to a new problem.`,
	Version: fmt.Sprintf("%s (%s, %s)", version, commit, date),

	SilenceUsage:  true,
	SilenceErrors: false,

	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		verbose, _ := cmd.Flags().GetBool("verbose")
		logging.Setup(verbose)

		configPath, _ := cmd.Flags().GetString("config")
		if configPath == "" {
			configPath = config.DefaultPath()
		}
		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return err
		}

		if dbPath, _ := cmd.Flags().GetString("db"); dbPath != "" {
			cfg.DatabasePath = dbPath
		}

		dbConn, err = db.Open(cfg.DatabasePath)
		if err != nil {
			return err
		}
		slog.Debug("database ready", "path", cfg.DatabasePath)
		return nil
	},

	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if dbConn != nil {
			return dbConn.Close()
		}
		return nil
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "config file (default $XDG_CONFIG_HOME/machinelog/config.yaml)")
	rootCmd.PersistentFlags().String("db", "", "database file (overrides config)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "enable debug logging")
}
