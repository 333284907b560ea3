package cmd

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/Tiliavir/foretab/internal/config"
	"github.com/Tiliavir/foretab/internal/logging"
)

var (
	configPath string
	logLevel   string

	// appConfig and logger are set up before any subcommand runs.
	appConfig = config.Default()
	logger    = zerolog.Nop()
)

var rootCmd = &cobra.Command{
	Use:   "foretab",
	Short: "Foretab – list the times a cron schedule fires",
	Long: `foretab expands five-field cron schedules (minute hour day-of-month
month day-of-week) into every matching timestamp within a date range.
Settings are read from ~/.foretab/config.json.`,
	SilenceErrors:     true,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

// Execute is the entry point called from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default ~/.foretab/config.json)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(datesCmd)
	rootCmd.AddCommand(fieldCmd)
}

// setup loads the config and builds the logger. Flags win over the config.
func setup(cmd *cobra.Command, args []string) error {
	var err error
	if configPath != "" {
		appConfig, err = config.LoadFile(configPath)
	} else {
		appConfig, err = config.Load()
	}
	if err != nil {
		return err
	}

	level := appConfig.LogLevel
	if cmd.Flags().Changed("log-level") {
		level = logLevel
	}
	logger = logging.New(cmd.ErrOrStderr(), level)
	logger.Debug().Str("config", configPath).Str("level", level).Msg("configuration loaded")
	return nil
}
