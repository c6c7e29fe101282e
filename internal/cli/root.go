// internal/cli/root.go

// Package glossgen wires the cobra command tree for the glossgen CLI.
package glossgen

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"glossgen/internal/appconfig"
	"glossgen/internal/logging"
)

var (
	cfgFile       string
	currentConfig *appconfig.Config
)

var rootCmd = &cobra.Command{
	Use:   "glossgen",
	Short: "glossgen — audience-tailored glossaries for technical documents",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// 1) Load the config file (a missing file means defaults).
		cfg, err := appconfig.Load(cfgFile)
		if err != nil {
			return err
		}

		// 2) Flags the user actually set override the file (flags > config >
		//    defaults). Viper holds the bound flag values.
		if cmd.Flags().Changed("debug") {
			cfg.Debug = viper.GetBool("debug")
		}
		if cmd.Flags().Changed("noProgress") {
			cfg.NoProgress = viper.GetBool("noProgress")
		}
		if cmd.Flags().Changed("logFile") {
			cfg.LogFile = viper.GetString("logFile")
		}

		// 3) Materialize the merged configuration into a stable snapshot for
		//    the subcommands.
		currentConfig = &cfg

		if err := logging.Init(cfg.LogFilePath()); err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}

		return nil
	},
}

// Execute runs the root command. Called once from main.
func Execute() {
	defer logging.Close()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", appconfig.DefaultConfigPath, "config file (e.g., config/config.json)")

	rootCmd.PersistentFlags().Bool("debug", false, "enable debug output")
	rootCmd.PersistentFlags().Bool("noProgress", false, "disable progress indicators")
	rootCmd.PersistentFlags().String("logFile", "", "path to the log file")

	_ = viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	_ = viper.BindPFlag("noProgress", rootCmd.PersistentFlags().Lookup("noProgress"))
	_ = viper.BindPFlag("logFile", rootCmd.PersistentFlags().Lookup("logFile"))
}

// getConfig returns the loaded application configuration for subcommands.
func getConfig() *appconfig.Config {
	if currentConfig == nil {
		return &appconfig.Config{}
	}
	return currentConfig
}
