package main

import (
	"clarity/internal/di"
	"clarity/internal/providers"
	"clarity/internal/structures"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var flags structures.CliFlags

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "clarityd",
	Short: "Clarity reputation and subscription ledger",
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := di.InitApp(&flags); err != nil {
			return fmt.Errorf("clarityd: %w", err)
		}
		return nil
	},
	SilenceUsage: true,
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect configuration",
}

var configCheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Load and validate the configuration file",
	RunE: func(cmd *cobra.Command, args []string) error {
		conf, err := providers.NewConfigProvider(&flags)
		if err != nil {
			return fmt.Errorf("invalid configuration: %w", err)
		}
		fmt.Printf("Configuration %s is valid\n", conf.Path)
		fmt.Printf("Listen:      %s:%d\n", conf.WebServer.Host, conf.WebServer.Port)
		fmt.Printf("Persistence: %s\n", conf.Persistence.Driver)
		fmt.Printf("Fee:         %d bps\n", conf.Ledger.FeeBps)
		fmt.Printf("Keeper:      every %s\n", conf.Ledger.KeeperInterval)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flags.ConfigPath, "config", "c", "config/config.yaml", "path to the YAML config file")
	rootCmd.PersistentFlags().BoolVarP(&flags.DebugMode, "debug", "d", false, "debug logging to the console")

	configCmd.AddCommand(configCheckCmd)
	rootCmd.AddCommand(configCmd)
}
