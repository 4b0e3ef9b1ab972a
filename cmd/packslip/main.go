// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the packslip CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/grademint/packslip/internal/settings"
)

// version is set at build time via ldflags.
var version = "dev"

// loadedSettings holds seller settings loaded from .settings/ at startup.
var loadedSettings map[string]string

// settingDefault returns fallback if set, the loaded setting for key
// otherwise, and "" when neither exists.
func settingDefault(key, fallback string) string {
	if fallback != "" {
		return fallback
	}
	if v, ok := loadedSettings[key]; ok {
		return v
	}
	return ""
}

// rootCmd is the base command for the packslip CLI.
var rootCmd = &cobra.Command{
	Use:   "packslip",
	Short: "Turn marketplace order exports into packing slips and pull sheets",
	Long: `packslip parses the multi-order PDF export a trading-card marketplace
produces after a sale, reassembles the individual orders, and renders two
documents sized for 4x6in thermal label printers: one packing slip per
order merged into a single PDF, and an aggregated pull sheet listing every
card to retrieve from inventory.

Parsed orders can also be exported as an XLSX workbook, dumped as YAML,
and recorded to a local SQLite history database.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		s, err := settings.Load(".settings/")
		if err != nil {
			return err
		}
		loadedSettings = s
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./packslip.yaml or ~/.config/packslip/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("packslip")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "packslip"))
		}
	}

	viper.SetEnvPrefix("PACKSLIP")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
