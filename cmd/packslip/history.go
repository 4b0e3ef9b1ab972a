// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/grademint/packslip/internal/history"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Inspect the order history database",
	Long: `History lists orders previously recorded by pack --history-db, newest
first, with marketplace, order date, and item counts.`,
	RunE: runHistory,
}

func runHistory(cmd *cobra.Command, args []string) error {
	dbPath, _ := cmd.Flags().GetString("db")
	if dbPath == "" {
		dbPath = viper.GetString("history_db")
	}
	if dbPath == "" {
		dbPath = "packslip-history.db"
	}

	store, err := history.NewStore(dbPath)
	if err != nil {
		return err
	}
	defer store.Close()

	return store.List(context.Background(), os.Stdout)
}

func init() {
	historyCmd.Flags().String("db", "", "history database path (default: ./packslip-history.db)")

	rootCmd.AddCommand(historyCmd)
}
