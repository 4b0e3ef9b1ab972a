// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.yaml.in/yaml/v3"

	"github.com/grademint/packslip/internal/export"
	"github.com/grademint/packslip/internal/history"
	"github.com/grademint/packslip/internal/parse"
	"github.com/grademint/packslip/internal/progress"
	"github.com/grademint/packslip/internal/pull"
	"github.com/grademint/packslip/internal/render"
	"github.com/grademint/packslip/internal/settings"
	"github.com/grademint/packslip/pkg/types"
)

var packCmd = &cobra.Command{
	Use:   "pack [order-export.pdf]",
	Short: "Parse an order export and render packing slips and a pull sheet",
	Long: `Pack reads a marketplace order-export PDF, reassembles the orders it
contains, and writes a merged packing-slip PDF and an aggregated pull
sheet to the output directory. Either document can be suppressed, the
pull sheet can additionally be exported as an XLSX workbook, and parsed
orders can be dumped as YAML or recorded to the history database.`,
	Args: cobra.ExactArgs(1),
	RunE: runPack,
}

func runPack(cmd *cobra.Command, args []string) error {
	inputPath := args[0]
	if err := parse.ValidateInputPath(inputPath); err != nil {
		return err
	}

	cfg := renderConfigFromFlags(cmd)
	if cfg.CompanyName == "" {
		return fmt.Errorf("company name required: set --company-name, PACKSLIP_COMPANY_NAME, or .settings/%s", settings.KeyCompanyName)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	parser := parse.New(cfg.Marketplace, progress.NewWriter(os.Stderr, "parsing pages"), logger)
	orders, err := parser.ParseFile(inputPath)
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "Parsed %d orders from %s\n", len(orders), filepath.Base(inputPath))

	if dumpPath, _ := cmd.Flags().GetString("dump-orders"); dumpPath != "" {
		if err := dumpOrdersYAML(orders, dumpPath); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "Dumped orders to %s\n", dumpPath)
	}

	noSlips, _ := cmd.Flags().GetBool("no-packing-slip")
	if !noSlips {
		tracker := progress.NewWriter(os.Stderr, "rendering slips")
		path, err := render.PackingSlips(orders, cfg, tracker, logger)
		if err != nil {
			return err
		}
		if path != "" {
			fmt.Fprintf(os.Stderr, "Wrote packing slips: %s\n", path)
		}
	}

	groups := pull.Aggregate(orders)

	noPull, _ := cmd.Flags().GetBool("no-pull-sheet")
	if !noPull {
		path, err := render.PullSheet(groups, cfg, logger)
		if err != nil {
			return err
		}
		if path != "" {
			fmt.Fprintf(os.Stderr, "Wrote pull sheet: %s\n", path)
		}
	}

	if xlsx, _ := cmd.Flags().GetBool("xlsx"); xlsx {
		path, err := export.PullSheetXLSX(groups, cfg.OutputDir, cfg.Marketplace, logger)
		if err != nil {
			return err
		}
		if path != "" {
			fmt.Fprintf(os.Stderr, "Wrote workbook: %s\n", path)
		}
	}

	if dbPath := historyDBPath(cmd); dbPath != "" {
		if err := recordHistory(dbPath, orders); err != nil {
			return err
		}
	}

	return nil
}

// renderConfigFromFlags resolves render settings with flag > environment >
// config file > settings directory precedence.
func renderConfigFromFlags(cmd *cobra.Command) types.RenderConfig {
	outputDir, _ := cmd.Flags().GetString("output-dir")
	if !cmd.Flags().Changed("output-dir") {
		if v := viper.GetString("output_dir"); v != "" {
			outputDir = v
		} else if v := loadedSettings[settings.KeyOutputDir]; v != "" {
			outputDir = v
		}
	}

	companyName, _ := cmd.Flags().GetString("company-name")
	if companyName == "" {
		companyName = viper.GetString("company_name")
	}
	companyName = settingDefault(settings.KeyCompanyName, companyName)

	marketplace, _ := cmd.Flags().GetString("marketplace")
	if marketplace == "" {
		marketplace = viper.GetString("marketplace")
	}
	marketplace = settingDefault(settings.KeyDefaultMarketplace, marketplace)

	archive, _ := cmd.Flags().GetBool("archive")

	return types.RenderConfig{
		OutputDir:    outputDir,
		CompanyName:  companyName,
		Marketplace:  types.ParseMarketplace(marketplace),
		ArchiveSlips: archive,
	}
}

// historyDBPath resolves the history database path; empty disables
// recording.
func historyDBPath(cmd *cobra.Command) string {
	dbPath, _ := cmd.Flags().GetString("history-db")
	if dbPath == "" {
		dbPath = viper.GetString("history_db")
	}
	return dbPath
}

func recordHistory(dbPath string, orders []*types.Order) error {
	store, err := history.NewStore(dbPath)
	if err != nil {
		return err
	}
	defer store.Close()

	summary, err := store.Record(context.Background(), orders)
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "Recorded history: %d new, %d updated\n", summary.Inserted, summary.Updated)
	return nil
}

// dumpOrdersYAML writes the parsed orders to path for inspection and
// downstream tooling.
func dumpOrdersYAML(orders []*types.Order, path string) error {
	data, err := yaml.Marshal(orders)
	if err != nil {
		return fmt.Errorf("encoding orders: %w", err)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating dump directory: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing orders dump: %w", err)
	}
	return nil
}

func init() {
	packCmd.Flags().StringP("output-dir", "o", "./output", "directory for rendered documents")
	packCmd.Flags().String("company-name", "", "seller name printed on each packing slip")
	packCmd.Flags().String("marketplace", string(types.MarketplaceTCGplayer), "sales channel: eBay, TCG Player, PriceCharting, Mercari, or Other")
	packCmd.Flags().Bool("no-packing-slip", false, "skip rendering packing slips")
	packCmd.Flags().Bool("no-pull-sheet", false, "skip rendering the pull sheet")
	packCmd.Flags().Bool("archive", false, "also keep each per-order slip in the output directory")
	packCmd.Flags().Bool("xlsx", false, "also export the pull sheet as an XLSX workbook")
	packCmd.Flags().String("history-db", "", "record parsed orders to this SQLite database")
	packCmd.Flags().String("dump-orders", "", "write parsed orders as YAML to this path")

	rootCmd.AddCommand(packCmd)
}
