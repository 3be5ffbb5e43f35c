package cmd

import (
	"encoding/json"
	"os"
	"time"

	"github.com/spf13/cobra"

	apperrors "github.com/wyhuang/stocktake/internal/errors"
	"github.com/wyhuang/stocktake/internal/model"
	"github.com/wyhuang/stocktake/internal/report"
)

// Export command flags.
var (
	exportFlagFormat string
	exportFlagBackup bool
	exportFlagOutput string
)

// exportCmd represents the export command.
var exportCmd = &cobra.Command{
	Use:     "export [CATEGORY]",
	Aliases: []string{"ex", "x"},
	Short:   "Export a category report or a database backup",
	Long: `Render a printable report for a category, or dump the whole
database as JSON.

Examples:
  stocktake export "Warehouse A"
  stocktake export "Warehouse A" --format html -o warehouse.html
  stocktake export --backup -o backup.json`,
	Args:              cobra.MaximumNArgs(1),
	ValidArgsFunction: completeCategories,
	RunE:              runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&exportFlagFormat, "format", "F", "pdf", "Report format: pdf, html")
	exportCmd.Flags().BoolVarP(&exportFlagBackup, "backup", "b", false, "Full database backup as JSON")
	exportCmd.Flags().StringVarP(&exportFlagOutput, "output", "o", "", "Output file (default derived from category and date)")

	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	if exportFlagBackup {
		return runBackup()
	}
	if len(args) == 0 {
		return apperrors.ErrNoCategorySelected
	}

	category, err := resolveCategory(args[0])
	if err != nil {
		return err
	}
	assets, err := ctx.AssetRepo.ListByCategory(category.ID)
	if err != nil {
		return err
	}

	renderer := report.ForFormat(exportFlagFormat)
	if renderer == nil {
		return apperrors.NewUserError(
			"unknown report format: "+exportFlagFormat,
			"Use --format pdf or --format html.")
	}

	doc := report.Build(category, assets)
	payload, err := renderer.Render(doc)
	if err != nil {
		return err
	}

	path := exportFlagOutput
	if path == "" {
		path = report.Filename(category.Name, time.Now(), renderer.Ext())
	}
	if err := os.WriteFile(path, payload, 0o644); err != nil {
		return err
	}
	ctx.Debugf("wrote %s (%d bytes)", path, len(payload))

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(map[string]any{
			"status": "exported",
			"path":   path,
			"assets": len(assets),
		})
	}
	ctx.CLIFormatter().Success("Report written to " + path)
	return nil
}

func runBackup() error {
	categories, err := ctx.CategoryRepo.List()
	if err != nil {
		return err
	}
	assets, err := ctx.AssetRepo.List()
	if err != nil {
		return err
	}
	settings, err := ctx.SettingsRepo.Get()
	if err != nil {
		return err
	}

	backup := struct {
		Version    string            `json:"version"`
		ExportedAt string            `json:"exported_at"`
		Categories []*model.Category `json:"categories"`
		Assets     []*model.Asset    `json:"assets"`
		Settings   *model.Settings   `json:"settings"`
	}{
		Version:    "1",
		ExportedAt: time.Now().Format(time.RFC3339),
		Categories: categories,
		Assets:     assets,
		Settings:   settings,
	}

	var writer *os.File
	if exportFlagOutput != "" {
		f, err := os.Create(exportFlagOutput)
		if err != nil {
			return err
		}
		defer f.Close()
		writer = f
	} else {
		writer = os.Stdout
	}

	encoder := json.NewEncoder(writer)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(backup); err != nil {
		return err
	}

	if exportFlagOutput != "" && !ctx.IsJSON() {
		cli := ctx.CLIFormatter()
		cli.Success("Backup created: " + exportFlagOutput)
		cli.Printf("  Categories: %d\n", len(categories))
		cli.Printf("  Assets: %d\n", len(assets))
	}

	return nil
}
