package cmd

import (
	"github.com/spf13/cobra"

	"github.com/wyhuang/stocktake/internal/report"
	"github.com/wyhuang/stocktake/internal/ui"
)

var browseFlagExportDir string

// browseCmd represents the browse command.
var browseCmd = &cobra.Command{
	Use:     "browse",
	Aliases: []string{"b", "tui", "ui"},
	Short:   "Open the interactive inventory browser",
	Long: `Open the interactive terminal UI for browsing and editing the
inventory.

Keyboard controls follow the help bar on each screen:
  categories  enter open, a add, d delete, s settings, q quit
  asset list  enter edit, a add, d delete, v photos, / search, e export
  asset form  ctrl+s save, tab next field, ctrl+o suggest, esc cancel

Examples:
  stocktake
  stocktake browse
  stocktake browse --export-dir ~/reports`,
	RunE: runBrowse,
}

func init() {
	browseCmd.Flags().StringVar(&browseFlagExportDir, "export-dir", "",
		"Directory for exported reports (default: working directory)")
	rootCmd.AddCommand(browseCmd)
}

func runBrowse(cmd *cobra.Command, args []string) error {
	config := ui.Config{
		CategoryRepo: ctx.CategoryRepo,
		AssetRepo:    ctx.AssetRepo,
		SettingsRepo: ctx.SettingsRepo,
		Renderer:     report.NewPDFRenderer(),
		ExportDir:    browseFlagExportDir,
	}
	return ui.Run(config)
}
