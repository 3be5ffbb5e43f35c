package cmd

import (
	"github.com/spf13/cobra"

	"github.com/wyhuang/stocktake/internal/output"
	"github.com/wyhuang/stocktake/internal/suggest"
)

// settingsCmd shows the accumulated suggestion history.
var settingsCmd = &cobra.Command{
	Use:     "settings",
	Aliases: []string{"s"},
	Short:   "Show saved names, locations and code prefixes",
	Long: `Show the suggestion history accumulated from saved assets: names,
locations, asset-code prefixes, and the next suggested asset code.`,
	RunE: runSettings,
}

var settingsClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Clear the suggestion history",
	RunE:  runSettingsClear,
}

func init() {
	settingsCmd.AddCommand(settingsClearCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettings(cmd *cobra.Command, args []string) error {
	settings, err := ctx.SettingsRepo.Get()
	if err != nil {
		return err
	}

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(&output.SettingsResponse{
			SavedNames:     settings.SavedNames,
			SavedLocations: settings.SavedLocations,
			SavedPrefixes:  settings.SavedPrefixes,
			NextAssetCode:  suggest.FromSettings(settings),
		})
	}
	ctx.CLIFormatter().PrintSettings(settings, suggest.FromSettings(settings))
	return nil
}

func runSettingsClear(cmd *cobra.Command, args []string) error {
	settings, err := ctx.SettingsRepo.Get()
	if err != nil {
		return err
	}

	settings.SavedNames = nil
	settings.SavedLocations = nil
	settings.SavedPrefixes = nil
	settings.LastUsedPrefix = ""
	settings.LastUsedSequence = 0
	if err := ctx.SettingsRepo.Update(settings); err != nil {
		return err
	}

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(map[string]string{"status": "cleared"})
	}
	ctx.CLIFormatter().Success("Suggestion history cleared")
	return nil
}
