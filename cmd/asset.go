package cmd

import (
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/wyhuang/stocktake/internal/imaging"
	"github.com/wyhuang/stocktake/internal/model"
	"github.com/wyhuang/stocktake/internal/output"
	"github.com/wyhuang/stocktake/internal/ui"
	"github.com/wyhuang/stocktake/internal/validate"
)

// Asset command flags.
var (
	assetFlagName     string
	assetFlagCode     string
	assetFlagSerial   string
	assetFlagLocation string
	assetFlagNote     string
	assetFlagPhotos   []string
	assetFlagSearch   string
)

// assetCmd groups asset management subcommands.
var assetCmd = &cobra.Command{
	Use:     "asset",
	Aliases: []string{"a"},
	Short:   "Manage assets",
}

var assetListCmd = &cobra.Command{
	Use:               "list CATEGORY",
	Aliases:           []string{"ls"},
	Short:             "List assets in a category",
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: completeCategories,
	RunE:              runAssetList,
}

var assetAddCmd = &cobra.Command{
	Use:               "add CATEGORY",
	Short:             "Add an asset to a category",
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: completeCategories,
	RunE:              runAssetAdd,
}

var assetEditCmd = &cobra.Command{
	Use:   "edit ASSET_ID",
	Short: "Update an existing asset",
	Long: `Update fields of an existing asset. Only the flags given are
changed; --photo appends photos to the existing sequence.`,
	Args: cobra.ExactArgs(1),
	RunE: runAssetEdit,
}

var assetRmCmd = &cobra.Command{
	Use:     "rm ASSET_ID",
	Aliases: []string{"remove", "delete"},
	Short:   "Delete an asset",
	Args:    cobra.ExactArgs(1),
	RunE:    runAssetRm,
}

var assetShowCmd = &cobra.Command{
	Use:   "show ASSET_ID",
	Short: "Show full details for an asset",
	Args:  cobra.ExactArgs(1),
	RunE:  runAssetShow,
}

func init() {
	for _, c := range []*cobra.Command{assetAddCmd, assetEditCmd} {
		c.Flags().StringVarP(&assetFlagName, "name", "n", "", "Asset name")
		c.Flags().StringVarP(&assetFlagCode, "code", "c", "", "User-facing asset code")
		c.Flags().StringVar(&assetFlagSerial, "serial", "", "Serial number")
		c.Flags().StringVarP(&assetFlagLocation, "location", "l", "", "Location")
		c.Flags().StringVar(&assetFlagNote, "note", "", "Free-text note")
		c.Flags().StringArrayVarP(&assetFlagPhotos, "photo", "p", nil,
			"Photo file to attach (repeatable, JPEG/PNG)")
	}
	assetAddCmd.MarkFlagRequired("name")

	assetListCmd.Flags().StringVarP(&assetFlagSearch, "search", "s", "",
		"Filter by substring across name, code, location and serial")

	assetCmd.AddCommand(assetListCmd)
	assetCmd.AddCommand(assetAddCmd)
	assetCmd.AddCommand(assetEditCmd)
	assetCmd.AddCommand(assetRmCmd)
	assetCmd.AddCommand(assetShowCmd)
	rootCmd.AddCommand(assetCmd)
}

func runAssetList(cmd *cobra.Command, args []string) error {
	category, err := resolveCategory(args[0])
	if err != nil {
		return err
	}

	assets, err := ctx.AssetRepo.ListByCategory(category.ID)
	if err != nil {
		return err
	}
	assets = ui.FilterAssets(assets, assetFlagSearch)

	if ctx.IsJSON() {
		return ctx.JSONFormatter().PrintAssets(category.ID, assets)
	}
	ctx.CLIFormatter().Title(category.Name)
	ctx.CLIFormatter().PrintAssetList(assets)
	return nil
}

func runAssetAdd(cmd *cobra.Command, args []string) error {
	category, err := resolveCategory(args[0])
	if err != nil {
		return err
	}

	asset := model.NewAsset(model.NewID(), category.ID)
	if err := applyAssetFlags(cmd, asset); err != nil {
		return err
	}
	if err := saveAssetRecord(asset); err != nil {
		return err
	}

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(map[string]string{"status": "created", "id": asset.ID})
	}
	ctx.CLIFormatter().Success("Added " + asset.Name)
	return nil
}

func runAssetEdit(cmd *cobra.Command, args []string) error {
	asset, err := ctx.AssetRepo.Get(args[0])
	if err != nil {
		return err
	}

	if err := applyAssetFlags(cmd, asset); err != nil {
		return err
	}
	if err := saveAssetRecord(asset); err != nil {
		return err
	}

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(map[string]string{"status": "updated", "id": asset.ID})
	}
	ctx.CLIFormatter().Success("Updated " + asset.Name)
	return nil
}

func runAssetRm(cmd *cobra.Command, args []string) error {
	asset, err := ctx.AssetRepo.Get(args[0])
	if err != nil {
		return err
	}
	if err := ctx.AssetRepo.Delete(asset.ID); err != nil {
		return err
	}

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(map[string]string{"status": "deleted", "id": asset.ID})
	}
	ctx.CLIFormatter().Success("Deleted " + asset.Name)
	return nil
}

func runAssetShow(cmd *cobra.Command, args []string) error {
	asset, err := ctx.AssetRepo.Get(args[0])
	if err != nil {
		return err
	}

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(output.NewAssetOutput(asset))
	}
	ctx.CLIFormatter().PrintAsset(asset)
	return nil
}

// applyAssetFlags copies the flags the user actually set onto the asset
// and attaches any photos.
func applyAssetFlags(cmd *cobra.Command, asset *model.Asset) error {
	if cmd.Flags().Changed("name") {
		name := validate.SanitizeName(assetFlagName)
		if err := validate.Name(name); err != nil {
			return err
		}
		asset.Name = name
	}
	if cmd.Flags().Changed("code") {
		code := strings.TrimSpace(assetFlagCode)
		if err := validate.AssetCode(code); err != nil {
			return err
		}
		asset.AssetID = code
	}
	if cmd.Flags().Changed("serial") {
		asset.SerialNumber = strings.TrimSpace(assetFlagSerial)
	}
	if cmd.Flags().Changed("location") {
		location := strings.TrimSpace(assetFlagLocation)
		if err := validate.Location(location); err != nil {
			return err
		}
		asset.Location = location
	}
	if cmd.Flags().Changed("note") {
		note := validate.SanitizeNote(assetFlagNote)
		if err := validate.Note(note); err != nil {
			return err
		}
		asset.Note = note
	}

	for _, path := range assetFlagPhotos {
		file, err := os.Open(path)
		if err != nil {
			return err
		}
		payload, err := imaging.Process(file)
		file.Close()
		if err != nil {
			return err
		}
		asset.Photos = append(asset.Photos, payload)
	}

	return nil
}

// saveAssetRecord persists the asset and feeds the suggestion history.
func saveAssetRecord(asset *model.Asset) error {
	if err := ctx.AssetRepo.Save(asset); err != nil {
		return err
	}
	return ctx.SettingsRepo.Record(asset)
}
