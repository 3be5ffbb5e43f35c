package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/wyhuang/stocktake/internal/model"
	"github.com/wyhuang/stocktake/internal/validate"
)

var categoryFlagDescription string

// categoryCmd groups category management subcommands.
var categoryCmd = &cobra.Command{
	Use:     "category",
	Aliases: []string{"cat", "c"},
	Short:   "Manage categories",
}

var categoryListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List all categories",
	RunE:    runCategoryList,
}

var categoryAddCmd = &cobra.Command{
	Use:   "add NAME",
	Short: "Create a new category",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runCategoryAdd,
}

var categoryRmCmd = &cobra.Command{
	Use:               "rm NAME",
	Aliases:           []string{"remove", "delete"},
	Short:             "Delete a category and all its assets",
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: completeCategories,
	RunE:              runCategoryRm,
}

func init() {
	categoryAddCmd.Flags().StringVarP(&categoryFlagDescription, "description", "d", "",
		"Optional category description")

	categoryCmd.AddCommand(categoryListCmd)
	categoryCmd.AddCommand(categoryAddCmd)
	categoryCmd.AddCommand(categoryRmCmd)
	rootCmd.AddCommand(categoryCmd)
}

func runCategoryList(cmd *cobra.Command, args []string) error {
	categories, err := ctx.CategoryRepo.List()
	if err != nil {
		return err
	}

	counts := make(map[string]int, len(categories))
	for _, c := range categories {
		n, err := ctx.AssetRepo.CountByCategory(c.ID)
		if err != nil {
			return err
		}
		counts[c.ID] = n
	}

	if ctx.IsJSON() {
		return ctx.JSONFormatter().PrintCategories(categories, counts)
	}
	ctx.CLIFormatter().PrintCategoryList(categories, counts)
	return nil
}

func runCategoryAdd(cmd *cobra.Command, args []string) error {
	name, err := validate.CategoryName(strings.Join(args, " "))
	if err != nil {
		return err
	}

	category := model.NewCategory(model.NewID(), name, validate.SanitizeNote(categoryFlagDescription))
	if err := ctx.CategoryRepo.Create(category); err != nil {
		return err
	}

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(map[string]string{"status": "created", "id": category.ID})
	}
	ctx.CLIFormatter().Success("Created category " + category.Name)
	return nil
}

func runCategoryRm(cmd *cobra.Command, args []string) error {
	category, err := resolveCategory(args[0])
	if err != nil {
		return err
	}

	deleted, err := ctx.AssetRepo.CountByCategory(category.ID)
	if err != nil {
		return err
	}
	if err := ctx.CategoryRepo.Delete(category.ID, ctx.AssetRepo); err != nil {
		return err
	}

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(map[string]interface{}{
			"status": "deleted", "id": category.ID, "assets_deleted": deleted,
		})
	}
	ctx.CLIFormatter().Success("Deleted category " + category.Name)
	if deleted > 0 {
		ctx.CLIFormatter().Muted("  also removed its assets")
	}
	return nil
}

// resolveCategory accepts either a category id or an exact name.
func resolveCategory(arg string) (*model.Category, error) {
	if category, err := ctx.CategoryRepo.Get(arg); err == nil {
		return category, nil
	}
	return ctx.CategoryRepo.FindByName(arg)
}
