package output

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/wyhuang/stocktake/internal/model"
	"github.com/wyhuang/stocktake/internal/validate"
)

// Styles for CLI output.
var (
	// Colors
	colorPrimary = lipgloss.Color("#2563EB") // Blue
	colorMuted   = lipgloss.Color("#6B7280") // Gray
	colorWarning = lipgloss.Color("#F59E0B") // Yellow
	colorError   = lipgloss.Color("#EF4444") // Red
	colorSuccess = lipgloss.Color("#10B981") // Green

	// Styles
	styleTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary)

	styleSuccess = lipgloss.NewStyle().
			Foreground(colorSuccess)

	styleWarning = lipgloss.NewStyle().
			Foreground(colorWarning)

	styleError = lipgloss.NewStyle().
			Foreground(colorError)

	styleMuted = lipgloss.NewStyle().
			Foreground(colorMuted)

	styleCategory = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary)

	styleCode = lipgloss.NewStyle().
			Foreground(colorSuccess)

	styleNote = lipgloss.NewStyle().
			Italic(true).
			Foreground(colorMuted)
)

// CLIFormatter provides CLI-specific formatting.
type CLIFormatter struct {
	*Formatter
}

// NewCLIFormatter creates a new CLI formatter.
func NewCLIFormatter(f *Formatter) *CLIFormatter {
	return &CLIFormatter{Formatter: f}
}

// Title prints a title.
func (c *CLIFormatter) Title(text string) {
	if c.IsColorEnabled() {
		c.Println(styleTitle.Render(text))
	} else {
		c.Println(text)
	}
}

// Success prints a success message.
func (c *CLIFormatter) Success(text string) {
	if c.IsColorEnabled() {
		c.Println(styleSuccess.Render("✓ " + text))
	} else {
		c.Println("✓ " + text)
	}
}

// Warning prints a warning message.
func (c *CLIFormatter) Warning(text string) {
	if c.IsColorEnabled() {
		c.Println(styleWarning.Render("⚠ " + text))
	} else {
		c.Println("⚠ " + text)
	}
}

// Error prints an error message.
func (c *CLIFormatter) Error(text string) {
	if c.IsColorEnabled() {
		c.Println(styleError.Render("✗ " + text))
	} else {
		c.Println("✗ " + text)
	}
}

// Muted prints muted text.
func (c *CLIFormatter) Muted(text string) {
	if c.IsColorEnabled() {
		c.Println(styleMuted.Render(text))
	} else {
		c.Println(text)
	}
}

// CategoryName formats a category name.
func (c *CLIFormatter) CategoryName(name string) string {
	if c.IsColorEnabled() {
		return styleCategory.Render(name)
	}
	return name
}

// AssetCode formats a user-facing asset code.
func (c *CLIFormatter) AssetCode(code string) string {
	if code == "" {
		code = "-"
	}
	if c.IsColorEnabled() {
		return styleCode.Render(code)
	}
	return code
}

// Note formats a note.
func (c *CLIFormatter) Note(text string) string {
	if c.IsColorEnabled() {
		return styleNote.Render(text)
	}
	return text
}

// PrintCategoryList prints categories with their asset counts.
func (c *CLIFormatter) PrintCategoryList(categories []*model.Category, counts map[string]int) {
	if len(categories) == 0 {
		c.Muted("No categories yet. Use 'stocktake category add <name>' to create one.")
		return
	}

	for _, cat := range categories {
		line := fmt.Sprintf("%s  %s", c.CategoryName(cat.Name), c.Note(fmt.Sprintf("(%d assets)", counts[cat.ID])))
		if cat.Description != "" {
			line += "  " + c.Note(cat.Description)
		}
		c.Println(line)
		c.Muted("  id: " + cat.ID)
	}
}

// PrintAssetList prints a table of assets for one category.
func (c *CLIFormatter) PrintAssetList(assets []*model.Asset) {
	if len(assets) == 0 {
		c.Muted("No assets in this category.")
		return
	}

	for i, a := range assets {
		name := validate.TruncateString(a.Name, 40)
		c.Printf("%3d. %-40s %s\n", i+1, name, c.AssetCode(a.AssetID))
		if a.SerialNumber != "" {
			c.Muted("     SN: " + a.SerialNumber)
		}
		if a.Location != "" {
			c.Muted("     Location: " + a.Location)
		}
		if len(a.Photos) > 0 {
			c.Muted(fmt.Sprintf("     Photos: %d", len(a.Photos)))
		}
	}
	c.Println()
	c.Muted(fmt.Sprintf("%d assets", len(assets)))
}

// PrintAsset prints full details for a single asset.
func (c *CLIFormatter) PrintAsset(asset *model.Asset) {
	c.Title(asset.Name)
	c.Printf("  Code:     %s\n", c.AssetCode(asset.AssetID))
	c.Printf("  Serial:   %s\n", orDash(asset.SerialNumber))
	c.Printf("  Location: %s\n", orDash(asset.Location))
	c.Printf("  Photos:   %d\n", len(asset.Photos))
	c.Printf("  Created:  %s\n", asset.Created().Format("2006-01-02 15:04"))
	c.Printf("  Updated:  %s\n", asset.Updated().Format("2006-01-02 15:04"))
	if asset.Note != "" {
		c.Println("  Note:     " + c.Note(asset.Note))
	}
}

// PrintSettings prints the accumulated suggestion history.
func (c *CLIFormatter) PrintSettings(settings *model.Settings, nextCode string) {
	c.Title("Suggestion history")
	c.Printf("  Names:     %d\n", len(settings.SavedNames))
	c.Printf("  Locations: %d\n", len(settings.SavedLocations))
	c.Printf("  Prefixes:  %d\n", len(settings.SavedPrefixes))
	if nextCode != "" {
		c.Printf("  Next code: %s\n", c.AssetCode(nextCode))
	}
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
