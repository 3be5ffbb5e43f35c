package cmd

import (
	"strings"

	"github.com/spf13/cobra"
)

// completeCategories returns a completion function for category names.
func completeCategories(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if ctx == nil || ctx.CategoryRepo == nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	categories, err := ctx.CategoryRepo.List()
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	var completions []string
	for _, c := range categories {
		if strings.HasPrefix(strings.ToLower(c.Name), strings.ToLower(toComplete)) {
			entry := c.Name
			if c.Description != "" {
				entry += "\t" + c.Description
			}
			completions = append(completions, entry)
		}
	}
	return completions, cobra.ShellCompDirectiveNoFileComp
}
