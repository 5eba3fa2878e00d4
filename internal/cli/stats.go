package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/outfitkit/outfitkit/internal/tables"
)

var statsFormat string

// statsCmd represents the stats command
var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show colour table statistics",
	Long: `Show statistics about the built-in colour knowledge tables.

Reports how many named colours, compatibility rules, category pairing
rules, harmony types, seasonal palettes and style sets are loaded.`,
	RunE: runStats,
}

func init() {
	statsCmd.Flags().StringVarP(&statsFormat, "format", "f", "text", "output format (text, json)")
}

// runStats executes the stats command.
func runStats(cmd *cobra.Command, args []string) error {
	stats := tables.NewStore().Stats()

	switch statsFormat {
	case "json":
		out, err := json.MarshalIndent(stats, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode stats: %w", err)
		}
		fmt.Println(string(out))
	case "text":
		table := NewTable([]string{"Table", "Entries"})
		table.AddRow([]string{"named colours", fmt.Sprintf("%d", stats.NamedColours)})
		table.AddRow([]string{"compatibility rules", fmt.Sprintf("%d", stats.CompatibilityRules)})
		table.AddRow([]string{"category pairing rules", fmt.Sprintf("%d", stats.CategoryRules)})
		table.AddRow([]string{"harmony types", fmt.Sprintf("%d", stats.HarmonyTypes)})
		table.AddRow([]string{"seasonal palettes", fmt.Sprintf("%d", stats.Seasons)})
		table.AddRow([]string{"style sets", fmt.Sprintf("%d", stats.Styles)})
		fmt.Print(table.Render())
	default:
		return fmt.Errorf("invalid format: %s (valid: text, json)", statsFormat)
	}
	return nil
}
