package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/outfitkit/outfitkit/internal/colour"
	"github.com/outfitkit/outfitkit/internal/tables"
)

var coloursPreview bool

// coloursCmd represents the colours command
var coloursCmd = &cobra.Command{
	Use:     "colours",
	Aliases: []string{"colors"},
	Short:   "Inspect the colour knowledge tables",
	Long: `Inspect the named colours and matching rules outfitkit works with.

Without a subcommand it lists the named colours. Subcommands dump the
compatibility, harmony, seasonal and style tables.`,
	RunE: runColoursList,
}

// coloursCompatCmd lists the colour compatibility table.
var coloursCompatCmd = &cobra.Command{
	Use:   "compat",
	Short: "List colour compatibility rules",
	RunE:  runColoursCompat,
}

// coloursHarmonyCmd lists the colour harmony table.
var coloursHarmonyCmd = &cobra.Command{
	Use:   "harmony",
	Short: "List colour harmony rules",
	RunE:  runColoursHarmony,
}

// coloursSeasonsCmd lists the seasonal palettes.
var coloursSeasonsCmd = &cobra.Command{
	Use:   "seasons",
	Short: "List seasonal colour palettes",
	RunE:  runColoursSeasons,
}

// coloursStylesCmd lists the style colour sets.
var coloursStylesCmd = &cobra.Command{
	Use:   "styles",
	Short: "List style colour sets",
	RunE:  runColoursStyles,
}

func init() {
	coloursCmd.PersistentFlags().BoolVar(&coloursPreview, "preview", false, "show colour previews in terminal")

	coloursCmd.AddCommand(coloursCompatCmd)
	coloursCmd.AddCommand(coloursHarmonyCmd)
	coloursCmd.AddCommand(coloursSeasonsCmd)
	coloursCmd.AddCommand(coloursStylesCmd)
}

// runColoursList prints every named colour with its hex value.
func runColoursList(cmd *cobra.Command, args []string) error {
	ts := tables.NewStore()

	if coloursPreview {
		for _, nc := range ts.NamedColours() {
			fmt.Println(colour.FormatColourWithLabel(nc.RGB, displayName(nc.Name), 4))
		}
		return nil
	}

	table := NewTable([]string{"Colour", "Hex", "RGB"})
	for _, nc := range ts.NamedColours() {
		table.AddRow([]string{
			displayName(nc.Name),
			nc.RGB.Hex(),
			fmt.Sprintf("%d, %d, %d", nc.RGB.R, nc.RGB.G, nc.RGB.B),
		})
	}
	fmt.Print(table.Render())
	return nil
}

// runColoursCompat prints the colour compatibility rules.
func runColoursCompat(cmd *cobra.Command, args []string) error {
	ts := tables.NewStore()

	table := NewTable([]string{"Colour", "Pairs With"})
	table.SetColumnMaxWidth(1, descriptionWidth())
	for _, nc := range ts.NamedColours() {
		matches, ok := ts.CompatibleColours(nc.Name)
		if !ok {
			continue
		}
		table.AddRow([]string{displayName(nc.Name), joinDisplayNames(matches)})
	}
	fmt.Print(table.Render())
	return nil
}

// runColoursHarmony prints the harmony rules per harmony type.
func runColoursHarmony(cmd *cobra.Command, args []string) error {
	ts := tables.NewStore()

	for i, harmony := range tables.HarmonyTypes() {
		if i > 0 {
			fmt.Println()
		}
		fmt.Printf("%s:\n", strings.ToUpper(string(harmony)[:1])+string(harmony)[1:])

		table := NewTable([]string{"Colour", "Matches"})
		table.SetColumnMaxWidth(1, descriptionWidth())
		for _, nc := range ts.NamedColours() {
			matches, ok := ts.HarmonyColours(harmony, nc.Name)
			if !ok {
				continue
			}
			table.AddRow([]string{displayName(nc.Name), joinDisplayNames(matches)})
		}
		fmt.Print(table.Render())
	}
	return nil
}

// runColoursSeasons prints the seasonal palettes.
func runColoursSeasons(cmd *cobra.Command, args []string) error {
	ts := tables.NewStore()

	table := NewTable([]string{"Season", "Colours"})
	table.SetColumnMaxWidth(1, descriptionWidth())
	for _, season := range tables.Seasons() {
		palette, ok := ts.SeasonalPalette(season)
		if !ok {
			continue
		}
		table.AddRow([]string{string(season), joinDisplayNames(palette)})
	}
	fmt.Print(table.Render())
	return nil
}

// runColoursStyles prints the style colour sets.
func runColoursStyles(cmd *cobra.Command, args []string) error {
	ts := tables.NewStore()

	table := NewTable([]string{"Style", "Colours"})
	table.SetColumnMaxWidth(1, descriptionWidth())
	for _, style := range ts.Styles() {
		table.AddRow([]string{style.Name, joinDisplayNames(style.Colours)})
	}
	fmt.Print(table.Render())
	return nil
}

// displayName converts a table key like "light_blue" to "light blue".
func displayName(name string) string {
	return strings.ReplaceAll(name, "_", " ")
}

// joinDisplayNames joins table keys into a comma-separated display string.
func joinDisplayNames(names []string) string {
	out := make([]string, len(names))
	for i, n := range names {
		out[i] = displayName(n)
	}
	return strings.Join(out, ", ")
}
