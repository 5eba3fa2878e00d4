package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/outfitkit/outfitkit/internal/colour"
	"github.com/outfitkit/outfitkit/internal/image"
)

var (
	// Palette command flags
	paletteColours   int
	paletteAlgorithm string
	paletteFormat    string
	paletteOutput    string
	palettePreview   bool
)

// paletteCmd represents the palette command
var paletteCmd = &cobra.Command{
	Use:   "palette <image>",
	Short: "Extract a colour palette from an image",
	Long: `Extract a colour palette from an image using k-means clustering.

Colours are ordered by prominence, most dominant first. Background
pixels (very dark or very light) are filtered out before clustering so
the palette reflects the garment rather than the backdrop.

Examples:
  # Extract the 3 most prominent colours
  outfitkit palette shirt.jpg

  # Extract 8 colours with previews
  outfitkit palette --preview -c 8 dress.png

  # Output as JSON
  outfitkit palette -f json jacket.jpg

  # Save to a file
  outfitkit palette -o palette.txt coat.webp`,
	Args: cobra.ExactArgs(1),
	RunE: runPalette,
}

func init() {
	paletteCmd.Flags().IntVarP(&paletteColours, "colours", "c", 3, "number of colours to extract (1-256)")
	paletteCmd.Flags().StringVarP(&paletteAlgorithm, "algorithm", "a", "kmeans", "extraction algorithm (kmeans)")
	paletteCmd.Flags().StringVarP(&paletteFormat, "format", "f", "hex", "output format (hex, rgb, json)")
	paletteCmd.Flags().StringVarP(&paletteOutput, "output", "o", "", "output file (default: stdout)")
	paletteCmd.Flags().BoolVar(&palettePreview, "preview", false, "show colour previews in terminal")
}

// runPalette executes the palette command.
func runPalette(cmd *cobra.Command, args []string) error {
	imagePath := args[0]

	data, err := image.NewFileLoader().Load(imagePath)
	if err != nil {
		return fmt.Errorf("invalid image path: %w", err)
	}

	eng, err := newEngine(paletteAlgorithm, paletteColours)
	if err != nil {
		return err
	}

	palette, err := eng.Palette(data, paletteColours)
	if err != nil {
		return fmt.Errorf("failed to extract palette: %w", err)
	}

	output, err := formatPalette(palette, paletteFormat, palettePreview)
	if err != nil {
		return err
	}

	if paletteOutput != "" {
		if err := os.WriteFile(paletteOutput, []byte(output), 0644); err != nil {
			return fmt.Errorf("failed to write output file: %w", err)
		}
		return nil
	}

	fmt.Print(output)
	return nil
}

// formatPalette formats the palette according to the specified format.
func formatPalette(palette *colour.Palette, format string, showPreview bool) (string, error) {
	switch format {
	case "hex":
		return formatHex(palette, showPreview), nil
	case "rgb":
		return formatRGB(palette, showPreview), nil
	case "json":
		jsonBytes, err := palette.ToJSON()
		if err != nil {
			return "", fmt.Errorf("failed to convert to JSON: %w", err)
		}
		return string(jsonBytes) + "\n", nil
	default:
		return "", fmt.Errorf("invalid format: %s (valid: hex, rgb, json)", format)
	}
}

// formatHex formats colours as hex strings, one per line.
func formatHex(palette *colour.Palette, showPreview bool) string {
	var sb strings.Builder
	for _, c := range palette.Colours {
		if showPreview {
			sb.WriteString(colour.ColourPreview(c, 4))
			sb.WriteString("  ")
		}
		sb.WriteString(c.Hex())
		sb.WriteString("\n")
	}
	return sb.String()
}

// formatRGB formats colours as rgb(r, g, b) strings, one per line.
func formatRGB(palette *colour.Palette, showPreview bool) string {
	var sb strings.Builder
	for _, c := range palette.Colours {
		if showPreview {
			sb.WriteString(colour.ColourPreview(c, 4))
			sb.WriteString("  ")
		}
		sb.WriteString(fmt.Sprintf("rgb(%d, %d, %d)\n", c.R, c.G, c.B))
	}
	return sb.String()
}
