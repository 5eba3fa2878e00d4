package cli

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/outfitkit/outfitkit/internal/colour"
	"github.com/outfitkit/outfitkit/internal/engine"
	"github.com/outfitkit/outfitkit/internal/image"
)

var (
	// Analyze command flags
	analyzeCategory  string
	analyzeName      string
	analyzeColours   int
	analyzeAlgorithm string
	analyzeFormat    string
	analyzePreview   bool
)

// analyzeCmd represents the analyze command
var analyzeCmd = &cobra.Command{
	Use:   "analyze <image>",
	Short: "Analyse a clothing photo and suggest pairings",
	Long: `Analyse a clothing photo, name its dominant colour and suggest pairings.

The analyze command extracts the dominant colour from a garment photo,
maps it to the nearest named colour, classifies its temperature and
lists matching suggestions drawn from colour compatibility, harmony,
seasonal and style rules.

Supported image extensions: ` + strings.Join(image.SupportedImageExtensions(), ", ") + `

Examples:
  # Analyse a shirt photo
  outfitkit analyze --category tops shirt.jpg

  # Name the garment and show colour previews
  outfitkit analyze -g bottoms -n "Blue Jeans" --preview jeans.png

  # Machine-readable output
  outfitkit analyze -g dresses -f json dress.jpg`,
	Args: cobra.ExactArgs(1),
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeCategory, "category", "g", "", "garment category (tops, bottoms, dresses, outerwear, shoes, accessories)")
	analyzeCmd.Flags().StringVarP(&analyzeName, "name", "n", "", "garment name (default: derived from file name)")
	analyzeCmd.Flags().IntVarP(&analyzeColours, "colours", "c", 3, "number of colours to extract (1-256)")
	analyzeCmd.Flags().StringVarP(&analyzeAlgorithm, "algorithm", "a", "kmeans", "extraction algorithm (kmeans)")
	analyzeCmd.Flags().StringVarP(&analyzeFormat, "format", "f", "text", "output format (text, json)")
	analyzeCmd.Flags().BoolVar(&analyzePreview, "preview", false, "show colour previews in terminal")
	analyzeCmd.MarkFlagRequired("category")
}

// runAnalyze executes the analyze command.
func runAnalyze(cmd *cobra.Command, args []string) error {
	imagePath := args[0]

	data, err := image.NewFileLoader().Load(imagePath)
	if err != nil {
		return fmt.Errorf("invalid image path: %w", err)
	}

	eng, err := newEngine(analyzeAlgorithm, analyzeColours)
	if err != nil {
		return err
	}

	name := analyzeName
	if name == "" {
		name = nameFromPath(imagePath)
	}

	analysis, err := eng.Analyze(name, analyzeCategory, data)
	if err != nil {
		return fmt.Errorf("analysis failed: %w", err)
	}

	switch analyzeFormat {
	case "json":
		out, err := json.MarshalIndent(analysis, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode analysis: %w", err)
		}
		fmt.Println(string(out))
	case "text":
		printAnalysis(analysis, analyzePreview)
	default:
		return fmt.Errorf("invalid format: %s (valid: text, json)", analyzeFormat)
	}

	return nil
}

// printAnalysis renders an analysis as human-readable text.
func printAnalysis(a *engine.Analysis, preview bool) {
	fmt.Printf("Item:        %s (%s)\n", a.Item.Name, a.Item.Category)
	if preview {
		fmt.Printf("Colour:      %s %s (%s)\n", colour.ColourPreview(a.Dominant, 4), a.ColourName, a.Dominant.Hex())
	} else {
		fmt.Printf("Colour:      %s (%s)\n", a.ColourName, a.Dominant.Hex())
	}
	if a.PerceptualName != a.ColourName {
		fmt.Printf("Perceived:   %s\n", a.PerceptualName)
	}
	fmt.Printf("Temperature: %s\n", a.Temperature)
	fmt.Printf("Contrast:    %.1f:1 on white, %.1f:1 on black\n", a.ContrastOnWhite, a.ContrastOnBlack)

	if a.Palette != nil && a.Palette.Len() > 1 {
		fmt.Println("\nPalette:")
		for i, c := range a.Palette.Colours {
			label := fmt.Sprintf("colour %d", i+1)
			if preview {
				fmt.Printf("  %s\n", colour.FormatColourWithLabel(c, label, 4))
			} else {
				fmt.Printf("  %-10s %s\n", label, c.Hex())
			}
		}
	}
	if a.Accent != nil {
		if preview {
			fmt.Printf("Accent:      %s %s\n", colour.ColourPreview(*a.Accent, 4), a.Accent.Hex())
		} else {
			fmt.Printf("Accent:      %s\n", a.Accent.Hex())
		}
	}

	if len(a.Suggestions) > 0 {
		fmt.Println("\nSuggestions:")
		for _, s := range a.Suggestions {
			fmt.Printf("  %-24s %s\n", s.Title, s.Description)
		}
	}
}

// nameFromPath derives a garment name from an image file name.
// "blue-jeans_01.jpg" becomes "Blue Jeans 01".
func nameFromPath(path string) string {
	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	base = strings.NewReplacer("-", " ", "_", " ").Replace(base)
	words := strings.Fields(base)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	if len(words) == 0 {
		return "Unnamed Item"
	}
	return strings.Join(words, " ")
}
