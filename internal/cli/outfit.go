package cli

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/outfitkit/outfitkit/internal/colour"
	"github.com/outfitkit/outfitkit/internal/image"
	"github.com/outfitkit/outfitkit/internal/match"
	"github.com/outfitkit/outfitkit/internal/stylist"
)

var (
	// Outfit command flags
	outfitUser     string
	outfitPreview  bool
	outfitDescribe bool
)

// outfitCmd represents the outfit command
var outfitCmd = &cobra.Command{
	Use:   "outfit <image:category[:name]>...",
	Short: "Assemble an outfit from clothing photos",
	Long: `Assemble a colour-coordinated outfit from a set of clothing photos.

Each argument names a photo and its garment category, separated by a
colon, with an optional display name. The photos are analysed, added to
a wardrobe and an outfit is assembled around a base garment: the first
top, or the first dress if no top exists. Companion pieces are chosen
per category for colour compatibility, falling back to neutral black or
brown items.

Examples:
  # Build an outfit from three garments
  outfitkit outfit shirt.jpg:tops jeans.png:bottoms boots.jpg:shoes

  # Name the garments
  outfitkit outfit "shirt.jpg:tops:Linen Shirt" "jeans.png:bottoms:Blue Jeans"

  # Ask Gemini to describe the result (requires GOOGLE_API_KEY)
  outfitkit outfit --describe shirt.jpg:tops jeans.png:bottoms`,
	Args: cobra.MinimumNArgs(1),
	RunE: runOutfit,
}

func init() {
	outfitCmd.Flags().StringVarP(&outfitUser, "user", "u", "default", "wardrobe owner identifier")
	outfitCmd.Flags().BoolVar(&outfitPreview, "preview", false, "show colour previews in terminal")
	outfitCmd.Flags().BoolVar(&outfitDescribe, "describe", false, "describe the outfit with Gemini (requires GOOGLE_API_KEY)")
	bindFlags(outfitCmd.Flags(), "user")
}

// garmentArg is one parsed image:category[:name] argument. data is
// filled once the image has been loaded.
type garmentArg struct {
	path     string
	category string
	name     string
	data     []byte
}

// parseGarmentArg splits an image:category[:name] argument.
func parseGarmentArg(arg string) (garmentArg, error) {
	parts := strings.SplitN(arg, ":", 3)
	if len(parts) < 2 || parts[0] == "" || parts[1] == "" {
		return garmentArg{}, fmt.Errorf("invalid argument %q: expected image:category[:name]", arg)
	}
	g := garmentArg{path: parts[0], category: parts[1]}
	if len(parts) == 3 {
		g.name = parts[2]
	} else {
		g.name = nameFromPath(g.path)
	}
	return g, nil
}

// runOutfit executes the outfit command.
func runOutfit(cmd *cobra.Command, args []string) error {
	loader := image.NewFileLoader()
	garments := make([]garmentArg, 0, len(args))
	for _, arg := range args {
		g, err := parseGarmentArg(arg)
		if err != nil {
			return err
		}
		// Load every image before touching the wardrobe so one bad
		// path fails the whole invocation up front.
		if g.data, err = loader.Load(g.path); err != nil {
			return fmt.Errorf("invalid image path %q: %w", g.path, err)
		}
		garments = append(garments, g)
	}

	eng, err := newEngine("", 0)
	if err != nil {
		return err
	}

	// OUTFITKIT_USER overrides the flag default when --user is not given.
	user := viper.GetString("user")

	for _, g := range garments {
		analysis, err := eng.AddGarment(user, g.name, g.category, g.data)
		if err != nil {
			return fmt.Errorf("failed to add %s: %w", g.path, err)
		}
		if outfitPreview {
			fmt.Printf("Added %s %s (%s)\n", colour.ColourPreview(analysis.Dominant, 4), analysis.Item.Name, analysis.ColourName)
		} else {
			fmt.Printf("Added %s (%s)\n", analysis.Item.Name, analysis.ColourName)
		}
	}

	outfit := eng.SuggestOutfit(user)
	if outfit.Empty() {
		fmt.Println("\nNo outfit could be assembled: " + outfit.Note)
		return nil
	}

	fmt.Println("\nOutfit:")
	for _, category := range outfit.Order {
		item := outfit.Items[category]
		if outfitPreview {
			fmt.Printf("  %-12s %s %s (%s)\n", category, colour.ColourPreview(item.Colour, 4), item.Name, item.ColourName)
		} else {
			fmt.Printf("  %-12s %s (%s)\n", category, item.Name, item.ColourName)
		}
	}
	if !outfit.Complete && outfit.Note != "" {
		fmt.Printf("\nNote: %s\n", outfit.Note)
	}

	if outfitDescribe {
		describeOutfit(cmd.Context(), outfit)
	}
	return nil
}

// describeOutfit asks the stylist for a short write-up of the outfit.
// Failures degrade to the plain output already printed.
func describeOutfit(ctx context.Context, outfit match.Outfit) {
	if !stylist.Available() {
		fmt.Fprintln(os.Stderr, "skipping description: GOOGLE_API_KEY is not set")
		return
	}

	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	text, err := stylist.New().Describe(ctx, outfit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "skipping description: %v\n", err)
		return
	}
	fmt.Println("\n" + strings.TrimSpace(text))
}
