// Package tables holds the static lookup tables that drive colour and
// outfit matching: named colour references, colour compatibility rules,
// category pairings, colour harmony rules, seasonal palettes, and
// style/mood colour sets. The tables are fixed at process start and never
// mutated; every lookup by unknown key reports not-found explicitly.
package tables

import (
	"github.com/outfitkit/outfitkit/internal/colour"
	"github.com/outfitkit/outfitkit/internal/wardrobe"
)

// NamedColour pairs a human colour name with its reference RGB value.
type NamedColour struct {
	Name string
	RGB  colour.RGB
}

// namedColours is the reference colour table. Declaration order matters:
// nearest-colour ties resolve to the earliest entry.
var namedColours = []NamedColour{
	// Basic colours.
	{Name: "red", RGB: colour.RGB{R: 255, G: 0, B: 0}},
	{Name: "green", RGB: colour.RGB{R: 0, G: 128, B: 0}},
	{Name: "blue", RGB: colour.RGB{R: 0, G: 0, B: 255}},
	{Name: "yellow", RGB: colour.RGB{R: 255, G: 255, B: 0}},
	{Name: "orange", RGB: colour.RGB{R: 255, G: 165, B: 0}},
	{Name: "purple", RGB: colour.RGB{R: 128, G: 0, B: 128}},
	{Name: "pink", RGB: colour.RGB{R: 255, G: 192, B: 203}},

	// Neutrals.
	{Name: "black", RGB: colour.RGB{R: 0, G: 0, B: 0}},
	{Name: "white", RGB: colour.RGB{R: 255, G: 255, B: 255}},
	{Name: "gray", RGB: colour.RGB{R: 128, G: 128, B: 128}},
	{Name: "light_gray", RGB: colour.RGB{R: 211, G: 211, B: 211}},
	{Name: "dark_gray", RGB: colour.RGB{R: 64, G: 64, B: 64}},

	// Earth tones.
	{Name: "brown", RGB: colour.RGB{R: 165, G: 42, B: 42}},
	{Name: "tan", RGB: colour.RGB{R: 210, G: 180, B: 140}},
	{Name: "beige", RGB: colour.RGB{R: 245, G: 245, B: 220}},
	{Name: "cream", RGB: colour.RGB{R: 255, G: 253, B: 208}},
	{Name: "khaki", RGB: colour.RGB{R: 240, G: 230, B: 140}},

	// Blues.
	{Name: "navy", RGB: colour.RGB{R: 0, G: 0, B: 128}},
	{Name: "royal_blue", RGB: colour.RGB{R: 65, G: 105, B: 225}},
	{Name: "sky_blue", RGB: colour.RGB{R: 135, G: 206, B: 235}},
	{Name: "teal", RGB: colour.RGB{R: 0, G: 128, B: 128}},

	// Greens.
	{Name: "forest_green", RGB: colour.RGB{R: 34, G: 139, B: 34}},
	{Name: "olive", RGB: colour.RGB{R: 128, G: 128, B: 0}},
	{Name: "mint", RGB: colour.RGB{R: 189, G: 252, B: 201}},

	// Reds.
	{Name: "maroon", RGB: colour.RGB{R: 128, G: 0, B: 0}},
	{Name: "burgundy", RGB: colour.RGB{R: 128, G: 0, B: 32}},
	{Name: "coral", RGB: colour.RGB{R: 255, G: 127, B: 80}},

	// Others.
	{Name: "gold", RGB: colour.RGB{R: 255, G: 215, B: 0}},
	{Name: "silver", RGB: colour.RGB{R: 192, G: 192, B: 192}},
	{Name: "lavender", RGB: colour.RGB{R: 230, G: 230, B: 250}},
}

// compatibleColours lists, per colour name, the colours considered
// harmonious with it. The table is carried over as-is from the original
// styling rules; it is not symmetric and should not be symmetrised.
var compatibleColours = map[string][]string{
	"red":    {"black", "white", "navy", "gray", "beige", "cream"},
	"blue":   {"white", "gray", "beige", "black", "brown", "cream"},
	"green":  {"brown", "black", "white", "beige", "navy"},
	"black":  {"white", "gray", "red", "blue", "green", "beige", "pink", "yellow"},
	"white":  {"black", "navy", "gray", "red", "blue", "green", "brown"},
	"navy":   {"white", "beige", "gray", "red", "brown"},
	"gray":   {"white", "black", "red", "blue", "pink", "yellow"},
	"brown":  {"beige", "white", "green", "blue", "cream"},
	"beige":  {"brown", "white", "blue", "green", "navy"},
	"pink":   {"gray", "black", "white", "navy"},
	"yellow": {"black", "gray", "navy", "brown"},
	"purple": {"gray", "black", "white"},
	"orange": {"black", "brown", "navy", "white"},
	"cream":  {"brown", "navy", "black", "red"},
}

// compatibleCategories lists, per category, which categories pair with it
// in an outfit.
var compatibleCategories = map[wardrobe.Category][]wardrobe.Category{
	wardrobe.CategoryTops:        {wardrobe.CategoryBottoms, wardrobe.CategoryOuterwear, wardrobe.CategoryShoes, wardrobe.CategoryAccessories},
	wardrobe.CategoryBottoms:     {wardrobe.CategoryTops, wardrobe.CategoryOuterwear, wardrobe.CategoryShoes, wardrobe.CategoryAccessories},
	wardrobe.CategoryOuterwear:   {wardrobe.CategoryTops, wardrobe.CategoryBottoms},
	wardrobe.CategoryShoes:       {wardrobe.CategoryTops, wardrobe.CategoryBottoms},
	wardrobe.CategoryAccessories: {wardrobe.CategoryTops, wardrobe.CategoryBottoms},
	wardrobe.CategoryDresses:     {wardrobe.CategoryOuterwear, wardrobe.CategoryShoes, wardrobe.CategoryAccessories},
}

// HarmonyType is a colour-theory relationship used to justify a pairing.
type HarmonyType string

const (
	HarmonyComplementary HarmonyType = "complementary"
	HarmonyAnalogous     HarmonyType = "analogous"
	HarmonyTriadic       HarmonyType = "triadic"
)

// HarmonyTypes returns all harmony types in their fixed presentation order.
func HarmonyTypes() []HarmonyType {
	return []HarmonyType{HarmonyComplementary, HarmonyAnalogous, HarmonyTriadic}
}

// harmonyRules maps each harmony type to its per-colour suggestion lists.
// Classification is table-driven, not computed from hue angles.
var harmonyRules = map[HarmonyType]map[string][]string{
	HarmonyComplementary: {
		"red":    {"green", "teal"},
		"blue":   {"orange", "coral"},
		"yellow": {"purple", "lavender"},
		"green":  {"red", "pink"},
		"orange": {"blue", "navy"},
		"purple": {"yellow", "gold"},
	},
	HarmonyAnalogous: {
		"red":    {"orange", "pink", "burgundy"},
		"blue":   {"teal", "purple", "navy"},
		"yellow": {"orange", "gold", "cream"},
		"green":  {"teal", "olive", "mint"},
		"orange": {"red", "yellow", "coral"},
		"purple": {"blue", "pink", "lavender"},
	},
	HarmonyTriadic: {
		"red":    {"blue", "yellow"},
		"blue":   {"red", "yellow"},
		"yellow": {"red", "blue"},
		"green":  {"orange", "purple"},
		"orange": {"green", "purple"},
		"purple": {"green", "orange"},
	},
}

// Season names a seasonal colour palette.
type Season string

const (
	SeasonSpring Season = "spring"
	SeasonSummer Season = "summer"
	SeasonAutumn Season = "autumn"
	SeasonWinter Season = "winter"
)

// Seasons returns the seasons in their fixed presentation order.
func Seasons() []Season {
	return []Season{SeasonSpring, SeasonSummer, SeasonAutumn, SeasonWinter}
}

var seasonalPalettes = map[Season][]string{
	SeasonSpring: {"coral", "mint", "sky_blue", "lavender", "cream", "light_gray"},
	SeasonSummer: {"navy", "white", "sky_blue", "pink", "silver", "light_gray"},
	SeasonAutumn: {"burgundy", "forest_green", "gold", "brown", "orange", "cream"},
	SeasonWinter: {"black", "white", "navy", "red", "royal_blue", "silver"},
}

// StyleSet pairs a style or mood with the colours associated with it.
type StyleSet struct {
	Name    string
	Colours []string
}

// styleSets associates styles/moods with colour sets, in declaration order.
var styleSets = []StyleSet{
	{Name: "professional", Colours: []string{"navy", "black", "white", "gray", "dark_gray"}},
	{Name: "casual", Colours: []string{"blue", "green", "brown", "beige", "khaki"}},
	{Name: "elegant", Colours: []string{"black", "white", "navy", "burgundy", "silver"}},
	{Name: "playful", Colours: []string{"yellow", "orange", "pink", "sky_blue", "mint"}},
	{Name: "romantic", Colours: []string{"pink", "lavender", "cream", "coral", "white"}},
	{Name: "bold", Colours: []string{"red", "orange", "royal_blue", "purple", "gold"}},
	{Name: "earthy", Colours: []string{"brown", "olive", "forest_green", "tan", "cream"}},
	{Name: "minimalist", Colours: []string{"white", "black", "gray", "beige", "cream"}},
}
