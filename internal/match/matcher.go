// Package match maps extracted colours to named colours and assembles
// outfit suggestions from the static tables and a wardrobe.
package match

import (
	"fmt"
	"strings"

	"github.com/outfitkit/outfitkit/internal/colour"
	"github.com/outfitkit/outfitkit/internal/tables"
	"github.com/outfitkit/outfitkit/internal/wardrobe"
)

// Suggestion is one ranked styling suggestion. Derived, never stored.
type Suggestion struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Matcher resolves RGB colours against the named colour table and builds
// suggestion lists from the compatibility, harmony, seasonal, and style
// tables.
type Matcher struct {
	tables *tables.Store
}

// NewMatcher creates a Matcher over the given table store.
func NewMatcher(ts *tables.Store) *Matcher {
	return &Matcher{tables: ts}
}

// NearestName returns the named colour closest to rgb by Euclidean
// distance in RGB space. Ties resolve to the earliest declared entry.
func (m *Matcher) NearestName(rgb colour.RGB) string {
	closest := "gray"
	minDistance := -1.0

	for _, nc := range m.tables.NamedColours() {
		distance := rgb.Distance(nc.RGB)
		if minDistance < 0 || distance < minDistance {
			minDistance = distance
			closest = nc.Name
		}
	}

	return closest
}

// PerceptualName refines the nearest-name match using HSV analysis.
// Washed-out colours resolve to a neutral by brightness; strongly
// saturated colours resolve to the base colour of their hue band. Other
// inputs fall back to the plain nearest match.
func (m *Matcher) PerceptualName(rgb colour.RGB) string {
	h, s, v := colour.RGBToHSV(rgb)

	if s < 0.2 {
		switch {
		case v < 0.3:
			return "black"
		case v > 0.8:
			return "white"
		default:
			return "gray"
		}
	}

	if s > 0.5 {
		var base string
		switch {
		case h < 30 || h >= 330:
			base = "red"
		case h < 90:
			base = "yellow"
		case h < 150:
			base = "green"
		case h < 270:
			base = "blue"
		case h < 330:
			base = "purple"
		}
		if _, ok := m.tables.NamedColour(base); ok {
			return base
		}
	}

	return m.NearestName(rgb)
}

// Suggestions assembles the ranked suggestion list for a named colour and
// item category. Groups appear in a fixed order: compatible colours,
// harmony rules (complementary, analogous, triadic), seasonal palettes,
// style sets, then category pairings; entries within a group keep table
// order. An unknown colour yields an empty list, not an error.
func (m *Matcher) Suggestions(name string, category wardrobe.Category) []Suggestion {
	var out []Suggestion

	if compatible, ok := m.tables.CompatibleColours(name); ok {
		for _, c := range compatible {
			out = append(out, Suggestion{
				Title:       fmt.Sprintf("Pair with %s", displayName(c)),
				Description: fmt.Sprintf("%s pieces go well with %s by classic styling rules.", displayName(c), displayName(name)),
			})
		}
	}

	for _, harmony := range tables.HarmonyTypes() {
		colours, ok := m.tables.HarmonyColours(harmony, name)
		if !ok {
			continue
		}
		for _, c := range colours {
			out = append(out, Suggestion{
				Title:       fmt.Sprintf("%s: %s", titleCase(string(harmony)), displayName(c)),
				Description: harmonyDescription(harmony, name, c),
			})
		}
	}

	for _, season := range m.tables.SeasonsContaining(name) {
		palette, _ := m.tables.SeasonalPalette(season)
		out = append(out, Suggestion{
			Title:       fmt.Sprintf("In season: %s", season),
			Description: fmt.Sprintf("%s belongs to the %s palette alongside %s.", displayName(name), season, joinNames(palette, name)),
		})
	}

	for _, style := range m.tables.StylesContaining(name) {
		colours, _ := m.tables.StyleColours(style)
		out = append(out, Suggestion{
			Title:       fmt.Sprintf("Style: %s", style),
			Description: fmt.Sprintf("%s suits %s looks, together with %s.", displayName(name), style, joinNames(colours, name)),
		})
	}

	if cats, ok := m.tables.CompatibleCategories(category); ok && len(cats) > 0 {
		out = append(out, Suggestion{
			Title:       "Complete the look",
			Description: fmt.Sprintf("Combine %s with %s.", category, joinCategories(cats)),
		})
	}

	return out
}

// harmonyDescription phrases why two colours relate under a harmony type.
func harmonyDescription(harmony tables.HarmonyType, base, other string) string {
	switch harmony {
	case tables.HarmonyComplementary:
		return fmt.Sprintf("%s sits opposite %s on the colour wheel for maximum contrast.", displayName(other), displayName(base))
	case tables.HarmonyAnalogous:
		return fmt.Sprintf("%s sits next to %s on the colour wheel for a low-contrast blend.", displayName(other), displayName(base))
	case tables.HarmonyTriadic:
		return fmt.Sprintf("%s forms an evenly spaced triad with %s.", displayName(other), displayName(base))
	default:
		return fmt.Sprintf("%s relates to %s.", displayName(other), displayName(base))
	}
}

// titleCase upper-cases the first letter of an ASCII word.
func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// displayName renders a table colour name for humans (sky_blue -> sky blue).
func displayName(name string) string {
	return strings.ReplaceAll(name, "_", " ")
}

// joinNames joins colour names with commas, skipping the excluded name.
func joinNames(names []string, exclude string) string {
	var kept []string
	for _, n := range names {
		if n == exclude {
			continue
		}
		kept = append(kept, displayName(n))
	}
	return strings.Join(kept, ", ")
}

func joinCategories(cats []wardrobe.Category) string {
	parts := make([]string, len(cats))
	for i, c := range cats {
		parts[i] = string(c)
	}
	return strings.Join(parts, ", ")
}
