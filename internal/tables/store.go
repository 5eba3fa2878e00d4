package tables

import (
	"github.com/outfitkit/outfitkit/internal/wardrobe"
)

// Store exposes read-only lookups over the static tables. It is built once
// at process start and passed explicitly to the components that need it.
type Store struct {
	named      []NamedColour
	compatible map[string][]string
	categories map[wardrobe.Category][]wardrobe.Category
	harmony    map[HarmonyType]map[string][]string
	seasons    map[Season][]string
	styles     []StyleSet
}

// NewStore creates a Store over the built-in tables.
func NewStore() *Store {
	return &Store{
		named:      namedColours,
		compatible: compatibleColours,
		categories: compatibleCategories,
		harmony:    harmonyRules,
		seasons:    seasonalPalettes,
		styles:     styleSets,
	}
}

// NamedColours returns the reference colour table in declaration order.
// Callers must not modify the returned slice.
func (s *Store) NamedColours() []NamedColour {
	return s.named
}

// NamedColour looks up a colour name and returns its reference RGB value.
func (s *Store) NamedColour(name string) (NamedColour, bool) {
	for _, nc := range s.named {
		if nc.Name == name {
			return nc, true
		}
	}
	return NamedColour{}, false
}

// CompatibleColours returns the colours that pair with the given colour
// name, in table order. The second result is false for unknown names.
func (s *Store) CompatibleColours(name string) ([]string, bool) {
	colours, ok := s.compatible[name]
	return colours, ok
}

// CompatibleCategories returns the categories that pair with the given
// category. The second result is false for unknown categories.
func (s *Store) CompatibleCategories(category wardrobe.Category) ([]wardrobe.Category, bool) {
	cats, ok := s.categories[category]
	return cats, ok
}

// HarmonyColours returns the colours related to name under the given
// harmony type. The second result is false when the table has no entry.
func (s *Store) HarmonyColours(harmony HarmonyType, name string) ([]string, bool) {
	rules, ok := s.harmony[harmony]
	if !ok {
		return nil, false
	}
	colours, ok := rules[name]
	return colours, ok
}

// SeasonalPalette returns the palette for a season.
func (s *Store) SeasonalPalette(season Season) ([]string, bool) {
	colours, ok := s.seasons[season]
	return colours, ok
}

// SeasonsContaining returns the seasons whose palette includes the given
// colour name, in fixed season order.
func (s *Store) SeasonsContaining(name string) []Season {
	var out []Season
	for _, season := range Seasons() {
		for _, c := range s.seasons[season] {
			if c == name {
				out = append(out, season)
				break
			}
		}
	}
	return out
}

// StyleColours returns the colour set for a style or mood.
func (s *Store) StyleColours(style string) ([]string, bool) {
	for _, ss := range s.styles {
		if ss.Name == style {
			return ss.Colours, true
		}
	}
	return nil, false
}

// Styles returns all style sets in declaration order.
func (s *Store) Styles() []StyleSet {
	return s.styles
}

// StylesContaining returns the styles whose colour set includes the given
// colour name, in declaration order.
func (s *Store) StylesContaining(name string) []string {
	var out []string
	for _, ss := range s.styles {
		for _, c := range ss.Colours {
			if c == name {
				out = append(out, ss.Name)
				break
			}
		}
	}
	return out
}

// Stats summarises the size of each static table. Informational only.
type Stats struct {
	NamedColours       int `json:"named_colours"`
	CompatibilityRules int `json:"colour_compatibility_rules"`
	CategoryRules      int `json:"category_rules"`
	HarmonyTypes       int `json:"harmony_types"`
	Seasons            int `json:"seasons"`
	Styles             int `json:"styles"`
}

// Stats returns entry counts for every table.
func (s *Store) Stats() Stats {
	return Stats{
		NamedColours:       len(s.named),
		CompatibilityRules: len(s.compatible),
		CategoryRules:      len(s.categories),
		HarmonyTypes:       len(s.harmony),
		Seasons:            len(s.seasons),
		Styles:             len(s.styles),
	}
}
