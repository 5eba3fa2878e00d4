package match

import (
	"fmt"

	"github.com/outfitkit/outfitkit/internal/tables"
	"github.com/outfitkit/outfitkit/internal/wardrobe"
)

// neutralColours are always admissible as outfit companions even when the
// compatibility table does not list them for the base colour.
var neutralColours = []string{"black", "brown"}

// Outfit is an assembled outfit: at most one item per selected category.
type Outfit struct {
	Items    map[wardrobe.Category]wardrobe.ClothingItem `json:"items"`
	Order    []wardrobe.Category                         `json:"order"`
	Complete bool                                        `json:"complete"`
	Note     string                                      `json:"note,omitempty"`
}

// Empty reports whether no items were selected at all.
func (o Outfit) Empty() bool {
	return len(o.Items) == 0
}

// OutfitSuggester assembles outfits from a wardrobe using the category and
// colour compatibility tables.
type OutfitSuggester struct {
	store  wardrobe.Store
	tables *tables.Store
}

// NewOutfitSuggester creates an OutfitSuggester.
func NewOutfitSuggester(store wardrobe.Store, ts *tables.Store) *OutfitSuggester {
	return &OutfitSuggester{store: store, tables: ts}
}

// Suggest builds one outfit for the user. The base item is the first item
// (insertion order) of the first populated base category, tops before
// dresses; companion categories are visited in the fixed category priority
// order and receive the first item whose colour is compatible with the
// base colour or neutral. The tie-break is arbitrary but deterministic.
func (s *OutfitSuggester) Suggest(userID string) Outfit {
	outfit := Outfit{Items: make(map[wardrobe.Category]wardrobe.ClothingItem)}

	base, ok := s.pickBase(userID)
	if !ok {
		outfit.Note = "wardrobe is empty"
		return outfit
	}

	outfit.Items[base.Category] = base
	outfit.Order = append(outfit.Order, base.Category)

	compatible, _ := s.tables.CompatibleColours(base.ColourName)
	companions, _ := s.tables.CompatibleCategories(base.Category)

	for _, category := range companions {
		for _, item := range s.store.Items(userID, category) {
			if colourAdmissible(item.ColourName, compatible) {
				outfit.Items[category] = item
				outfit.Order = append(outfit.Order, category)
				break
			}
		}
	}

	if len(outfit.Items) == 1 {
		outfit.Note = fmt.Sprintf("only %s available; outfit is incomplete", base.Category)
		return outfit
	}

	outfit.Complete = true
	return outfit
}

// pickBase finds the base item: the first top, else the first dress.
func (s *OutfitSuggester) pickBase(userID string) (wardrobe.ClothingItem, bool) {
	for _, category := range []wardrobe.Category{wardrobe.CategoryTops, wardrobe.CategoryDresses} {
		if items := s.store.Items(userID, category); len(items) > 0 {
			return items[0], true
		}
	}

	// No tops or dresses: fall back to the first populated category in
	// priority order so a sparse wardrobe still yields something.
	for _, category := range wardrobe.Categories() {
		if items := s.store.Items(userID, category); len(items) > 0 {
			return items[0], true
		}
	}

	return wardrobe.ClothingItem{}, false
}

// WardrobeMatches returns stored items that pair with the given base
// colour and category: items in compatible categories whose colour is in
// the base colour's compatibility list. Insertion order is preserved
// within each category; categories follow the pairing table order.
func (s *OutfitSuggester) WardrobeMatches(userID string, category wardrobe.Category, colourName string) []wardrobe.ClothingItem {
	compatible, ok := s.tables.CompatibleColours(colourName)
	if !ok {
		return nil
	}

	companions, ok := s.tables.CompatibleCategories(category)
	if !ok {
		return nil
	}

	var out []wardrobe.ClothingItem
	for _, companion := range companions {
		for _, item := range s.store.Items(userID, companion) {
			if colourInList(item.ColourName, compatible) {
				out = append(out, item)
			}
		}
	}
	return out
}

// colourAdmissible reports whether a companion colour works with the base:
// listed as compatible, or one of the always-safe neutrals.
func colourAdmissible(name string, compatible []string) bool {
	if colourInList(name, compatible) {
		return true
	}
	return colourInList(name, neutralColours)
}

func colourInList(name string, list []string) bool {
	for _, c := range list {
		if c == name {
			return true
		}
	}
	return false
}
