package match

import (
	"strings"
	"testing"

	"github.com/outfitkit/outfitkit/internal/colour"
	"github.com/outfitkit/outfitkit/internal/tables"
	"github.com/outfitkit/outfitkit/internal/wardrobe"
)

func newSuggester() (*OutfitSuggester, wardrobe.Store) {
	store := wardrobe.NewMemoryStore()
	return NewOutfitSuggester(store, tables.NewStore()), store
}

func addItem(store wardrobe.Store, userID, name string, category wardrobe.Category, colourName string) {
	store.Add(userID, wardrobe.NewClothingItem(name, category, colourName, colour.RGB{}))
}

func TestSuggestEmptyWardrobe(t *testing.T) {
	s, _ := newSuggester()

	outfit := s.Suggest("alice")
	if !outfit.Empty() {
		t.Error("Expected empty outfit for empty wardrobe")
	}
	if outfit.Complete {
		t.Error("Empty outfit must not be complete")
	}
	if outfit.Note != "wardrobe is empty" {
		t.Errorf("Note = %q", outfit.Note)
	}
}

func TestSuggestSingleItem(t *testing.T) {
	s, store := newSuggester()
	addItem(store, "alice", "White Shirt", wardrobe.CategoryTops, "white")

	outfit := s.Suggest("alice")
	if len(outfit.Items) != 1 {
		t.Fatalf("Expected 1 item, got %d", len(outfit.Items))
	}
	if outfit.Complete {
		t.Error("Single-item outfit must not be complete")
	}
	if !strings.Contains(outfit.Note, "incomplete") {
		t.Errorf("Note = %q, want incompleteness note", outfit.Note)
	}
}

func TestSuggestBaseIsFirstTop(t *testing.T) {
	s, store := newSuggester()
	addItem(store, "alice", "Red Dress", wardrobe.CategoryDresses, "red")
	addItem(store, "alice", "White Shirt", wardrobe.CategoryTops, "white")
	addItem(store, "alice", "Blue Shirt", wardrobe.CategoryTops, "blue")
	addItem(store, "alice", "Navy Jeans", wardrobe.CategoryBottoms, "navy")

	outfit := s.Suggest("alice")

	base, ok := outfit.Items[wardrobe.CategoryTops]
	if !ok {
		t.Fatal("Expected a top as base")
	}
	// Tops win over dresses, and the first added top wins.
	if base.Name != "White Shirt" {
		t.Errorf("Base = %s, want White Shirt", base.Name)
	}
	if _, ok := outfit.Items[wardrobe.CategoryDresses]; ok {
		t.Error("Dresses must not appear in a top-based outfit")
	}
	// navy is in white's compatibility list.
	if got := outfit.Items[wardrobe.CategoryBottoms].Name; got != "Navy Jeans" {
		t.Errorf("Bottoms = %s, want Navy Jeans", got)
	}
	if !outfit.Complete {
		t.Error("Expected a complete outfit")
	}
}

func TestSuggestDressBase(t *testing.T) {
	s, store := newSuggester()
	addItem(store, "alice", "Red Dress", wardrobe.CategoryDresses, "red")
	addItem(store, "alice", "Black Heels", wardrobe.CategoryShoes, "black")

	outfit := s.Suggest("alice")

	if _, ok := outfit.Items[wardrobe.CategoryDresses]; !ok {
		t.Fatal("Expected the dress as base")
	}
	if got := outfit.Items[wardrobe.CategoryShoes].Name; got != "Black Heels" {
		t.Errorf("Shoes = %s, want Black Heels", got)
	}
	if !outfit.Complete {
		t.Error("Expected a complete outfit")
	}

	// Order starts at the base and follows the pairing table.
	if len(outfit.Order) == 0 || outfit.Order[0] != wardrobe.CategoryDresses {
		t.Errorf("Order = %v, want dresses first", outfit.Order)
	}
}

func TestSuggestSkipsIncompatibleColours(t *testing.T) {
	s, store := newSuggester()
	addItem(store, "alice", "Red Shirt", wardrobe.CategoryTops, "red")
	// orange is neither in red's compatibility list nor neutral.
	addItem(store, "alice", "Orange Trousers", wardrobe.CategoryBottoms, "orange")
	addItem(store, "alice", "Navy Jeans", wardrobe.CategoryBottoms, "navy")

	outfit := s.Suggest("alice")

	if got := outfit.Items[wardrobe.CategoryBottoms].Name; got != "Navy Jeans" {
		t.Errorf("Bottoms = %s, want the compatible Navy Jeans", got)
	}
}

func TestSuggestNeutralFallback(t *testing.T) {
	s, store := newSuggester()
	addItem(store, "alice", "Red Shirt", wardrobe.CategoryTops, "red")
	// brown is not in red's compatibility list but is a neutral.
	addItem(store, "alice", "Brown Boots", wardrobe.CategoryShoes, "brown")

	outfit := s.Suggest("alice")

	if got, ok := outfit.Items[wardrobe.CategoryShoes]; !ok || got.Name != "Brown Boots" {
		t.Errorf("Expected the neutral Brown Boots, got %+v", outfit.Items)
	}
}

func TestSuggestFallbackBase(t *testing.T) {
	s, store := newSuggester()
	// No tops or dresses at all.
	addItem(store, "alice", "Black Belt Coat", wardrobe.CategoryOuterwear, "black")

	outfit := s.Suggest("alice")

	if _, ok := outfit.Items[wardrobe.CategoryOuterwear]; !ok {
		t.Fatal("Expected outerwear to serve as base")
	}
	if outfit.Complete {
		t.Error("Single-item outfit must not be complete")
	}
}

func TestSuggestIsolatedPerUser(t *testing.T) {
	s, store := newSuggester()
	addItem(store, "alice", "White Shirt", wardrobe.CategoryTops, "white")
	addItem(store, "bob", "Navy Jeans", wardrobe.CategoryBottoms, "navy")

	outfit := s.Suggest("alice")
	if _, ok := outfit.Items[wardrobe.CategoryBottoms]; ok {
		t.Error("Outfit must not borrow items from another user")
	}
}

func TestWardrobeMatches(t *testing.T) {
	s, store := newSuggester()
	addItem(store, "alice", "Navy Jeans", wardrobe.CategoryBottoms, "navy")
	addItem(store, "alice", "Orange Trousers", wardrobe.CategoryBottoms, "orange")
	addItem(store, "alice", "Gray Scarf", wardrobe.CategoryAccessories, "gray")

	// red pairs with black, white, navy, gray, beige, cream.
	matches := s.WardrobeMatches("alice", wardrobe.CategoryTops, "red")

	if len(matches) != 2 {
		t.Fatalf("Expected 2 matches, got %d", len(matches))
	}
	// Pairing table order: bottoms before accessories.
	if matches[0].Name != "Navy Jeans" || matches[1].Name != "Gray Scarf" {
		t.Errorf("Matches = %s, %s", matches[0].Name, matches[1].Name)
	}
}

func TestWardrobeMatchesUnknownColour(t *testing.T) {
	s, store := newSuggester()
	addItem(store, "alice", "Navy Jeans", wardrobe.CategoryBottoms, "navy")

	if got := s.WardrobeMatches("alice", wardrobe.CategoryTops, "ultraviolet"); got != nil {
		t.Errorf("Expected nil for unknown colour, got %v", got)
	}
}
