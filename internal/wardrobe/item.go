// Package wardrobe provides per-user, in-memory storage of clothing items
// grouped by category.
package wardrobe

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/outfitkit/outfitkit/internal/colour"
)

// Category identifies the kind of clothing an item is.
type Category string

const (
	CategoryTops        Category = "tops"
	CategoryBottoms     Category = "bottoms"
	CategoryDresses     Category = "dresses"
	CategoryOuterwear   Category = "outerwear"
	CategoryShoes       Category = "shoes"
	CategoryAccessories Category = "accessories"
)

// Categories returns all valid categories in their declared priority order.
// Outfit assembly iterates them in this order.
func Categories() []Category {
	return []Category{
		CategoryTops,
		CategoryBottoms,
		CategoryDresses,
		CategoryOuterwear,
		CategoryShoes,
		CategoryAccessories,
	}
}

// ParseCategory validates a category string and returns the typed value.
func ParseCategory(s string) (Category, error) {
	for _, c := range Categories() {
		if string(c) == s {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown category: %q (valid categories: %v)", s, Categories())
}

// ClothingItem is a stored garment. Items are immutable after creation and
// live for the lifetime of the process; there is no delete operation.
type ClothingItem struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	Category   Category   `json:"category"`
	ColourName string     `json:"colour"`
	Colour     colour.RGB `json:"rgb"`
	AddedAt    time.Time  `json:"added_at"`
}

// NewClothingItem creates an item with a fresh identifier.
func NewClothingItem(name string, category Category, colourName string, rgb colour.RGB) ClothingItem {
	return ClothingItem{
		ID:         uuid.NewString(),
		Name:       name,
		Category:   category,
		ColourName: colourName,
		Colour:     rgb,
		AddedAt:    time.Now(),
	}
}
