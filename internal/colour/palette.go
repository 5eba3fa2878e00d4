// Package colour provides colour extraction and analysis for clothing images.
package colour

import (
	"encoding/json"
	"fmt"
	"image/color"
	"sort"
)

// RGB represents a colour in 8-bit RGB format.
type RGB struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// String returns the RGB colour as a string in the format "rgb(r, g, b)".
func (rgb RGB) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", rgb.R, rgb.G, rgb.B)
}

// Hex returns the RGB colour as a hex string (e.g., "#1a2b3c").
func (rgb RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", rgb.R, rgb.G, rgb.B)
}

// ToRGB converts a color.Color to RGB.
func ToRGB(c color.Color) RGB {
	r, g, b, _ := c.RGBA()
	// RGBA returns values in the range [0, 65535], convert to [0, 255]
	return RGB{
		R: uint8(r >> 8),
		G: uint8(g >> 8),
		B: uint8(b >> 8),
	}
}

// ToColor converts an RGB value to a color.Color with full opacity.
func (rgb RGB) ToColor() color.Color {
	return color.RGBA{R: rgb.R, G: rgb.G, B: rgb.B, A: 255}
}

// Distance returns the squared Euclidean distance to another colour in
// RGB space. The square root is never taken; nearest-colour comparisons
// only need the ordering, which squaring preserves.
func (rgb RGB) Distance(other RGB) float64 {
	dr := float64(rgb.R) - float64(other.R)
	dg := float64(rgb.G) - float64(other.G)
	db := float64(rgb.B) - float64(other.B)
	return dr*dr + dg*dg + db*db
}

// Palette represents colours extracted from an image, ordered by cluster
// population descending. The first entry is the dominant colour.
type Palette struct {
	Colours []RGB
	Weights []float64
}

// NewPaletteWithWeights creates a Palette sorted by weight descending.
// The sort is stable so equal-weight clusters keep their original order.
func NewPaletteWithWeights(colours []RGB, weights []float64) *Palette {
	type entry struct {
		colour RGB
		weight float64
	}
	entries := make([]entry, len(colours))
	for i, c := range colours {
		w := 0.0
		if i < len(weights) {
			w = weights[i]
		}
		entries[i] = entry{colour: c, weight: w}
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].weight > entries[j].weight
	})

	p := &Palette{
		Colours: make([]RGB, len(entries)),
		Weights: make([]float64, len(entries)),
	}
	for i, e := range entries {
		p.Colours[i] = e.colour
		p.Weights[i] = e.weight
	}
	return p
}

// Len returns the number of colours in the palette.
func (p *Palette) Len() int {
	return len(p.Colours)
}

// Dominant returns the most populous colour and true, or a zero value and
// false for an empty palette.
func (p *Palette) Dominant() (RGB, bool) {
	if len(p.Colours) == 0 {
		return RGB{}, false
	}
	return p.Colours[0], true
}

// ToHex converts the palette colours to hex strings.
func (p *Palette) ToHex() []string {
	hexColours := make([]string, len(p.Colours))
	for i, c := range p.Colours {
		hexColours[i] = c.Hex()
	}
	return hexColours
}

// ColourJSON represents one palette colour in JSON output format.
type ColourJSON struct {
	Hex    string  `json:"hex"`
	RGB    RGB     `json:"rgb"`
	Weight float64 `json:"weight"`
}

// PaletteJSON represents the palette in JSON format.
type PaletteJSON struct {
	Count   int          `json:"count"`
	Colours []ColourJSON `json:"colours"`
}

// ToJSON converts the palette to indented JSON.
func (p *Palette) ToJSON() ([]byte, error) {
	colours := make([]ColourJSON, len(p.Colours))
	for i, c := range p.Colours {
		colours[i] = ColourJSON{
			Hex:    c.Hex(),
			RGB:    c,
			Weight: p.Weights[i],
		}
	}

	return json.MarshalIndent(PaletteJSON{
		Count:   len(p.Colours),
		Colours: colours,
	}, "", "  ")
}

// String returns a human-readable representation of the palette.
func (p *Palette) String() string {
	if len(p.Colours) == 0 {
		return "Empty palette"
	}

	result := fmt.Sprintf("Palette with %d colours:\n", len(p.Colours))
	for i, c := range p.Colours {
		result += fmt.Sprintf("  %2d: %s (%s, %.1f%%)\n", i+1, c.Hex(), c.String(), p.Weights[i]*100)
	}
	return result
}
