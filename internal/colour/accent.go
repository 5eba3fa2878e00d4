package colour

// AccentColour picks the palette colour that reads as an accent against
// the dominant one. Secondary colours are scored on hue separation on
// the colour wheel plus WCAG contrast with the dominant colour, and the
// highest scorer wins. Returns false when the palette has no secondary
// colours.
func AccentColour(p *Palette) (RGB, bool) {
	if p == nil || p.Len() < 2 {
		return RGB{}, false
	}

	dominant := p.Colours[0]
	domHue, _, _ := RGBToHSV(dominant)

	var best RGB
	bestScore := -1.0
	for _, c := range p.Colours[1:] {
		hue, _, _ := RGBToHSV(c)
		// Hue separation dominates; contrast separates near-ties.
		// Strict > keeps the more populous colour on equal scores.
		score := HueDistance(domHue, hue)/180.0 + (ContrastRatio(dominant, c)-1.0)/20.0
		if score > bestScore {
			bestScore = score
			best = c
		}
	}
	return best, true
}
