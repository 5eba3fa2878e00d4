// Utility functions for colour conversion and analysis.
package colour

import (
	"math"
)

// Temperature classifies a colour as warm, cool, or neutral.
type Temperature string

const (
	TemperatureWarm    Temperature = "warm"
	TemperatureCool    Temperature = "cool"
	TemperatureNeutral Temperature = "neutral"
)

// RGBToHSV converts an RGB colour to HSV.
// Returns hue (0-360), saturation (0-1), value (0-1).
func RGBToHSV(rgb RGB) (h, s, v float64) {
	r := float64(rgb.R) / 255.0
	g := float64(rgb.G) / 255.0
	b := float64(rgb.B) / 255.0

	maxVal := math.Max(r, math.Max(g, b))
	minVal := math.Min(r, math.Min(g, b))
	delta := maxVal - minVal

	v = maxVal

	if maxVal == 0 {
		return 0, 0, 0
	}
	s = delta / maxVal

	if delta == 0 {
		return 0, s, v
	}

	switch maxVal {
	case r:
		h = (g - b) / delta
		if g < b {
			h += 6
		}
	case g:
		h = (b-r)/delta + 2
	case b:
		h = (r-g)/delta + 4
	}

	h *= 60
	return h, s, v
}

// ClassifyTemperature determines whether a colour reads as warm or cool.
// Low-saturation colours are neutral; otherwise the hue band decides:
// reds through yellows are warm, greens through purples are cool.
func ClassifyTemperature(rgb RGB) Temperature {
	h, s, _ := RGBToHSV(rgb)

	if s < 0.3 {
		return TemperatureNeutral
	}

	if h <= 60 || h >= 300 {
		return TemperatureWarm
	}
	if h >= 120 && h <= 300 {
		return TemperatureCool
	}
	return TemperatureNeutral
}

// Luminance calculates the relative luminance of a colour according to WCAG 2.0.
// Returns a value between 0 (darkest) and 1 (lightest).
// https://www.w3.org/TR/WCAG20/#relativeluminancedef.
func Luminance(rgb RGB) float64 {
	rf := float64(rgb.R) / 255.0
	rg := float64(rgb.G) / 255.0
	rb := float64(rgb.B) / 255.0

	rf = gammaCorrect(rf)
	rg = gammaCorrect(rg)
	rb = gammaCorrect(rb)

	return 0.2126*rf + 0.7152*rg + 0.0722*rb
}

// gammaCorrect applies gamma correction to a colour component.
func gammaCorrect(v float64) float64 {
	if v <= 0.03928 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

// ContrastRatio calculates the contrast ratio between two colours according
// to WCAG 2.0. Returns a value between 1 and 21, where 21 is maximum
// contrast (black vs white).
// https://www.w3.org/TR/WCAG20/#contrast-ratiodef.
func ContrastRatio(c1, c2 RGB) float64 {
	l1 := Luminance(c1)
	l2 := Luminance(c2)

	// Ensure l1 is the lighter colour.
	if l1 < l2 {
		l1, l2 = l2, l1
	}

	return (l1 + 0.05) / (l2 + 0.05)
}

// HueDistance calculates the angular distance between two hues on the
// colour wheel. Returns a value between 0 and 180 degrees.
func HueDistance(h1, h2 float64) float64 {
	diff := math.Abs(h1 - h2)
	if diff > 180 {
		diff = 360 - diff // Handle wraparound
	}
	return diff
}
