package colour

import (
	"fmt"
	"strings"
)

// ANSI escape codes for terminal colours.
const (
	ansiReset    = "\033[0m"
	ansiFgPrefix = "\033[38;2;"
	ansiBgPrefix = "\033[48;2;"
	ansiSuffix   = "m"
	defaultWidth = 8
)

// ColourPreview returns an ANSI-coloured preview block for a colour.
// Width specifies how many characters wide the colour block should be.
// When colour output is disabled the block is plain spaces so column
// alignment is preserved.
func ColourPreview(c RGB, width int) string {
	if width <= 0 {
		width = defaultWidth
	}

	block := strings.Repeat(" ", width)
	if DisableColourOutput {
		return block
	}

	bgColour := fmt.Sprintf("%s%d;%d;%d%s", ansiBgPrefix, c.R, c.G, c.B, ansiSuffix)
	return bgColour + block + ansiReset
}

// FormatColourWithLabel formats a colour with a label, preview, and the
// hex value rendered in the colour itself.
func FormatColourWithLabel(rgb RGB, label string, width int) string {
	preview := ColourPreview(rgb, width)
	return fmt.Sprintf("%s  %-20s %s", preview, label, ColourString(rgb, rgb.Hex()))
}

// DisableColourOutput can be used to disable colour output.
var DisableColourOutput = false

// ColourString returns a coloured string if colour output is enabled,
// plain text otherwise.
func ColourString(rgb RGB, text string) string {
	if DisableColourOutput {
		return text
	}

	fgColour := fmt.Sprintf("%s%d;%d;%d%s", ansiFgPrefix, rgb.R, rgb.G, rgb.B, ansiSuffix)
	return fgColour + text + ansiReset
}
