package colour

import (
	"strings"
	"testing"
)

func TestColourPreview(t *testing.T) {
	c := RGB{R: 200, G: 100, B: 50}

	preview := ColourPreview(c, 4)
	if !strings.Contains(preview, "48;2;200;100;50") {
		t.Errorf("Preview missing background escape: %q", preview)
	}
	if !strings.HasSuffix(preview, ansiReset) {
		t.Errorf("Preview missing reset: %q", preview)
	}
	if !strings.Contains(preview, "    ") {
		t.Errorf("Preview missing 4-space block: %q", preview)
	}

	// Zero or negative width falls back to the default.
	fallback := ColourPreview(c, 0)
	if !strings.Contains(fallback, strings.Repeat(" ", defaultWidth)) {
		t.Errorf("Preview did not use default width: %q", fallback)
	}
}

func TestColourPreviewDisabled(t *testing.T) {
	DisableColourOutput = true
	defer func() { DisableColourOutput = false }()

	preview := ColourPreview(RGB{R: 1, G: 2, B: 3}, 4)
	if preview != "    " {
		t.Errorf("Disabled preview = %q, want plain spaces", preview)
	}
}

func TestColourString(t *testing.T) {
	c := RGB{R: 10, G: 20, B: 30}

	coloured := ColourString(c, "hello")
	if !strings.Contains(coloured, "38;2;10;20;30") || !strings.Contains(coloured, "hello") {
		t.Errorf("ColourString() = %q", coloured)
	}

	DisableColourOutput = true
	defer func() { DisableColourOutput = false }()
	if got := ColourString(c, "hello"); got != "hello" {
		t.Errorf("Disabled ColourString() = %q, want plain text", got)
	}
}

func TestFormatColourWithLabel(t *testing.T) {
	got := FormatColourWithLabel(RGB{R: 255}, "red", 4)
	if !strings.Contains(got, "red") || !strings.Contains(got, "#ff0000") {
		t.Errorf("FormatColourWithLabel() = %q", got)
	}
	// The hex value carries its own foreground colour.
	if !strings.Contains(got, "38;2;255;0;0") {
		t.Errorf("FormatColourWithLabel() missing coloured hex: %q", got)
	}

	DisableColourOutput = true
	defer func() { DisableColourOutput = false }()
	plain := FormatColourWithLabel(RGB{R: 255}, "red", 4)
	if strings.Contains(plain, "\033[") {
		t.Errorf("Disabled FormatColourWithLabel() = %q, want no escapes", plain)
	}
}
