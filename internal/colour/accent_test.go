package colour

import (
	"testing"
)

func TestAccentColour(t *testing.T) {
	red := RGB{R: 255}
	orange := RGB{R: 255, G: 128}
	cyan := RGB{G: 255, B: 255}
	white := RGB{R: 255, G: 255, B: 255}

	tests := []struct {
		name    string
		palette *Palette
		want    RGB
		wantOK  bool
	}{
		{
			name:    "nil palette",
			palette: nil,
			wantOK:  false,
		},
		{
			name:    "single colour has no accent",
			palette: &Palette{Colours: []RGB{red}},
			wantOK:  false,
		},
		{
			name:    "opposite hue beats neighbouring hue",
			palette: &Palette{Colours: []RGB{red, orange, cyan}},
			want:    cyan,
			wantOK:  true,
		},
		{
			name:    "contrast separates equal hues",
			palette: &Palette{Colours: []RGB{red, RGB{R: 200}, white}},
			want:    white,
			wantOK:  true,
		},
		{
			name:    "two colours pick the secondary",
			palette: &Palette{Colours: []RGB{red, orange}},
			want:    orange,
			wantOK:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := AccentColour(tt.palette)
			if ok != tt.wantOK {
				t.Fatalf("AccentColour() ok = %v, want %v", ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Errorf("AccentColour() = %+v, want %+v", got, tt.want)
			}
		})
	}
}
