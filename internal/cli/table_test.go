package cli

import (
	"reflect"
	"strings"
	"testing"
)

func TestNewTable(t *testing.T) {
	headers := []string{"Colour", "Hex", "RGB"}
	table := NewTable(headers)

	if table == nil {
		t.Fatal("NewTable returned nil")
	}

	if len(table.headers) != 3 {
		t.Errorf("Expected 3 headers, got %d", len(table.headers))
	}

	if table.padding != 2 {
		t.Errorf("Expected padding of 2, got %d", table.padding)
	}
}

func TestTableAddRow(t *testing.T) {
	table := NewTable([]string{"Colour", "Hex"})

	// Add matching row
	table.AddRow([]string{"red", "#ff0000"})
	if len(table.rows) != 1 {
		t.Errorf("Expected 1 row, got %d", len(table.rows))
	}

	// Add row with fewer columns (should be padded)
	table.AddRow([]string{"navy"})
	if len(table.rows) != 2 {
		t.Errorf("Expected 2 rows, got %d", len(table.rows))
	}
	if len(table.rows[1]) != 2 {
		t.Errorf("Expected row to be padded to 2 columns, got %d", len(table.rows[1]))
	}
	if table.rows[1][1] != "" {
		t.Errorf("Expected empty string for padded column, got %q", table.rows[1][1])
	}

	// Add row with more columns (should be truncated)
	table.AddRow([]string{"teal", "#008080", "extra"})
	if len(table.rows) != 3 {
		t.Errorf("Expected 3 rows, got %d", len(table.rows))
	}
	if len(table.rows[2]) != 2 {
		t.Errorf("Expected row to be truncated to 2 columns, got %d", len(table.rows[2]))
	}
}

func TestTableRender(t *testing.T) {
	table := NewTable([]string{"Colour", "Hex"})
	table.AddRow([]string{"red", "#ff0000"})
	table.AddRow([]string{"sky blue", "#87ceeb"})

	output := table.Render()
	lines := strings.Split(strings.TrimRight(output, "\n"), "\n")

	// Header, separator, two data rows.
	if len(lines) != 4 {
		t.Fatalf("Expected 4 lines, got %d:\n%s", len(lines), output)
	}
	if !strings.HasPrefix(lines[0], "Colour") {
		t.Errorf("Header line = %q", lines[0])
	}
	if !strings.Contains(lines[1], "---") {
		t.Errorf("Separator line = %q", lines[1])
	}
	if !strings.Contains(lines[3], "sky blue") || !strings.Contains(lines[3], "#87ceeb") {
		t.Errorf("Data line = %q", lines[3])
	}

	// Columns align: the hex column starts at the same offset in each line.
	offset := strings.Index(lines[0], "Hex")
	if strings.Index(lines[2], "#ff0000") != offset {
		t.Errorf("Columns misaligned:\n%s", output)
	}
}

func TestTableRenderEmpty(t *testing.T) {
	if out := NewTable(nil).Render(); out != "" {
		t.Errorf("Expected empty output, got %q", out)
	}
}

func TestTableColumnWrapping(t *testing.T) {
	table := NewTable([]string{"Colour", "Pairs With"})
	table.SetColumnMaxWidth(1, 20)
	table.AddRow([]string{"black", "white, gray, red, blue, green, beige, pink, yellow"})

	output := table.Render()
	lines := strings.Split(strings.TrimRight(output, "\n"), "\n")

	// The long cell wraps onto continuation lines.
	if len(lines) <= 3 {
		t.Fatalf("Expected wrapped output, got:\n%s", output)
	}
	for _, line := range lines[2:] {
		if len(line) > len(lines[1])+20 {
			t.Errorf("Wrapped line too long: %q", line)
		}
	}
}

func TestWrapText(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		width int
		want  []string
	}{
		{name: "fits", text: "short", width: 10, want: []string{"short"}},
		{name: "no limit", text: "anything at all", width: 0, want: []string{"anything at all"}},
		{name: "word boundary", text: "red green blue", width: 9, want: []string{"red green", "blue"}},
		{name: "long word broken", text: "abcdefghij", width: 4, want: []string{"abcd", "efgh", "ij"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := wrapText(tt.text, tt.width)
			if len(got) != len(tt.want) {
				t.Fatalf("wrapText() = %v, want %v", got, tt.want)
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("wrapText()[%d] = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestPadRight(t *testing.T) {
	if got := padRight("abc", 5); got != "abc  " {
		t.Errorf("padRight() = %q", got)
	}
	if got := padRight("abcdef", 3); got != "abcdef" {
		t.Errorf("padRight() must not truncate, got %q", got)
	}
}

func TestNameFromPath(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{path: "blue-jeans.jpg", want: "Blue Jeans"},
		{path: "photos/linen_shirt.png", want: "Linen Shirt"},
		{path: "dress.webp", want: "Dress"},
		{path: "IMG_1234.jpeg", want: "IMG 1234"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := nameFromPath(tt.path); got != tt.want {
				t.Errorf("nameFromPath(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}

func TestParseGarmentArg(t *testing.T) {
	tests := []struct {
		name    string
		arg     string
		want    garmentArg
		wantErr bool
	}{
		{
			name: "path and category",
			arg:  "shirt.jpg:tops",
			want: garmentArg{path: "shirt.jpg", category: "tops", name: "Shirt"},
		},
		{
			name: "explicit name",
			arg:  "shirt.jpg:tops:Linen Shirt",
			want: garmentArg{path: "shirt.jpg", category: "tops", name: "Linen Shirt"},
		},
		{name: "missing category", arg: "shirt.jpg", wantErr: true},
		{name: "empty path", arg: ":tops", wantErr: true},
		{name: "empty category", arg: "shirt.jpg:", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseGarmentArg(tt.arg)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseGarmentArg(%q) error = %v, wantErr %v", tt.arg, err, tt.wantErr)
			}
			if !tt.wantErr && !reflect.DeepEqual(got, tt.want) {
				t.Errorf("parseGarmentArg(%q) = %+v, want %+v", tt.arg, got, tt.want)
			}
		})
	}
}
