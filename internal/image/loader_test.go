package image

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// writeTestPNG writes a small PNG to a temp directory and returns its path.
func writeTestPNG(t *testing.T) string {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			img.Set(x, y, color.RGBA{R: 100, G: 150, B: 200, A: 255})
		}
	}

	path := filepath.Join(t.TempDir(), "test.png")
	file, err := os.Create(path)
	if err != nil {
		t.Fatalf("failed to create test file: %v", err)
	}
	defer file.Close()

	if err := png.Encode(file, img); err != nil {
		t.Fatalf("failed to encode test image: %v", err)
	}
	return path
}

func TestFileLoaderLoad(t *testing.T) {
	path := writeTestPNG(t)

	loader := NewFileLoader()
	data, err := loader.Load(path)
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}
	if len(data) == 0 {
		t.Fatal("Load() returned no data")
	}

	// The loaded bytes decode back to the original image.
	img, err := DecodeBytes(data)
	if err != nil {
		t.Fatalf("DecodeBytes() rejected loaded bytes: %v", err)
	}
	bounds := img.Bounds()
	if bounds.Dx() != 4 || bounds.Dy() != 4 {
		t.Errorf("Loaded image is %dx%d, want 4x4", bounds.Dx(), bounds.Dy())
	}
}

func TestFileLoaderLoadErrors(t *testing.T) {
	loader := NewFileLoader()

	tests := []struct {
		name string
		path string
	}{
		{name: "empty path", path: ""},
		{name: "missing file", path: filepath.Join(t.TempDir(), "missing.png")},
		{name: "directory", path: t.TempDir()},
		{name: "unsupported extension", path: "notes.txt"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := loader.Load(tt.path); err == nil {
				t.Errorf("Load(%q) did not return an error", tt.path)
			}
		})
	}

	// The unsupported-extension error names the supported set.
	_, err := loader.Load("photo.bmp")
	if err == nil || !strings.Contains(err.Error(), ".webp") {
		t.Errorf("Load() error = %v, want supported extension list", err)
	}
}

func TestDecodeBytes(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("failed to encode test image: %v", err)
	}

	decoded, err := DecodeBytes(buf.Bytes())
	if err != nil {
		t.Fatalf("DecodeBytes() returned error: %v", err)
	}
	if decoded.Bounds().Dx() != 2 {
		t.Errorf("Decoded width = %d, want 2", decoded.Bounds().Dx())
	}
}

func TestDecodeBytesErrors(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{name: "empty", data: nil},
		{name: "junk", data: []byte("not an image")},
		{name: "truncated header", data: []byte{0x89, 0x50}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := DecodeBytes(tt.data); err == nil {
				t.Error("DecodeBytes() did not return an error")
			}
		})
	}
}

func TestIsImageFile(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{path: "photo.jpg", want: true},
		{path: "photo.JPEG", want: true},
		{path: "photo.png", want: true},
		{path: "photo.gif", want: true},
		{path: "photo.webp", want: true},
		{path: "photo.bmp", want: false},
		{path: "photo", want: false},
		{path: "archive.tar.gz", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := IsImageFile(tt.path); got != tt.want {
				t.Errorf("IsImageFile(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

func TestValidateImagePath(t *testing.T) {
	path := writeTestPNG(t)
	if err := ValidateImagePath(path); err != nil {
		t.Errorf("ValidateImagePath() returned error for valid PNG: %v", err)
	}

	// A text file with an image extension must fail config decoding.
	fakePath := filepath.Join(t.TempDir(), "fake.png")
	if err := os.WriteFile(fakePath, []byte("not an image"), 0644); err != nil {
		t.Fatalf("failed to write fake image: %v", err)
	}
	if err := ValidateImagePath(fakePath); err == nil {
		t.Error("ValidateImagePath() accepted a non-image file")
	}

	if err := ValidateImagePath(""); err == nil {
		t.Error("ValidateImagePath() accepted an empty path")
	}
}
