package colour

import (
	"fmt"
	"image"
)

// Extractor defines the interface for colour extraction algorithms.
type Extractor interface {
	// Extract extracts a colour palette from an image.
	// The count parameter specifies the number of clusters to use.
	Extract(img image.Image, count int) (*Palette, error)
}

// Algorithm represents the colour extraction algorithm type.
type Algorithm string

const (
	// AlgorithmKMeans uses k-means clustering for colour extraction.
	AlgorithmKMeans Algorithm = "kmeans"
)

// ValidAlgorithms returns a list of valid algorithm names.
func ValidAlgorithms() []Algorithm {
	return []Algorithm{
		AlgorithmKMeans,
	}
}

// IsValidAlgorithm checks if the given algorithm name is valid.
func IsValidAlgorithm(alg Algorithm) bool {
	for _, valid := range ValidAlgorithms() {
		if alg == valid {
			return true
		}
	}
	return false
}

// NewExtractor creates a new Extractor based on the specified algorithm.
func NewExtractor(alg Algorithm) (Extractor, error) {
	switch alg {
	case AlgorithmKMeans:
		return NewKMeansExtractor(), nil
	default:
		return nil, fmt.Errorf("unknown algorithm: %s (valid algorithms: %v)", alg, ValidAlgorithms())
	}
}

// ExtractorConfig holds configuration for colour extraction.
type ExtractorConfig struct {
	Algorithm   Algorithm
	ColourCount int
}

// DefaultExtractorConfig returns the default extractor configuration.
// Three clusters is enough to separate a garment from its background
// and any trim colour.
func DefaultExtractorConfig() ExtractorConfig {
	return ExtractorConfig{
		Algorithm:   AlgorithmKMeans,
		ColourCount: 3,
	}
}

// Validate validates the extractor configuration.
func (c ExtractorConfig) Validate() error {
	if !IsValidAlgorithm(c.Algorithm) {
		return fmt.Errorf("invalid algorithm: %s", c.Algorithm)
	}
	if c.ColourCount < 1 {
		return fmt.Errorf("colour count must be at least 1, got %d", c.ColourCount)
	}
	if c.ColourCount > 256 {
		return fmt.Errorf("colour count too large: %d (maximum: 256)", c.ColourCount)
	}
	return nil
}
