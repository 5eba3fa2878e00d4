// Package engine wires colour extraction, matching, and wardrobe storage
// into the boundary surface consumed by external callers (CLI, or a web
// layer in front of it).
package engine

import (
	"errors"
	"fmt"

	"github.com/hashicorp/go-hclog"

	"github.com/outfitkit/outfitkit/internal/colour"
	imageutil "github.com/outfitkit/outfitkit/internal/image"
	"github.com/outfitkit/outfitkit/internal/match"
	"github.com/outfitkit/outfitkit/internal/tables"
	"github.com/outfitkit/outfitkit/internal/wardrobe"
)

// Error kinds surfaced at the boundary. Callers distinguish them with
// errors.Is; everything else is an internal failure.
var (
	// ErrDecode indicates the uploaded bytes could not be decoded as an
	// image.
	ErrDecode = errors.New("image could not be decoded")

	// ErrValidation indicates missing or invalid request fields.
	ErrValidation = errors.New("invalid input")
)

// defaultItemName is used when an upload carries no item name.
const defaultItemName = "Unnamed Item"

// Config configures an Engine.
type Config struct {
	Logger    hclog.Logger
	Store     wardrobe.Store
	Extractor colour.ExtractorConfig
}

// Engine is the colour-matching engine facade. All operations are
// synchronous; a request either completes or fails without partial
// wardrobe writes.
type Engine struct {
	log       hclog.Logger
	tables    *tables.Store
	matcher   *match.Matcher
	extractor colour.Extractor
	store     wardrobe.Store
	suggester *match.OutfitSuggester
	colours   int
}

// New creates an Engine. A nil logger disables logging; a nil store gets
// a fresh in-memory wardrobe.
func New(cfg Config) (*Engine, error) {
	if cfg.Logger == nil {
		cfg.Logger = hclog.NewNullLogger()
	}
	if cfg.Store == nil {
		cfg.Store = wardrobe.NewMemoryStore()
	}
	if cfg.Extractor == (colour.ExtractorConfig{}) {
		cfg.Extractor = colour.DefaultExtractorConfig()
	}
	if err := cfg.Extractor.Validate(); err != nil {
		return nil, fmt.Errorf("invalid extractor configuration: %w", err)
	}

	extractor, err := colour.NewExtractor(cfg.Extractor.Algorithm)
	if err != nil {
		return nil, err
	}

	ts := tables.NewStore()
	return &Engine{
		log:       cfg.Logger,
		tables:    ts,
		matcher:   match.NewMatcher(ts),
		extractor: extractor,
		store:     cfg.Store,
		suggester: match.NewOutfitSuggester(cfg.Store, ts),
		colours:   cfg.Extractor.ColourCount,
	}, nil
}

// Tables exposes the static table store for read-only inspection.
func (e *Engine) Tables() *tables.Store {
	return e.tables
}

// Analysis is the result of analysing one garment image.
type Analysis struct {
	Item            wardrobe.ClothingItem   `json:"item"`
	Dominant        colour.RGB              `json:"dominant"`
	ColourName      string                  `json:"colour"`
	PerceptualName  string                  `json:"perceptual_colour"`
	Temperature     colour.Temperature      `json:"temperature"`
	Palette         *colour.Palette         `json:"palette"`
	Accent          *colour.RGB             `json:"accent,omitempty"`
	ContrastOnWhite float64                 `json:"contrast_on_white"`
	ContrastOnBlack float64                 `json:"contrast_on_black"`
	Suggestions     []match.Suggestion      `json:"suggestions"`
	WardrobeMatches []wardrobe.ClothingItem `json:"wardrobe_matches,omitempty"`
}

// Analyze decodes the image, extracts its dominant colour, and assembles
// suggestions. Nothing is stored.
func (e *Engine) Analyze(name, category string, imageData []byte) (*Analysis, error) {
	cat, err := e.validate(&name, category)
	if err != nil {
		return nil, err
	}

	img, err := imageutil.DecodeBytes(imageData)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}

	palette, err := e.extractor.Extract(img, e.colours)
	if err != nil {
		return nil, fmt.Errorf("colour extraction failed: %w", err)
	}

	dominant, ok := palette.Dominant()
	if !ok {
		return nil, fmt.Errorf("colour extraction produced no colours")
	}

	colourName := e.matcher.NearestName(dominant)
	e.log.Debug("garment analysed",
		"name", name,
		"category", cat,
		"dominant", dominant.Hex(),
		"colour", colourName)

	analysis := &Analysis{
		Item:            wardrobe.NewClothingItem(name, cat, colourName, dominant),
		Dominant:        dominant,
		ColourName:      colourName,
		PerceptualName:  e.matcher.PerceptualName(dominant),
		Temperature:     colour.ClassifyTemperature(dominant),
		Palette:         palette,
		ContrastOnWhite: colour.ContrastRatio(dominant, colour.RGB{R: 255, G: 255, B: 255}),
		ContrastOnBlack: colour.ContrastRatio(dominant, colour.RGB{}),
		Suggestions:     e.matcher.Suggestions(colourName, cat),
	}
	if accent, ok := colour.AccentColour(palette); ok {
		analysis.Accent = &accent
	}
	return analysis, nil
}

// AddGarment analyses the image and, on success, appends the item to the
// user's wardrobe. The wardrobe is untouched when analysis fails. The
// returned analysis includes stored items that pair with the new garment.
func (e *Engine) AddGarment(userID, name, category string, imageData []byte) (*Analysis, error) {
	if userID == "" {
		return nil, fmt.Errorf("%w: user id is required", ErrValidation)
	}

	analysis, err := e.Analyze(name, category, imageData)
	if err != nil {
		return nil, err
	}

	e.store.Add(userID, analysis.Item)
	analysis.WardrobeMatches = e.suggester.WardrobeMatches(userID, analysis.Item.Category, analysis.ColourName)

	e.log.Info("garment added",
		"user", userID,
		"item", analysis.Item.Name,
		"category", analysis.Item.Category,
		"colour", analysis.ColourName)

	return analysis, nil
}

// Palette extracts the top-count colours of an image ordered by cluster
// population descending.
func (e *Engine) Palette(imageData []byte, count int) (*colour.Palette, error) {
	cfg := colour.ExtractorConfig{Algorithm: colour.AlgorithmKMeans, ColourCount: count}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	img, err := imageutil.DecodeBytes(imageData)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}

	return e.extractor.Extract(img, count)
}

// Wardrobe returns the user's wardrobe keyed by category, items in
// insertion order. An unknown user yields an empty wardrobe.
func (e *Engine) Wardrobe(userID string) map[wardrobe.Category][]wardrobe.ClothingItem {
	return e.store.All(userID)
}

// SuggestOutfit assembles one outfit for the user.
func (e *Engine) SuggestOutfit(userID string) match.Outfit {
	return e.suggester.Suggest(userID)
}

// SystemStats summarises static table sizes and wardrobe contents.
type SystemStats struct {
	Tables             tables.Stats   `json:"tables"`
	Users              int            `json:"users"`
	Items              int            `json:"items"`
	ColourDistribution map[string]int `json:"colour_distribution"`
}

// Stats reports table and wardrobe counts. Informational only.
func (e *Engine) Stats() SystemStats {
	total, byColour := e.store.Counts()
	return SystemStats{
		Tables:             e.tables.Stats(),
		Users:              e.store.Users(),
		Items:              total,
		ColourDistribution: byColour,
	}
}

// validate checks request fields, applying the default item name.
func (e *Engine) validate(name *string, category string) (wardrobe.Category, error) {
	if *name == "" {
		*name = defaultItemName
	}

	cat, err := wardrobe.ParseCategory(category)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrValidation, err)
	}
	return cat, nil
}
