// Package stylist generates short styling notes for assembled outfits
// using Google's Gemini models. It is optional: callers should degrade to
// plain output when no API key is configured.
package stylist

import (
	"context"
	"fmt"
	"os"
	"strings"

	"google.golang.org/genai"

	"github.com/outfitkit/outfitkit/internal/match"
)

const (
	// defaultModel is the text model used when none is specified.
	defaultModel = "gemini-2.5-flash"

	// promptPreamble frames the request so responses stay short and
	// concrete.
	promptPreamble = "You are a fashion stylist. In at most three sentences, describe how to wear this outfit and why its colours work together. Outfit:"
)

// Stylist generates outfit descriptions via the Gemini API.
type Stylist struct {
	model string
}

// New creates a Stylist with the default model.
func New() *Stylist {
	return &Stylist{model: defaultModel}
}

// Available reports whether an API key is configured.
func Available() bool {
	return os.Getenv("GOOGLE_API_KEY") != ""
}

// Describe asks the model for a short narrative of the outfit.
func (s *Stylist) Describe(ctx context.Context, outfit match.Outfit) (string, error) {
	if outfit.Empty() {
		return "", fmt.Errorf("outfit is empty")
	}

	client, err := clientSetup(ctx)
	if err != nil {
		return "", err
	}

	contents := genai.Text(buildPrompt(outfit))
	response, err := client.Models.GenerateContent(ctx, s.model, contents, nil)
	if err != nil {
		return "", fmt.Errorf("styling note generation failed: %w", err)
	}

	if len(response.Candidates) == 0 || response.Candidates[0].Content == nil {
		return "", fmt.Errorf("no text in response")
	}

	var sb strings.Builder
	for _, part := range response.Candidates[0].Content.Parts {
		if part.Text != "" {
			sb.WriteString(part.Text)
		}
	}

	text := strings.TrimSpace(sb.String())
	if text == "" {
		return "", fmt.Errorf("no text in response")
	}
	return text, nil
}

// clientSetup encapsulates client configuration and creation.
func clientSetup(ctx context.Context) (*genai.Client, error) {
	apiKey := os.Getenv("GOOGLE_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("GOOGLE_API_KEY environment variable is required\nGet one at: https://aistudio.google.com/api-keys")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		Backend: genai.BackendGeminiAPI,
		APIKey:  apiKey,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gen AI client: %w", err)
	}
	return client, nil
}

// buildPrompt renders the outfit as a short item list for the model.
func buildPrompt(outfit match.Outfit) string {
	var sb strings.Builder
	sb.WriteString(promptPreamble)
	for _, category := range outfit.Order {
		item := outfit.Items[category]
		sb.WriteString(fmt.Sprintf("\n- %s (%s): %s %s", item.Name, category, item.ColourName, item.Colour.Hex()))
	}
	return sb.String()
}
