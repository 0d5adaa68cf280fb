// Package interfaces defines service contracts for ClearText
package interfaces

import (
	"context"

	"github.com/bobmcallan/cleartext/internal/models"
)

// GeminiClient provides access to the Gemini API
type GeminiClient interface {
	// GenerateContent generates AI content from a prompt
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

// EncyclopediaClient looks up encyclopedia pages by exact title
type EncyclopediaClient interface {
	// GetSummary returns the intro of the page titled term.
	// A missing page is reported with wikipedia.ErrPageNotFound.
	GetSummary(ctx context.Context, term string) (*models.PageSummary, error)
}

// LanguagePipeline runs named-entity recognition and noun-phrase chunking
type LanguagePipeline interface {
	// Analyze returns entities and noun chunks in text order, each with a lemma key
	Analyze(ctx context.Context, text string) (*models.AnalyzedText, error)
}
