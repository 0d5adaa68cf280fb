package interfaces

import (
	"context"

	"github.com/bobmcallan/cleartext/internal/models"
)

// TutorService wraps the language model prompts
type TutorService interface {
	// Simplify rewrites technical or diplomatic text for a general audience
	Simplify(ctx context.Context, text string) (string, error)

	// Explain explains a sentence or concept as a patient tutor would
	Explain(ctx context.Context, text string) (string, error)
}

// GlossaryService builds glossaries from free text
type GlossaryService interface {
	// BuildGlossary extracts candidate terms and resolves their definitions
	BuildGlossary(ctx context.Context, text string) (*models.Glossary, error)
}
