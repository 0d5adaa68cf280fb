// Package glossary builds glossaries of named entities and noun phrases with
// definitions from an online encyclopedia.
package glossary

import (
	"context"
	"strings"

	"github.com/bobmcallan/cleartext/internal/common"
	"github.com/bobmcallan/cleartext/internal/interfaces"
	"github.com/bobmcallan/cleartext/internal/models"
)

// Compile-time interface check
var _ interfaces.GlossaryService = (*Service)(nil)

// Service implements GlossaryService
type Service struct {
	pipeline interfaces.LanguagePipeline
	resolver *Resolver
	tables   Tables
	logger   *common.Logger
}

// NewService creates a new glossary service
func NewService(pipeline interfaces.LanguagePipeline, resolver *Resolver, tables Tables, logger *common.Logger) *Service {
	if logger == nil {
		logger = common.NewSilentLogger()
	}
	return &Service{
		pipeline: pipeline,
		resolver: resolver,
		tables:   tables,
		logger:   logger,
	}
}

// BuildGlossary extracts candidate terms from text and keeps those with a
// definition. Lookup failures only drop the affected term; an error is
// returned only when the text cannot be analysed.
func (s *Service) BuildGlossary(ctx context.Context, text string) (*models.Glossary, error) {
	glossary := models.NewGlossary()

	text = strings.TrimSpace(text)
	if text == "" {
		return glossary, nil
	}

	doc, err := s.pipeline.Analyze(ctx, text)
	if err != nil {
		return nil, common.NewUpstreamError("failed to analyse text", err)
	}

	terms := Extract(doc, s.tables)

	var notFound, failed int
	for _, term := range terms {
		if ctx.Err() != nil {
			break
		}
		res := s.resolver.Resolve(ctx, term.Text)
		switch res.Status {
		case models.ResolutionResolved:
			glossary.Add(term.Text, res.Definition)
		case models.ResolutionNotFound:
			notFound++
		case models.ResolutionFailed:
			failed++
		}
	}

	s.logger.Info().
		Int("candidates", len(terms)).
		Int("resolved", glossary.Len()).
		Int("not_found", notFound).
		Int("failed", failed).
		Msg("Glossary built")

	return glossary, nil
}
