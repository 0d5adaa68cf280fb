// Package nlp runs named-entity recognition and noun-phrase chunking over
// English text and derives lemma keys for deduplication.
package nlp

import (
	"context"
	"fmt"
	"strings"

	"github.com/aaaton/golem/v4"
	"github.com/aaaton/golem/v4/dicts/en"
	"github.com/jdkato/prose/v2"

	"github.com/bobmcallan/cleartext/internal/common"
	"github.com/bobmcallan/cleartext/internal/interfaces"
	"github.com/bobmcallan/cleartext/internal/models"
)

// Pipeline implements LanguagePipeline with prose for tagging and entity
// extraction and golem for lemmatisation. It is safe for concurrent use.
type Pipeline struct {
	lemmatizer Lemmatizer
	logger     *common.Logger
}

// Option configures the pipeline
type Option func(*Pipeline)

// WithLemmatizer replaces the English dictionary lemmatiser
func WithLemmatizer(l Lemmatizer) Option {
	return func(p *Pipeline) {
		p.lemmatizer = l
	}
}

// WithLogger sets the logger
func WithLogger(logger *common.Logger) Option {
	return func(p *Pipeline) {
		p.logger = logger
	}
}

// NewPipeline loads the English lemma dictionary unless a lemmatiser is
// supplied. Loading is done once per process.
func NewPipeline(opts ...Option) (*Pipeline, error) {
	p := &Pipeline{logger: common.NewSilentLogger()}
	for _, opt := range opts {
		opt(p)
	}

	if p.lemmatizer == nil {
		lem, err := golem.New(en.New())
		if err != nil {
			return nil, fmt.Errorf("failed to load English lemma dictionary: %w", err)
		}
		p.lemmatizer = lem
	}

	return p, nil
}

// Analyze tags text and returns its entities and noun chunks in text order.
func (p *Pipeline) Analyze(ctx context.Context, text string) (*models.AnalyzedText, error) {
	result := &models.AnalyzedText{}
	if strings.TrimSpace(text) == "" {
		return result, nil
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	doc, err := prose.NewDocument(text, prose.WithSegmentation(false))
	if err != nil {
		return nil, fmt.Errorf("failed to analyse text: %w", err)
	}

	for _, ent := range doc.Entities() {
		entText := strings.TrimSpace(ent.Text)
		if entText == "" {
			continue
		}
		result.Entities = append(result.Entities, models.Span{
			Text:  entText,
			Label: EntityLabel(ent.Label),
			Lemma: EntityLemma(entText),
		})
	}

	docTokens := doc.Tokens()
	tokens := make([]Token, len(docTokens))
	for i, tok := range docTokens {
		tokens[i] = Token{Text: tok.Text, Tag: tok.Tag}
	}
	LocateTokens(text, tokens)

	for _, chunk := range Chunk(tokens) {
		result.NounChunks = append(result.NounChunks, models.Span{
			Text:  SurfaceText(text, chunk),
			Lemma: ChunkLemma(p.lemmatizer, chunk),
		})
	}

	p.logger.Debug().
		Int("tokens", len(tokens)).
		Int("entities", len(result.Entities)).
		Int("noun_chunks", len(result.NounChunks)).
		Msg("Text analysed")

	return result, nil
}

// entityLabels maps prose's entity labels onto the shorter category names
// used by the glossary tables.
var entityLabels = map[string]string{
	"ORGANIZATION": "ORG",
	"LOCATION":     "LOC",
}

// EntityLabel returns the category name for a tagger label. Labels without a
// mapping pass through unchanged.
func EntityLabel(label string) string {
	if mapped, ok := entityLabels[label]; ok {
		return mapped
	}
	return label
}

// Ensure Pipeline implements LanguagePipeline
var _ interfaces.LanguagePipeline = (*Pipeline)(nil)
