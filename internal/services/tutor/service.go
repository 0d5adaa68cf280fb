// Package tutor rewrites and explains text with a hosted language model.
package tutor

import (
	"context"
	"strings"
	"time"

	"github.com/bobmcallan/cleartext/internal/common"
	"github.com/bobmcallan/cleartext/internal/interfaces"
	"github.com/bobmcallan/cleartext/internal/metrics"
)

// Compile-time interface check
var _ interfaces.TutorService = (*Service)(nil)

const DefaultTimeout = 60 * time.Second

const simplifyPrompt = "Simplify the following highly technical or diplomatic document for a general audience. " +
	"Maintain accuracy but use clear, concise, and plain language. " +
	"Focus on the core meaning and eliminate jargon:\n\n"

const explainPrompt = "As a knowledgeable and patient tutor, explain the following sentence or concept " +
	"in simple, easy-to-understand terms for someone learning the topic. " +
	"Provide a clear, concise explanation:\n\n"

// Service implements TutorService
type Service struct {
	gemini  interfaces.GeminiClient
	timeout time.Duration
	logger  *common.Logger
	metrics *metrics.Metrics
}

// NewService creates a new tutor service. A non-positive timeout uses DefaultTimeout.
func NewService(gemini interfaces.GeminiClient, timeout time.Duration, logger *common.Logger, m *metrics.Metrics) *Service {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if logger == nil {
		logger = common.NewSilentLogger()
	}
	return &Service{
		gemini:  gemini,
		timeout: timeout,
		logger:  logger,
		metrics: m,
	}
}

// Simplify rewrites technical or diplomatic text in plain language.
func (s *Service) Simplify(ctx context.Context, text string) (string, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", common.NewInputError("Please provide text to simplify.")
	}
	return s.generate(ctx, "simplify", simplifyPrompt+text)
}

// Explain explains a sentence or concept for someone learning the topic.
func (s *Service) Explain(ctx context.Context, text string) (string, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", common.NewInputError("Please provide a sentence/concept to explain.")
	}
	return s.generate(ctx, "explain", explainPrompt+"'"+text+"'")
}

func (s *Service) generate(ctx context.Context, operation, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	start := time.Now()
	out, err := s.gemini.GenerateContent(ctx, prompt)
	if err != nil {
		s.metrics.RecordLLMCall(operation, "error")
		s.logger.Error().Str("operation", operation).Err(err).Msg("Language model call failed")
		return "", common.NewUpstreamError("language model call failed", err)
	}
	s.metrics.RecordLLMCall(operation, "ok")

	s.logger.Debug().
		Str("operation", operation).
		Dur("elapsed", time.Since(start)).
		Int("chars", len(out)).
		Msg("Language model call complete")

	return strings.TrimSpace(out), nil
}
