package glossary

import (
	"context"
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/bobmcallan/cleartext/internal/clients/wikipedia"
	"github.com/bobmcallan/cleartext/internal/common"
	"github.com/bobmcallan/cleartext/internal/interfaces"
	"github.com/bobmcallan/cleartext/internal/metrics"
	"github.com/bobmcallan/cleartext/internal/models"
)

const (
	DefaultMaxDefinitionLength = 500
	DefaultLookupTimeout       = 10 * time.Second

	truncationMarker = "..."
)

// Resolver looks up one term at a time and never returns an error:
// every outcome is reported in the Resolution.
type Resolver struct {
	client    interfaces.EncyclopediaClient
	maxLength int
	timeout   time.Duration
	logger    *common.Logger
	metrics   *metrics.Metrics
}

// NewResolver creates a resolver. Non-positive limits fall back to the defaults.
func NewResolver(client interfaces.EncyclopediaClient, maxLength int, timeout time.Duration, logger *common.Logger, m *metrics.Metrics) *Resolver {
	if maxLength <= 0 {
		maxLength = DefaultMaxDefinitionLength
	}
	if timeout <= 0 {
		timeout = DefaultLookupTimeout
	}
	if logger == nil {
		logger = common.NewSilentLogger()
	}
	return &Resolver{
		client:    client,
		maxLength: maxLength,
		timeout:   timeout,
		logger:    logger,
		metrics:   m,
	}
}

// Resolve fetches the definition for term.
func (r *Resolver) Resolve(ctx context.Context, term string) models.Resolution {
	res := r.resolve(ctx, term)
	r.metrics.RecordLookup(string(res.Status))
	return res
}

func (r *Resolver) resolve(ctx context.Context, term string) models.Resolution {
	lookupCtx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	page, err := r.client.GetSummary(lookupCtx, term)
	if err != nil {
		if errors.Is(err, wikipedia.ErrPageNotFound) {
			r.logger.Debug().Str("term", term).Msg("No encyclopedia page for term")
			return models.Resolution{Term: term, Status: models.ResolutionNotFound}
		}
		r.logger.Warn().Str("term", term).Err(err).Msg("Definition lookup failed")
		return models.Resolution{Term: term, Status: models.ResolutionFailed, Err: err}
	}

	definition := Summarize(page.Extract, r.maxLength)
	if definition == "" {
		return models.Resolution{Term: term, Status: models.ResolutionNotFound}
	}

	return models.Resolution{Term: term, Status: models.ResolutionResolved, Definition: definition}
}

// Summarize keeps the first line of an extract and truncates it to maxLength
// characters, appending "..." when cut.
func Summarize(extract string, maxLength int) string {
	first, _, _ := strings.Cut(extract, "\n")
	first = strings.TrimSpace(first)
	if utf8.RuneCountInString(first) <= maxLength {
		return first
	}
	runes := []rune(first)
	return string(runes[:maxLength]) + truncationMarker
}
