package nlp

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPipeline_EmptyText(t *testing.T) {
	p, err := NewPipeline(WithLemmatizer(IdentityLemmatizer{}))
	require.NoError(t, err)

	for _, text := range []string{"", "   ", "\n\t"} {
		doc, err := p.Analyze(context.Background(), text)
		require.NoError(t, err)
		assert.Empty(t, doc.Entities)
		assert.Empty(t, doc.NounChunks)
	}
}

func TestPipeline_CancelledContext(t *testing.T) {
	p, err := NewPipeline(WithLemmatizer(IdentityLemmatizer{}))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = p.Analyze(ctx, "The delegates met in Brussels.")
	assert.Error(t, err)
}

func TestPipeline_SpansComeFromInput(t *testing.T) {
	p, err := NewPipeline()
	require.NoError(t, err)

	text := "The foreign ministers met in Brussels with the delegates from several member states"
	doc, err := p.Analyze(context.Background(), text)
	require.NoError(t, err)

	assert.NotEmpty(t, doc.NounChunks)
	for _, span := range append(doc.Entities, doc.NounChunks...) {
		assert.Contains(t, text, span.Text)
		assert.NotEmpty(t, span.Lemma)
		assert.Equal(t, span.Lemma, strings.ToLower(span.Lemma))
	}
}

func TestEntityLabel(t *testing.T) {
	assert.Equal(t, "ORG", EntityLabel("ORGANIZATION"))
	assert.Equal(t, "LOC", EntityLabel("LOCATION"))
	assert.Equal(t, "GPE", EntityLabel("GPE"))
	assert.Equal(t, "PERSON", EntityLabel("PERSON"))
	assert.Equal(t, "", EntityLabel(""))
}

func TestPipeline_SummitSentenceEntities(t *testing.T) {
	p, err := NewPipeline(WithLemmatizer(IdentityLemmatizer{}))
	require.NoError(t, err)

	doc, err := p.Analyze(context.Background(), "The North Atlantic Treaty Organization held a summit in Brussels.")
	require.NoError(t, err)

	labels := make(map[string]string)
	for _, ent := range doc.Entities {
		labels[ent.Text] = ent.Label
		assert.NotEqual(t, "ORGANIZATION", ent.Label)
		assert.NotEqual(t, "LOCATION", ent.Label)
	}
	assert.Equal(t, map[string]string{
		"North Atlantic Treaty Organization": "LOC",
		"Brussels":                           "GPE",
	}, labels)

	var chunks []string
	for _, c := range doc.NounChunks {
		chunks = append(chunks, c.Text)
	}
	assert.Contains(t, chunks, "The North Atlantic Treaty Organization")
}

func TestPipeline_ChunkTextKeepsSourceHyphens(t *testing.T) {
	p, err := NewPipeline(WithLemmatizer(IdentityLemmatizer{}))
	require.NoError(t, err)

	text := "The long-term climate strategy was approved."
	doc, err := p.Analyze(context.Background(), text)
	require.NoError(t, err)

	require.NotEmpty(t, doc.NounChunks)
	for _, c := range doc.NounChunks {
		assert.Contains(t, text, c.Text)
	}
}
