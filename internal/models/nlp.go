package models

// Span is a contiguous piece of analysed text: a named entity or a noun chunk.
type Span struct {
	Text  string `json:"text"`
	Label string `json:"label,omitempty"`
	Lemma string `json:"lemma"`
}

// AnalyzedText is the output of the language pipeline for one input.
// Spans are in the order they appear in the text.
type AnalyzedText struct {
	Entities   []Span `json:"entities"`
	NounChunks []Span `json:"noun_chunks"`
}
