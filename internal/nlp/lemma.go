package nlp

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Lemmatizer maps a lowercased word to its dictionary base form.
type Lemmatizer interface {
	Lemma(word string) string
}

// IdentityLemmatizer returns words unchanged.
type IdentityLemmatizer struct{}

// Lemma returns word.
func (IdentityLemmatizer) Lemma(word string) string { return word }

// Normalize lowercases s, strips combining accents and collapses whitespace.
func Normalize(s string) string {
	// transform.Chain keeps state, so it is built per call
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, strings.ToLower(s))
	if err != nil {
		out = strings.ToLower(s)
	}
	return strings.Join(strings.Fields(out), " ")
}

// EntityLemma is the dedup key of a named entity. Entity words are proper
// nouns, whose base form is the word itself.
func EntityLemma(text string) string {
	return Normalize(text)
}

// ChunkLemma is the dedup key of a noun chunk: every common word is
// lemmatised, proper nouns are kept as written.
func ChunkLemma(l Lemmatizer, tokens []Token) string {
	lemmas := make([]Token, len(tokens))
	for i, tok := range tokens {
		word := strings.ToLower(tok.Text)
		if !isProperNoun(tok.Tag) && tok.Tag != "POS" {
			if lemma := l.Lemma(word); lemma != "" {
				word = strings.ToLower(lemma)
			}
		}
		lemmas[i] = Token{Text: word, Tag: tok.Tag}
	}
	return Normalize(JoinTokens(lemmas))
}
