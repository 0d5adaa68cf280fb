package glossary

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/bobmcallan/cleartext/internal/models"
)

// Extract selects candidate glossary terms from analysed text. Entities are
// considered first, then noun chunks, each in text order. A lemma is claimed by
// the first span that passes its phase filter, so later spans sharing it are
// skipped even when the earlier term has no definition.
func Extract(doc *models.AnalyzedText, tables Tables) []models.Term {
	if doc == nil {
		return nil
	}

	processed := make(map[string]struct{})
	var terms []models.Term

	for _, ent := range doc.Entities {
		text := strings.TrimSpace(ent.Text)
		if utf8.RuneCountInString(text) <= 1 {
			continue
		}
		if !tables.isCategory(ent.Label) {
			continue
		}
		if _, seen := processed[ent.Lemma]; seen {
			continue
		}
		if tables.isStopword(ent.Lemma) {
			continue
		}
		processed[ent.Lemma] = struct{}{}
		terms = append(terms, models.Term{
			Text:   text,
			Lemma:  ent.Lemma,
			Label:  ent.Label,
			Source: models.TermSourceEntity,
		})
	}

	for _, chunk := range doc.NounChunks {
		text := strings.TrimSpace(chunk.Text)
		if !strings.Contains(text, " ") || utf8.RuneCountInString(text) <= 3 {
			continue
		}
		if _, seen := processed[chunk.Lemma]; seen {
			continue
		}
		if !hasCapitalisedWord(text) && containsStopword(text, tables) {
			continue
		}
		processed[chunk.Lemma] = struct{}{}
		terms = append(terms, models.Term{
			Text:   text,
			Lemma:  chunk.Lemma,
			Source: models.TermSourceNounChunk,
		})
	}

	return terms
}

func hasCapitalisedWord(text string) bool {
	for _, w := range strings.Fields(text) {
		r, _ := utf8.DecodeRuneInString(w)
		if unicode.IsUpper(r) {
			return true
		}
	}
	return false
}

func containsStopword(text string, tables Tables) bool {
	for _, w := range strings.Fields(text) {
		if tables.isStopword(strings.ToLower(w)) {
			return true
		}
	}
	return false
}
