package models

// TermSource records which extraction phase produced a term.
type TermSource string

const (
	TermSourceEntity    TermSource = "entity"
	TermSourceNounChunk TermSource = "noun_chunk"
)

// Term is a candidate glossary term. Text is the surface form used for display
// and lookup; Lemma is the normalised base form used as the deduplication key.
type Term struct {
	Text   string     `json:"text"`
	Lemma  string     `json:"lemma"`
	Label  string     `json:"label,omitempty"`
	Source TermSource `json:"source"`
}

// GlossaryEntry pairs a term with its display definition.
type GlossaryEntry struct {
	Term       string `json:"term"`
	Definition string `json:"definition"`
}

// Glossary is an insertion-ordered set of entries keyed by term display form.
// The zero value is not usable; use NewGlossary.
type Glossary struct {
	Entries []GlossaryEntry
	index   map[string]int
}

// NewGlossary returns an empty glossary.
func NewGlossary() *Glossary {
	return &Glossary{index: make(map[string]int)}
}

// Add inserts an entry unless the term is already present. The first entry wins.
func (g *Glossary) Add(term, definition string) bool {
	if _, ok := g.index[term]; ok {
		return false
	}
	g.index[term] = len(g.Entries)
	g.Entries = append(g.Entries, GlossaryEntry{Term: term, Definition: definition})
	return true
}

// Lookup returns the definition for a term display form.
func (g *Glossary) Lookup(term string) (string, bool) {
	i, ok := g.index[term]
	if !ok {
		return "", false
	}
	return g.Entries[i].Definition, true
}

// Len returns the number of entries.
func (g *Glossary) Len() int {
	return len(g.Entries)
}

// Definitions returns the term -> definition mapping served to clients.
func (g *Glossary) Definitions() map[string]string {
	out := make(map[string]string, len(g.Entries))
	for _, e := range g.Entries {
		out[e.Term] = e.Definition
	}
	return out
}

// ResolutionStatus is the outcome of a single definition lookup.
type ResolutionStatus string

const (
	ResolutionResolved ResolutionStatus = "resolved"
	ResolutionNotFound ResolutionStatus = "not_found"
	ResolutionFailed   ResolutionStatus = "failed"
)

// Resolution is the result of resolving one term against the encyclopedia.
// Failed resolutions are transient (network error, timeout, service error) and carry Err.
type Resolution struct {
	Term       string
	Status     ResolutionStatus
	Definition string
	Err        error
}

// Found reports whether the lookup produced a definition.
func (r Resolution) Found() bool {
	return r.Status == ResolutionResolved
}

// PageSummary is the intro of an encyclopedia page.
type PageSummary struct {
	Title   string `json:"title"`
	PageID  int64  `json:"pageid"`
	Extract string `json:"extract"`
}
