package glossary

// Tables holds the word lists that drive term extraction.
type Tables struct {
	// Stopwords are function words that never make a glossary term on their own.
	Stopwords map[string]struct{}
	// Categories are the entity labels worth defining.
	Categories map[string]struct{}
}

var defaultStopwords = []string{
	"the", "a", "an", "is", "was", "are", "were", "be", "been", "being",
	"to", "of", "and", "or", "in", "on", "at", "for", "with", "as",
	"by", "from", "this", "that", "these", "those", "it", "its", "which", "who",
	"what", "where", "when", "why", "how", "can", "will", "would", "should",
}

var defaultCategories = []string{
	"ORG", "GPE", "PERSON", "NORP", "LOC", "PRODUCT", "EVENT", "WORK_OF_ART", "LAW", "TERM",
}

// DefaultTables returns fresh copies of the built-in stoplist and entity categories.
func DefaultTables() Tables {
	return Tables{
		Stopwords:  toSet(defaultStopwords),
		Categories: toSet(defaultCategories),
	}
}

func toSet(words []string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}

func (t Tables) isStopword(word string) bool {
	_, ok := t.Stopwords[word]
	return ok
}

func (t Tables) isCategory(label string) bool {
	_, ok := t.Categories[label]
	return ok
}
