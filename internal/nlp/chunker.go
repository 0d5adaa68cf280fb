package nlp

import (
	"strings"
	"unicode"
)

// Token is a word with its Penn Treebank part-of-speech tag. Start and End
// are byte offsets into the source text, set by LocateTokens. End is zero
// when the token was not found in the source.
type Token struct {
	Text  string
	Tag   string
	Start int
	End   int
}

func isNoun(tag string) bool {
	switch tag {
	case "NN", "NNS", "NNP", "NNPS":
		return true
	}
	return false
}

func isProperNoun(tag string) bool {
	return tag == "NNP" || tag == "NNPS"
}

func isDeterminer(tag string) bool {
	switch tag {
	case "DT", "PDT", "PRP$", "WP$":
		return true
	}
	return false
}

func isModifier(tag string) bool {
	switch tag {
	case "JJ", "JJR", "JJS", "CD":
		return true
	}
	return false
}

// Chunk groups tagged tokens into base noun phrases: an optional determiner,
// then adjectives, numbers and nouns, ending at the last noun of the run.
// A possessive marker directly after a noun continues the phrase
// ("the country's leaders"). Chunks are returned in text order.
func Chunk(tokens []Token) [][]Token {
	var chunks [][]Token

	i := 0
	for i < len(tokens) {
		tag := tokens[i].Tag
		if !isDeterminer(tag) && !isModifier(tag) && !isNoun(tag) {
			i++
			continue
		}

		j := i
		if isDeterminer(tokens[j].Tag) {
			j++
		}
		lastNoun := -1
	scan:
		for j < len(tokens) {
			t := tokens[j].Tag
			switch {
			case isNoun(t):
				lastNoun = j
			case isModifier(t):
			case t == "POS" && lastNoun == j-1:
			default:
				break scan
			}
			j++
		}
		if lastNoun < 0 {
			i++
			continue
		}
		chunks = append(chunks, tokens[i:lastNoun+1])
		i = lastNoun + 1
	}

	return chunks
}

// JoinTokens rebuilds surface text from tokens. Possessive markers and
// contractions attach to the previous word.
func JoinTokens(tokens []Token) string {
	var sb strings.Builder
	for i, tok := range tokens {
		if i > 0 && tok.Tag != "POS" && !strings.HasPrefix(tok.Text, "'") {
			sb.WriteByte(' ')
		}
		sb.WriteString(tok.Text)
	}
	return sb.String()
}

// LocateTokens sets the source offsets of each token by scanning text left to
// right. A token is only matched when the text skipped to reach it holds no
// letters or digits, otherwise it is left unlocated.
func LocateTokens(text string, tokens []Token) {
	cursor := 0
	for i := range tokens {
		tokens[i].Start, tokens[i].End = 0, 0
		if tokens[i].Text == "" {
			continue
		}
		idx := strings.Index(text[cursor:], tokens[i].Text)
		if idx < 0 || strings.IndexFunc(text[cursor:cursor+idx], isWordRune) >= 0 {
			continue
		}
		tokens[i].Start = cursor + idx
		tokens[i].End = tokens[i].Start + len(tokens[i].Text)
		cursor = tokens[i].End
	}
}

// SurfaceText returns the phrase as written in text, with whitespace runs
// collapsed. It falls back to JoinTokens when the first or last token was not
// located.
func SurfaceText(text string, tokens []Token) string {
	if len(tokens) == 0 {
		return ""
	}
	first, last := tokens[0], tokens[len(tokens)-1]
	if first.End <= first.Start || last.End <= last.Start || last.End < first.Start || last.End > len(text) {
		return JoinTokens(tokens)
	}
	return strings.Join(strings.Fields(text[first.Start:last.End]), " ")
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}
