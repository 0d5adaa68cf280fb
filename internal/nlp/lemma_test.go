package nlp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type mapLemmatizer map[string]string

func (m mapLemmatizer) Lemma(word string) string {
	if lemma, ok := m[word]; ok {
		return lemma
	}
	return word
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Brussels", "brussels"},
		{"  Côte   d'Ivoire ", "cote d'ivoire"},
		{"ÉCOLE Normale", "ecole normale"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Normalize(tt.in), "Normalize(%q)", tt.in)
	}
}

func TestEntityLemma_KeepsWords(t *testing.T) {
	assert.Equal(t, "north atlantic treaty organization", EntityLemma("North Atlantic Treaty Organization"))
	assert.Equal(t, "united states", EntityLemma("United States"))
}

func TestChunkLemma_LemmatisesCommonNouns(t *testing.T) {
	lem := mapLemmatizer{"firms": "firm", "electronics": "electronic", "ministers": "minister"}

	assert.Equal(t, "consumer electronic firm",
		ChunkLemma(lem, tagged("consumer", "NN", "electronics", "NNS", "firms", "NNS")))

	// proper nouns are not lemmatised
	assert.Equal(t, "the united states",
		ChunkLemma(mapLemmatizer{"states": "state"}, tagged("the", "DT", "United", "NNP", "States", "NNPS")))

	assert.Equal(t, "the country's minister",
		ChunkLemma(lem, tagged("the", "DT", "country", "NN", "'s", "POS", "ministers", "NNS")))
}

func TestChunkLemma_SingularAndPluralCollapse(t *testing.T) {
	lem := mapLemmatizer{"summits": "summit"}
	a := ChunkLemma(lem, tagged("climate", "NN", "summits", "NNS"))
	b := ChunkLemma(lem, tagged("Climate", "NN", "summit", "NN"))
	assert.Equal(t, a, b)
}

func TestIdentityLemmatizer(t *testing.T) {
	assert.Equal(t, "running", IdentityLemmatizer{}.Lemma("running"))
}
