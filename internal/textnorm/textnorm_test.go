package textnorm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		input  string
		expect string
	}{
		{name: "lower-cases ascii", input: "Senior GO Engineer", expect: "senior go engineer"},
		{name: "keeps stop words", input: "The Python Developer", expect: "the python developer"},
		{name: "empty", input: "", expect: ""},
		{name: "whitespace only", input: " \n\t ", expect: ""},
		{name: "unicode", input: "ÜBER Straße", expect: "über straße"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expect, Normalize(tt.input))
		})
	}
}

func TestTokenize(t *testing.T) {
	t.Parallel()

	got := Tokenize("c++, go/python; k8s a b_c x")
	assert.Equal(t, []string{"go", "python", "k8s", "b_c"}, got)

	assert.Empty(t, Tokenize(""))
}

func TestTerms(t *testing.T) {
	t.Parallel()

	got := Terms("Python developer with Django experience and the Django REST framework")
	assert.Equal(t, []string{"python", "developer", "django", "experience", "django", "rest", "framework"}, got)

	assert.Empty(t, Terms("the and of with"))
	assert.Empty(t, Terms("   "))
}

func TestIsStopWord(t *testing.T) {
	t.Parallel()

	assert.True(t, IsStopWord("with"))
	assert.True(t, IsStopWord("system"))
	assert.False(t, IsStopWord("python"))
	assert.False(t, IsStopWord("With"))
	assert.Len(t, stopWords, 318)
	assert.True(t, IsStopWord("go"))
}
