// Package textnorm turns raw document text into the terms used for weighting.
package textnorm

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// tokenPattern matches word tokens of two or more word characters.
var tokenPattern = regexp.MustCompile(`[\p{L}\p{N}_]{2,}`)

// Normalize lower-cases the text. It is the only transform applied here;
// stop words are removed later by Terms. Whitespace-only input yields "".
func Normalize(text string) string {
	if strings.TrimSpace(text) == "" {
		return ""
	}

	return cases.Lower(language.Und).String(text)
}

// Tokenize splits already normalized text into word tokens, keeping order and repeats.
func Tokenize(text string) []string {
	return tokenPattern.FindAllString(text, -1)
}

// Terms normalizes and tokenizes the text and drops stop words.
func Terms(text string) []string {
	tokens := Tokenize(Normalize(text))
	terms := tokens[:0]
	for _, token := range tokens {
		if IsStopWord(token) {
			continue
		}
		terms = append(terms, token)
	}

	return terms
}
