package analyzer

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

var (
	// Word characters, whitespace, Bengali and Devanagari survive; everything else is a separator.
	disallowedChars = regexp.MustCompile(`[^\w\s\x{0980}-\x{09FF}\x{0900}-\x{097F}]`)
	// "section 32" indexes as "section32" so numbered provisions match as one term.
	wordNumberPair = regexp.MustCompile(`\b(\w+)\s*(\d+)\b`)
)

// Tokenizer normalizes legal text into index terms.
type Tokenizer struct {
	stopwords map[string]struct{}
}

// NewTokenizer creates a new Tokenizer.
func NewTokenizer() *Tokenizer {
	return &Tokenizer{
		stopwords: defaultStopwords(),
	}
}

// Tokenize lowercases text, fuses word+number pairs, and drops short tokens and stopwords.
func (t *Tokenizer) Tokenize(text string) []string {
	if strings.TrimSpace(text) == "" {
		return []string{}
	}

	normalized := strings.ToLower(text)
	normalized = disallowedChars.ReplaceAllString(normalized, " ")
	normalized = wordNumberPair.ReplaceAllString(normalized, "${1}${2}")

	words := strings.Fields(normalized)
	tokens := make([]string, 0, len(words))
	for _, word := range words {
		if utf8.RuneCountInString(word) <= 1 {
			continue
		}
		if t.IsStopword(word) {
			continue
		}
		tokens = append(tokens, word)
	}

	return tokens
}

// IsStopword reports whether word is in the English stoplist.
func (t *Tokenizer) IsStopword(word string) bool {
	_, ok := t.stopwords[strings.ToLower(word)]
	return ok
}

// CountTokens returns an approximate token count for length budgeting.
// Uses a simple heuristic: ~1.3 tokens per word.
func (t *Tokenizer) CountTokens(text string) int {
	words := splitWords(text)
	if len(words) == 0 {
		return 0
	}
	return int(float64(len(words)) * 1.3)
}

// splitWords splits text into words using unicode word boundaries.
func splitWords(text string) []string {
	var words []string
	var current strings.Builder

	for _, r := range text {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.Is(unicode.Mn, r) || r == '_' {
			current.WriteRune(r)
		} else {
			if current.Len() > 0 {
				words = append(words, current.String())
				current.Reset()
			}
		}
	}
	if current.Len() > 0 {
		words = append(words, current.String())
	}

	return words
}

// defaultStopwords returns the English stoplist used for legal text.
func defaultStopwords() map[string]struct{} {
	stops := []string{
		"the", "a", "an", "and", "or", "but", "in", "on", "at", "to", "for", "of", "with", "by",
		"is", "are", "was", "were", "be", "been", "being", "have", "has", "had", "do", "does", "did",
		"will", "would", "could", "should", "may", "might", "can", "shall", "must",
		"this", "that", "these", "those", "i", "you", "he", "she", "it", "we", "they",
		"me", "him", "her", "us", "them", "my", "your", "his", "its", "our", "their",
	}
	m := make(map[string]struct{}, len(stops))
	for _, s := range stops {
		m[s] = struct{}{}
	}
	return m
}
