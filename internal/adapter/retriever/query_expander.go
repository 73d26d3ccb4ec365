package retriever

import (
	"strings"

	"legalqa/internal/adapter/analyzer"
)

const relatedPerToken = 3

var legalSynonyms = map[string][]string{
	"penalty":    {"punishment", "fine", "sanction", "sentence"},
	"punishment": {"penalty", "fine", "sentence"},
	"crime":      {"offense", "offence", "violation", "breach"},
	"law":        {"act", "legislation", "statute", "rule", "regulation"},
	"computer":   {"digital", "electronic", "cyber"},
	"hacking":    {"unauthorized", "intrusion", "breach", "attack"},
	"data":       {"information", "record", "file"},
	"protection": {"security", "safety", "safeguard"},
	"illegal":    {"unlawful", "prohibited", "forbidden"},
	"access":     {"entry", "login", "use"},
	"network":    {"system", "infrastructure"},
	"privacy":    {"confidentiality", "secrecy"},
}

var legalCooccurrence = map[string][]string{
	"cyber":        {"security", "crime", "attack", "law"},
	"data":         {"protection", "breach", "privacy", "security"},
	"unauthorized": {"access", "use", "entry"},
	"digital":      {"security", "crime", "law", "act"},
	"computer":     {"system", "network", "security"},
	"penalty":      {"fine", "imprisonment", "punishment"},
	"section":      {"subsection", "act", "law"},
	"violation":    {"breach", "infringement"},
}

type triggerRule struct {
	triggers []string
	adds     []string
}

var broaderTerms = []triggerRule{
	{triggers: []string{"cyber", "digital", "computer"}, adds: []string{"technology", "electronic", "online", "internet"}},
	{triggers: []string{"security", "protection"}, adds: []string{"safety", "defense", "safeguard"}},
}

// QueryExpander widens a tokenized query with synonyms, morphological
// variants and co-occurring legal terms. It only adds candidates; the
// original tokens always lead the result.
type QueryExpander struct {
	synonyms     map[string][]string
	cooccurrence map[string][]string
	broader      []triggerRule
}

func NewQueryExpander() *QueryExpander {
	return &QueryExpander{
		synonyms:     legalSynonyms,
		cooccurrence: legalCooccurrence,
		broader:      broaderTerms,
	}
}

// Expand returns tokens followed by synonyms, variants and related terms,
// deduplicated in first-seen order.
func (e *QueryExpander) Expand(tokens []string, originalQuery string) []string {
	expanded := make([]string, 0, len(tokens)*6)
	expanded = append(expanded, tokens...)
	expanded = append(expanded, e.synonymsFor(tokens, originalQuery)...)
	expanded = append(expanded, analyzer.Variants(tokens)...)
	expanded = append(expanded, e.relatedTerms(tokens)...)

	return dedupe(expanded)
}

func (e *QueryExpander) synonymsFor(tokens []string, originalQuery string) []string {
	q := strings.ToLower(originalQuery)

	var synonyms []string
	for _, rule := range e.broader {
		for _, trigger := range rule.triggers {
			if strings.Contains(q, trigger) {
				synonyms = append(synonyms, rule.adds...)
				break
			}
		}
	}

	for _, token := range tokens {
		synonyms = append(synonyms, e.synonyms[token]...)
	}
	return synonyms
}

func (e *QueryExpander) relatedTerms(tokens []string) []string {
	var related []string
	for _, token := range tokens {
		terms := e.cooccurrence[token]
		if len(terms) > relatedPerToken {
			terms = terms[:relatedPerToken]
		}
		related = append(related, terms...)
	}
	return related
}

func dedupe(terms []string) []string {
	seen := make(map[string]struct{}, len(terms))
	out := make([]string, 0, len(terms))
	for _, term := range terms {
		if term == "" {
			continue
		}
		if _, ok := seen[term]; ok {
			continue
		}
		seen[term] = struct{}{}
		out = append(out, term)
	}
	return out
}
