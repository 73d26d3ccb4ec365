package retriever

import (
	"math"
	"slices"
	"strings"
)

const (
	maxSemanticBoost  = 1.5
	maxContextBoost   = 0.8
	maxProximityBonus = 0.5
	proximityWindow   = 5
)

type registerMarker struct {
	terms  []string
	weight float64
}

// Legal-register markers and the increment each contributes once.
var registerMarkers = []registerMarker{
	{terms: []string{"section", "subsection"}, weight: 0.1},
	{terms: []string{"act", "law"}, weight: 0.1},
	{terms: []string{"shall", "must"}, weight: 0.1},
	{terms: []string{"penalty", "punishment"}, weight: 0.2},
	{terms: []string{"defined", "means"}, weight: 0.1},
	{terms: []string{"procedure", "process"}, weight: 0.1},
}

// SemanticBoost rewards verbatim phrase overlap between query and the
// lowercased document. queryTokens are the tokens of the original query.
func SemanticBoost(query, docLower string, queryTokens []string) float64 {
	q := strings.ToLower(strings.TrimSpace(query))
	boost := 0.0

	if q != "" && strings.Contains(docLower, q) {
		boost += 1.0
	}

	words := strings.Fields(q)
	for i := 0; i+1 < len(words); i++ {
		if strings.Contains(docLower, words[i]+" "+words[i+1]) {
			boost += 0.3
		}
	}

	if len(queryTokens) > 0 {
		present := 0
		for _, token := range queryTokens {
			if strings.Contains(docLower, token) {
				present++
			}
		}
		boost += 0.5 * float64(present) / float64(len(queryTokens))
	}

	return math.Min(boost, maxSemanticBoost)
}

// ContextBoost rewards legal-register vocabulary and query terms that occur
// close together in the document.
func ContextBoost(queryTokens []string, docLower string, docTokens []string) float64 {
	relevance := 0.0
	for _, marker := range registerMarkers {
		for _, term := range marker.terms {
			if strings.Contains(docLower, term) {
				relevance += marker.weight
				break
			}
		}
	}

	relevance += ProximityBonus(queryTokens, docTokens)
	return math.Min(relevance, maxContextBoost)
}

// ProximityBonus adds 0.2/distance for each adjacent query-token pair whose
// first occurrences in docTokens lie within the proximity window. Pairs with
// identical positions contribute nothing.
func ProximityBonus(queryTokens, docTokens []string) float64 {
	score := 0.0
	for i := 0; i+1 < len(queryTokens); i++ {
		pos1 := slices.Index(docTokens, queryTokens[i])
		pos2 := slices.Index(docTokens, queryTokens[i+1])
		if pos1 < 0 || pos2 < 0 {
			continue
		}

		distance := pos1 - pos2
		if distance < 0 {
			distance = -distance
		}
		if distance == 0 || distance > proximityWindow {
			continue
		}
		score += 0.2 / float64(distance)
	}
	return math.Min(score, maxProximityBonus)
}
