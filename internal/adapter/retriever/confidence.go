package retriever

import (
	"math"
	"strings"
)

const (
	minConfidence   = 55
	maxConfidence   = 95
	emptyConfidence = 60
)

// Confidence turns a final score into a display percentage in [55, 95]. It is
// a heuristic, not a calibrated probability. maxScore is the best score in
// the result set; a non-positive maxScore means the set was empty.
func Confidence(score, maxScore float64, query, document string, queryTokens []string) int {
	if maxScore <= 0 {
		return emptyConfidence
	}

	confidence := 60 + 30*(score/maxScore)

	docLower := strings.ToLower(document)
	if q := strings.ToLower(strings.TrimSpace(query)); q != "" && strings.Contains(docLower, q) {
		confidence += 5
	}

	if len(queryTokens) > 0 {
		matched := 0
		for _, token := range queryTokens {
			if strings.Contains(docLower, token) {
				matched++
			}
		}
		confidence += 10 * float64(matched) / float64(len(queryTokens))
	}

	if math.IsNaN(confidence) {
		return emptyConfidence
	}
	return int(math.Max(minConfidence, math.Min(maxConfidence, math.Round(confidence))))
}
