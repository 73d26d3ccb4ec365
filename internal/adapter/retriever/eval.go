package retriever

import "math"

// Relevance metrics over ranked document indices. relevant holds the indices
// judged relevant for the query.

func PrecisionAtK(retrieved, relevant []int) float64 {
	if len(retrieved) == 0 {
		return 0
	}
	return float64(hits(retrieved, relevant)) / float64(len(retrieved))
}

func RecallAtK(retrieved, relevant []int) float64 {
	if len(relevant) == 0 {
		return 0
	}
	return float64(hits(retrieved, relevant)) / float64(len(relevant))
}

// F1 is the harmonic mean of precision and recall.
func F1(precision, recall float64) float64 {
	if precision+recall == 0 {
		return 0
	}
	return 2 * precision * recall / (precision + recall)
}

// ReciprocalRank is 1/rank of the first relevant document, 0 if none.
func ReciprocalRank(retrieved, relevant []int) float64 {
	set := indexSet(relevant)
	for i, r := range retrieved {
		if set[r] {
			return 1.0 / float64(i+1)
		}
	}
	return 0
}

// NDCG scores retrieved with binary gains against the ideal ordering.
func NDCG(retrieved, relevant []int) float64 {
	set := indexSet(relevant)
	gains := make([]float64, len(retrieved))
	for i, r := range retrieved {
		if set[r] {
			gains[i] = 1
		}
	}

	ideal := make([]float64, min(len(relevant), len(retrieved)))
	for i := range ideal {
		ideal[i] = 1
	}

	idcg := dcg(ideal)
	if idcg == 0 {
		return 0
	}
	return dcg(gains) / idcg
}

func dcg(gains []float64) float64 {
	total := 0.0
	for i, g := range gains {
		total += g / math.Log2(float64(i+2))
	}
	return total
}

func hits(retrieved, relevant []int) int {
	set := indexSet(relevant)
	n := 0
	for _, r := range retrieved {
		if set[r] {
			n++
		}
	}
	return n
}

func indexSet(indices []int) map[int]bool {
	set := make(map[int]bool, len(indices))
	for _, i := range indices {
		set[i] = true
	}
	return set
}
