package retriever

import "testing"

func TestConfidenceBounds(t *testing.T) {
	scores := []float64{0, 0.011, 0.5, 1, 3.7, 12, 1e9}
	maxScores := []float64{0, 0.011, 1, 12, 1e9}
	docs := []string{"", "unauthorized access", "nothing relevant"}

	for _, score := range scores {
		for _, maxScore := range maxScores {
			for _, doc := range docs {
				got := Confidence(score, maxScore, "unauthorized access", doc, []string{"unauthorized", "access"})
				if got < 55 || got > 95 {
					t.Errorf("Confidence(%f, %f, %q) = %d out of [55,95]", score, maxScore, doc, got)
				}
			}
		}
	}
}

func TestConfidence(t *testing.T) {
	tokens := []string{"unauthorized", "access"}

	if got := Confidence(1, 0, "q", "doc", tokens); got != 60 {
		t.Errorf("expected 60 for empty result set, got %d", got)
	}

	// 60 + 30 + 5 + 10, clamped.
	if got := Confidence(2, 2, "unauthorized access", "Unauthorized access is a crime", tokens); got != 95 {
		t.Errorf("expected 95, got %d", got)
	}

	// 60 + 15 + 0 + 5.
	if got := Confidence(1, 2, "unauthorized access", "unauthorized use of a system", tokens); got != 80 {
		t.Errorf("expected 80, got %d", got)
	}
}
