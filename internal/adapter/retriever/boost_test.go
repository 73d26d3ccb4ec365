package retriever

import (
	"math"
	"testing"
)

func TestSemanticBoost(t *testing.T) {
	tests := []struct {
		name   string
		query  string
		doc    string
		tokens []string
		want   float64
	}{
		{"capped at maximum", "data breach", "a data breach occurred", []string{"data", "breach"}, 1.5},
		{"bigram only", "data breach law", "the data breach was reported", []string{"data", "breach", "law"}, 0.3 + 0.5*2/3},
		{"no overlap", "court ruling", "phishing scam", []string{"court", "ruling"}, 0},
		{"no tokens", "the", "the end", nil, 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SemanticBoost(tt.query, tt.doc, tt.tokens)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("SemanticBoost() = %f, want %f", got, tt.want)
			}
		})
	}
}

func TestContextBoost(t *testing.T) {
	doc := "section 5 of the act: any person who commits fraud shall face penalty as defined by the procedure"
	got := ContextBoost(nil, doc, nil)
	if math.Abs(got-0.7) > 1e-9 {
		t.Errorf("expected marker boost 0.7, got %f", got)
	}

	got = ContextBoost([]string{"fraud", "penalty"}, doc, []string{"fraud", "penalty"})
	if got != maxContextBoost {
		t.Errorf("expected capped boost %f, got %f", maxContextBoost, got)
	}

	if got := ContextBoost(nil, "phishing scam reported", nil); got != 0 {
		t.Errorf("expected 0 for plain text, got %f", got)
	}

	got = ContextBoost([]string{"fraud", "report"}, "fraud report", []string{"fraud", "report"})
	if math.Abs(got-0.2) > 1e-9 {
		t.Errorf("expected proximity-only boost 0.2, got %f", got)
	}
}

func TestProximityBonus(t *testing.T) {
	tests := []struct {
		name  string
		query []string
		doc   []string
		want  float64
	}{
		{"adjacent", []string{"data", "breach"}, []string{"data", "breach"}, 0.2},
		{"two apart", []string{"data", "breach"}, []string{"data", "x", "breach"}, 0.1},
		{"outside window", []string{"a1", "b1"}, []string{"a1", "x", "x", "x", "x", "x", "b1"}, 0},
		{"repeated token", []string{"fraud", "fraud"}, []string{"fraud", "case"}, 0},
		{"missing term", []string{"data", "breach"}, []string{"data"}, 0},
		{"capped", []string{"a1", "b1", "a1", "b1", "a1"}, []string{"a1", "b1"}, maxProximityBonus},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ProximityBonus(tt.query, tt.doc)
			if math.IsInf(got, 0) || math.IsNaN(got) {
				t.Fatalf("non-finite bonus %f", got)
			}
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("ProximityBonus() = %f, want %f", got, tt.want)
			}
		})
	}
}
