package retriever

import (
	"slices"
	"testing"
)

func TestQueryExpander_Expand(t *testing.T) {
	e := NewQueryExpander()

	got := e.Expand([]string{"penalty", "hacking"}, "penalty for hacking")
	if got[0] != "penalty" || got[1] != "hacking" {
		t.Errorf("expected original tokens first, got %v", got[:2])
	}
	for _, want := range []string{"punishment", "intrusion", "penaltys", "hack", "hacked", "imprisonment"} {
		if !slices.Contains(got, want) {
			t.Errorf("expected %q in expansion %v", want, got)
		}
	}

	seen := make(map[string]bool)
	for _, term := range got {
		if seen[term] {
			t.Errorf("duplicate term %q", term)
		}
		seen[term] = true
	}
}

func TestQueryExpander_BroaderTerms(t *testing.T) {
	e := NewQueryExpander()

	got := e.Expand([]string{"cyber"}, "Cyber crime")
	for _, want := range []string{"technology", "internet", "security", "crime", "attack"} {
		if !slices.Contains(got, want) {
			t.Errorf("expected %q in expansion %v", want, got)
		}
	}
	if slices.Contains(got, "law") {
		t.Error("co-occurrence terms beyond the top 3 must not be added")
	}

	got = e.Expand([]string{"protection"}, "data protection")
	if !slices.Contains(got, "defense") {
		t.Errorf("expected security trigger terms, got %v", got)
	}
}

func TestQueryExpander_NoEmptyTerms(t *testing.T) {
	e := NewQueryExpander()

	got := e.Expand([]string{"ing", "ed"}, "ing ed")
	if slices.Contains(got, "") {
		t.Errorf("expansion contains an empty term: %q", got)
	}

	if got := e.Expand(nil, ""); len(got) != 0 {
		t.Errorf("expected empty expansion, got %v", got)
	}
}
