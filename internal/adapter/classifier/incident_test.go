package classifier

import (
	"strings"
	"testing"

	"legalqa/internal/domain"
)

func TestAnalyze_IncidentType(t *testing.T) {
	tests := []struct {
		query        string
		wantCategory domain.Category
		wantType     string
	}{
		{"What is the penalty for unauthorized computer access?", domain.CategoryCyberCrime, "unauthorized_access"},
		{"What is the punishment for unauthorized access?", domain.CategoryCyberCrime, "unauthorized_access"},
		{"someone hacked my facebook account", domain.CategoryCyberCrime, "hacking"},
		{"a data breach exposed customer records", domain.CategoryCyberCrime, "data_breach"},
		{"my identity was stolen online", domain.CategoryCyberCrime, "identity_theft"},
		{"I lost money in an online scam", domain.CategoryCyberCrime, "computer_fraud"},
		{"my husband beat me last night", domain.CategoryWomensRights, "domestic_violence"},
		{"in-laws demand dowry from my family", domain.CategoryWomensRights, "dowry_related_crimes"},
		{"a woman was harassed at her office", domain.CategoryWomensRights, "sexual_harassment"},
		{"women trafficking across the border", domain.CategoryWomensRights, "human_trafficking"},
		{"what are women's rights in bangladesh", domain.CategoryWomensRights, "domestic_violence"},
		{"a child is forced to work in a factory", domain.CategoryChildrensRights, "child_labor"},
		{"child abuse by a teacher", domain.CategoryChildrensRights, "child_abuse"},
		{"minor sold across the border", domain.CategoryChildrensRights, "human_trafficking"},
		{"marriage of a minor girl is being arranged", domain.CategoryChildrensRights, "child_marriage"},
		{"children not allowed in school", domain.CategoryChildrensRights, "child_education"},
		{"rights of a child", domain.CategoryChildrensRights, "child_labor"},
		{"what is the digital security act", domain.CategoryNone, ""},
	}

	for _, tt := range tests {
		got := Analyze(tt.query)
		if got.Category != tt.wantCategory || got.IncidentType != tt.wantType {
			t.Errorf("Analyze(%q) = (%q, %q), want (%q, %q)",
				tt.query, got.Category, got.IncidentType, tt.wantCategory, tt.wantType)
		}
	}
}

func TestAnalyze_Priority(t *testing.T) {
	// Mentions a child and hacking; children's rights outranks cyber crime.
	got := Analyze("a child was hacked and harmed online")
	if got.Category != domain.CategoryChildrensRights {
		t.Errorf("expected childrens_rights to win, got %q", got.Category)
	}

	// Women's rights outranks children's rights.
	got = Analyze("girl beaten by her husband")
	if got.Category != domain.CategoryWomensRights {
		t.Errorf("expected womens_rights to win, got %q", got.Category)
	}

	// Nouns inside longer words are not age or gender markers.
	wordLevel := []struct {
		query        string
		wantCategory domain.Category
		wantType     string
	}{
		{"My boyfriend hacked my facebook account", domain.CategoryCyberCrime, "hacking"},
		{"My girlfriend hacked my email", domain.CategoryCyberCrime, "hacking"},
		{"My motherboard was attacked by ransomware", domain.CategoryNone, ""},
		{"kidnapping threat after a data breach", domain.CategoryCyberCrime, "data_breach"},
		{"my daughters were attacked at school", domain.CategoryWomensRights, "domestic_violence"},
		{"kids are forced to work at the factory", domain.CategoryChildrensRights, "child_labor"},
	}
	for _, tt := range wordLevel {
		got := Analyze(tt.query)
		if got.Category != tt.wantCategory || got.IncidentType != tt.wantType {
			t.Errorf("Analyze(%q) = (%q, %q), want (%q, %q)",
				tt.query, got.Category, got.IncidentType, tt.wantCategory, tt.wantType)
		}
	}

	rules := IncidentRules()
	want := []domain.Category{domain.CategoryWomensRights, domain.CategoryChildrensRights, domain.CategoryCyberCrime}
	if len(rules) != len(want) {
		t.Fatalf("expected %d rules, got %d", len(want), len(rules))
	}
	for i := range want {
		if rules[i].Category != want[i] {
			t.Errorf("rule %d = %q, want %q", i, rules[i].Category, want[i])
		}
	}
}

func TestAnalyze_Flags(t *testing.T) {
	got := Analyze("Someone hacked my computer and I have evidence. I know who did it")
	if !got.IsVictim {
		t.Error("expected victim flag")
	}
	if !got.HasEvidence {
		t.Error("expected evidence flag")
	}
	if !got.KnowsPerpetrator {
		t.Error("expected perpetrator flag")
	}

	got = Analyze("What is the punishment for unauthorized access?")
	if got.IsVictim || got.HasEvidence || got.KnowsPerpetrator {
		t.Errorf("expected no situation flags, got %+v", got)
	}
}

func TestAnalyze_Intents(t *testing.T) {
	got := Analyze("What is the penalty for unauthorized computer access?")
	if !got.Requested(domain.IntentPenalties) {
		t.Errorf("expected penalties intent, got %v", got.WantsToKnow)
	}

	got = Analyze("what crime is this, which section applies, what should i do and what is the punishment")
	want := []domain.Intent{domain.IntentCrimeType, domain.IntentProcedures, domain.IntentLegalSections, domain.IntentPenalties}
	if len(got.WantsToKnow) != len(want) {
		t.Fatalf("expected intents %v, got %v", want, got.WantsToKnow)
	}
	for i := range want {
		if got.WantsToKnow[i] != want[i] {
			t.Errorf("intent %d = %q, want %q", i, got.WantsToKnow[i], want[i])
		}
	}

	got = Analyze("define hacking")
	if got.Requested(domain.IntentPenalties) {
		t.Error("'define' must not trigger the penalties intent")
	}
	if !got.Wants(domain.IntentPenalties) {
		t.Error("with no explicit intents every intent is wanted")
	}
}

func TestRewrite(t *testing.T) {
	query := "my husband beat me"
	rewritten := Rewrite(query, Analyze(query))
	if !strings.HasPrefix(rewritten, query) || !strings.Contains(rewritten, "oppression") {
		t.Errorf("expected women's rights act terms appended, got %q", rewritten)
	}

	query = "a child is forced to work in a factory"
	if rewritten := Rewrite(query, Analyze(query)); !strings.Contains(rewritten, "children act 2013") {
		t.Errorf("expected children act terms appended, got %q", rewritten)
	}

	query = "someone hacked my account"
	if rewritten := Rewrite(query, Analyze(query)); rewritten != query {
		t.Errorf("cyber queries must not be rewritten, got %q", rewritten)
	}
}
