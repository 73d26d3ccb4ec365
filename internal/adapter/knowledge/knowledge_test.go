package knowledge

import (
	"strings"
	"testing"

	"legalqa/internal/domain"
)

func TestLookup(t *testing.T) {
	entry, ok := Lookup("unauthorized_access")
	if !ok {
		t.Fatal("expected entry for unauthorized_access")
	}
	if entry.Sections[0] != "Section 32" {
		t.Errorf("expected Section 32 first, got %v", entry.Sections)
	}
	if len(entry.Procedures) == 0 {
		t.Error("expected procedures")
	}
	if entry.Category != domain.CategoryCyberCrime {
		t.Errorf("expected cyber_crime, got %q", entry.Category)
	}

	if _, ok := Lookup("jaywalking"); ok {
		t.Error("expected no entry for unknown incident type")
	}
}

func TestLookup_ReturnsCopies(t *testing.T) {
	entry, _ := Lookup("hacking")
	entry.Sections[0] = "mutated"
	entry.Procedures[0] = "mutated"

	again, _ := Lookup("hacking")
	if again.Sections[0] == "mutated" || again.Procedures[0] == "mutated" {
		t.Error("Lookup must not expose the shared tables")
	}
}

func TestEveryIncidentTypeIsComplete(t *testing.T) {
	for _, incidentType := range IncidentTypes() {
		entry, _ := Lookup(incidentType)
		if entry.Category == domain.CategoryNone {
			t.Errorf("%s: missing category", incidentType)
		}
		if entry.Description == "" || entry.Penalties == "" || entry.Act == "" {
			t.Errorf("%s: incomplete entry %+v", incidentType, entry)
		}
		if len(entry.Sections) == 0 || len(entry.Procedures) == 0 {
			t.Errorf("%s: missing sections or procedures", incidentType)
		}
	}
}

func TestClassifierIncidentTypesHaveEntries(t *testing.T) {
	types := []string{
		"hacking", "unauthorized_access", "data_breach", "identity_theft", "computer_fraud",
		"domestic_violence", "sexual_harassment", "dowry_related_crimes", "human_trafficking",
		"child_abuse", "child_marriage", "child_labor", "child_education",
	}
	for _, incidentType := range types {
		if _, ok := Lookup(incidentType); !ok {
			t.Errorf("no knowledge base entry for %q", incidentType)
		}
	}
}

func TestCategory(t *testing.T) {
	tests := []struct {
		incidentType string
		want         domain.Category
	}{
		{"hacking", domain.CategoryCyberCrime},
		{"dowry_related_crimes", domain.CategoryWomensRights},
		{"child_marriage", domain.CategoryChildrensRights},
		{"unknown", domain.CategoryNone},
	}
	for _, tt := range tests {
		if got := Category(tt.incidentType); got != tt.want {
			t.Errorf("Category(%q) = %q, want %q", tt.incidentType, got, tt.want)
		}
	}
}

func TestHelplines(t *testing.T) {
	contacts := func(c domain.Category) string {
		var b strings.Builder
		for _, h := range Helplines(c) {
			b.WriteString(h.Contact + " ")
		}
		return b.String()
	}

	if got := contacts(domain.CategoryWomensRights); !strings.Contains(got, "109") || !strings.Contains(got, "999") {
		t.Errorf("women's rights helplines missing 109/999: %s", got)
	}
	if got := contacts(domain.CategoryChildrensRights); !strings.Contains(got, "1098") {
		t.Errorf("children's rights helplines missing 1098: %s", got)
	}
	if got := Helplines(domain.CategoryNone); len(got) != 0 {
		t.Errorf("expected no helplines for unknown category, got %v", got)
	}
}

func TestDisclaimer(t *testing.T) {
	if !strings.Contains(Disclaimer(domain.CategoryCyberCrime), "cyber crime police station") {
		t.Error("expected cyber disclaimer to mention the police station")
	}
	if !strings.Contains(Disclaimer(domain.CategoryWomensRights), "women's support organization") {
		t.Error("expected women's rights disclaimer")
	}
	if Disclaimer(domain.CategoryNone) == "" {
		t.Error("expected a default disclaimer")
	}
}

func TestTitle(t *testing.T) {
	if got := Title("unauthorized_access"); got != "Unauthorized Access" {
		t.Errorf("Title() = %q", got)
	}
	if got := Title("dowry_related_crimes"); got != "Dowry Related Crimes" {
		t.Errorf("Title() = %q", got)
	}
}
