// Package knowledge holds the static legal knowledge base: per incident type
// descriptions, sections, penalties and procedures, plus helplines and
// disclaimers per category. The tables are never mutated after init.
package knowledge

import (
	"strings"

	"legalqa/internal/domain"
)

// Entry is the canned legal information for one incident type.
type Entry struct {
	Category    domain.Category
	Description string
	Sections    []string
	Penalties   string
	Procedures  []string
	Act         string
}

type Helpline struct {
	Name    string
	Contact string
}

// Lookup returns the entry for incidentType. The returned slices are copies.
func Lookup(incidentType string) (Entry, bool) {
	entry, ok := entries[incidentType]
	if !ok {
		return Entry{}, false
	}
	entry.Sections = append([]string(nil), entry.Sections...)
	entry.Procedures = append([]string(nil), entry.Procedures...)
	return entry, true
}

// Category returns the category an incident type is filed under, or
// CategoryNone for unknown types.
func Category(incidentType string) domain.Category {
	if entry, ok := entries[incidentType]; ok {
		return entry.Category
	}
	return domain.CategoryNone
}

// Helplines returns the contacts for category, or nil for CategoryNone.
func Helplines(category domain.Category) []Helpline {
	return append([]Helpline(nil), helplines[category]...)
}

func Disclaimer(category domain.Category) string {
	if d, ok := disclaimers[category]; ok {
		return d
	}
	return defaultDisclaimer
}

// Title formats an incident type for display: "unauthorized_access" becomes
// "Unauthorized Access".
func Title(incidentType string) string {
	words := strings.Split(incidentType, "_")
	for i, w := range words {
		if w != "" {
			words[i] = strings.ToUpper(w[:1]) + w[1:]
		}
	}
	return strings.Join(words, " ")
}

// IncidentTypes lists every incident type with an entry.
func IncidentTypes() []string {
	types := make([]string, 0, len(entries))
	for t := range entries {
		types = append(types, t)
	}
	return types
}
