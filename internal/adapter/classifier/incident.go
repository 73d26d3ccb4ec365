package classifier

import (
	"strings"

	"legalqa/internal/domain"
)

// IncidentRule maps a query to an incident category. Type receives the
// normalized query and its word set and returns the specific incident type,
// or "" when the rule does not apply.
type IncidentRule struct {
	Category domain.Category
	Type     func(q string, words map[string]struct{}) string
}

var incidentRules = []IncidentRule{
	{Category: domain.CategoryWomensRights, Type: womensRightsType},
	{Category: domain.CategoryChildrensRights, Type: childrensRightsType},
	{Category: domain.CategoryCyberCrime, Type: cyberCrimeType},
}

// IncidentRules returns the rules in priority order.
func IncidentRules() []IncidentRule {
	return append([]IncidentRule(nil), incidentRules...)
}

var (
	// Nouns are matched as whole words so "boyfriend" or "motherboard" never count.
	gendered = []string{
		"woman", "women", "woman's", "women's", "girl", "girls", "girl's", "wife", "wives",
		"female", "females", "mother", "mothers", "daughter", "daughters", "sister", "sisters",
		"bride", "brides", "widow", "widows",
	}
	harmTerms     = []string{"abuse", "beat", "hit", "harass", "assault", "violence", "rape", "torture", "hurt", "attack", "threat", "oppress", "rights", "traffick", "dowry"}
	womenSpecific = []string{"dowry", "domestic violence", "domestic abuse", "sexual harassment", "sexual assault", "eve teasing"}
	childNouns = []string{
		"child", "children", "child's", "children's", "minor", "minors", "juvenile", "juveniles",
		"underage", "kid", "kids", "baby", "babies", "boy", "boys", "girl", "girls",
		"teenager", "teenagers", "orphan", "orphans",
	}
	someoneHarmed  = []string{"abuse", "victim", "hurt", "hacked", "stole"}
	evidenceTerms  = []string{"proof", "evidence", "i know", "photo", "video", "record", "screenshot"}
	perpetratorIDs = []string{"i know him", "i know her", "i know who", "my husband", "my wife", "neighbor", "neighbour", "relative", "my boss"}
)

func womensRightsType(q string, words map[string]struct{}) string {
	isWomens := containsAny(q, womenSpecific...) ||
		(hasWord(words, gendered...) && containsAny(q, harmTerms...)) ||
		(strings.Contains(q, "husband") && containsAny(q, "hit", "beat", "abuse", "torture"))
	if !isWomens {
		return ""
	}

	switch {
	case strings.Contains(q, "traffick"):
		return "human_trafficking"
	case strings.Contains(q, "dowry"):
		return "dowry_related_crimes"
	case strings.Contains(q, "sexual") && containsAny(q, "harass", "assault", "abuse"),
		containsAny(q, "harass", "eve teasing", "rape"):
		return "sexual_harassment"
	default:
		return "domestic_violence"
	}
}

func childrensRightsType(q string, words map[string]struct{}) string {
	if !hasWord(words, childNouns...) {
		return ""
	}

	switch {
	case containsAny(q, "traffick", "sold", "smuggl"):
		return "human_trafficking"
	case containsAny(q, "marriage", "married", "marry", "wedding"):
		return "child_marriage"
	case containsAny(q, "abuse", "harm", "hurt", "beat", "neglect", "violence", "assault", "torture"):
		return "child_abuse"
	case containsAny(q, "labor", "labour", "work", "factory", "employ", "job"):
		return "child_labor"
	case containsAny(q, "school", "education", "study", "admission", "teacher"):
		return "child_education"
	default:
		return "child_labor"
	}
}

func cyberCrimeType(q string, _ map[string]struct{}) string {
	switch {
	case strings.Contains(q, "hack"):
		return "hacking"
	case strings.Contains(q, "unauthorized access"),
		strings.Contains(q, "accessed without permission"),
		strings.Contains(q, "unauthorized") && containsAny(q, "access", "entry", "login", "use"):
		return "unauthorized_access"
	case containsAny(q, "data breach", "data stolen", "data leak", "breach"):
		return "data_breach"
	case strings.Contains(q, "identity") && containsAny(q, "stolen", "theft", "steal"):
		return "identity_theft"
	case containsAny(q, "fraud", "scam", "phishing"):
		return "computer_fraud"
	default:
		return ""
	}
}

// Analyze determines incident category and type, the user's situation flags
// and which kinds of information were requested.
func Analyze(query string) domain.IncidentAnalysis {
	q := normalize(query)
	words := wordSet(q)

	var analysis domain.IncidentAnalysis
	for _, rule := range incidentRules {
		if incidentType := rule.Type(q, words); incidentType != "" {
			analysis.Category = rule.Category
			analysis.IncidentType = incidentType
			break
		}
	}

	analysis.IsVictim = hasWord(words, "my", "me", "i", "i'm", "i've", "mine", "myself") ||
		(strings.Contains(q, "someone") && containsAny(q, someoneHarmed...))
	analysis.HasEvidence = containsAny(q, evidenceTerms...)
	analysis.KnowsPerpetrator = containsAny(q, perpetratorIDs...)
	analysis.WantsToKnow = intents(q, words)

	return analysis
}

func intents(q string, words map[string]struct{}) []domain.Intent {
	var wants []domain.Intent
	if containsAny(q, "what type of crime", "what kind of crime", "what crime", "which crime") {
		wants = append(wants, domain.IntentCrimeType)
	}
	if containsAny(q, "what i will do", "what should i do", "how can i", "how do i", "steps", "procedure") {
		wants = append(wants, domain.IntentProcedures)
	}
	if containsAny(q, "which section", "what section", "what law", "which law", "legal") {
		wants = append(wants, domain.IntentLegalSections)
	}
	if containsAny(q, "penalt", "punish", "jail", "imprison") || hasWord(words, "fine", "fines", "sentence") {
		wants = append(wants, domain.IntentPenalties)
	}
	return wants
}

var rewriteTerms = map[domain.Category]string{
	domain.CategoryWomensRights:    "prevention oppression against women children act tribunal",
	domain.CategoryChildrensRights: "children act 2013 child welfare protection",
}

// Rewrite appends category act keywords to women's and children's rights
// queries to widen lexical recall. Other queries are returned unchanged.
func Rewrite(query string, analysis domain.IncidentAnalysis) string {
	if analysis.IncidentType == "" {
		return query
	}
	terms, ok := rewriteTerms[analysis.Category]
	if !ok {
		return query
	}
	return strings.TrimSpace(query) + " " + terms
}

func wordSet(q string) map[string]struct{} {
	words := strings.FieldsFunc(q, func(r rune) bool {
		return !(r == '\'' || r >= 'a' && r <= 'z' || r >= '0' && r <= '9' || r > 127)
	})
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}

func hasWord(words map[string]struct{}, candidates ...string) bool {
	for _, c := range candidates {
		if _, ok := words[c]; ok {
			return true
		}
	}
	return false
}
