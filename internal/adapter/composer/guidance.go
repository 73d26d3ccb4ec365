package composer

import (
	"fmt"
	"strings"

	"legalqa/internal/domain"
)

const maxSuggestions = 4

type suggestionRule struct {
	triggers   []string
	suggestion string
}

var suggestionRules = []suggestionRule{
	{[]string{"hack", "unauthorized"}, `Try: "unauthorized access" or "computer intrusion"`},
	{[]string{"penalty", "punishment"}, `Try: "cyber crime penalties" or "digital security punishment"`},
	{[]string{"data", "privacy"}, `Try: "data protection" or "information security"`},
	{[]string{"wife", "husband", "woman", "women", "dowry"}, `Try: "domestic violence" or "dowry prohibition"`},
	{[]string{"child", "minor", "kid"}, `Try: "child marriage" or "children act"`},
}

var fallbackSuggestions = []string{
	`Use broader terms like "cyber crime", "digital law", or "computer security"`,
	"Try asking about specific legal concepts or procedures",
}

// Suggestions returns up to four rephrasing hints for a query that matched
// nothing.
func Suggestions(query string) []string {
	q := strings.ToLower(query)

	var suggestions []string
	for _, rule := range suggestionRules {
		if containsAny(q, rule.triggers...) {
			suggestions = append(suggestions, rule.suggestion)
		}
	}
	suggestions = append(suggestions, fallbackSuggestions...)

	if len(suggestions) > maxSuggestions {
		suggestions = suggestions[:maxSuggestions]
	}
	return suggestions
}

func clarificationText(query string) string {
	var b strings.Builder
	b.WriteString("I understand you're asking about a legal matter, but I need more specific information to provide accurate guidance. Could you please clarify:\n\n")
	b.WriteString("• What type of incident occurred?\n")
	b.WriteString("• Are you the victim or seeking general information?\n")
	b.WriteString("• What specific legal information do you need?\n\n")
	b.WriteString(`For example: "Someone hacked my computer and I have evidence. What crime is this and how do I report it?"`)
	b.WriteString("\n\n**Suggestions:**\n")
	for _, s := range Suggestions(query) {
		fmt.Fprintf(&b, "• %s\n", s)
	}
	return strings.TrimRight(b.String(), "\n")
}

// genericGuidance is used when an incident type was recognised but has no
// knowledge base entry.
func genericGuidance(category domain.Category) string {
	if category.Sensitive() {
		return "I understand you're seeking legal guidance. The following laws generally apply to matters involving women and children:\n\n" +
			"• Prevention of Oppression Against Women and Children Act\n" +
			"• Children Act 2013\n" +
			"• Domestic Violence (Prevention and Protection) Act 2010\n" +
			"• Dowry Prohibition Act 1980\n" +
			"• Child Marriage Restraint Act 2017\n\n" +
			"**Immediate Help:** National Helpline for Violence Against Women and Children: 109, Police Emergency: 999\n\n" +
			"Could you provide more specific details about the incident for more targeted legal guidance?"
	}

	return "I understand you're seeking legal guidance. While I couldn't identify the specific type of cyber crime from your query, here's general guidance:\n\n" +
		"**Common Cyber Crimes in Bangladesh:**\n" +
		"• Unauthorized computer access (Section 32)\n" +
		"• Computer hacking (Section 33)\n" +
		"• Data theft or breach (Section 26, 32)\n" +
		"• Identity theft (Section 28)\n" +
		"• Computer fraud (Section 35, 36)\n\n" +
		"**General Steps for Cyber Crime Victims:**\n" +
		"1. Immediately secure your systems and change passwords\n" +
		"2. Preserve all evidence (screenshots, logs, communications)\n" +
		"3. File complaint with local police cyber crime unit\n" +
		"4. Report to Bangladesh Computer Emergency Response Team (BD-CERT)\n" +
		"5. Consider consulting with a cyber law attorney\n\n" +
		"**Important:** Time is critical in cyber crime cases. File complaints promptly and preserve evidence carefully.\n\n" +
		"Could you provide more specific details about the incident for more targeted legal guidance?"
}
