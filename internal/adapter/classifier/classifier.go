package classifier

import (
	"regexp"
	"strings"

	"legalqa/internal/domain"
)

var generalChatPatterns = []*regexp.Regexp{
	regexp.MustCompile(`^(hi|hello|hey|good morning|good afternoon|good evening)$`),
	regexp.MustCompile(`^(hi there|hello there|hey there)$`),
	regexp.MustCompile(`^(what'?s your name|who are you|what are you)$`),
	regexp.MustCompile(`^(how are you|how do you do)$`),
	regexp.MustCompile(`^(what can you do|what do you know)$`),
	regexp.MustCompile(`^(are you (a )?robot|are you (an )?ai|are you human)$`),
	regexp.MustCompile(`^(thank you|thanks|bye|goodbye|see you)$`),
	regexp.MustCompile(`^(how'?s (the )?weather|what'?s the weather)$`),
	regexp.MustCompile(`^(what time is it|what'?s the time)$`),
	regexp.MustCompile(`^(tell me a joke|make me laugh)$`),
	regexp.MustCompile(`^(what'?s \d+ plus \d+|calculate \d+)`),
	regexp.MustCompile(`^(what'?s your favorite|do you like)`),
	regexp.MustCompile(`^(how old are you|when were you (born|made))`),
}

var legalIndicators = []string{
	"law", "legal", "act", "section", "penalty", "punishment", "fine", "crime",
	"cyber", "digital", "computer", "hacking", "unauthorized", "breach",
	"data protection", "privacy", "security", "violation", "illegal",
	"court", "judge", "lawyer", "attorney", "case", "ruling",
}

var questionPatterns = []*regexp.Regexp{
	regexp.MustCompile(`^(what|how|when|where|why|which|who)`),
	regexp.MustCompile(`^(is it|can i|should i|may i|must i)`),
	regexp.MustCompile(`^(define|explain|describe|tell me about)`),
	regexp.MustCompile(`(penalty|punishment|consequences|liable|responsible)`),
	regexp.MustCompile(`(procedure|process|steps|requirements)`),
}

// Classify decides whether query is small talk or a (potentially) legal question.
// Rules are evaluated in order and the first match wins.
func Classify(query string) domain.QueryType {
	q := normalize(query)

	for _, pattern := range generalChatPatterns {
		if pattern.MatchString(q) {
			return domain.GeneralChat
		}
	}

	if HasLegalTerms(q) {
		return domain.LegalQuery
	}

	isQuestion := false
	for _, pattern := range questionPatterns {
		if pattern.MatchString(q) {
			isQuestion = true
			break
		}
	}
	wordCount := len(strings.Fields(q))

	if isQuestion && wordCount > 3 {
		return domain.PotentialLegal
	}
	if wordCount <= 3 {
		return domain.GeneralChat
	}
	return domain.PotentialLegal
}

// HasLegalTerms reports whether any legal vocabulary term occurs as a substring.
func HasLegalTerms(query string) bool {
	q := normalize(query)
	for _, term := range legalIndicators {
		if strings.Contains(q, term) {
			return true
		}
	}
	return false
}

func normalize(query string) string {
	return strings.ToLower(strings.TrimSpace(query))
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
