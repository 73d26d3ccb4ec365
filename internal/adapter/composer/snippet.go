package composer

import (
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"

	"legalqa/internal/adapter/knowledge"
	"legalqa/internal/domain"
)

const (
	DefaultSnippetLength = 250
	SourceSnippetLength  = 120

	minSentenceLength = 15
	minSnippetLength  = 50
	questionTitleMax  = 100
	closingAdviceRoom = 70
)

var sentenceBreak = regexp.MustCompile(`[.!?]+`)

// Extra vocabulary scored in sensitive-topic mode, one list per topic.
// A word shared by several topics scores once per topic.
var sensitiveKeywords = [][]string{
	{"domestic", "violence", "abuse", "victim", "protection", "hurt", "injury"},
	{"sexual", "harassment", "assault", "unwanted", "consent"},
	{"child", "abuse", "neglect", "harm", "welfare", "protection"},
	{"marriage", "minor", "consent", "age"},
	{"dowry", "demand", "gift", "marriage", "bride"},
	{"right", "equality", "discrimination", "protection", "woman", "women"},
}

var closingAdvice = map[string]string{
	"domestic_violence": " For specific legal assistance in these sensitive matters, consult with a legal aid organization or women's rights advocate.",
	"sexual_harassment": " For specific legal assistance in these sensitive matters, consult with a legal aid organization or women's rights advocate.",
	"child_abuse":       " For child protection issues, contact the nearest Department of Social Services or Child Welfare Board.",
	"child_marriage":    " For child protection issues, contact the nearest Department of Social Services or Child Welfare Board.",
}

// SnippetOptions controls snippet extraction. Sensitive enables the
// women's and children's rights scoring and closing advice.
type SnippetOptions struct {
	MaxLength int
	Sensitive bool
	Analysis  domain.IncidentAnalysis
}

type scoredSentence struct {
	text  string
	score int
}

// ExtractBestSnippet picks the sentences of doc that best match the query,
// in score order, until maxLength is reached.
func ExtractBestSnippet(doc string, tokens []string, query string, maxLength int) string {
	return ExtractSnippet(doc, tokens, query, SnippetOptions{MaxLength: maxLength})
}

// ExtractSnippet is ExtractBestSnippet with options. A short document that is
// a bare question is returned as a title pointing at the relevant law.
func ExtractSnippet(doc string, tokens []string, query string, opts SnippetOptions) string {
	if doc == "" {
		return ""
	}
	maxLength := opts.MaxLength
	if maxLength <= 0 {
		maxLength = DefaultSnippetLength
	}

	if runeLen(doc) < questionTitleMax && strings.Contains(doc, "?") {
		return questionTitle(doc, opts.Analysis)
	}

	sentences := splitSentences(doc)
	if len(sentences) == 0 {
		return truncate(doc, maxLength) + "..."
	}

	q := strings.ToLower(query)
	scored := make([]scoredSentence, len(sentences))
	for i, s := range sentences {
		scored[i] = scoredSentence{text: s, score: scoreSentence(s, q, tokens, opts.Sensitive)}
	}
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].score > scored[j].score
	})

	var b strings.Builder
	for _, s := range scored {
		length := runeLen(b.String())
		if length+runeLen(s.text) < maxLength && s.score > 0 {
			if length > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(s.text)
			b.WriteByte('.')
		} else if length > minSnippetLength {
			break
		}
	}

	snippet := b.String()
	if snippet == "" {
		return truncate(doc, maxLength) + "..."
	}

	if opts.Sensitive && runeLen(snippet) < maxLength-closingAdviceRoom {
		snippet += closingAdvice[opts.Analysis.IncidentType]
	}
	return snippet
}

func splitSentences(doc string) []string {
	var sentences []string
	for _, s := range sentenceBreak.Split(doc, -1) {
		s = strings.TrimSpace(s)
		if runeLen(s) > minSentenceLength {
			sentences = append(sentences, s)
		}
	}
	return sentences
}

func scoreSentence(sentence, queryLower string, tokens []string, sensitive bool) int {
	lower := strings.ToLower(sentence)
	score := 0

	if queryLower != "" && strings.Contains(lower, queryLower) {
		score += 10
	}
	for _, token := range tokens {
		if strings.Contains(lower, token) {
			score += 2
		}
	}
	if n := runeLen(sentence); n > 20 && n < 200 {
		score++
	}

	legalRef := containsAny(lower, "section", "act")
	if !sensitive {
		if legalRef {
			score++
		}
		return score
	}

	for _, topic := range sensitiveKeywords {
		for _, keyword := range topic {
			if strings.Contains(lower, keyword) {
				score++
			}
		}
	}
	if legalRef {
		score += 2
	}
	if containsAny(lower, "law", "legal") {
		score++
	}
	if containsAny(lower, "file", "report") {
		score++
	}
	if containsAny(lower, "complaint", "police") {
		score++
	}
	return score
}

func questionTitle(doc string, analysis domain.IncidentAnalysis) string {
	title := strings.TrimSpace(strings.Replace(doc, "?", "", 1))

	switch knowledge.Category(analysis.IncidentType) {
	case domain.CategoryWomensRights:
		return title + " - This falls under the Prevention of Oppression Against Women and Children Act with specific protections for women and children victims."
	case domain.CategoryChildrensRights:
		return title + " - The Children Act 2013 and related laws provide specific protections and procedures for child welfare and safety."
	case domain.CategoryCyberCrime:
		entry, _ := knowledge.Lookup(analysis.IncidentType)
		return title + " - Typically covered under " + strings.Join(entry.Sections, " or ") +
			" with penalties of " + strings.ToLower(entry.Penalties) + "."
	default:
		return title + " - Refer to relevant sections of applicable laws for specific provisions and penalties."
	}
}

func truncate(s string, maxRunes int) string {
	if runeLen(s) <= maxRunes {
		return s
	}
	return string([]rune(s)[:maxRunes])
}

func runeLen(s string) int {
	return utf8.RuneCountInString(s)
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
