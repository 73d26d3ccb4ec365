// Package composer turns search results and incident analysis into the
// markdown answer shown to the user.
package composer

import (
	"fmt"
	"regexp"
	"strings"

	"legalqa/internal/adapter/knowledge"
	"legalqa/internal/domain"
	"legalqa/internal/port"
)

const maxAnswerSnippets = 4

var (
	womensTopic   = regexp.MustCompile(`\b(wom[ae]n|girls?|females?|domestic|abused?|victims?|dowry|wife|wives|mothers?)\b`)
	childrenTopic = regexp.MustCompile(`\b(child|children|minors?|juveniles?|underage|young|boys?|kids?|baby|babies)\b`)
)

var defaultActionSteps = []string{
	"File complaint with local police cyber crime unit",
	"Preserve all digital evidence",
	"Document the incident with timestamps",
	"Gather witness statements if available",
}

type Composer struct {
	tokenizer port.Tokenizer
}

func New(tokenizer port.Tokenizer) *Composer {
	return &Composer{tokenizer: tokenizer}
}

// Compose builds the answer for query. search must be the result of
// searching the same query.
func (c *Composer) Compose(query string, analysis domain.IncidentAnalysis, search domain.SearchResult) domain.Answer {
	if search.IsGeneralChat {
		reply := search.ChatResponse
		if reply == "" {
			reply = ChatReply(query)
		}
		return domain.Answer{Text: reply, Sources: []domain.Source{}, Kind: domain.AnswerGeneralChat}
	}

	if len(search.Results) == 0 {
		if analysis.IncidentType == "" {
			return domain.Answer{Text: clarificationText(query), Sources: []domain.Source{}, Kind: domain.AnswerClarify}
		}
		return c.knowledgeAnswer(analysis)
	}

	return c.comprehensiveAnswer(query, analysis, search)
}

func (c *Composer) knowledgeAnswer(analysis domain.IncidentAnalysis) domain.Answer {
	entry, ok := knowledge.Lookup(analysis.IncidentType)
	if !ok {
		return domain.Answer{
			Text:         genericGuidance(analysis.Category),
			Sources:      []domain.Source{},
			Kind:         domain.AnswerClarify,
			IncidentType: analysis.IncidentType,
		}
	}

	title := knowledge.Title(analysis.IncidentType)
	sensitive := entry.Category.Sensitive()

	var b strings.Builder
	fmt.Fprintf(&b, "Based on your query about %s, here's the legal information:\n\n", strings.ToLower(title))

	if analysis.Wants(domain.IntentCrimeType) || analysis.Requested(domain.IntentLegalSections) {
		if sensitive {
			fmt.Fprintf(&b, "**%s Information:**\n", title)
		} else {
			b.WriteString("**Crime Classification:**\n")
		}
		fmt.Fprintf(&b, "• **Offense:** %s\n", entry.Description)
		fmt.Fprintf(&b, "• **Likely Sections:** %s under %s\n\n", strings.Join(entry.Sections, ", "), entry.Act)
	}

	if analysis.Wants(domain.IntentPenalties) {
		b.WriteString("**Potential Penalties:**\n")
		fmt.Fprintf(&b, "• %s\n", entry.Penalties)
		if !sensitive {
			b.WriteString("• This is typically a cognizable and non-bailable offense\n")
		}
		b.WriteString("\n")
	}

	var steps []string
	if analysis.Wants(domain.IntentProcedures) || analysis.IsVictim {
		steps = entry.Procedures
		b.WriteString("**What You Should Do:**\n")
		writeSteps(&b, steps)
		b.WriteString("\n")
	}

	writeSituationAdvice(&b, analysis)

	if analysis.IsVictim || sensitive || len(analysis.WantsToKnow) == 0 {
		writeHelplines(&b, entry.Category)
	}

	b.WriteString("**Important Notes:**\n")
	if sensitive {
		fmt.Fprintf(&b, "• %s\n", knowledge.Disclaimer(entry.Category))
	} else {
		b.WriteString("• This guidance is based on typical provisions of Bangladeshi cyber law\n")
		b.WriteString("• Specific sections and penalties may vary based on exact circumstances\n")
		b.WriteString("• Consult with a lawyer for complex cases or if significant damages occurred\n")
	}
	b.WriteString("• Time is important - file complaints promptly to preserve evidence")

	return domain.Answer{
		Text:         b.String(),
		Sources:      []domain.Source{},
		Kind:         domain.AnswerKnowledge,
		IncidentType: analysis.IncidentType,
		Steps:        steps,
	}
}

func (c *Composer) comprehensiveAnswer(query string, analysis domain.IncidentAnalysis, search domain.SearchResult) domain.Answer {
	top := search.Results
	if len(top) > maxAnswerSnippets {
		top = top[:maxAnswerSnippets]
	}
	tokens := c.tokenizer.Tokenize(query)
	entry, hasEntry := knowledge.Lookup(analysis.IncidentType)

	category := analysis.Category
	if hasEntry && category == domain.CategoryNone {
		category = entry.Category
	}
	sensitive := category.Sensitive() || isSensitiveQuery(query)
	opts := SnippetOptions{MaxLength: DefaultSnippetLength, Sensitive: sensitive, Analysis: analysis}

	var b strings.Builder
	if hasEntry {
		if analysis.IsVictim {
			b.WriteString("**Your Case Summary:**\n")
		} else {
			fmt.Fprintf(&b, "**%s Information:**\n", knowledge.Title(analysis.IncidentType))
		}
		fmt.Fprintf(&b, "• **Crime Type:** %s\n", entry.Description)
		fmt.Fprintf(&b, "• **Applicable Law:** %s\n", entry.Act)
		fmt.Fprintf(&b, "• **Likely Sections:** %s\n", strings.Join(entry.Sections, ", "))
		if analysis.Wants(domain.IntentPenalties) {
			fmt.Fprintf(&b, "• **Penalties:** %s\n", entry.Penalties)
		}
		b.WriteString("\n")
	}

	b.WriteString("**Based on Legal Documents:**\n\n")
	for i, result := range top {
		snippet := ExtractSnippet(result.Document, tokens, query, opts)
		if strings.TrimSpace(snippet) != "" {
			fmt.Fprintf(&b, "**%d.** %s\n\n", i+1, snippet)
		}
	}

	var steps []string
	if analysis.IsVictim || sensitive || hasEntry {
		steps = defaultActionSteps
		if hasEntry {
			steps = entry.Procedures
		}
		b.WriteString("**Immediate Action Steps:**\n")
		writeSteps(&b, steps)
		b.WriteString("\n")
	}

	if analysis.IsVictim && category.Sensitive() {
		writeHelplines(&b, category)
	}

	fmt.Fprintf(&b, "**Search Context:** Found %d relevant documents in %dms.\n\n", search.Total, search.SearchTime.Milliseconds())
	fmt.Fprintf(&b, "**Legal Disclaimer:** %s", knowledge.Disclaimer(category))

	sourceOpts := opts
	sourceOpts.MaxLength = SourceSnippetLength
	sources := make([]domain.Source, 0, len(top))
	for _, result := range top {
		sources = append(sources, domain.Source{
			Text:       ExtractSnippet(result.Document, tokens, query, sourceOpts),
			Confidence: result.Confidence,
			Metadata:   result.Metadata,
		})
	}

	return domain.Answer{
		Text:         b.String(),
		Sources:      sources,
		Kind:         domain.AnswerComprehensive,
		IncidentType: analysis.IncidentType,
		Steps:        append([]string(nil), steps...),
	}
}

func isSensitiveQuery(query string) bool {
	q := strings.ToLower(query)
	return womensTopic.MatchString(q) || childrenTopic.MatchString(q)
}

func writeSteps(b *strings.Builder, steps []string) {
	for i, step := range steps {
		fmt.Fprintf(b, "%d. %s\n", i+1, step)
	}
}

func writeSituationAdvice(b *strings.Builder, analysis domain.IncidentAnalysis) {
	if analysis.IsVictim && analysis.HasEvidence {
		b.WriteString("**Since You Have Evidence:**\n")
		b.WriteString("• Preserve all evidence immediately\n")
		b.WriteString("• Take screenshots or photos of anything relevant\n")
		b.WriteString("• Do not delete or modify any files or messages\n")
		b.WriteString("• File complaint within reasonable time\n\n")
	}

	if analysis.KnowsPerpetrator {
		b.WriteString("**Since You Know the Perpetrator:**\n")
		b.WriteString("• Include their identity in your complaint\n")
		b.WriteString("• Gather any communication records with them\n")
		b.WriteString("• Consider if there are witnesses to the incident\n")
		b.WriteString("• Be prepared to provide their contact information\n\n")
	}
}

func writeHelplines(b *strings.Builder, category domain.Category) {
	lines := knowledge.Helplines(category)
	if len(lines) == 0 {
		return
	}
	b.WriteString("**Immediate Help:**\n")
	for _, h := range lines {
		fmt.Fprintf(b, "• %s: %s\n", h.Name, h.Contact)
	}
	b.WriteString("\n")
}
