package domain

import (
	"encoding/json"
	"time"
)

// Metadata is the free-form record paired with each corpus document.
type Metadata struct {
	Name          string `json:"name,omitempty"`
	Act           string `json:"act,omitempty"`
	Section       string `json:"section,omitempty"`
	Victim        string `json:"victim,omitempty"`
	OriginalQuery string `json:"original_query,omitempty"`
	Law           string `json:"law,omitempty"`

	// Extra keeps the record's remaining fields as decoded.
	Extra map[string]any `json:"-"`
}

// Corpus is the decoded static asset.
type Corpus struct {
	Documents []string     `json:"documents"`
	Metadata  []Metadata   `json:"metadata"`
	Config    CorpusConfig `json:"config"`
}

type CorpusConfig struct {
	ModelName          string             `json:"model_name,omitempty"`
	PerformanceMetrics map[string]float64 `json:"performance_metrics,omitempty"`
}

// Stats summarizes the corpus statistics computed at load time.
type Stats struct {
	TotalDocs    int
	UniqueTerms  int
	AvgDocLength float64

	// ApproxTokens estimates the raw corpus size in model tokens.
	ApproxTokens int
}

type QueryType string

const (
	GeneralChat    QueryType = "general_chat"
	LegalQuery     QueryType = "legal_query"
	PotentialLegal QueryType = "potential_legal"
)

type Category string

const (
	CategoryNone            Category = ""
	CategoryCyberCrime      Category = "cyber_crime"
	CategoryWomensRights    Category = "womens_rights"
	CategoryChildrensRights Category = "childrens_rights"
)

// Sensitive reports whether the category covers women's or children's rights.
func (c Category) Sensitive() bool {
	return c == CategoryWomensRights || c == CategoryChildrensRights
}

type Intent string

const (
	IntentCrimeType     Intent = "crime_type"
	IntentProcedures    Intent = "procedures"
	IntentLegalSections Intent = "legal_sections"
	IntentPenalties     Intent = "penalties"
)

// IncidentAnalysis is the second-pass classification of a legal query.
type IncidentAnalysis struct {
	Category         Category `json:"category,omitempty"`
	IncidentType     string   `json:"incident_type,omitempty"`
	IsVictim         bool     `json:"is_victim"`
	HasEvidence      bool     `json:"has_evidence"`
	KnowsPerpetrator bool     `json:"knows_perpetrator"`
	WantsToKnow      []Intent `json:"wants_to_know,omitempty"`
}

// Wants reports whether the intent was requested, or nothing was requested at all.
func (a IncidentAnalysis) Wants(intent Intent) bool {
	if len(a.WantsToKnow) == 0 {
		return true
	}
	for _, w := range a.WantsToKnow {
		if w == intent {
			return true
		}
	}
	return false
}

// Requested reports whether the intent was explicitly requested.
func (a IncidentAnalysis) Requested(intent Intent) bool {
	for _, w := range a.WantsToKnow {
		if w == intent {
			return true
		}
	}
	return false
}

type ScoreBreakdown struct {
	BM25     float64 `json:"bm25"`
	Semantic float64 `json:"semantic_boost"`
	Context  float64 `json:"context_boost"`
	Final    float64 `json:"score"`
}

type ScoredResult struct {
	Index      int            `json:"index"`
	Score      float64        `json:"score"`
	Breakdown  ScoreBreakdown `json:"breakdown"`
	Confidence int            `json:"confidence"`
	Document   string         `json:"document"`
	Metadata   Metadata       `json:"metadata"`
}

type SearchResult struct {
	Results       []ScoredResult `json:"results"`
	Total         int            `json:"total"`
	SearchTime    time.Duration  `json:"search_time"`
	QueryType     QueryType      `json:"query_type,omitempty"`
	IsGeneralChat bool           `json:"is_general_chat,omitempty"`
	ChatResponse  string         `json:"chat_response,omitempty"`
}

// SearchTimeMillis returns the search duration in milliseconds.
func (r SearchResult) SearchTimeMillis() float64 {
	return float64(r.SearchTime.Microseconds()) / 1000
}

// MarshalJSON encodes search_time in milliseconds.
func (r SearchResult) MarshalJSON() ([]byte, error) {
	type plain SearchResult
	return json.Marshal(struct {
		plain
		SearchTime float64 `json:"search_time"`
	}{plain(r), r.SearchTimeMillis()})
}

type Source struct {
	Text       string   `json:"text"`
	Confidence int      `json:"confidence"`
	Metadata   Metadata `json:"metadata"`
}

type AnswerKind string

const (
	AnswerGeneralChat   AnswerKind = "general_chat"
	AnswerKnowledge     AnswerKind = "knowledge_base"
	AnswerClarify       AnswerKind = "clarify"
	AnswerComprehensive AnswerKind = "comprehensive"
	AnswerFallback      AnswerKind = "fallback"
)

type Answer struct {
	Text         string     `json:"answer"`
	Sources      []Source   `json:"sources"`
	Kind         AnswerKind `json:"kind"`
	IncidentType string     `json:"incident_type,omitempty"`
	Steps        []string   `json:"steps,omitempty"`
}

type EngineStats struct {
	TotalDocuments int `json:"totalDocuments"`
	Accuracy       int `json:"accuracy"`
}
