package retriever

import (
	"math"
	"sort"
	"strings"

	"legalqa/internal/adapter/memstore"
	"legalqa/internal/domain"
	"legalqa/internal/port"
)

const (
	DefaultK1       = 1.2
	DefaultB        = 0.75
	DefaultMinScore = 0.01
)

// BM25Retriever ranks every document of a CorpusStore with Okapi BM25 over the
// expanded query, multiplied by the semantic and contextual boosts.
type BM25Retriever struct {
	store     *memstore.CorpusStore
	tokenizer port.Tokenizer
	expander  *QueryExpander
	docLower  []string
	k1        float64
	b         float64
	minScore  float64
}

func NewBM25Retriever(store *memstore.CorpusStore, tokenizer port.Tokenizer, k1, b, minScore float64) *BM25Retriever {
	if k1 <= 0 {
		k1 = DefaultK1
	}
	if b <= 0 || b > 1 {
		b = DefaultB
	}
	if minScore <= 0 {
		minScore = DefaultMinScore
	}

	docLower := make([]string, store.Len())
	for i := range docLower {
		docLower[i] = strings.ToLower(store.Document(i))
	}

	return &BM25Retriever{
		store:     store,
		tokenizer: tokenizer,
		expander:  NewQueryExpander(),
		docLower:  docLower,
		k1:        k1,
		b:         b,
		minScore:  minScore,
	}
}

// Rank scores all documents and returns at most maxResults of them, best
// first, together with the number of documents above the minimum score.
// query drives the phrase and confidence signals; scoringQuery (usually the
// same text, possibly widened with category terms) drives BM25 recall.
func (r *BM25Retriever) Rank(query, scoringQuery string, maxResults int) ([]domain.ScoredResult, int) {
	queryTokens := r.tokenizer.Tokenize(query)
	scoringTokens := queryTokens
	if scoringQuery != query {
		scoringTokens = r.tokenizer.Tokenize(scoringQuery)
	}
	if len(scoringTokens) == 0 {
		return []domain.ScoredResult{}, 0
	}
	expanded := r.expander.Expand(scoringTokens, scoringQuery)

	results := make([]domain.ScoredResult, 0)
	for i := 0; i < r.store.Len(); i++ {
		breakdown := r.Score(query, queryTokens, expanded, i)
		if breakdown.Final <= r.minScore {
			continue
		}
		results = append(results, domain.ScoredResult{
			Index:     i,
			Score:     breakdown.Final,
			Breakdown: breakdown,
			Document:  r.store.Document(i),
			Metadata:  r.store.Metadata(i),
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	total := len(results)
	if maxResults > 0 && len(results) > maxResults {
		results = results[:maxResults]
	}

	if total > 0 {
		maxScore := results[0].Score
		for i := range results {
			results[i].Confidence = Confidence(results[i].Score, maxScore, query, results[i].Document, queryTokens)
		}
	}

	return results, total
}

// Score computes the breakdown of document docIndex. tokens are the original
// query tokens and expanded the full expansion used for BM25.
func (r *BM25Retriever) Score(query string, tokens, expanded []string, docIndex int) domain.ScoreBreakdown {
	bm25 := r.BM25(expanded, docIndex)
	if bm25 == 0 {
		return domain.ScoreBreakdown{}
	}

	docLower := r.docLower[docIndex]
	semantic := SemanticBoost(query, docLower, tokens)
	context := ContextBoost(tokens, docLower, r.store.Tokens(docIndex))

	final := bm25 * (1 + semantic + context)
	if math.IsNaN(final) || math.IsInf(final, 0) {
		return domain.ScoreBreakdown{}
	}

	return domain.ScoreBreakdown{
		BM25:     bm25,
		Semantic: semantic,
		Context:  context,
		Final:    final,
	}
}

// BM25 sums the Okapi BM25 contributions of terms for document docIndex. The
// sum is clamped at zero since very common terms get a negative idf.
func (r *BM25Retriever) BM25(terms []string, docIndex int) float64 {
	docLen := float64(len(r.store.Tokens(docIndex)))
	avgLen := r.store.AvgDocLength()
	if docLen == 0 || avgLen == 0 {
		return 0
	}

	n := float64(r.store.Len())
	score := 0.0
	for _, term := range terms {
		tf := float64(r.store.TermFrequency(docIndex, term))
		if tf == 0 {
			continue
		}
		df := float64(r.store.DocFrequency(term))
		if df == 0 {
			continue
		}

		idf := math.Log((n - df + 0.5) / (df + 0.5))
		contribution := idf * (tf * (r.k1 + 1)) / (tf + r.k1*(1-r.b+r.b*docLen/avgLen))
		if math.IsNaN(contribution) || math.IsInf(contribution, 0) {
			continue
		}
		score += contribution
	}

	return math.Max(0, score)
}
