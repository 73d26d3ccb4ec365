package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"strings"
	"sync/atomic"
	"time"

	"golang.org/x/sync/singleflight"

	"legalqa/internal/adapter/analyzer"
	"legalqa/internal/adapter/cache"
	"legalqa/internal/adapter/classifier"
	"legalqa/internal/adapter/composer"
	"legalqa/internal/adapter/memstore"
	"legalqa/internal/adapter/retriever"
	"legalqa/internal/domain"
	"legalqa/internal/logging"
	"legalqa/internal/port"
)

const (
	DefaultMaxResults = 8
	defaultAccuracy   = 85
	suggestScanLimit  = 50
	maxSuggestions    = 5
)

// FallbackMessage replaces an answer that could not be composed.
const FallbackMessage = "I apologize, but I encountered an error while processing your request. Please try rephrasing your question or contact support if the issue persists."

// EngineConfig tunes ranking and caching. Zero values select the defaults,
// so B and MinScore cannot be set to exactly zero.
type EngineConfig struct {
	K1         float64
	B          float64
	MinScore   float64
	MaxResults int
	CacheSize  int
	CacheTTL   time.Duration

	// Progress is called while the index is built; may be nil.
	Progress func(done, total int)
}

// Engine answers legal questions over a corpus loaded once from a
// CorpusSource. After Load every operation reads immutable state.
type Engine struct {
	source    port.CorpusSource
	cfg       EngineConfig
	tokenizer *analyzer.Tokenizer
	composer  *composer.Composer
	cache     *cache.QueryCache
	searcher  *cache.CachedSearcher
	logger    *slog.Logger

	loadGroup singleflight.Group
	state     atomic.Pointer[engineState]
}

type engineState struct {
	store     *memstore.CorpusStore
	retriever *retriever.BM25Retriever
	config    domain.CorpusConfig
}

func NewEngine(source port.CorpusSource, cfg EngineConfig, logger *slog.Logger) *Engine {
	if cfg.K1 <= 0 {
		cfg.K1 = retriever.DefaultK1
	}
	if cfg.B <= 0 || cfg.B > 1 {
		cfg.B = retriever.DefaultB
	}
	if cfg.MinScore <= 0 {
		cfg.MinScore = retriever.DefaultMinScore
	}
	if cfg.MaxResults <= 0 {
		cfg.MaxResults = DefaultMaxResults
	}
	tokenizer := analyzer.NewTokenizer()

	e := &Engine{
		source:    source,
		cfg:       cfg,
		tokenizer: tokenizer,
		composer:  composer.New(tokenizer),
		cache:     cache.NewQueryCache(cfg.CacheSize, cfg.CacheTTL),
		logger:    logging.OrDefault(logger),
	}
	e.searcher = cache.NewCachedSearcher(searchFunc(e.search), e.cache)
	return e
}

// Load fetches the corpus and builds the index. Concurrent calls share one
// load; a later call replaces the loaded corpus.
func (e *Engine) Load(ctx context.Context) error {
	_, err, _ := e.loadGroup.Do("load", func() (any, error) {
		return nil, e.load(ctx)
	})
	return err
}

func (e *Engine) load(ctx context.Context) error {
	if e.source == nil {
		return fmt.Errorf("%w: no corpus source configured", domain.ErrLoadFailure)
	}

	start := time.Now()
	e.logger.Info("loading corpus", "source", e.source.Location())

	corpus, err := e.source.Fetch(ctx)
	if err != nil {
		e.logger.Error("corpus fetch failed", "source", e.source.Location(), "error", err)
		return fmt.Errorf("%w: %w", domain.ErrLoadFailure, err)
	}

	store, err := memstore.Build(corpus.Documents, corpus.Metadata, e.tokenizer, e.cfg.Progress)
	if err != nil {
		e.logger.Error("index build failed", "error", err)
		return fmt.Errorf("%w: %w", domain.ErrLoadFailure, err)
	}

	e.state.Store(&engineState{
		store:     store,
		retriever: retriever.NewBM25Retriever(store, e.tokenizer, e.cfg.K1, e.cfg.B, e.cfg.MinScore),
		config:    corpus.Config,
	})
	e.cache.Invalidate()

	stats := store.Stats()
	e.logger.Info("corpus loaded",
		"documents", stats.TotalDocs,
		"unique_terms", stats.UniqueTerms,
		"avg_doc_length", stats.AvgDocLength,
		"approx_tokens", stats.ApproxTokens,
		"duration", time.Since(start))
	return nil
}

// LoadCorpus reports whether Load succeeded.
func (e *Engine) LoadCorpus(ctx context.Context) bool {
	return e.Load(ctx) == nil
}

func (e *Engine) Loaded() bool {
	return e.state.Load() != nil
}

// Search classifies and ranks query. An empty query or an unloaded engine
// yields an empty result. maxResults <= 0 selects the configured default.
func (e *Engine) Search(query string, maxResults int) domain.SearchResult {
	if maxResults <= 0 {
		maxResults = e.cfg.MaxResults
	}
	if strings.TrimSpace(query) == "" || !e.Loaded() {
		return emptyResult()
	}
	return e.searcher.Search(query, maxResults)
}

func (e *Engine) search(query string, maxResults int) domain.SearchResult {
	start := time.Now()

	st := e.state.Load()
	if st == nil {
		return emptyResult()
	}

	queryType := classifier.Classify(query)
	if queryType == domain.GeneralChat {
		return domain.SearchResult{
			Results:       []domain.ScoredResult{},
			SearchTime:    time.Since(start),
			QueryType:     queryType,
			IsGeneralChat: true,
			ChatResponse:  composer.ChatReply(query),
		}
	}

	analysis := classifier.Analyze(query)
	scoringQuery := classifier.Rewrite(query, analysis)
	results, total := st.retriever.Rank(query, scoringQuery, maxResults)

	elapsed := time.Since(start)
	e.logger.Debug("search",
		"query_type", queryType,
		"incident_type", analysis.IncidentType,
		"rewritten", scoringQuery != query,
		"total", total,
		"returned", len(results),
		"elapsed", elapsed)

	return domain.SearchResult{
		Results:    results,
		Total:      total,
		SearchTime: elapsed,
		QueryType:  queryType,
	}
}

// ComposeAnswer builds the answer for a result returned by Search. A failure
// while composing yields the fallback answer.
func (e *Engine) ComposeAnswer(query string, result domain.SearchResult) (answer domain.Answer) {
	defer func() {
		if r := recover(); r != nil {
			e.logger.Error("answer composition failed", "query", query, "panic", r)
			answer = FallbackAnswer()
		}
	}()

	analysis := classifier.Analyze(query)
	return e.composer.Compose(query, analysis, result)
}

// Ask searches and composes in one step.
func (e *Engine) Ask(query string, maxResults int) (domain.SearchResult, domain.Answer) {
	result := e.Search(query, maxResults)
	return result, e.ComposeAnswer(query, result)
}

func (e *Engine) Stats() domain.EngineStats {
	st := e.state.Load()
	if st == nil {
		return domain.EngineStats{Accuracy: defaultAccuracy}
	}
	return domain.EngineStats{
		TotalDocuments: st.store.Len(),
		Accuracy:       accuracy(st.config),
	}
}

func accuracy(cfg domain.CorpusConfig) int {
	if cfg.PerformanceMetrics == nil {
		return defaultAccuracy
	}
	f1, ok := cfg.PerformanceMetrics["f1@5"]
	if !ok || math.IsNaN(f1) || math.IsInf(f1, 0) {
		f1 = float64(defaultAccuracy) / 100
	}
	return int(math.Round(f1 * 100))
}

// CorpusStats returns the index statistics, or ErrNotLoaded.
func (e *Engine) CorpusStats() (domain.Stats, error) {
	st := e.state.Load()
	if st == nil {
		return domain.Stats{}, domain.ErrNotLoaded
	}
	return st.store.Stats(), nil
}

// Suggest returns up to limit metadata names and original queries that
// contain input, scanning the first records of the corpus.
func (e *Engine) Suggest(input string, limit int) []string {
	if limit <= 0 || limit > maxSuggestions {
		limit = maxSuggestions
	}
	needle := strings.ToLower(strings.TrimSpace(input))
	st := e.state.Load()
	if needle == "" || st == nil {
		return nil
	}

	meta := st.store.AllMetadata()
	if len(meta) > suggestScanLimit {
		meta = meta[:suggestScanLimit]
	}

	seen := make(map[string]struct{})
	var out []string
	add := func(s string) {
		if s == "" || !strings.Contains(strings.ToLower(s), needle) {
			return
		}
		if _, dup := seen[s]; dup {
			return
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	for _, m := range meta {
		add(m.Name)
		add(m.OriginalQuery)
	}

	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

// FallbackAnswer is returned when composing an answer fails.
func FallbackAnswer() domain.Answer {
	return domain.Answer{
		Text:    FallbackMessage,
		Sources: []domain.Source{},
		Kind:    domain.AnswerFallback,
	}
}

// IsLoadFailure reports whether err came from a failed corpus load.
func IsLoadFailure(err error) bool {
	return errors.Is(err, domain.ErrLoadFailure)
}

func emptyResult() domain.SearchResult {
	return domain.SearchResult{Results: []domain.ScoredResult{}}
}

type searchFunc func(query string, maxResults int) domain.SearchResult

func (f searchFunc) Search(query string, maxResults int) domain.SearchResult {
	return f(query, maxResults)
}
