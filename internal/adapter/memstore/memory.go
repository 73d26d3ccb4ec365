package memstore

import (
	"fmt"

	"legalqa/internal/domain"
	"legalqa/internal/port"
)

const progressEvery = 500

// CorpusStore holds the loaded documents, their metadata and the statistics
// derived from them. It is built once and never mutated afterwards, so
// concurrent readers need no locking.
type CorpusStore struct {
	docs     []string
	meta     []domain.Metadata
	tokens   [][]string
	termFreq []map[string]int
	docFreq  map[string]int
	avgLen   float64
	approx   int
}

// Build tokenizes every document once and computes document frequencies,
// the average document length and the approximate raw token budget.
// progress may be nil.
func Build(docs []string, meta []domain.Metadata, tokenizer port.Tokenizer, progress func(done, total int)) (*CorpusStore, error) {
	if len(docs) == 0 {
		return nil, domain.ErrEmptyCorpus
	}
	if tokenizer == nil {
		return nil, fmt.Errorf("build corpus store: nil tokenizer")
	}

	s := &CorpusStore{
		docs:     append([]string(nil), docs...),
		meta:     alignMetadata(meta, len(docs)),
		tokens:   make([][]string, len(docs)),
		termFreq: make([]map[string]int, len(docs)),
		docFreq:  make(map[string]int),
	}

	totalLen := 0
	for i, doc := range s.docs {
		tokens := tokenizer.Tokenize(doc)
		s.tokens[i] = tokens
		totalLen += len(tokens)
		s.approx += tokenizer.CountTokens(doc)

		tf := make(map[string]int, len(tokens))
		for _, token := range tokens {
			tf[token]++
		}
		s.termFreq[i] = tf
		for term := range tf {
			s.docFreq[term]++
		}

		if progress != nil && (i+1)%progressEvery == 0 {
			progress(i+1, len(s.docs))
		}
	}
	if progress != nil {
		progress(len(s.docs), len(s.docs))
	}

	s.avgLen = float64(totalLen) / float64(len(s.docs))
	return s, nil
}

// alignMetadata pads or truncates meta so it stays parallel to the documents.
func alignMetadata(meta []domain.Metadata, n int) []domain.Metadata {
	aligned := make([]domain.Metadata, n)
	copy(aligned, meta)
	return aligned
}

func (s *CorpusStore) Len() int {
	return len(s.docs)
}

func (s *CorpusStore) Document(i int) string {
	return s.docs[i]
}

func (s *CorpusStore) Metadata(i int) domain.Metadata {
	return s.meta[i]
}

// AllMetadata returns a copy of the metadata records in corpus order.
func (s *CorpusStore) AllMetadata() []domain.Metadata {
	return append([]domain.Metadata(nil), s.meta...)
}

// Tokens returns the cached token sequence of document i. Callers must not modify it.
func (s *CorpusStore) Tokens(i int) []string {
	return s.tokens[i]
}

// TermFrequency returns how often term occurs in document i.
func (s *CorpusStore) TermFrequency(i int, term string) int {
	return s.termFreq[i][term]
}

// DocFrequency returns the number of documents containing term at least once.
func (s *CorpusStore) DocFrequency(term string) int {
	return s.docFreq[term]
}

func (s *CorpusStore) AvgDocLength() float64 {
	return s.avgLen
}

func (s *CorpusStore) Stats() domain.Stats {
	return domain.Stats{
		TotalDocs:    len(s.docs),
		UniqueTerms:  len(s.docFreq),
		AvgDocLength: s.avgLen,
		ApproxTokens: s.approx,
	}
}
