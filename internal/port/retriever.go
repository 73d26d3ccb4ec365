package port

import "legalqa/internal/domain"

// Searcher ranks corpus documents against a free-text query.
type Searcher interface {
	// Search returns at most maxResults scored documents, best first.
	Search(query string, maxResults int) domain.SearchResult
}
