package port

import (
	"context"

	"legalqa/internal/domain"
)

// CorpusSource fetches and decodes the static corpus asset.
type CorpusSource interface {
	Fetch(ctx context.Context) (*domain.Corpus, error)

	// Location describes where the asset comes from, for logging.
	Location() string
}
