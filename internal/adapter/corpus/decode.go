// Package corpus fetches and decodes the static legal corpus asset.
package corpus

import (
	"encoding/json"
	"fmt"
	"io"

	"legalqa/internal/domain"
)

// Decode parses a corpus asset. An asset without documents is an error
// wrapping domain.ErrEmptyCorpus.
func Decode(r io.Reader) (*domain.Corpus, error) {
	var c domain.Corpus
	if err := json.NewDecoder(r).Decode(&c); err != nil {
		return nil, fmt.Errorf("failed to decode corpus: %w", err)
	}
	if len(c.Documents) == 0 {
		return nil, domain.ErrEmptyCorpus
	}
	return &c, nil
}
