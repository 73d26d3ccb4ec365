package port

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_transcript_store.go -package=mocks legalqa/internal/port TranscriptStore

import "legalqa/internal/domain"

// TranscriptStore persists chat transcripts under a single fixed key.
type TranscriptStore interface {
	// LoadHistory returns the saved history. Missing or corrupt data yields an
	// empty history rather than an error.
	LoadHistory() (domain.ChatHistory, error)

	SaveHistory(history domain.ChatHistory) error

	Close() error
}
