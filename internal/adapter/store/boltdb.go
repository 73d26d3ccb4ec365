package store

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"go.etcd.io/bbolt"

	"legalqa/internal/domain"
	"legalqa/internal/logging"
)

// DefaultHistoryKey is the key the chat history is stored under.
const DefaultHistoryKey = "legalChatHistory"

var (
	bucketTranscripts = []byte("transcripts")
	bucketMeta        = []byte("meta")
)

// BoltStore persists the chat history as a single JSON value in bbolt.
type BoltStore struct {
	db     *bbolt.DB
	key    []byte
	logger *slog.Logger
}

// NewBoltStore opens (or creates) the database at path. key defaults to
// DefaultHistoryKey.
func NewBoltStore(path, key string, logger *slog.Logger) (*BoltStore, error) {
	if key == "" {
		key = DefaultHistoryKey
	}

	db, err := bbolt.Open(path, 0600, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open bolt db: %w", err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		for _, b := range [][]byte{bucketTranscripts, bucketMeta} {
			if _, err := tx.CreateBucketIfNotExists(b); err != nil {
				return fmt.Errorf("failed to create bucket %s: %w", b, err)
			}
		}
		return nil
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	s := &BoltStore{db: db, key: []byte(key), logger: logging.OrDefault(logger)}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// LoadHistory returns the saved history. A missing key yields an empty
// history; undecodable data is logged and also yields an empty history.
func (s *BoltStore) LoadHistory() (domain.ChatHistory, error) {
	var data []byte
	err := s.db.View(func(tx *bbolt.Tx) error {
		if v := tx.Bucket(bucketTranscripts).Get(s.key); v != nil {
			data = append([]byte(nil), v...)
		}
		return nil
	})
	if err != nil {
		return domain.ChatHistory{}, fmt.Errorf("failed to read history: %w", err)
	}
	if data == nil {
		return domain.ChatHistory{}, nil
	}

	var history domain.ChatHistory
	if err := json.Unmarshal(data, &history); err != nil {
		s.logger.Warn("discarding corrupt chat history", "key", string(s.key), "error", err)
		return domain.ChatHistory{}, nil
	}
	return history, nil
}

func (s *BoltStore) SaveHistory(history domain.ChatHistory) error {
	data, err := json.Marshal(history)
	if err != nil {
		return fmt.Errorf("failed to encode history: %w", err)
	}
	return s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketTranscripts).Put(s.key, data)
	})
}

func (s *BoltStore) Close() error {
	return s.db.Close()
}
