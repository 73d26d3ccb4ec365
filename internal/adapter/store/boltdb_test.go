package store

import (
	"bytes"
	"log/slog"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"go.etcd.io/bbolt"

	"legalqa/internal/domain"
)

func openTestStore(t *testing.T, path string) *BoltStore {
	t.Helper()
	s, err := NewBoltStore(path, "", nil)
	if err != nil {
		t.Fatalf("NewBoltStore: %v", err)
	}
	return s
}

func TestBoltStore_EmptyHistory(t *testing.T) {
	s := openTestStore(t, filepath.Join(t.TempDir(), "t.db"))
	defer s.Close()

	h, err := s.LoadHistory()
	if err != nil {
		t.Fatalf("LoadHistory: %v", err)
	}
	if len(h.Chats) != 0 || h.CurrentChatID != "" {
		t.Errorf("expected empty history, got %+v", h)
	}
}

func TestBoltStore_RoundTripAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "t.db")
	created := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

	history := domain.ChatHistory{
		CurrentChatID: "c1",
		Chats: []domain.Chat{{
			ID:        "c1",
			Title:     "What is the punishment for hacking?",
			CreatedAt: created,
			Messages: []domain.Message{
				{ID: "m1", Role: domain.RoleUser, Content: "What is the punishment for hacking?", Timestamp: created},
				{ID: "m2", Role: domain.RoleAssistant, Content: "Section 34", Timestamp: created,
					Sources: []domain.Source{{Text: "Section 34 ...", Confidence: 80}}},
			},
		}},
	}

	s := openTestStore(t, path)
	if err := s.SaveHistory(history); err != nil {
		t.Fatalf("SaveHistory: %v", err)
	}
	s.Close()

	s = openTestStore(t, path)
	defer s.Close()

	got, err := s.LoadHistory()
	if err != nil {
		t.Fatalf("LoadHistory: %v", err)
	}
	if got.CurrentChatID != "c1" || len(got.Chats) != 1 {
		t.Fatalf("unexpected history: %+v", got)
	}
	chat := got.Chats[0]
	if len(chat.Messages) != 2 || chat.Messages[1].Role != domain.RoleAssistant {
		t.Errorf("messages not preserved: %+v", chat.Messages)
	}
	if !chat.CreatedAt.Equal(created) {
		t.Errorf("expected created %v, got %v", created, chat.CreatedAt)
	}
	if chat.Messages[1].Sources[0].Confidence != 80 {
		t.Errorf("sources not preserved: %+v", chat.Messages[1].Sources)
	}
}

func TestBoltStore_CorruptHistory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "t.db")
	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, nil))

	s, err := NewBoltStore(path, "", logger)
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()

	err = s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketTranscripts).Put([]byte(DefaultHistoryKey), []byte("{not json"))
	})
	if err != nil {
		t.Fatal(err)
	}

	h, err := s.LoadHistory()
	if err != nil {
		t.Fatalf("expected corrupt data to be tolerated, got %v", err)
	}
	if len(h.Chats) != 0 {
		t.Errorf("expected empty history, got %+v", h)
	}
	if !strings.Contains(logs.String(), "corrupt chat history") {
		t.Errorf("expected a warning to be logged, got %q", logs.String())
	}
}

func TestBoltStore_CustomKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), "t.db")

	s, err := NewBoltStore(path, "otherKey", nil)
	if err != nil {
		t.Fatal(err)
	}
	if err := s.SaveHistory(domain.ChatHistory{CurrentChatID: "x"}); err != nil {
		t.Fatal(err)
	}
	s.Close()

	s = openTestStore(t, path)
	defer s.Close()
	h, _ := s.LoadHistory()
	if h.CurrentChatID != "" {
		t.Errorf("expected default key to be unaffected, got %+v", h)
	}
}

func TestBoltStore_SchemaVersion(t *testing.T) {
	path := filepath.Join(t.TempDir(), "t.db")

	s := openTestStore(t, path)
	v, err := s.SchemaVersion()
	if err != nil || v != CurrentSchemaVersion {
		t.Fatalf("expected version %d, got %d (%v)", CurrentSchemaVersion, v, err)
	}
	if err := s.SaveHistory(domain.ChatHistory{CurrentChatID: "keep"}); err != nil {
		t.Fatal(err)
	}
	s.Close()

	s = openTestStore(t, path)
	defer s.Close()
	h, _ := s.LoadHistory()
	if h.CurrentChatID != "keep" {
		t.Errorf("expected history kept for matching version, got %+v", h)
	}
}

func TestBoltStore_SchemaMismatchResets(t *testing.T) {
	path := filepath.Join(t.TempDir(), "t.db")

	s := openTestStore(t, path)
	if err := s.SaveHistory(domain.ChatHistory{CurrentChatID: "old"}); err != nil {
		t.Fatal(err)
	}
	err := s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketMeta).Put(keySchemaVersion, []byte("99"))
	})
	if err != nil {
		t.Fatal(err)
	}
	s.Close()

	s = openTestStore(t, path)
	defer s.Close()
	h, _ := s.LoadHistory()
	if h.CurrentChatID != "" {
		t.Errorf("expected history reset after schema change, got %+v", h)
	}
	if v, _ := s.SchemaVersion(); v != CurrentSchemaVersion {
		t.Errorf("expected version restamped to %d, got %d", CurrentSchemaVersion, v)
	}
}
