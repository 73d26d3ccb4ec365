package usecase

import (
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"legalqa/internal/domain"
	"legalqa/internal/logging"
	"legalqa/internal/port"
)

const (
	NewChatTitle       = "New Chat"
	DefaultTitleLength = 50
	chatMaxResults     = 5
)

// Assistant answers a single user message.
type Assistant interface {
	Search(query string, maxResults int) domain.SearchResult
	ComposeAnswer(query string, result domain.SearchResult) domain.Answer
}

// ChatService keeps the chat transcripts and persists them after every
// change. Only one message is processed at a time.
type ChatService struct {
	assistant   Assistant
	store       port.TranscriptStore
	logger      *slog.Logger
	titleLength int
	now         func() time.Time

	busy    sync.Mutex
	mu      sync.Mutex
	history domain.ChatHistory
}

// NewChatService restores the saved history from store.
func NewChatService(assistant Assistant, store port.TranscriptStore, titleLength int, logger *slog.Logger) (*ChatService, error) {
	if titleLength <= 3 {
		titleLength = DefaultTitleLength
	}
	history, err := store.LoadHistory()
	if err != nil {
		return nil, fmt.Errorf("failed to load chat history: %w", err)
	}

	return &ChatService{
		assistant:   assistant,
		store:       store,
		logger:      logging.OrDefault(logger),
		titleLength: titleLength,
		now:         time.Now,
		history:     history,
	}, nil
}

// NewChat starts an empty chat and makes it current.
func (s *ChatService) NewChat() (domain.Chat, error) {
	s.mu.Lock()
	chat := s.newChatLocked()
	snapshot := s.snapshotLocked()
	s.mu.Unlock()

	s.logger.Debug("created chat", "chat_id", chat.ID)
	return chat, s.save(snapshot)
}

func (s *ChatService) newChatLocked() domain.Chat {
	chat := domain.Chat{
		ID:        uuid.NewString(),
		Title:     NewChatTitle,
		Messages:  []domain.Message{},
		CreatedAt: s.now(),
	}
	s.history.Chats = append([]domain.Chat{chat}, s.history.Chats...)
	s.history.CurrentChatID = chat.ID
	return chat
}

// Send appends text to the current chat (creating one if needed), answers
// it and returns the assistant message. A failed answer becomes the
// fallback message. ErrBusy is returned while another Send is running.
func (s *ChatService) Send(text string) (domain.Message, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return domain.Message{}, domain.ErrEmptyMessage
	}
	if !s.busy.TryLock() {
		return domain.Message{}, domain.ErrBusy
	}
	defer s.busy.Unlock()

	s.mu.Lock()
	if s.history.Find(s.history.CurrentChatID) == nil {
		s.newChatLocked()
	}
	chatID := s.history.CurrentChatID
	chat := s.history.Find(chatID)
	chat.Messages = append(chat.Messages, domain.Message{
		ID:        uuid.NewString(),
		Role:      domain.RoleUser,
		Content:   text,
		Timestamp: s.now(),
	})
	if chat.Title == NewChatTitle {
		chat.Title = chatTitle(text, s.titleLength)
	}
	s.mu.Unlock()

	answer := s.answer(text)
	reply := domain.Message{
		ID:        uuid.NewString(),
		Role:      domain.RoleAssistant,
		Content:   answer.Text,
		Sources:   answer.Sources,
		Timestamp: s.now(),
	}

	s.mu.Lock()
	if chat := s.history.Find(chatID); chat != nil {
		chat.Messages = append(chat.Messages, reply)
	}
	snapshot := s.snapshotLocked()
	s.mu.Unlock()

	return reply, s.save(snapshot)
}

func (s *ChatService) answer(text string) (answer domain.Answer) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("failed to answer message", "panic", r)
			answer = FallbackAnswer()
		}
	}()

	result := s.assistant.Search(text, chatMaxResults)
	return s.assistant.ComposeAnswer(text, result)
}

// Select makes the chat with id current.
func (s *ChatService) Select(id string) (domain.Chat, error) {
	s.mu.Lock()
	chat := s.history.Find(id)
	if chat == nil {
		s.mu.Unlock()
		return domain.Chat{}, fmt.Errorf("%w: %s", domain.ErrChatNotFound, id)
	}
	s.history.CurrentChatID = id
	selected := copyChat(*chat)
	snapshot := s.snapshotLocked()
	s.mu.Unlock()

	return selected, s.save(snapshot)
}

// Current returns the current chat, if any.
func (s *ChatService) Current() (domain.Chat, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	chat := s.history.Find(s.history.CurrentChatID)
	if chat == nil {
		return domain.Chat{}, false
	}
	return copyChat(*chat), true
}

// List returns all chats, newest first.
func (s *ChatService) List() []domain.Chat {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked().Chats
}

func (s *ChatService) snapshotLocked() domain.ChatHistory {
	chats := make([]domain.Chat, len(s.history.Chats))
	for i, c := range s.history.Chats {
		chats[i] = copyChat(c)
	}
	return domain.ChatHistory{Chats: chats, CurrentChatID: s.history.CurrentChatID}
}

func (s *ChatService) save(history domain.ChatHistory) error {
	if err := s.store.SaveHistory(history); err != nil {
		s.logger.Warn("failed to save chat history", "error", err)
		return fmt.Errorf("failed to save chat history: %w", err)
	}
	return nil
}

func copyChat(c domain.Chat) domain.Chat {
	c.Messages = append([]domain.Message(nil), c.Messages...)
	return c
}

func chatTitle(text string, maxLen int) string {
	runes := []rune(text)
	if len(runes) <= maxLen {
		return text
	}
	return string(runes[:maxLen-3]) + "..."
}
