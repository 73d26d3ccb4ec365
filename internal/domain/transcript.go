package domain

import "time"

type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

type Message struct {
	ID        string    `json:"id"`
	Role      Role      `json:"type"`
	Content   string    `json:"content"`
	Sources   []Source  `json:"sources,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

type Chat struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Messages  []Message `json:"messages"`
	CreatedAt time.Time `json:"createdAt"`
}

// ChatHistory is the persisted transcript state; newest chat first.
type ChatHistory struct {
	Chats         []Chat `json:"chats"`
	CurrentChatID string `json:"currentChatId,omitempty"`
}

func (h *ChatHistory) Find(id string) *Chat {
	for i := range h.Chats {
		if h.Chats[i].ID == id {
			return &h.Chats[i]
		}
	}
	return nil
}
