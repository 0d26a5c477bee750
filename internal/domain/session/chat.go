package session

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/MediLinkServices01/telehealth-scheduler/internal/httperr"
)

// ===============================
// Chat Sub-channel
// ===============================

type Message struct {
	ID        string    `json:"id"`
	Sender    Role      `json:"sender"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

// ChatLog is the append-only message log scoped to one session. Iteration
// order is append order; there is no edit or delete.
type ChatLog struct {
	messages []Message
	lastAt   time.Time
}

// Append assigns the next unique ID and a timestamp never earlier than the
// previous message's. Blank text is rejected and leaves the log unchanged.
func (l *ChatLog) Append(sender Role, text string, now time.Time) (Message, error) {
	if strings.TrimSpace(text) == "" {
		return Message{}, httperr.ErrBusiness("empty_message")
	}

	at := now
	if at.Before(l.lastAt) {
		at = l.lastAt
	}
	l.lastAt = at

	msg := Message{
		ID:        uuid.New().String(),
		Sender:    sender,
		Text:      text,
		CreatedAt: at,
	}
	l.messages = append(l.messages, msg)
	return msg, nil
}

func (l *ChatLog) Len() int {
	return len(l.messages)
}

// Messages returns a copy in append order.
func (l *ChatLog) Messages() []Message {
	out := make([]Message, len(l.messages))
	copy(out, l.messages)
	return out
}
