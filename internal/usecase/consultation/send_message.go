package consultation

import (
	"context"

	domain "github.com/MediLinkServices01/telehealth-scheduler/internal/domain/session"
	"github.com/MediLinkServices01/telehealth-scheduler/internal/httperr"
	"github.com/MediLinkServices01/telehealth-scheduler/internal/models"
)

type SendMessage struct {
	registry *domain.Registry
	repo     domain.Repository
}

func NewSendMessage(registry *domain.Registry, repo domain.Repository) *SendMessage {
	return &SendMessage{registry: registry, repo: repo}
}

// Execute appends a chat message with the sender role derived from the
// caller's identity, then persists the row.
func (uc *SendMessage) Execute(
	ctx context.Context,
	sessionID string,
	caller Caller,
	text string,
) (domain.Message, error) {

	s, ok := uc.registry.Get(sessionID)
	if !ok {
		return domain.Message{}, httperr.ErrBusiness("session_not_found")
	}
	if err := requireParticipant(s, caller); err != nil {
		return domain.Message{}, err
	}

	msg, err := s.SendMessage(caller.Role(s), text)
	if err != nil {
		return domain.Message{}, err
	}

	if err := uc.repo.SaveChatMessage(ctx, &models.ChatMessage{
		ID:        msg.ID,
		SessionID: s.ID,
		Sender:    string(msg.Sender),
		Text:      msg.Text,
		CreatedAt: msg.CreatedAt,
	}); err != nil {
		return domain.Message{}, err
	}

	return msg, nil
}
