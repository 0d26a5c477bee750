package consultation

import (
	"context"

	domain "github.com/MediLinkServices01/telehealth-scheduler/internal/domain/session"
	"github.com/MediLinkServices01/telehealth-scheduler/internal/dto"
	"github.com/MediLinkServices01/telehealth-scheduler/internal/httperr"
)

type Summary struct {
	registry *domain.Registry
	repo     domain.Repository
}

func NewSummary(registry *domain.Registry, repo domain.Repository) *Summary {
	return &Summary{registry: registry, repo: repo}
}

// Execute reads the session summary. It works in every phase, including
// after the session ended, so the duration and transcript stay auditable.
func (uc *Summary) Execute(
	ctx context.Context,
	sessionID string,
	caller Caller,
) (*dto.SessionSummaryDTO, error) {

	s, ok := uc.registry.Get(sessionID)
	if !ok {
		return nil, httperr.ErrBusiness("session_not_found")
	}
	if err := requireParticipant(s, caller); err != nil {
		return nil, err
	}

	messages := s.Messages()
	out := &dto.SessionSummaryDTO{
		SessionID:       s.ID,
		DurationSeconds: s.Elapsed(),
		Messages:        make([]dto.ChatMessageDTO, 0, len(messages)),
	}
	for _, m := range messages {
		out.Messages = append(out.Messages, dto.ChatMessageDTO{
			ID:        m.ID,
			Sender:    string(m.Sender),
			Text:      m.Text,
			CreatedAt: m.CreatedAt,
		})
	}

	return out, nil
}

// ListMessages returns the transcript in append order, falling back to the
// persisted rows when the live session is gone (process restart).
func (uc *Summary) ListMessages(
	ctx context.Context,
	sessionID string,
	caller Caller,
) ([]dto.ChatMessageDTO, error) {

	if s, ok := uc.registry.Get(sessionID); ok {
		if err := requireParticipant(s, caller); err != nil {
			return nil, err
		}
		messages := s.Messages()
		out := make([]dto.ChatMessageDTO, 0, len(messages))
		for _, m := range messages {
			out = append(out, dto.ChatMessageDTO{
				ID:        m.ID,
				Sender:    string(m.Sender),
				Text:      m.Text,
				CreatedAt: m.CreatedAt,
			})
		}
		return out, nil
	}

	rows, err := uc.repo.ListChatMessages(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ChatMessageDTO, 0, len(rows))
	for _, m := range rows {
		out = append(out, dto.ChatMessageDTO{
			ID:        m.ID,
			Sender:    m.Sender,
			Text:      m.Text,
			CreatedAt: m.CreatedAt,
		})
	}
	return out, nil
}
