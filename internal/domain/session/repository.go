package session

import (
	"context"

	"github.com/MediLinkServices01/telehealth-scheduler/internal/models"
)

// Repository persists chat messages as they are appended; the live session
// itself is never written back.
type Repository interface {
	SaveChatMessage(ctx context.Context, msg *models.ChatMessage) error

	ListChatMessages(ctx context.Context, sessionID string) ([]models.ChatMessage, error)
}
