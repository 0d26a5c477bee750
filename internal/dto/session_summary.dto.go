package dto

import "time"

type ChatMessageDTO struct {
	ID        string    `json:"id"`
	Sender    string    `json:"sender"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

type SessionSummaryDTO struct {
	SessionID       string           `json:"session_id"`
	DurationSeconds int              `json:"duration_seconds"`
	Messages        []ChatMessageDTO `json:"messages"`
}
