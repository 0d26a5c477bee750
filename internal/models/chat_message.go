package models

import "time"

type ChatMessage struct {
	ID string `gorm:"primaryKey;size:36" json:"id"`

	SessionID string `gorm:"size:36;index" json:"session_id"`

	Sender string `gorm:"size:20" json:"sender"`
	Text   string `gorm:"size:1000" json:"text"`

	CreatedAt time.Time `json:"created_at"`
}
