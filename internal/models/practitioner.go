package models

import "time"

// Practitioner is reference data owned by the directory; the core never
// mutates these rows.
type Practitioner struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name      string `gorm:"size:100;not null" json:"name"`
	Specialty string `gorm:"size:50;not null" json:"specialty"`

	Rating          float64 `json:"rating"`
	Reviews         int     `json:"reviews"`
	ExperienceYears int     `json:"experience_years"`

	ConsultationFee float64 `json:"consultation_fee"`

	Location       string `gorm:"size:100" json:"location"`
	AvailableToday bool   `json:"available_today"`
	NextAvailable  string `gorm:"size:50" json:"next_available"`

	// Comma separated language tags, e.g. "English,Spanish".
	Languages string `gorm:"size:255" json:"languages"`
	AvatarURL string `gorm:"size:255" json:"avatar_url"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
