package models

import "time"

// Appointment is the frozen outcome of a booking workflow. The core never
// mutates a row after creation; status changes belong to scheduling ops.
type Appointment struct {
	ID string `gorm:"primaryKey;size:36" json:"id"`

	PractitionerID uint         `json:"practitioner_id"`
	Practitioner   Practitioner `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"practitioner"`

	PatientID uint `json:"patient_id"`
	Patient   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"patient"`

	Date string `gorm:"size:10" json:"date"`
	Time string `gorm:"size:10" json:"time"`

	Modality      string `gorm:"size:10" json:"modality"`
	Reason        string `gorm:"size:500" json:"reason"`
	Urgency       string `gorm:"size:10" json:"urgency"`
	Notes         string `gorm:"size:500" json:"notes"`
	PaymentMethod string `gorm:"size:10" json:"payment_method"`

	Status    string  `gorm:"size:20;default:'confirmed'" json:"status"`
	TotalCost float64 `json:"total_cost"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
