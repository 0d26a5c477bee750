package dto

import "time"

type AppointmentListDTO struct {
	ID               string    `json:"id"`
	Date             string    `json:"date"`
	Time             string    `json:"time"`
	Modality         string    `json:"modality"`
	Status           string    `json:"status"`
	TotalCost        float64   `json:"total_cost"`
	PractitionerName string    `json:"practitioner_name"`
	Specialty        string    `json:"specialty"`
	CreatedAt        time.Time `json:"created_at"`
}
