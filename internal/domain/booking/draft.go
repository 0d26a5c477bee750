package booking

import "strings"

// ===============================
// Enums
// ===============================

type Modality string

const (
	ModalityVideo Modality = "video"
	ModalityChat  Modality = "chat"
)

type Urgency string

const (
	UrgencyNormal    Urgency = "normal"
	UrgencyUrgent    Urgency = "urgent"
	UrgencyEmergency Urgency = "emergency"
)

type PaymentMethod string

const (
	PaymentCard   PaymentMethod = "card"
	PaymentWallet PaymentMethod = "wallet"
)

func IsValidModality(m Modality) bool {
	return m == ModalityVideo || m == ModalityChat
}

func IsValidUrgency(u Urgency) bool {
	return u == UrgencyNormal || u == UrgencyUrgent || u == UrgencyEmergency
}

func IsValidPaymentMethod(p PaymentMethod) bool {
	return p == PaymentCard || p == PaymentWallet
}

// ===============================
// Draft
// ===============================

// Draft accumulates the wizard's input. It is owned by exactly one workflow
// and stays mutable until Confirm freezes it into an Appointment.
type Draft struct {
	Date          string        `json:"date"`
	Time          string        `json:"time"`
	Modality      Modality      `json:"modality"`
	Reason        string        `json:"reason"`
	Urgency       Urgency       `json:"urgency"`
	Notes         string        `json:"notes"`
	PaymentMethod PaymentMethod `json:"payment_method"`
}

func NewDraft() Draft {
	return Draft{
		Modality: ModalityVideo,
		Urgency:  UrgencyNormal,
	}
}

func (d Draft) HasSchedule() bool {
	return d.Date != "" && d.Time != ""
}

func (d Draft) HasReason() bool {
	return strings.TrimSpace(d.Reason) != ""
}

func (d Draft) HasPaymentMethod() bool {
	return d.PaymentMethod != ""
}
