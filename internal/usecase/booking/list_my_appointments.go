package booking

import (
	"context"

	domain "github.com/MediLinkServices01/telehealth-scheduler/internal/domain/booking"
	"github.com/MediLinkServices01/telehealth-scheduler/internal/dto"
)

type ListPatientAppointments struct {
	repo domain.Repository
}

func NewListPatientAppointments(repo domain.Repository) *ListPatientAppointments {
	return &ListPatientAppointments{repo: repo}
}

func (uc *ListPatientAppointments) Execute(
	ctx context.Context,
	patientID uint,
) ([]dto.AppointmentListDTO, error) {

	appointments, err := uc.repo.ListAppointmentsForPatient(ctx, patientID)
	if err != nil {
		return nil, err
	}

	out := make([]dto.AppointmentListDTO, 0, len(appointments))
	for _, ap := range appointments {
		out = append(out, dto.AppointmentListDTO{
			ID:               ap.ID,
			Date:             ap.Date,
			Time:             ap.Time,
			Modality:         ap.Modality,
			Status:           ap.Status,
			TotalCost:        ap.TotalCost,
			PractitionerName: ap.Practitioner.Name,
			Specialty:        ap.Practitioner.Specialty,
			CreatedAt:        ap.CreatedAt,
		})
	}

	return out, nil
}
