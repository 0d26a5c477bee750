package booking

import (
	"context"

	"github.com/MediLinkServices01/telehealth-scheduler/internal/models"
)

// Recorder is the persistence/notification collaborator. It only ever sees
// completed appointments, never draft state.
type Recorder interface {
	Record(ctx context.Context, ap *models.Appointment) error
}

type Repository interface {
	Recorder

	GetAppointmentByID(ctx context.Context, id string) (*models.Appointment, error)

	ListAppointmentsForPatient(ctx context.Context, patientID uint) ([]models.Appointment, error)
}
