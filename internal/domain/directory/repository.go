package directory

import (
	"context"

	"github.com/MediLinkServices01/telehealth-scheduler/internal/models"
)

type Repository interface {
	ListPractitioners(ctx context.Context) ([]models.Practitioner, error)

	GetPractitionerByID(ctx context.Context, id uint) (*models.Practitioner, error)
}
