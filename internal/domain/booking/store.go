package booking

import (
	"context"
	"time"

	"github.com/MediLinkServices01/telehealth-scheduler/internal/httperr"
)

// DraftTTL bounds how long an abandoned wizard survives before it is
// discarded.
const DraftTTL = 30 * time.Minute

// ErrWorkflowNotFound is returned for unknown or expired workflows.
var ErrWorkflowNotFound = httperr.ErrBusiness("booking_not_found")

// Store holds in-flight workflows between wizard calls. Completed or exited
// workflows are deleted; only the frozen Appointment survives.
type Store interface {
	Save(ctx context.Context, w *Workflow) error
	Get(ctx context.Context, id string) (*Workflow, error)
	Delete(ctx context.Context, id string) error
}
