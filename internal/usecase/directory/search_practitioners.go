package directory

import (
	"context"

	domain "github.com/MediLinkServices01/telehealth-scheduler/internal/domain/directory"
	"github.com/MediLinkServices01/telehealth-scheduler/internal/models"
)

type SearchPractitioners struct {
	repo domain.Repository
}

func NewSearchPractitioners(repo domain.Repository) *SearchPractitioners {
	return &SearchPractitioners{repo: repo}
}

// Execute re-runs the query against the full catalog on every call; the
// result is always freshly ordered.
func (uc *SearchPractitioners) Execute(
	ctx context.Context,
	q domain.Query,
) ([]models.Practitioner, error) {

	catalog, err := uc.repo.ListPractitioners(ctx)
	if err != nil {
		return nil, err
	}

	return domain.Search(catalog, q), nil
}
