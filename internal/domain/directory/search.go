package directory

import (
	"sort"
	"strings"

	"github.com/MediLinkServices01/telehealth-scheduler/internal/models"
)

// ===============================
// Query
// ===============================

type SortKey string

const (
	SortRating     SortKey = "rating"
	SortExperience SortKey = "experience"
	SortFeeAsc     SortKey = "fee_asc"
	SortFeeDesc    SortKey = "fee_desc"
)

const CategoryAll = "all"

type Query struct {
	Text           string
	Category       string
	AvailableToday bool
	SortBy         SortKey
}

// ===============================
// Search
// ===============================

// Search filters and orders the catalog. It is a pure function: the catalog
// is never mutated and the result is always a fresh slice.
func Search(catalog []models.Practitioner, q Query) []models.Practitioner {
	text := strings.ToLower(strings.TrimSpace(q.Text))

	out := make([]models.Practitioner, 0, len(catalog))
	for _, p := range catalog {
		if text != "" &&
			!strings.Contains(strings.ToLower(p.Name), text) &&
			!strings.Contains(strings.ToLower(p.Specialty), text) {
			continue
		}
		if q.Category != "" && q.Category != CategoryAll && p.Specialty != q.Category {
			continue
		}
		if q.AvailableToday && !p.AvailableToday {
			continue
		}
		out = append(out, p)
	}

	// Stable sort keeps catalog order on ties.
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		switch q.SortBy {
		case SortExperience:
			return a.ExperienceYears > b.ExperienceYears
		case SortFeeAsc:
			return a.ConsultationFee < b.ConsultationFee
		case SortFeeDesc:
			return a.ConsultationFee > b.ConsultationFee
		default:
			return a.Rating > b.Rating
		}
	})

	return out
}
