package directory

import (
	"testing"

	"github.com/MediLinkServices01/telehealth-scheduler/internal/models"
)

func seedCatalog() []models.Practitioner {
	return []models.Practitioner{
		{ID: 1, Name: "Dr. Sarah Wilson", Specialty: "Cardiology", Rating: 4.9, ExperienceYears: 15, ConsultationFee: 150, AvailableToday: true},
		{ID: 2, Name: "Dr. Michael Chen", Specialty: "Dermatology", Rating: 4.8, ExperienceYears: 12, ConsultationFee: 120, AvailableToday: true},
		{ID: 3, Name: "Dr. Emily Rodriguez", Specialty: "Pediatrics", Rating: 4.9, ExperienceYears: 18, ConsultationFee: 130, AvailableToday: false},
		{ID: 4, Name: "Dr. David Kim", Specialty: "Neurology", Rating: 4.7, ExperienceYears: 20, ConsultationFee: 180, AvailableToday: true},
		{ID: 5, Name: "Dr. Anna Thompson", Specialty: "Psychiatry", Rating: 4.8, ExperienceYears: 14, ConsultationFee: 160, AvailableToday: true},
		{ID: 6, Name: "Dr. James Wilson", Specialty: "Orthopedics", Rating: 4.6, ExperienceYears: 16, ConsultationFee: 170, AvailableToday: false},
	}
}

func ids(ps []models.Practitioner) []uint {
	out := make([]uint, len(ps))
	for i, p := range ps {
		out[i] = p.ID
	}
	return out
}

func assertIDs(t *testing.T, got []models.Practitioner, want ...uint) {
	t.Helper()
	gotIDs := ids(got)
	if len(gotIDs) != len(want) {
		t.Fatalf("got %v practitioners %v, want %v", len(gotIDs), gotIDs, want)
	}
	for i := range want {
		if gotIDs[i] != want[i] {
			t.Fatalf("result order %v, want %v", gotIDs, want)
		}
	}
}

func TestSearchNoFiltersReturnsEveryone(t *testing.T) {
	got := Search(seedCatalog(), Query{})
	if len(got) != 6 {
		t.Fatalf("got %d practitioners, want 6", len(got))
	}
}

func TestSearchTextMatchesNameCaseInsensitive(t *testing.T) {
	got := Search(seedCatalog(), Query{Text: "wilson"})
	assertIDs(t, got, 1, 6)
}

func TestSearchTextMatchesSpecialty(t *testing.T) {
	got := Search(seedCatalog(), Query{Text: "DERMA"})
	assertIDs(t, got, 2)
}

func TestSearchTextNoMatchReturnsEmpty(t *testing.T) {
	got := Search(seedCatalog(), Query{Text: "oncology"})
	if len(got) != 0 {
		t.Fatalf("got %d practitioners, want 0", len(got))
	}
}

func TestSearchCategoryFilter(t *testing.T) {
	got := Search(seedCatalog(), Query{Category: "Pediatrics"})
	assertIDs(t, got, 3)
}

func TestSearchCategoryAllIsNoFilter(t *testing.T) {
	got := Search(seedCatalog(), Query{Category: CategoryAll})
	if len(got) != 6 {
		t.Fatalf("got %d practitioners, want 6", len(got))
	}
}

func TestSearchAvailableTodayOnly(t *testing.T) {
	got := Search(seedCatalog(), Query{AvailableToday: true})
	for _, p := range got {
		if !p.AvailableToday {
			t.Fatalf("practitioner %d is not available today", p.ID)
		}
	}
	if len(got) != 4 {
		t.Fatalf("got %d available practitioners, want 4", len(got))
	}
}

func TestSearchSortByRatingDefault(t *testing.T) {
	got := Search(seedCatalog(), Query{})
	// 4.9 ties keep catalog order: Sarah before Emily.
	assertIDs(t, got, 1, 3, 2, 5, 4, 6)
}

func TestSearchSortByExperience(t *testing.T) {
	got := Search(seedCatalog(), Query{SortBy: SortExperience})
	assertIDs(t, got, 4, 3, 6, 1, 5, 2)
}

func TestSearchSortByFeeAscending(t *testing.T) {
	got := Search(seedCatalog(), Query{SortBy: SortFeeAsc})
	assertIDs(t, got, 2, 3, 1, 5, 6, 4)
}

func TestSearchSortByFeeDescending(t *testing.T) {
	got := Search(seedCatalog(), Query{SortBy: SortFeeDesc})
	assertIDs(t, got, 4, 6, 5, 1, 3, 2)
}

func TestSearchCategoryAvailabilityAndFeeCombined(t *testing.T) {
	catalog := []models.Practitioner{
		{ID: 1, Name: "Dr. A", Specialty: "Cardiology", ConsultationFee: 200, AvailableToday: true},
		{ID: 2, Name: "Dr. B", Specialty: "Cardiology", ConsultationFee: 90, AvailableToday: true},
		{ID: 3, Name: "Dr. C", Specialty: "Cardiology", ConsultationFee: 50, AvailableToday: false},
		{ID: 4, Name: "Dr. D", Specialty: "Neurology", ConsultationFee: 10, AvailableToday: true},
		{ID: 5, Name: "Dr. E", Specialty: "Cardiology", ConsultationFee: 140, AvailableToday: true},
	}

	got := Search(catalog, Query{
		Category:       "Cardiology",
		AvailableToday: true,
		SortBy:         SortFeeAsc,
	})

	assertIDs(t, got, 2, 5, 1)
}

func TestSearchDoesNotMutateCatalog(t *testing.T) {
	catalog := seedCatalog()
	Search(catalog, Query{SortBy: SortFeeDesc, Text: "dr"})

	for i, p := range seedCatalog() {
		if catalog[i].ID != p.ID {
			t.Fatalf("catalog order changed at index %d", i)
		}
	}
}
