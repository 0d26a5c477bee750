package validators

import "testing"

func TestIsValidDate(t *testing.T) {
	valid := []string{"2025-06-10", "2024-02-29", "2025-12-31"}
	for _, d := range valid {
		if !IsValidDate(d) {
			t.Errorf("IsValidDate(%q) = false, want true", d)
		}
	}

	invalid := []string{"", "06/10/2025", "2025-13-01", "2025-02-30", "tomorrow"}
	for _, d := range invalid {
		if IsValidDate(d) {
			t.Errorf("IsValidDate(%q) = true, want false", d)
		}
	}
}

func TestIsPastDate(t *testing.T) {
	today := "2025-06-05"

	if !IsPastDate("2025-06-04", today) {
		t.Error("yesterday must count as past")
	}
	if IsPastDate("2025-06-05", today) {
		t.Error("today must not count as past")
	}
	if IsPastDate("2025-06-06", today) {
		t.Error("tomorrow must not count as past")
	}
	if !IsPastDate("garbage", today) {
		t.Error("unparseable input must count as past")
	}
}
