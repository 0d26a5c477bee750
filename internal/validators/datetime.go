package validators

import "time"

// IsValidDate accepts calendar dates in 2006-01-02 form.
func IsValidDate(date string) bool {
	_, err := time.Parse("2006-01-02", date)
	return err == nil
}

// IsPastDate reports whether date falls strictly before today (both in
// 2006-01-02 form). Invalid input counts as past so guards reject it.
func IsPastDate(date, today string) bool {
	d, err := time.Parse("2006-01-02", date)
	if err != nil {
		return true
	}
	t, err := time.Parse("2006-01-02", today)
	if err != nil {
		return true
	}
	return d.Before(t)
}
