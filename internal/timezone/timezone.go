package timezone

import "time"

const DefaultTimezone = "America/New_York"

func IsValid(tz string) bool {
	if tz == "" {
		return false
	}
	_, err := time.LoadLocation(tz)
	return err == nil
}

func Location(tz string) *time.Location {
	if IsValid(tz) {
		if loc, err := time.LoadLocation(tz); err == nil {
			return loc
		}
	}

	loc, _ := time.LoadLocation(DefaultTimezone)
	return loc
}

func NowIn(tz string) time.Time {
	return time.Now().In(Location(tz))
}

// Today returns the clinic-local calendar date in 2006-01-02 form.
func Today(tz string) string {
	return NowIn(tz).Format("2006-01-02")
}
