package timezone

import "time"

// DefaultTimezone: "hoje" é a data do calendário em UTC.
const DefaultTimezone = "UTC"

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

	return time.UTC
}

// DateIn formata t como a data (YYYY-MM-DD) em que cai no timezone tz.
func DateIn(t time.Time, tz string) string {
	return t.In(Location(tz)).Format("2006-01-02")
}
