package validators

import (
	"strings"
	"time"
)

var dayNames = map[string]bool{
	"mon": true, "monday": true,
	"tue": true, "tuesday": true,
	"wed": true, "wednesday": true,
	"thu": true, "thursday": true,
	"fri": true, "friday": true,
	"sat": true, "saturday": true,
	"sun": true, "sunday": true,
}

// IsDayName accepts short and long English day names, any case. Surrounding
// whitespace is rejected since the value is stored as given.
func IsDayName(s string) bool {
	return dayNames[strings.ToLower(s)]
}

// IsClock accepts a 24h time of day written as HH:MM.
func IsClock(s string) bool {
	if len(s) != 5 {
		return false
	}
	_, err := time.Parse("15:04", s)
	return err == nil
}
