package timezone

import "time"

const DefaultTimezone = "UTC"

// IsValid reports whether tz names an IANA location. "Local" is rejected
// because it depends on the host running the API.
func IsValid(tz string) bool {
	if tz == "" || tz == "Local" {
		return false
	}
	_, err := time.LoadLocation(tz)
	return err == nil
}
