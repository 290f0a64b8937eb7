package enricher

import "time"

// Season returns the provider season for now. European seasons start in
// August, so January to July belong to the previous year's season.
func Season(now time.Time) int {
	if now.Month() < time.August {
		return now.Year() - 1
	}
	return now.Year()
}
