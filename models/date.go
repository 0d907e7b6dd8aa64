package models

import "time"

const apiTimeLayout = "2006-01-02T15:04:05Z"

// FormatDate reduces an API timestamp such as "2023-11-01T10:00:00Z" to
// "2023-11-01". Anything that doesn't match that exact layout is returned
// unchanged.
func FormatDate(iso string) string {
	if iso == "" {
		return ""
	}

	t, err := time.Parse(apiTimeLayout, iso)
	if err != nil {
		return iso
	}
	return t.Format("2006-01-02")
}
