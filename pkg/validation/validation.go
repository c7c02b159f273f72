package validation

import (
	"regexp"
	"strings"
)

var dayKeyRegex = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// IsNotEmpty checks if string is not empty after trimming
func IsNotEmpty(s string) bool {
	return strings.TrimSpace(s) != ""
}

// IsValidMeasurementSystem validates a measurement system name
func IsValidMeasurementSystem(system string) bool {
	return system == "metric" || system == "imperial"
}

// IsValidLatitude checks the WGS84 latitude range
func IsValidLatitude(lat float64) bool {
	return lat >= -90 && lat <= 90
}

// IsValidLongitude checks the WGS84 longitude range
func IsValidLongitude(lon float64) bool {
	return lon >= -180 && lon <= 180
}

// IsValidDayKey checks the YYYY-MM-DD shape of a day key
func IsValidDayKey(key string) bool {
	return dayKeyRegex.MatchString(key)
}

// TrimAndValidate trims string and validates it's not empty
func TrimAndValidate(s string) (string, bool) {
	trimmed := strings.TrimSpace(s)
	return trimmed, trimmed != ""
}
