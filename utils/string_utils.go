package utils

// Truncate caps a string at max characters. Used to keep raw driver error
// text short before it lands in a diagnostic response.
func Truncate(s string, max int) string {
	if max < 0 {
		max = 0
	}
	if len(s) <= max {
		return s
	}
	return s[:max]
}
