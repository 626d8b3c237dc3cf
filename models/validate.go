package models

import "regexp"

var phonePattern = regexp.MustCompile(`^\d{10}$`)

// ValidPhoneNumber reports whether s is exactly ten digits.
func ValidPhoneNumber(s string) bool {
	return phonePattern.MatchString(s)
}
