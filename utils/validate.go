package utils

import "regexp"

var (
	emailPattern   = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
	countryPattern = regexp.MustCompile(`^[A-Za-z]{2}$`)
	uuidPattern    = regexp.MustCompile(`^[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}$`)
)

// IsValidEmail reports whether s looks like an email address.
func IsValidEmail(s string) bool {
	return emailPattern.MatchString(s)
}

// IsValidCountryCode reports whether s is a two-letter country code.
func IsValidCountryCode(s string) bool {
	return countryPattern.MatchString(s)
}

// IsUUID reports whether s is a canonical UUID string. The supplier issues
// connection ids and api keys in this format.
func IsUUID(s string) bool {
	return uuidPattern.MatchString(s)
}
