package utils

import (
	"regexp"
)

var (
	phoneRegex = regexp.MustCompile(`^[\d\s\-\+\(\)]+$`)
	dniRegex   = regexp.MustCompile(`^[0-9A-Za-z-]+$`)
)

// ValidatePhone accepts digits, spaces and common phone symbols.
func ValidatePhone(phone string) bool {
	return phone == "" || phoneRegex.MatchString(phone)
}

// ValidateDNI accepts alphanumeric document numbers with hyphens.
func ValidateDNI(dni string) bool {
	return dniRegex.MatchString(dni)
}
