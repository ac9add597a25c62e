// utils/validation.go
package utils

import (
	"regexp"
	"strings"
)

var phoneRegex = regexp.MustCompile(`^\+?[0-9]\d{1,14}$`)

// ValidatePhone checks if a phone number is in a valid international format
func ValidatePhone(phone string) bool {
	cleaned := strings.NewReplacer(" ", "", "-", "", "(", "", ")", "").Replace(phone)
	return phoneRegex.MatchString(cleaned)
}

// ValidToothNumber checks FDI two-digit notation. Permanent quadrants 1-4
// carry teeth 1-8 (11-48); primary quadrants 5-8 only carry teeth 1-5
// (51-55 through 81-85).
func ValidToothNumber(n int) bool {
	quadrant, tooth := n/10, n%10
	if quadrant < 1 || quadrant > 8 || tooth < 1 {
		return false
	}
	if quadrant >= 5 {
		return tooth <= 5
	}
	return tooth <= 8
}
