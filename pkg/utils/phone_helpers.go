package utils

import (
	"regexp"
	"strings"
)

var nonDialRegexp = regexp.MustCompile(`[^\d+]`)

// TelURI builds a tel: target from a displayed phone number.
// It returns "" when nothing dialable is left.
func TelURI(phone string) string {
	digits := nonDialRegexp.ReplaceAllString(strings.TrimSpace(phone), "")
	if strings.Trim(digits, "+") == "" {
		return ""
	}
	// a '+' is only meaningful as the leading character
	if strings.HasPrefix(digits, "+") {
		digits = "+" + strings.ReplaceAll(digits[1:], "+", "")
	} else {
		digits = strings.ReplaceAll(digits, "+", "")
	}
	return "tel:" + digits
}
