package utils

import (
	"regexp"
	"strings"
)

var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// IsValidEmail applies the same loose pattern the storefront uses.
func IsValidEmail(email string) bool {
	return emailRegex.MatchString(email)
}

// NormalizeTunisianPhone strips separators and prefixes +216 when the
// number looks like a bare local one.
func NormalizeTunisianPhone(phone string) string {
	cleaned := strings.NewReplacer(" ", "", "-", "", ".", "").Replace(strings.TrimSpace(phone))
	if cleaned == "" {
		return ""
	}
	if strings.HasPrefix(cleaned, "+") {
		return cleaned
	}
	if strings.HasPrefix(cleaned, "216") {
		return "+" + cleaned
	}
	if len(cleaned) == 8 {
		return "+216" + cleaned
	}
	return cleaned
}
