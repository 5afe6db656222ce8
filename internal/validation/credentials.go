// Package validation holds the fixed credential rules applied at signup.
// Both checks are pure and silent; callers produce their own diagnostics.
package validation

import (
	"regexp"
	"strings"
	"unicode"
)

// emailPattern is a syntactic-only check: something before the @, something
// after it containing a dot. It is not a deliverability check and imposes no
// TLD rules.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

const passwordSpecials = `!@#$%^&*(),.?":{}|<>`

func ValidEmail(s string) bool {
	return emailPattern.MatchString(s)
}

// StrongPassword requires length >= 8 plus at least one uppercase letter,
// one lowercase letter, one digit, and one character from the fixed
// punctuation set.
func StrongPassword(s string) bool {
	if len(s) < 8 {
		return false
	}

	var upper, lower, digit, special bool
	for _, r := range s {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsDigit(r):
			digit = true
		}
		if strings.ContainsRune(passwordSpecials, r) {
			special = true
		}
	}
	return upper && lower && digit && special
}
