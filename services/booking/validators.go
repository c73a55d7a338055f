package booking

import (
	"regexp"
	"strings"
)

// Field validators for the booking dialog. Each is a pure function: it either
// returns the normalized value or an *InvalidInputError whose Hint is the
// corrective re-prompt.

var (
	phoneKeepRe = regexp.MustCompile(`[^\d+\-\s()]`)
	digitRe     = regexp.MustCompile(`\d`)
	emailRe     = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
)

// ValidateName accepts any trimmed input of at least two characters.
func ValidateName(s string) (string, error) {
	name := strings.TrimSpace(s)
	if len(name) < 2 {
		return "", &InvalidInputError{
			Field: "name",
			Hint:  "Please provide your full name (first and last name).",
		}
	}
	return name, nil
}

// ValidatePhone strips everything except digits, +, -, spaces and parentheses and
// requires at least 10 digits in what remains.
func ValidatePhone(s string) (string, error) {
	phone := phoneKeepRe.ReplaceAllString(strings.TrimSpace(s), "")
	if len(digitRe.FindAllString(phone, -1)) < 10 {
		return "", &InvalidInputError{
			Field: "phone",
			Hint:  "Please provide a valid phone number (at least 10 digits).",
		}
	}
	return phone, nil
}

// ValidateEmail requires a single local@domain.tld shape with no whitespace.
func ValidateEmail(s string) (string, error) {
	email := strings.TrimSpace(s)
	if !emailRe.MatchString(email) {
		return "", &InvalidInputError{
			Field: "email",
			Hint:  "Please provide a valid email address (e.g., example@email.com).",
		}
	}
	return email, nil
}

// ValidateReason accepts any trimmed input of at least three characters.
func ValidateReason(s string) (string, error) {
	reason := strings.TrimSpace(s)
	if len(reason) < 3 {
		return "", &InvalidInputError{
			Field: "reason",
			Hint:  "Please provide a brief reason for your visit (e.g., 'regular checkup', 'chest pain', 'consultation').",
		}
	}
	return reason, nil
}
