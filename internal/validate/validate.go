// Package validate holds the field acceptance rules shared by the API
// service and the client library. Both sides must accept exactly the same
// inputs, so the rules live in one place and nothing here touches the
// network or the database: every function is pure.
package validate

import (
	"regexp"
	"strings"
)

var (
	// emailRE is the single source of truth for email shape: no whitespace,
	// one '@', and a '.' somewhere after it with non-empty segments around
	// both. Nothing beyond shape is checked (no MX lookup, no length cap).
	emailRE = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

	nonDigitRE = regexp.MustCompile(`\D`)
)

// IsValidEmail reports whether s has a plausible local@domain.tld shape.
func IsValidEmail(s string) bool {
	return emailRE.MatchString(s)
}

// IsValidPhone reports whether s contains exactly 10 decimal digits once all
// non-digit characters (spaces, dashes, parentheses, etc.) are stripped.
func IsValidPhone(s string) bool {
	return len(NormalizePhone(s)) == 10
}

// NormalizePhone strips every non-digit character from s. This is the form
// phones are stored in.
func NormalizePhone(s string) string {
	return nonDigitRE.ReplaceAllString(s, "")
}

// FormatPhone renders up to 10 digits of s as a progressive xxx-xxx-xxxx
// mask, suitable for echoing back into a phone input as the user types.
// Extra digits beyond the tenth are dropped.
func FormatPhone(s string) string {
	d := NormalizePhone(s)
	if len(d) > 10 {
		d = d[:10]
	}
	switch {
	case len(d) >= 6:
		return d[:3] + "-" + d[3:6] + "-" + d[6:]
	case len(d) >= 3:
		return d[:3] + "-" + d[3:]
	default:
		return d
	}
}

// FormFields carries the three user-supplied contact fields prior to
// validation and normalization.
type FormFields struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// CheckForm validates all three fields the way the entry form does and
// returns a map of field name to user-facing message. An empty map means the
// form is acceptable. The name length rule (>= 2 characters after trimming)
// is a form-level nicety; the API itself only requires non-empty.
func CheckForm(f FormFields) map[string]string {
	errs := make(map[string]string)

	name := strings.TrimSpace(f.Name)
	if name == "" {
		errs["name"] = "Name is required"
	} else if len([]rune(name)) < 2 {
		errs["name"] = "Name must be at least 2 characters"
	}

	if strings.TrimSpace(f.Email) == "" {
		errs["email"] = "Email is required"
	} else if !IsValidEmail(f.Email) {
		errs["email"] = "Please enter a valid email address"
	}

	if strings.TrimSpace(f.Phone) == "" {
		errs["phone"] = "Phone number is required"
	} else if !IsValidPhone(f.Phone) {
		errs["phone"] = "Phone number must be exactly 10 digits"
	}

	return errs
}
