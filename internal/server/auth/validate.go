package auth

import "regexp"

var emailRe = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

var (
	upperRe = regexp.MustCompile(`[A-Z]`)
	lowerRe = regexp.MustCompile(`[a-z]`)
	digitRe = regexp.MustCompile(`\d`)
)

// ValidEmail reports whether email looks like a well-formed address.
func ValidEmail(email string) bool {
	return emailRe.MatchString(email)
}

// ValidatePassword checks password strength: at least 8 characters with an
// uppercase letter, a lowercase letter, and a digit. On failure the returned
// message names the first rule violated.
func ValidatePassword(password string) (bool, string) {
	if len(password) < 8 {
		return false, "Password must be at least 8 characters long"
	}
	if !upperRe.MatchString(password) {
		return false, "Password must contain at least one uppercase letter"
	}
	if !lowerRe.MatchString(password) {
		return false, "Password must contain at least one lowercase letter"
	}
	if !digitRe.MatchString(password) {
		return false, "Password must contain at least one digit"
	}
	return true, "Password is valid"
}
