package domain

import (
	"fmt"
	"regexp"
)

var (
	emailRegex    = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	otpRegex      = regexp.MustCompile(`^\d{6}$`)
	memberIDRegex = regexp.MustCompile(`^BGC\d{3,}$`)
)

// ValidateEmail checks if an email address is valid.
func ValidateEmail(email string) error {
	if email == "" {
		return fmt.Errorf("email is required")
	}
	if !emailRegex.MatchString(email) {
		return fmt.Errorf("invalid email format")
	}
	return nil
}

// ValidateOTP checks the one-time code format. Only the shape is checked
// here; delivery and matching belong to the SMS provider boundary.
func ValidateOTP(otp string) error {
	if !otpRegex.MatchString(otp) {
		return fmt.Errorf("invalid OTP format: must be 6 digits")
	}
	return nil
}

// ValidateMemberID checks a club member ID (BGC001, BGC002, ...).
func ValidateMemberID(id string) error {
	if !memberIDRegex.MatchString(id) {
		return fmt.Errorf("invalid member ID: %s", id)
	}
	return nil
}

// ValidateAge checks a player age is plausible.
func ValidateAge(age int) error {
	if age < 10 || age > 90 {
		return fmt.Errorf("age must be between 10 and 90, got %d", age)
	}
	return nil
}

// ValidateMaxTeams checks a tournament capacity.
func ValidateMaxTeams(n int) error {
	if n <= 0 {
		return fmt.Errorf("max teams must be positive, got %d", n)
	}
	return nil
}
