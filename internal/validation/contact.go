package validation

import (
	"net/mail"
	"regexp"
)

// Loose on purpose: accepts spaces, dashes and parentheses so partners can
// be entered the way people write numbers down.
var phoneRe = regexp.MustCompile(`^[+]?[\d\s\-()]+$`)

// ValidateEmail checks format with Go's RFC 5322 parser and the RFC 5321
// total length bound.
func ValidateEmail(email string) error {
	if email == "" {
		return failed("email", "Email address is required")
	}

	if len(email) > 254 {
		return failed("email", "Email address is too long (max 254 characters)")
	}

	_, err := mail.ParseAddress(email)
	if err != nil {
		return failed("email", "Please enter a valid email")
	}

	return nil
}

func ValidatePhone(phone string) error {
	if phone == "" {
		return failed("phone", "Phone number is required")
	}

	if !phoneRe.MatchString(phone) {
		return failed("phone", "Please enter a valid phone number")
	}

	return nil
}

// ValidatePartnerContact checks whatever contact fields are present. Both
// empty is allowed here: contactless partner rows are filtered before
// persistence, not rejected.
func ValidatePartnerContact(email, phone string) error {
	if email != "" {
		err := ValidateEmail(email)
		if err != nil {
			return err
		}
	}

	if phone != "" {
		err := ValidatePhone(phone)
		if err != nil {
			return err
		}
	}

	return nil
}
