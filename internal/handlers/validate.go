package handlers

import (
	"net/mail"
	"strings"
	"unicode/utf8"
)

// Validation limits for contact-form fields.
const (
	maxNameLen    = 200
	maxEmailLen   = 254
	maxSubjectLen = 255
)

// contactInput is the POST /contact/messages request body.
type contactInput struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// validateContact checks a contact submission and returns per-field error
// messages. An empty map means the input is valid.
func validateContact(in contactInput) map[string]string {
	errs := make(map[string]string)

	name := strings.TrimSpace(in.Name)
	if name == "" {
		errs["name"] = "This field is required."
	} else if utf8.RuneCountInString(name) > maxNameLen {
		errs["name"] = "Name is too long (max 200 characters)."
	}

	email := strings.TrimSpace(in.Email)
	switch {
	case email == "":
		errs["email"] = "This field is required."
	case utf8.RuneCountInString(email) > maxEmailLen:
		errs["email"] = "Email is too long (max 254 characters)."
	default:
		// Reject display-name forms like "Jane <jane@example.com>"; the
		// stored value must be a bare address.
		addr, err := mail.ParseAddress(email)
		if err != nil || addr.Address != email {
			errs["email"] = "Enter a valid email address."
		}
	}

	if utf8.RuneCountInString(in.Subject) > maxSubjectLen {
		errs["subject"] = "Subject is too long (max 255 characters)."
	}

	if strings.TrimSpace(in.Message) == "" {
		errs["message"] = "This field is required."
	}

	return errs
}
