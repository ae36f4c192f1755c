package mailer

import (
	"fmt"

	"folio/internal/models"
)

// OwnerNotification composes the email summarizing a contact submission
// for the site owner.
func OwnerNotification(m models.ContactMessage, owner string) Message {
	body := fmt.Sprintf(
		"Name: %s\nEmail: %s\nSubject: %s\n\nMessage:\n%s",
		m.Name, m.Email, m.Subject, m.Message,
	)
	return Message{
		To:      []string{owner},
		Subject: fmt.Sprintf("New contact from %s", m.Name),
		Body:    body,
	}
}

// Acknowledgment composes the thank-you email sent back to the submitter.
func Acknowledgment(m models.ContactMessage, from string) Message {
	body := fmt.Sprintf(
		"Dear %s,\n\n"+
			"Thank you for contacting me. I have received your message and will "+
			"respond at the earliest opportunity.\n\n"+
			"Kind regards,\n%s",
		m.Name, from,
	)
	return Message{
		To:      []string{m.Email},
		Subject: "Acknowledgment of Your Message",
		Body:    body,
	}
}
