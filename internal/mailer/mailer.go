// Package mailer sends outbound notification email over SMTP. The contact
// intake flow uses it for the owner notification and the submitter
// acknowledgment.
package mailer

import (
	"bytes"
	"fmt"
	"log/slog"
	"net/smtp"
	"strings"
)

// Config holds SMTP transport settings. An empty Host disables sending,
// which keeps local development working without a mail server.
type Config struct {
	Host string
	Port int
	User string
	Pass string
	From string
}

// Message is a single plain-text email to send.
type Message struct {
	To      []string
	Subject string
	Body    string
}

// Sender dispatches a composed message. Implemented by SMTPSender in
// production and mocked in handler tests.
type Sender interface {
	Send(msg Message) error
}

// SMTPSender sends mail via net/smtp with PLAIN auth.
type SMTPSender struct {
	cfg Config
}

// New creates an SMTPSender with the given transport settings.
func New(cfg Config) *SMTPSender {
	return &SMTPSender{cfg: cfg}
}

// Send dispatches an email synchronously. Any transport error is returned
// to the caller; there is no retry or queuing.
func (s *SMTPSender) Send(msg Message) error {
	if s.cfg.Host == "" {
		slog.Info("mail transport not configured, skipping send",
			"to", strings.Join(msg.To, ", "),
			"subject", msg.Subject,
		)
		return nil
	}

	port := s.cfg.Port
	if port == 0 {
		port = 587
	}
	addr := fmt.Sprintf("%s:%d", s.cfg.Host, port)

	from := s.cfg.From
	if from == "" {
		from = s.cfg.User
	}

	var body bytes.Buffer
	body.WriteString("MIME-Version: 1.0\r\n")
	body.WriteString(fmt.Sprintf("From: %s\r\n", from))
	body.WriteString(fmt.Sprintf("To: %s\r\n", strings.Join(msg.To, ", ")))
	body.WriteString(fmt.Sprintf("Subject: %s\r\n", msg.Subject))
	body.WriteString("Content-Type: text/plain; charset=UTF-8\r\n")
	body.WriteString("\r\n")
	body.WriteString(msg.Body)

	var auth smtp.Auth
	if s.cfg.User != "" {
		auth = smtp.PlainAuth("", s.cfg.User, s.cfg.Pass, s.cfg.Host)
	}
	if err := smtp.SendMail(addr, auth, from, msg.To, body.Bytes()); err != nil {
		return fmt.Errorf("smtp send: %w", err)
	}
	return nil
}
