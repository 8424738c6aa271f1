package contactapi

import (
	"errors"
	"fmt"
	"net/smtp"
	"strings"

	"galleri-app/config"
)

// Message is one contact-form submission bound for the operator inbox.
type Message struct {
	Name    string
	Email   string
	Message string
	Artwork string
	Subject string
}

// Mailer sends one transactional email per contact submission.
type Mailer interface {
	Send(msg Message) error
}

// SMTPMailer delivers through the configured SMTP relay, reply-to set to the
// submitter so the artists can answer directly.
type SMTPMailer struct{}

func NewSMTPMailer() *SMTPMailer {
	return &SMTPMailer{}
}

func (m *SMTPMailer) Send(msg Message) error {
	from := config.SMTP_FROM
	password := config.SMTP_PASSWORD
	host := config.SMTP_HOST
	port := config.SMTP_PORT
	to := config.CONTACT_TO_EMAIL

	if host == "" || from == "" || to == "" {
		return errors.New("smtp is not configured")
	}

	var body strings.Builder
	fmt.Fprintf(&body, "Navn: %s\n", msg.Name)
	fmt.Fprintf(&body, "Email: %s\n", msg.Email)
	if msg.Artwork != "" {
		fmt.Fprintf(&body, "Værk: %s\n", msg.Artwork)
	}
	if msg.Subject != "" {
		fmt.Fprintf(&body, "Emne: %s\n", msg.Subject)
	}
	fmt.Fprintf(&body, "\n%s\n", msg.Message)

	message := []byte("Subject: " + emailSubject(msg) + "\r\n" +
		"From: " + from + "\r\n" +
		"To: " + to + "\r\n" +
		"Reply-To: " + msg.Email + "\r\n" +
		"Content-Type: text/plain; charset=UTF-8\r\n" +
		"\r\n" +
		body.String() + "\r\n")

	auth := smtp.PlainAuth("", from, password, host)
	return smtp.SendMail(host+":"+port, auth, from, []string{to}, message)
}

// emailSubject varies by whether the inquiry references an artwork, a named
// subject, or neither.
func emailSubject(msg Message) string {
	switch {
	case msg.Artwork != "":
		return fmt.Sprintf("Forespørgsel på værket: \"%s\"", msg.Artwork)
	case msg.Subject != "":
		return fmt.Sprintf("Henvendelse vedrørende: \"%s\"", msg.Subject)
	default:
		return "Ny besked fra din hjemmeside"
	}
}
