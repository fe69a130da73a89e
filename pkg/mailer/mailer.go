package mailer

import (
	"fmt"
	"net/smtp"
	"sync"

	"github.com/tripondo/tripondo-backend/internal/config"
)

// Mailer represents an outgoing mail gateway interface
type Mailer interface {
	Send(to, subject, body string) error
}

// SMTPMailer sends mail through a plain-auth SMTP relay
type SMTPMailer struct {
	host     string
	port     string
	username string
	password string
	from     string
}

// NewSMTPMailer creates a new SMTPMailer
func NewSMTPMailer(cfg *config.Config) Mailer {
	return &SMTPMailer{
		host:     cfg.SMTP.Host,
		port:     cfg.SMTP.Port,
		username: cfg.SMTP.Username,
		password: cfg.SMTP.Password,
		from:     cfg.SMTP.From,
	}
}

// Send sends an email through the configured SMTP relay
func (m *SMTPMailer) Send(to, subject, body string) error {
	if m.username == "" || m.password == "" {
		return fmt.Errorf("email credentials not configured")
	}

	from := m.from
	if from == "" {
		from = m.username
	}

	auth := smtp.PlainAuth("", m.username, m.password, m.host)
	message := []byte(fmt.Sprintf(
		"From: %s\r\n"+
			"To: %s\r\n"+
			"Subject: %s\r\n"+
			"MIME-Version: 1.0\r\n"+
			"Content-Type: text/plain; charset=\"UTF-8\"\r\n"+
			"\r\n"+
			"%s\r\n",
		from, to, subject, body))

	addr := m.host + ":" + m.port
	if err := smtp.SendMail(addr, auth, from, []string{to}, message); err != nil {
		return fmt.Errorf("failed to send email: %v", err)
	}
	return nil
}

// SentMail is one message captured by the mock mailer
type SentMail struct {
	To      string
	Subject string
	Body    string
}

// MockMailer records messages instead of sending them. Used in development
// mode and in tests.
type MockMailer struct {
	mu   sync.Mutex
	sent []SentMail
}

// NewMockMailer creates a new MockMailer
func NewMockMailer() *MockMailer {
	return &MockMailer{}
}

// Send records the message
func (m *MockMailer) Send(to, subject, body string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = append(m.sent, SentMail{To: to, Subject: subject, Body: body})
	return nil
}

// Sent returns a copy of every recorded message
func (m *MockMailer) Sent() []SentMail {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]SentMail, len(m.sent))
	copy(out, m.sent)
	return out
}
