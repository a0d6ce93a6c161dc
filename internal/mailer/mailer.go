// Package mailer sends the contact-form notification email over SMTP.
package mailer

import (
	"bytes"
	"fmt"
	"net/smtp"
	"strings"

	"portfolio/internal/config"
)

// Message is a single email to send.
type Message struct {
	To      []string
	Subject string
	HTML    string
	Text    string
}

// Sender sends emails via plain SMTP.
type Sender struct {
	cfg config.SMTPConfig
}

// New returns a Sender bound to the configured account.
func New(cfg config.SMTPConfig) *Sender {
	return &Sender{cfg: cfg}
}

// Send dispatches an email. A disabled config is a no-op, not an error.
func (s *Sender) Send(msg Message) error {
	if !s.cfg.Enable {
		return nil
	}

	host := s.cfg.Host
	port := s.cfg.Port
	if port == 0 {
		port = 587
	}
	addr := fmt.Sprintf("%s:%d", host, port)

	from := s.cfg.From
	if from == "" {
		from = s.cfg.User
	}

	var body bytes.Buffer
	body.WriteString("MIME-Version: 1.0\r\n")
	body.WriteString(fmt.Sprintf("From: %s\r\n", from))
	body.WriteString(fmt.Sprintf("To: %s\r\n", strings.Join(msg.To, ", ")))
	body.WriteString(fmt.Sprintf("Subject: %s\r\n", msg.Subject))
	body.WriteString("Content-Type: text/html; charset=UTF-8\r\n")
	body.WriteString("\r\n")
	body.WriteString(msg.HTML)

	auth := smtp.PlainAuth("", s.cfg.User, s.cfg.Password, host)
	if err := smtp.SendMail(addr, auth, from, msg.To, body.Bytes()); err != nil {
		return fmt.Errorf("send mail: %w", err)
	}
	return nil
}

// Recipient resolves the notification inbox: the configured To address,
// falling back to the sending account itself.
func (s *Sender) Recipient() string {
	if s.cfg.To != "" {
		return s.cfg.To
	}
	return s.cfg.User
}
