package contact

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"
)

// Delivery hands a submitted form to whatever should receive it.
type Delivery interface {
	Deliver(ctx context.Context, f Form) error
}

// Acknowledger is the default Delivery. It transmits nothing: a submit is
// acknowledged locally and the message is dropped.
type Acknowledger struct{}

func (Acknowledger) Deliver(context.Context, Form) error { return nil }

// MailConfig holds SMTP settings for Mailer.
type MailConfig struct {
	Host string
	Port string
	User string
	Pass string
	To   string
}

// Enabled reports whether credentials are present.
func (c MailConfig) Enabled() bool {
	return c.Host != "" && c.User != "" && c.Pass != "" && c.To != ""
}

type sendFunc func(addr string, a smtp.Auth, from string, to []string, msg []byte) error

// Mailer sends each submission as a plain-text email.
type Mailer struct {
	cfg  MailConfig
	send sendFunc
}

// NewMailer returns a Mailer, or an error when cfg lacks credentials.
func NewMailer(cfg MailConfig) (*Mailer, error) {
	if !cfg.Enabled() {
		return nil, fmt.Errorf("contact: SMTP credentials not configured")
	}
	if cfg.Port == "" {
		cfg.Port = "587"
	}
	return &Mailer{cfg: cfg, send: smtp.SendMail}, nil
}

func (m *Mailer) Deliver(ctx context.Context, f Form) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	auth := smtp.PlainAuth("", m.cfg.User, m.cfg.Pass, m.cfg.Host)
	addr := m.cfg.Host + ":" + m.cfg.Port
	if err := m.send(addr, auth, m.cfg.User, []string{m.cfg.To}, m.compose(f)); err != nil {
		return fmt.Errorf("contact: send mail via %s: %w", addr, err)
	}
	return nil
}

func (m *Mailer) compose(f Form) []byte {
	body := fmt.Sprintf(`
New contact form submission from your portfolio:

Name: %s
Email: %s
Message:
%s

---
Sent from your portfolio contact form
`, f.Name, f.Email, f.Message)

	return []byte("To: " + m.cfg.To + "\r\n" +
		"Subject: Portfolio Contact: " + headerValue(f.Name) + "\r\n" +
		"From: " + m.cfg.User + "\r\n" +
		"Reply-To: " + headerValue(f.Email) + "\r\n" +
		"\r\n" +
		body + "\r\n")
}

var headerBreaks = strings.NewReplacer("\r", " ", "\n", " ")

// headerValue keeps user input from starting new header lines.
func headerValue(s string) string {
	return headerBreaks.Replace(s)
}
