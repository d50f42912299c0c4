package infra

import (
	"fmt"
	"net/smtp"

	"github.com/jordan-wright/email"

	"github.com/Juan-204/evc-backend/internal/config"
)

// Mailer wraps SMTP configuration for sending guia PDFs to the plant inbox.
type Mailer struct {
	host     string
	port     int
	user     string
	password string
	addr     string
	notifyTo string
}

func NewMailer(cfg *config.Config) *Mailer {
	return &Mailer{
		host:     cfg.SMTPHost,
		port:     cfg.SMTPPort,
		user:     cfg.SMTPUser,
		password: cfg.SMTPPassword,
		addr:     fmt.Sprintf("%s:%d", cfg.SMTPHost, cfg.SMTPPort),
		notifyTo: cfg.NotifyEmail,
	}
}

// SendGuia mails the generated manifest to the configured notification
// address. A Mailer with no notification address is a no-op.
func (m *Mailer) SendGuia(subject, body, pdfPath string) error {
	if m.notifyTo == "" {
		return nil
	}

	e := email.NewEmail()
	e.From = m.user
	e.To = []string{m.notifyTo}
	e.Subject = subject
	e.Text = []byte(body)

	if pdfPath != "" {
		if _, err := e.AttachFile(pdfPath); err != nil {
			return fmt.Errorf("mailer: attach PDF: %w", err)
		}
	}

	auth := smtp.PlainAuth("", m.user, m.password, m.host)
	return e.Send(m.addr, auth)
}
