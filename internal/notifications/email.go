package notifications

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"log"
	"net/smtp"

	"festly/internal/shared/config"
)

// EmailSender delivers confirmation emails to guests
type EmailSender interface {
	SendConfirmation(ctx context.Context, event *ConfirmationEvent) error
}

const confirmationTemplate = `
<html>
<body style="font-family: Arial, sans-serif;">
	<h2>Reserva confirmada</h2>
	<p>Hola {{.GuestName}},</p>
	<p>Tu reserva quedó confirmada con el código <strong>{{.ConfirmationCode}}</strong>.</p>
	<ul>
		<li>Horario: {{.StartTime}} – {{.EndTime}}</li>
		<li>Invitados: {{.GuestCount}}</li>
		<li>Total: S/ {{printf "%.2f" .Total}}</li>
	</ul>
	<p>Presenta el código al llegar al local.</p>
	<p>— Festly</p>
</body>
</html>`

type smtpEmailSender struct {
	cfg  config.EmailConfig
	tmpl *template.Template
}

// NewSMTPEmailSender builds the SMTP-backed sender. The template is
// parsed once at startup; a broken template is a deploy error, not a
// runtime one.
func NewSMTPEmailSender(cfg config.EmailConfig) (EmailSender, error) {
	tmpl, err := template.New("confirmation").Parse(confirmationTemplate)
	if err != nil {
		return nil, fmt.Errorf("failed to parse confirmation template: %w", err)
	}

	return &smtpEmailSender{
		cfg:  cfg,
		tmpl: tmpl,
	}, nil
}

func (s *smtpEmailSender) SendConfirmation(ctx context.Context, event *ConfirmationEvent) error {
	var body bytes.Buffer
	if err := s.tmpl.Execute(&body, event); err != nil {
		return fmt.Errorf("failed to render confirmation email: %w", err)
	}

	subject := fmt.Sprintf("Reserva confirmada - %s", event.ConfirmationCode)
	msg := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/html; charset=UTF-8\r\n\r\n%s",
		s.cfg.FromEmail, event.GuestEmail, subject, body.String())

	addr := fmt.Sprintf("%s:%d", s.cfg.SMTPHost, s.cfg.SMTPPort)
	auth := smtp.PlainAuth("", s.cfg.SMTPUsername, s.cfg.SMTPPassword, s.cfg.SMTPHost)

	if err := smtp.SendMail(addr, auth, s.cfg.FromEmail, []string{event.GuestEmail}, []byte(msg)); err != nil {
		return fmt.Errorf("failed to send confirmation email: %w", err)
	}

	return nil
}

// logEmailSender is used when SMTP is not configured (local development)
type logEmailSender struct{}

func NewLogEmailSender() EmailSender {
	return &logEmailSender{}
}

func (s *logEmailSender) SendConfirmation(ctx context.Context, event *ConfirmationEvent) error {
	log.Printf("Confirmation email (log only) - to: %s, code: %s, total: %.2f",
		event.GuestEmail, event.ConfirmationCode, event.Total)
	return nil
}
