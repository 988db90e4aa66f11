// Package email provides an SMTP implementation of the notification
// sender port. Messages are wrapped in the TURTU-branded HTML template
// before dispatch.
package email

import (
	"context"

	"gopkg.in/gomail.v2"
)

// GomailSender implements NotificationSender over SMTP.
type GomailSender struct {
	dialer *gomail.Dialer
	from   string
}

// NewGomailSender creates a sender that dials the given SMTP endpoint.
func NewGomailSender(host string, port int, username, password, from string) *GomailSender {
	return &GomailSender{
		dialer: gomail.NewDialer(host, port, username, password),
		from:   from,
	}
}

// Send delivers one HTML email. The dial happens per message because
// notification volume is low and connections would otherwise idle out.
func (s *GomailSender) Send(ctx context.Context, to, subject, htmlBody string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", Template(subject, htmlBody))

	return s.dialer.DialAndSend(m)
}
