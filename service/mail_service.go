package service

import (
	"strings"

	gomail "gopkg.in/gomail.v2"

	"meetsum/types"
)

const mailSubject = "Meeting Summary"

// MailSender delivers a summary to a list of recipients. Abstracted so
// handlers can be tested without an SMTP session.
type MailSender interface {
	SendSummary(recipients []string, summary string) error
}

// MailService sends plain-text summary mails through an implicit-TLS SMTP
// relay, one scoped connection per send.
type MailService struct {
	host     string
	port     int
	sender   string
	password string
}

func NewMailService(host string, port int, sender, password string) *MailService {
	return &MailService{
		host:     host,
		port:     port,
		sender:   sender,
		password: password,
	}
}

func (s *MailService) SendSummary(recipients []string, summary string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.sender)
	m.SetHeader("To", recipients...)
	m.SetHeader("Subject", mailSubject)
	m.SetBody("text/plain", summary)

	d := gomail.NewDialer(s.host, s.port, s.sender, s.password)
	d.SSL = true

	// DialAndSend closes the connection on every exit path.
	if err := d.DialAndSend(m); err != nil {
		return types.NewAppError(types.ErrMail, err.Error(), err)
	}
	return nil
}

// SplitRecipients turns the comma-separated address list into envelope
// recipients. Entries are trimmed and empties dropped; strict servers refuse
// a literal " b@x.com".
func SplitRecipients(raw string) []string {
	parts := strings.Split(raw, ",")
	recipients := make([]string, 0, len(parts))
	for _, p := range parts {
		addr := strings.TrimSpace(p)
		if addr == "" {
			continue
		}
		recipients = append(recipients, addr)
	}
	return recipients
}
