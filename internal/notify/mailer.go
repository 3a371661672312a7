package notify

import (
	"fmt"
	"net/mail"
	"net/smtp"
	"strings"
	"time"

	"employee_voting_system/configs"
)

const dateTimeFormat = "Jan 2, 2006 at 3:04 PM"

type mailer struct {
	config configs.SMTP
}

// NewMailer builds the SMTP notifier. Delivery uses PLAIN auth over
// STARTTLS, which stdlib smtp.SendMail negotiates when the server
// offers it.
func NewMailer(config configs.SMTP) Notifier {
	return &mailer{config: config}
}

func (m *mailer) OTPIssued(email, code string) error {
	body := fmt.Sprintf(
		"Your verification code is: %s\n\n"+
			"This code will expire in 5 minutes.\n"+
			"For security reasons, never share this code with anyone.\n\n"+
			"If you didn't request this code, please ignore this email.\n",
		code,
	)

	return m.send([]string{email}, "Your Verification Code", body)
}

func (m *mailer) PollCreated(recipients []string, subject string, start, end time.Time) error {
	if len(recipients) == 0 {
		return nil
	}

	body := fmt.Sprintf(
		"A new vote is open for participation.\n\n"+
			"Subject: %s\n"+
			"Voting opens: %s\n"+
			"Voting closes: %s\n\n"+
			"Sign in to the portal to cast your vote.\n",
		subject,
		start.Format(dateTimeFormat),
		end.Format(dateTimeFormat),
	)

	return m.send(recipients, "New Vote: "+subject, body)
}

func (m *mailer) send(to []string, subject, body string) error {
	addr := fmt.Sprintf("%s:%d", m.config.Host, m.config.Port)

	var msg strings.Builder
	msg.WriteString("From: " + m.config.From + "\r\n")
	msg.WriteString("To: " + strings.Join(to, ", ") + "\r\n")
	msg.WriteString("Subject: " + subject + "\r\n")
	msg.WriteString("MIME-Version: 1.0\r\n")
	msg.WriteString("Content-Type: text/plain; charset=\"utf-8\"\r\n")
	msg.WriteString("\r\n")
	msg.WriteString(body)

	auth := smtp.PlainAuth("", m.config.Username, m.config.Password, m.config.Host)
	if m.config.Username == "" {
		auth = nil
	}

	if err := smtp.SendMail(addr, auth, m.fromAddress(), to, []byte(msg.String())); err != nil {
		return fmt.Errorf("failed to send mail: %w", err)
	}

	return nil
}

// fromAddress strips an optional display name, since the SMTP envelope
// wants the bare address.
func (m *mailer) fromAddress() string {
	parsed, err := mail.ParseAddress(m.config.From)
	if err != nil {
		return m.config.From
	}
	return parsed.Address
}
