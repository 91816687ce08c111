package mailer

import (
	"fmt"
	"time"

	"gopkg.in/gomail.v2"
)

type IAlertMailer interface {
	SendFallbackAlert(username, question string, cause error) error
}

type alertMailer struct {
	dialer      *gomail.Dialer
	senderEmail string
	senderName  string
	adminEmail  string
}

func NewAlertMailer(host string, port int, username, password, senderName, adminEmail string) IAlertMailer {
	d := gomail.NewDialer(host, port, username, password)

	return &alertMailer{
		dialer:      d,
		senderEmail: username,
		senderName:  senderName,
		adminEmail:  adminEmail,
	}
}

// SendFallbackAlert notifies the operator that the AI fallback failed
// after exhausting its retries and a student received the error message.
func (s *alertMailer) SendFallbackAlert(username, question string, cause error) error {
	if s.adminEmail == "" {
		return nil
	}

	m := gomail.NewMessage()
	m.SetHeader("From", m.FormatAddress(s.senderEmail, s.senderName))
	m.SetHeader("To", s.adminEmail)
	m.SetHeader("Subject", "EduBot: AI fallback failure")

	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>AI fallback exhausted its retries</h2>
			<p><b>Time:</b> %s</p>
			<p><b>Student:</b> %s</p>
			<p><b>Question:</b> %s</p>
			<p><b>Last error:</b> %v</p>
			<p>The student was shown the generic error message.</p>
		</div>
	`, time.Now().Format(time.RFC3339), username, question, cause)

	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("send fallback alert: %w", err)
	}
	return nil
}
