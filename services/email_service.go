package services

import (
	"fmt"
	"net/smtp"
	"time"

	"github.com/sony/gobreaker"
	"github.com/taskdesk/config"
	"github.com/taskdesk/logging"
)

// EmailService delivers HTML mail over SMTP. Sends go through a circuit
// breaker so a dead SMTP host cannot stall mutation requests with repeated
// connection timeouts.
type EmailService struct {
	breaker *gobreaker.CircuitBreaker
}

// NewEmailService creates a new email service instance
func NewEmailService() *EmailService {
	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "smtp-cb",
		MaxRequests: 1,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures > 3
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logging.Logger.Infof("Circuit breaker '%s' changed from '%s' to '%s'", name, from.String(), to.String())
		},
	})
	return &EmailService{breaker: breaker}
}

// Send delivers one HTML email. When SMTP is not configured the send is
// skipped and logged, not failed: email is a best-effort side effect.
func (s *EmailService) Send(to, subject, body string) error {
	host := config.GetEnv("SMTP_HOST", "")
	user := config.GetEnv("SMTP_USER", "")
	if host == "" || user == "" {
		logging.Logger.Infof("Email not configured, skipping send to=%s subject=%q", to, subject)
		return nil
	}

	port := config.GetEnv("SMTP_PORT", "587")
	password := config.GetEnv("SMTP_PASS", "")
	from := config.GetEnv("SMTP_FROM", user)

	message := []byte("Subject: " + subject + "\r\n" +
		"From: " + from + "\r\n" +
		"To: " + to + "\r\n" +
		"Content-Type: text/html; charset=\"UTF-8\"\r\n\r\n" +
		body + "\r\n")

	_, err := s.breaker.Execute(func() (interface{}, error) {
		auth := smtp.PlainAuth("", user, password, host)
		if err := smtp.SendMail(host+":"+port, auth, from, []string{to}, message); err != nil {
			return nil, fmt.Errorf("failed to send email: %v", err)
		}
		return nil, nil
	})
	return err
}
