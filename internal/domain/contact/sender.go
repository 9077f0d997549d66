package contact

import (
	"context"
	"fmt"
	"net/smtp"
	"time"
)

// Default simulated transport constants.
const (
	defaultSendDelay = 2 * time.Second
)

// SimulatedSender models the not-yet-built real transport: it waits a fixed
// delay and succeeds. Cancellation is the only failure path.
type SimulatedSender struct {
	delay time.Duration
}

// SimulatedOption applies a configuration option to the SimulatedSender.
type SimulatedOption func(*SimulatedSender)

// WithDelay sets the simulated network delay.
func WithDelay(delay time.Duration) SimulatedOption {
	return func(s *SimulatedSender) {
		if delay >= 0 {
			s.delay = delay
		}
	}
}

// NewSimulatedSender creates a simulated sender with configuration options.
func NewSimulatedSender(opts ...SimulatedOption) *SimulatedSender {
	s := &SimulatedSender{delay: defaultSendDelay}

	// Apply all options
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Send waits for the simulated delay, honoring ctx for cancellation.
func (s *SimulatedSender) Send(ctx context.Context, _ Message) error {
	timer := time.NewTimer(s.delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return fmt.Errorf("context cancelled: %w", ctx.Err())
	case <-timer.C:
		return nil
	}
}

// SMTPConfig holds the settings for the real email transport.
type SMTPConfig struct {
	Host     string
	Port     string
	Username string
	Password string
	To       string
}

// SMTPSender delivers contact messages as email over SMTP.
type SMTPSender struct {
	cfg SMTPConfig
}

// NewSMTPSender creates an SMTP sender. Credentials are validated at send
// time so a misconfigured transport surfaces as a submission error, not a
// startup failure.
func NewSMTPSender(cfg SMTPConfig) *SMTPSender {
	if cfg.Host == "" {
		cfg.Host = "smtp.gmail.com"
	}
	if cfg.Port == "" {
		cfg.Port = "587"
	}
	return &SMTPSender{cfg: cfg}
}

// Send composes and delivers the message.
func (s *SMTPSender) Send(ctx context.Context, msg Message) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context cancelled: %w", err)
	}
	if s.cfg.Username == "" || s.cfg.Password == "" {
		return fmt.Errorf("smtp credentials not configured")
	}
	to := s.cfg.To
	if to == "" {
		to = s.cfg.Username
	}

	subject := fmt.Sprintf("Portfolio Contact: %s", msg.Name)
	body := fmt.Sprintf("New contact form submission:\n\nName: %s\nEmail: %s\nMessage:\n%s\n", msg.Name, msg.Email, msg.Message)
	payload := []byte("To: " + to + "\r\n" +
		"Subject: " + subject + "\r\n" +
		"From: " + s.cfg.Username + "\r\n" +
		"Reply-To: " + msg.Email + "\r\n" +
		"\r\n" +
		body + "\r\n")

	auth := smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)
	if err := smtp.SendMail(s.cfg.Host+":"+s.cfg.Port, auth, s.cfg.Username, []string{to}, payload); err != nil {
		return fmt.Errorf("smtp send: %w", err)
	}
	return nil
}
