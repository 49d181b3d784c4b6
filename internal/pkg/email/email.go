package email

import (
	"fmt"
	"net/smtp"
	"strconv"

	"github.com/rs/zerolog"
)

// Service defines the interface for outbound notification email
type Service interface {
	SendAnnouncement(toEmail, toName, message string) error
	SendAttendanceAlert(toEmail, toName string, percentage int) error
}

// SMTPConfig holds configuration for the SMTP server
type SMTPConfig struct {
	Host      string
	Port      int
	Username  string
	Password  string
	FromName  string
	FromEmail string
}

// serviceImpl implements Service over plain SMTP
type serviceImpl struct {
	config SMTPConfig
	logger zerolog.Logger
}

// NewService creates a new email Service
func NewService(config SMTPConfig, logger zerolog.Logger) Service {
	return &serviceImpl{
		config: config,
		logger: logger,
	}
}

// SendAnnouncement sends a broadcast announcement to a single recipient
func (s *serviceImpl) SendAnnouncement(toEmail, toName, message string) error {
	// Without SMTP credentials the mail is logged instead of sent, so the
	// notification flow still works in development.
	if s.config.Username == "" || s.config.Password == "" {
		s.logger.Warn().
			Str("toEmail", toEmail).
			Str("message", message).
			Msg("SMTP credentials not configured - announcement email not sent")
		return nil
	}

	subject := "EduTrack Announcement"
	body := fmt.Sprintf("Hello %s,\r\n\r\n%s\r\n\r\nBest regards,\r\nThe EduTrack Team\r\n", toName, message)

	return s.send(toEmail, subject, body)
}

// SendAttendanceAlert notifies a user about their attendance standing
func (s *serviceImpl) SendAttendanceAlert(toEmail, toName string, percentage int) error {
	if s.config.Username == "" || s.config.Password == "" {
		s.logger.Warn().
			Str("toEmail", toEmail).
			Int("percentage", percentage).
			Msg("SMTP credentials not configured - attendance alert not sent")
		return nil
	}

	subject := "EduTrack Attendance Alert"
	body := fmt.Sprintf("Hello %s,\r\n\r\nYour current attendance rate is %d%%. Please check your attendance record in EduTrack.\r\n\r\nBest regards,\r\nThe EduTrack Team\r\n", toName, percentage)

	return s.send(toEmail, subject, body)
}

func (s *serviceImpl) send(toEmail, subject, body string) error {
	addr := s.config.Host + ":" + strconv.Itoa(s.config.Port)
	auth := smtp.PlainAuth("", s.config.Username, s.config.Password, s.config.Host)

	from := s.config.FromEmail
	msg := []byte(fmt.Sprintf("From: %s <%s>\r\nTo: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/plain; charset=\"UTF-8\"\r\n\r\n%s",
		s.config.FromName, from, toEmail, subject, body))

	if err := smtp.SendMail(addr, auth, from, []string{toEmail}, msg); err != nil {
		s.logger.Error().Err(err).Str("toEmail", toEmail).Msg("Failed to send email")
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}
