package services

import (
	"fmt"
	"net/smtp"
	"strings"
	"time"

	"talenthub/config"
	"talenthub/utils"
)

// EmailNotificationService sends transactional mail for the hiring workflow.
// Without SMTP configuration it logs the message instead of sending, so
// development environments work without a mail server.
type EmailNotificationService struct {
	cfg    config.SMTPConfig
	logger *utils.Logger
}

type EmailTemplate struct {
	Subject string
	Body    string
}

func NewEmailNotificationService(cfg config.SMTPConfig) *EmailNotificationService {
	return &EmailNotificationService{
		cfg:    cfg,
		logger: utils.GlobalLogger.WithComponent("email"),
	}
}

// SendInterviewScheduled notifies the interviewer an interview has been booked.
func (s *EmailNotificationService) SendInterviewScheduled(toEmail, interviewerName, candidateName, title string, scheduledAt time.Time, durationMinutes int, location string) error {
	template := EmailTemplate{
		Subject: fmt.Sprintf("Interview Scheduled - %s", title),
		Body: fmt.Sprintf(`Hello %s,

An interview has been scheduled with %s.

Details:
- Interview: %s
- When: %s
- Duration: %d minutes
- Location: %s

Best regards,
TalentHub`,
			interviewerName, candidateName, title,
			scheduledAt.Format("January 2, 2006 at 3:04 PM"),
			durationMinutes, location),
	}
	return s.send(toEmail, template)
}

// SendTeamInvite sends an invitation link to a prospective team member.
func (s *EmailNotificationService) SendTeamInvite(toEmail, invitedBy, role, inviteURL string) error {
	template := EmailTemplate{
		Subject: "You've been invited to join a TalentHub workspace",
		Body: fmt.Sprintf(`Hello,

%s has invited you to join their recruiting workspace as a %s.

Accept the invitation:
%s

If you weren't expecting this invitation you can ignore this email.

Best regards,
TalentHub`, invitedBy, role, inviteURL),
	}
	return s.send(toEmail, template)
}

func (s *EmailNotificationService) send(toEmail string, template EmailTemplate) error {
	if s.cfg.Host == "" {
		// Dev fallback: log instead of sending.
		s.logger.Info("email not sent (SMTP not configured)", map[string]string{
			"to":      toEmail,
			"subject": template.Subject,
		})
		return nil
	}

	msg := strings.Join([]string{
		"From: " + s.cfg.FromEmail,
		"To: " + toEmail,
		"Subject: " + template.Subject,
		"",
		template.Body,
	}, "\r\n")

	addr := s.cfg.Host + ":" + s.cfg.Port
	auth := smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)
	if err := smtp.SendMail(addr, auth, s.cfg.FromEmail, []string{toEmail}, []byte(msg)); err != nil {
		s.logger.Error("failed to send email", err, map[string]string{"to": toEmail})
		return err
	}
	s.logger.Info("email sent", map[string]string{"to": toEmail, "subject": template.Subject})
	return nil
}
