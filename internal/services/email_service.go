package services

import (
	"fmt"
	"strings"

	"gopkg.in/gomail.v2"
)

type EmailService interface {
	SendOverAllocationAlert(email, resourceName string, taskNames []string) error
	SendReport(email, subject, pdfPath string) error
}

type emailService struct {
	dialer *gomail.Dialer
	from   string
}

func NewEmailService(smtpHost string, smtpPort int, smtpUser, smtpPassword, fromEmail string) EmailService {
	dialer := gomail.NewDialer(smtpHost, smtpPort, smtpUser, smtpPassword)
	return &emailService{
		dialer: dialer,
		from:   fromEmail,
	}
}

func (s *emailService) SendOverAllocationAlert(email, resourceName string, taskNames []string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", email)
	m.SetHeader("Subject", fmt.Sprintf("Over-assigned resource: %s", resourceName))
	m.SetBody("text/plain", fmt.Sprintf(
		"The resource %q has overlapping assignments across the following tasks:\n\n%s\n\n"+
			"Please review the schedule in the dashboard.",
		resourceName, "  - "+strings.Join(taskNames, "\n  - "),
	))
	return s.dialer.DialAndSend(m)
}

func (s *emailService) SendReport(email, subject, pdfPath string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", email)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", "The requested report is attached.")
	m.Attach(pdfPath)
	return s.dialer.DialAndSend(m)
}
