package controllers

import (
	"fmt"
	"io"
	"os"

	"github.com/go-gomail/gomail"

	"github.com/dr-lamia/med-nexus-portal/logger"
)

// SendEmail sends a plain-text email with an optional attachment. When SMTP
// is not configured the mail is skipped silently; nothing in the portal
// depends on delivery.
func SendEmail(subject, msg, email, attachmentName string, attachmentData []byte) error {
	senderEmail := os.Getenv("SMTP_EMAIL")
	senderPassword := os.Getenv("SMTP_PASSWORD")
	if senderEmail == "" || senderPassword == "" {
		logger.WithComponent("email").Debug("SMTP not configured, skipping email")
		return nil
	}

	m := gomail.NewMessage()
	m.SetHeader("From", senderEmail)
	m.SetHeader("To", email)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", msg)

	if attachmentName != "" && attachmentData != nil {
		m.Attach(attachmentName, gomail.SetCopyFunc(func(w io.Writer) error {
			_, err := w.Write(attachmentData)
			return err
		}))
	}

	d := gomail.NewDialer("smtp.gmail.com", 587, senderEmail, senderPassword)
	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("error sending email: %v", err)
	}

	return nil
}
