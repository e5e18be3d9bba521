package mailing

import (
	"strconv"

	"gopkg.in/gomail.v2"

	"Recipe-Share-Backend/internal/utils"
)

type (
	Mailer interface {
		Send(toEmail string, subject string, body string) error
	}

	mailer struct {
		host     string
		port     string
		sender   string
		email    string
		password string
	}
)

func NewMailer(config *utils.Config) Mailer {
	return &mailer{
		host:     config.SMTPHost,
		port:     config.SMTPPort,
		sender:   config.SMTPSenderName,
		email:    config.SMTPAuthEmail,
		password: config.SMTPAuthPassword,
	}
}

func (m *mailer) Send(toEmail string, subject string, body string) error {
	message := gomail.NewMessage()
	message.SetHeader("From", m.email)
	message.SetHeader("To", toEmail)
	message.SetHeader("Subject", subject)
	message.SetBody("text/html", body)

	port, err := strconv.Atoi(m.port)
	if err != nil {
		return err
	}

	dialer := gomail.NewDialer(m.host, port, m.email, m.password)
	return dialer.DialAndSend(message)
}
