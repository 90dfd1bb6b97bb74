// Package mail implements the outgoing mail transport over SMTP.
package mail

import (
	"bytes"
	"context"
	"log/slog"

	"storefront/config"
	"storefront/internal/domain/service"

	"github.com/pkg/errors"
	gomail "github.com/wneessen/go-mail"
)

// smtpMailer implements the service.Mailer interface on top of an SMTP server.
type smtpMailer struct {
	client *gomail.Client
	from   string
	logger *slog.Logger
}

// NewSMTPMailer creates the SMTP transport from configuration.
func NewSMTPMailer(cfg *config.Config, logger *slog.Logger) (service.Mailer, error) {
	mailCfg := cfg.Mail
	if mailCfg == nil {
		return nil, errors.New("mail configuration is required")
	}

	opts := []gomail.Option{
		gomail.WithPort(mailCfg.Port),
	}
	if mailCfg.Username != "" {
		opts = append(opts,
			gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
			gomail.WithUsername(mailCfg.Username),
			gomail.WithPassword(mailCfg.Password),
		)
	}

	client, err := gomail.NewClient(mailCfg.Host, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create SMTP client")
	}

	return &smtpMailer{
		client: client,
		from:   mailCfg.FromAddress,
		logger: logger,
	}, nil
}

// Send delivers a single message. Attachments are embedded inline from memory.
func (m *smtpMailer) Send(ctx context.Context, mail *service.Mail) error {
	msg := gomail.NewMsg()

	from := mail.From
	if from == "" {
		from = m.from
	}
	if err := msg.From(from); err != nil {
		return errors.Wrap(err, "invalid sender address")
	}
	if err := msg.To(mail.To...); err != nil {
		return errors.Wrap(err, "invalid recipient address")
	}

	msg.Subject(mail.Subject)
	msg.SetBodyString(gomail.TypeTextPlain, mail.Body)

	for _, attachment := range mail.Attachments {
		if err := msg.AttachReader(attachment.Filename, bytes.NewReader(attachment.Content),
			gomail.WithFileContentType(gomail.ContentType(attachment.ContentType)),
		); err != nil {
			return errors.Wrapf(err, "failed to attach %s", attachment.Filename)
		}
	}

	if err := m.client.DialAndSendWithContext(ctx, msg); err != nil {
		return errors.Wrap(err, "failed to send mail")
	}

	m.logger.Info("Mail sent",
		slog.String("subject", mail.Subject),
		slog.Int("recipients", len(mail.To)),
	)

	return nil
}
