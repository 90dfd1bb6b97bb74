package service

import "context"

// MailAttachment is a file attached to an outgoing mail.
type MailAttachment struct {
	Filename    string
	ContentType string
	Content     []byte
}

// Mail is one outgoing message. From may be empty, in which case the
// transport's configured sender address is used.
type Mail struct {
	Subject     string
	Body        string
	From        string
	To          []string
	Attachments []MailAttachment
}

// Mailer defines the notification transport: it delivers a message or
// reports failure. The system layers no dedup or retry on top of it.
type Mailer interface {
	Send(ctx context.Context, mail *Mail) error
}
