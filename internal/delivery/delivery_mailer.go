package delivery

import (
	"bytes"
	"context"
	"fmt"

	"github.com/wneessen/go-mail"
	"go.uber.org/zap"
)

//go:generate mockgen -source=delivery_mailer.go -destination=mock/delivery_mailer_mock.go -package=mock
type Mailer interface {
	Send(ctx context.Context, msg Message) error
}

type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	// Insecure disables STARTTLS, for local relays only.
	Insecure bool
}

type smtpMailer struct {
	client *mail.Client
	from   string
}

func NewSMTPMailer(cfg SMTPConfig) (Mailer, error) {
	opts := []mail.Option{mail.WithPort(cfg.Port)}
	if cfg.Username != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(cfg.Username),
			mail.WithPassword(cfg.Password),
		)
	}
	if cfg.Insecure {
		opts = append(opts, mail.WithTLSPolicy(mail.NoTLS))
	} else {
		opts = append(opts, mail.WithTLSPolicy(mail.TLSMandatory))
	}

	client, err := mail.NewClient(cfg.Host, opts...)
	if err != nil {
		return nil, fmt.Errorf("smtp client: %w", err)
	}
	return &smtpMailer{client: client, from: cfg.From}, nil
}

func (m *smtpMailer) Send(ctx context.Context, msg Message) error {
	em := mail.NewMsg()
	if err := em.From(m.from); err != nil {
		return err
	}
	if err := em.To(msg.To...); err != nil {
		return err
	}
	if len(msg.Cc) > 0 {
		if err := em.Cc(msg.Cc...); err != nil {
			return err
		}
	}
	em.Subject(msg.Subject)
	em.SetBodyString(mail.TypeTextPlain, msg.Body)
	if a := msg.Attachment; a != nil {
		if err := em.AttachReader(a.FileName, bytes.NewReader(a.Content), mail.WithFileContentType(mail.ContentType(a.ContentType))); err != nil {
			return err
		}
	}
	return m.client.DialAndSendWithContext(ctx, em)
}

// logMailer stands in when no SMTP relay is configured.
type logMailer struct {
	logger *zap.Logger
}

func NewLogMailer(logger *zap.Logger) Mailer {
	return &logMailer{logger: logger.Named("delivery.mailer")}
}

func (m *logMailer) Send(_ context.Context, msg Message) error {
	fields := []zap.Field{
		zap.Strings("to", msg.To),
		zap.Strings("cc", msg.Cc),
		zap.String("subject", msg.Subject),
	}
	if msg.Attachment != nil {
		fields = append(fields,
			zap.String("attachment", msg.Attachment.FileName),
			zap.Int("attachment_bytes", len(msg.Attachment.Content)),
		)
	}
	m.logger.Info("smtp disabled, e-mail logged only", fields...)
	return nil
}
