package mailer

import (
	"context"
	"errors"

	"sien_official/internal/config"
	"sien_official/internal/domain/entities"
	"sien_official/internal/usecase/interfaces"

	"go.uber.org/zap"
	"gopkg.in/gomail.v2"
)

// ErrMailDisabled is returned for deadline alerts while SMTP credentials are missing,
// so the order stays unmarked and is picked up once mail is configured.
var ErrMailDisabled = errors.New("mail credentials not configured")

// Sender is the part of *gomail.Dialer the notifier needs.
type Sender interface {
	DialAndSend(m ...*gomail.Message) error
}

// SMTPNotifier mails the site owner through an authenticated SMTP relay (Gmail by default).
type SMTPNotifier struct {
	sender  Sender
	from    string
	to      string
	enabled bool
	logger  *zap.Logger
}

var _ interfaces.INotifier = (*SMTPNotifier)(nil)

func NewSMTPNotifier(cfg config.MailConfig, logger *zap.Logger) *SMTPNotifier {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SMTPNotifier{
		sender:  gomail.NewDialer(cfg.Host, cfg.Port, cfg.User, cfg.Pass),
		from:    cfg.User,
		to:      cfg.AdminEmail,
		enabled: cfg.Enabled() && cfg.AdminEmail != "",
		logger:  logger,
	}
}

// WithSender replaces the SMTP dialer.
func (n *SMTPNotifier) WithSender(s Sender) *SMTPNotifier {
	n.sender = s
	return n
}

// Notify renders and sends one mail. A new-order mail is silently skipped when
// mail is not configured; a deadline alert reports ErrMailDisabled instead.
func (n *SMTPNotifier) Notify(ctx context.Context, tpl interfaces.NotificationTemplate, o entities.Order) error {
	if !n.enabled {
		if tpl == interfaces.TemplateNewOrder {
			n.logger.Debug("mail disabled, skipping notification", zap.String("order_id", o.ID))
			return nil
		}
		return ErrMailDisabled
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	subject, body, err := Render(tpl, o)
	if err != nil {
		return err
	}

	m := gomail.NewMessage()
	m.SetHeader("From", n.from)
	m.SetHeader("To", n.to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)

	if err := n.sender.DialAndSend(m); err != nil {
		return err
	}
	n.logger.Info("notification sent", zap.String("order_id", o.ID), zap.String("template", string(tpl)))
	return nil
}
