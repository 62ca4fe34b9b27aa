package notify

import (
	"context"
	"strings"
	"time"

	"pet-care-booking/internal/domain/orders"

	"github.com/pkg/errors"
	"github.com/wneessen/go-mail"
)

var ErrSMTPNotConfigured = errors.New("smtp mailer not configured")

// SMTPConfig normalmente viene de las env EMAIL_*.
type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string

	From string // "Pet Care Orders" <orders@...>
	To   string // operador que recibe las órdenes

	// Timeout de conexión/envío. Si es 0 se usa 10s.
	Timeout time.Duration
}

// Mailer implementa orders.Notifier enviando el resumen por SMTP.
type Mailer struct {
	cfg SMTPConfig
}

func NewMailer(cfg SMTPConfig) (*Mailer, error) {
	cfg.Host = strings.TrimSpace(cfg.Host)
	cfg.To = strings.TrimSpace(cfg.To)
	cfg.From = strings.TrimSpace(cfg.From)
	if cfg.Host == "" || cfg.To == "" || cfg.From == "" {
		return nil, ErrSMTPNotConfigured
	}
	// Direcciones inválidas fallan acá, al arrancar, y no en cada envío.
	check := mail.NewMsg()
	if err := check.From(cfg.From); err != nil {
		return nil, errors.Wrapf(err, "invalid sender %q", cfg.From)
	}
	if err := check.To(cfg.To); err != nil {
		return nil, errors.Wrapf(err, "invalid recipient %q", cfg.To)
	}
	if cfg.Port <= 0 {
		cfg.Port = 587
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	return &Mailer{cfg: cfg}, nil
}

func (m *Mailer) Notify(ctx context.Context, o orders.Order) error {
	msg, err := m.message(o)
	if err != nil {
		return err
	}

	// Un cliente por envío: mail.Client guarda la conexión y no queremos compartirla entre requests.
	client, err := mail.NewClient(m.cfg.Host, m.clientOptions()...)
	if err != nil {
		return errors.Wrap(err, "smtp client")
	}

	return errors.Wrapf(client.DialAndSendWithContext(ctx, msg), "send order #%d email", o.ID)
}

func (m *Mailer) clientOptions() []mail.Option {
	opts := []mail.Option{
		mail.WithPort(m.cfg.Port),
		mail.WithTimeout(m.cfg.Timeout),
		mail.WithTLSPortPolicy(mail.TLSOpportunistic),
	}
	if strings.TrimSpace(m.cfg.Username) != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(m.cfg.Username),
			mail.WithPassword(m.cfg.Password),
		)
	}
	return opts
}

func (m *Mailer) message(o orders.Order) (*mail.Msg, error) {
	subject, body := orders.Summary(o)

	msg := mail.NewMsg()
	if err := msg.From(m.cfg.From); err != nil {
		return nil, errors.Wrap(err, "invalid sender")
	}
	if err := msg.To(m.cfg.To); err != nil {
		return nil, errors.Wrap(err, "invalid recipient")
	}
	// Responder al email va directo al cliente. Si su dirección no parsea, se omite.
	if o.Email != "" {
		_ = msg.ReplyTo(o.Email)
	}
	msg.Subject(subject)
	msg.SetBodyString(mail.TypeTextPlain, body)

	return msg, nil
}
