package notify

import (
	"context"

	"pet-care-booking/internal/domain/orders"
	"pet-care-booking/internal/platform/logger"
)

// LogNotifier se usa cuando no hay SMTP configurado (dev): deja el resumen en el log.
type LogNotifier struct {
	log logger.Logger
}

func NewLogNotifier(log logger.Logger) *LogNotifier {
	if log == nil {
		log = logger.Nop()
	}
	return &LogNotifier{log: log}
}

func (n *LogNotifier) Notify(ctx context.Context, o orders.Order) error {
	subject, body := orders.Summary(o)
	logger.FromContext(ctx, n.log).Info("order notification (smtp disabled)", map[string]any{
		"order_id": o.ID,
		"subject":  subject,
		"body":     body,
	})
	return nil
}
