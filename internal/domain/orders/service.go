package orders

import (
	"context"
	"fmt"
	"strings"
	"time"

	"pet-care-booking/internal/platform/logger"

	"github.com/go-playground/validator/v10"
)

const defaultNotifyTimeout = 10 * time.Second

type Service struct {
	repo          Repository
	notifier      Notifier
	log           logger.Logger
	validate      *validator.Validate
	notifyTimeout time.Duration
}

type Option func(*Service)

func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.log = l
		}
	}
}

func WithNotifyTimeout(d time.Duration) Option {
	return func(s *Service) {
		if d > 0 {
			s.notifyTimeout = d
		}
	}
}

// NewService recibe el storage y el notificador ya construidos (en main o en tests).
// notifier puede ser nil: en ese caso no se avisa a nadie.
func NewService(repo Repository, notifier Notifier, opts ...Option) *Service {
	s := &Service{
		repo:          repo,
		notifier:      notifier,
		log:           logger.Nop(),
		validate:      validator.New(validator.WithRequiredStructEnabled()),
		notifyTimeout: defaultNotifyTimeout,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

type CreateInput struct {
	Name          string    `validate:"max=200"`
	Email         string    `validate:"required,email"`
	Phone         string    `validate:"required,max=50"`
	Pets          string    `validate:"required,max=100"`
	PetCount      int       `validate:"gte=1,lte=1000"`
	StartDate     time.Time `validate:"required"`
	EndDate       time.Time `validate:"required,gtefield=StartDate"`
	DailyTime     string    `validate:"max=200"`
	Description   string
	EstimatedCost float64 `validate:"gte=0"`
}

func (in CreateInput) normalized() CreateInput {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(in.Email)
	in.Phone = strings.TrimSpace(in.Phone)
	in.Pets = strings.TrimSpace(in.Pets)
	in.DailyTime = strings.TrimSpace(in.DailyTime)
	in.Description = strings.TrimSpace(in.Description)
	if !in.StartDate.IsZero() {
		in.StartDate = DateOf(in.StartDate)
	}
	if !in.EndDate.IsZero() {
		in.EndDate = DateOf(in.EndDate)
	}
	return in
}

// CreateResult separa el hecho durable (Order) del efecto secundario (el email).
// NotifyErr != nil no cambia el resultado de la operación.
type CreateResult struct {
	Order     Order
	NotifyErr error
}

// Create valida, guarda la orden y después notifica.
// Si falla el guardado se devuelve error y no se intenta el email.
func (s *Service) Create(ctx context.Context, in CreateInput) (CreateResult, error) {
	log := logger.FromContext(ctx, s.log)

	in = in.normalized()
	if err := s.validate.Struct(in); err != nil {
		return CreateResult{}, fromValidator(err)
	}

	o := Order{
		Name:          in.Name,
		Email:         in.Email,
		Phone:         in.Phone,
		Pets:          in.Pets,
		PetCount:      in.PetCount,
		StartDate:     in.StartDate,
		EndDate:       in.EndDate,
		DailyTime:     in.DailyTime,
		Description:   in.Description,
		EstimatedCost: in.EstimatedCost,
	}

	// El estimado del cliente se guarda tal cual; solo dejamos rastro si no coincide.
	if want := EstimateCost(Days(o.StartDate, o.EndDate), o.PetCount); want != o.EstimatedCost {
		log.Debug("client estimate differs", map[string]any{
			"client_estimate": o.EstimatedCost,
			"server_estimate": want,
		})
	}

	saved, err := s.repo.Create(ctx, o)
	if err != nil {
		return CreateResult{}, fmt.Errorf("persist order: %w", err)
	}
	log.Info("order persisted", map[string]any{"order_id": saved.ID})

	return CreateResult{
		Order:     saved,
		NotifyErr: s.notify(ctx, log, saved),
	}, nil
}

// notify es best-effort: el error se loguea y se devuelve solo para que quede en CreateResult.
// Corre con su propio timeout y no se corta si el cliente cierra la conexión.
func (s *Service) notify(ctx context.Context, log logger.Logger, o Order) error {
	if s.notifier == nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.notifyTimeout)
	defer cancel()

	if err := s.notifier.Notify(ctx, o); err != nil {
		log.Warn("order notification failed", map[string]any{
			"order_id": o.ID,
			"error":    err,
		})
		return err
	}

	log.Info("order notification sent", map[string]any{"order_id": o.ID})
	return nil
}
