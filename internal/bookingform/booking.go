package bookingform

import (
	"context"
	"sync"
	"time"

	"github.com/pkg/errors"
)

type Status string

const (
	StatusEditing    Status = "editing"
	StatusSubmitting Status = "submitting"
	StatusSucceeded  Status = "succeeded"
	StatusFailed     Status = "failed"
)

var (
	ErrNotEditable = errors.New("booking is not editable")
	ErrRejected    = errors.New("order was not accepted")
)

// Booking es el ciclo de vida de un formulario: editing -> submitting -> succeeded | failed.
// Desde failed se puede corregir y reintentar; desde succeeded solo Reset.
type Booking struct {
	mu  sync.Mutex
	api Submitter
	now func() time.Time

	form    Form
	status  Status
	orderID int64
	err     error
}

func NewBooking(api Submitter, now func() time.Time) *Booking {
	if now == nil {
		now = time.Now
	}
	return &Booking{
		api:    api,
		now:    now,
		form:   NewForm(now()),
		status: StatusEditing,
	}
}

func (b *Booking) Form() Form {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.form
}

// Update aplica fn sobre el formulario. Solo en editing o failed.
func (b *Booking) Update(fn func(*Form)) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.editable() {
		return errors.Wrapf(ErrNotEditable, "status %s", b.status)
	}
	fn(&b.form)
	return nil
}

// Submit manda el formulario una sola vez. Un segundo Submit mientras hay uno en vuelo
// (o después de un éxito) devuelve ErrNotEditable sin tocar la red.
func (b *Booking) Submit(ctx context.Context) error {
	b.mu.Lock()
	if !b.editable() {
		st := b.status
		b.mu.Unlock()
		return errors.Wrapf(ErrNotEditable, "status %s", st)
	}
	b.status = StatusSubmitting
	b.err = nil
	payload := b.form.Payload()
	b.mu.Unlock()

	resp, err := b.api.SubmitOrder(ctx, payload)
	if err == nil && (!resp.Success || resp.OrderID <= 0) {
		err = ErrRejected
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	if err != nil {
		b.status = StatusFailed
		b.err = errors.Wrap(err, "submit booking")
		return b.err
	}
	b.status = StatusSucceeded
	b.orderID = resp.OrderID
	return nil
}

// Reset vuelve a un formulario nuevo con las fechas de hoy ("hacer otra reserva").
func (b *Booking) Reset() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.form = NewForm(b.now())
	b.status = StatusEditing
	b.orderID = 0
	b.err = nil
}

func (b *Booking) Status() Status {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.status
}

// OrderID es 0 salvo en succeeded.
func (b *Booking) OrderID() int64 {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.orderID
}

// Err es el último error de envío; nil salvo en failed.
func (b *Booking) Err() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.err
}

func (b *Booking) editable() bool {
	return b.status == StatusEditing || b.status == StatusFailed
}
