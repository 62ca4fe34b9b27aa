package bookingform

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"pet-care-booking/internal/domain/orders"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAPI struct {
	mu    sync.Mutex
	calls int
	last  orders.CreateOrderRequest
	resp  orders.CreateOrderResponse
	err   error

	// si no es nil, SubmitOrder espera hasta que se cierre
	block chan struct{}
}

func (f *fakeAPI) SubmitOrder(ctx context.Context, req orders.CreateOrderRequest) (orders.CreateOrderResponse, error) {
	f.mu.Lock()
	f.calls++
	f.last = req
	block := f.block
	f.mu.Unlock()

	if block != nil {
		<-block
	}
	return f.resp, f.err
}

func fixedNow() time.Time { return time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC) }

func fillContact(f *Form) {
	f.Name = "A"
	f.Email = "a@x.com"
	f.Phone = "555"
}

func TestBooking_SubmitSuccess(t *testing.T) {
	api := &fakeAPI{resp: orders.CreateOrderResponse{Success: true, OrderID: 42}}
	b := NewBooking(api, fixedNow)
	require.Equal(t, StatusEditing, b.Status())

	require.NoError(t, b.Update(func(f *Form) {
		fillContact(f)
		f.PetCount = 2
		f.EndDate = day(2024, 6, 3)
	}))

	require.NoError(t, b.Submit(context.Background()))

	assert.Equal(t, StatusSucceeded, b.Status())
	assert.Equal(t, int64(42), b.OrderID())
	assert.NoError(t, b.Err())
	assert.Equal(t, 1, api.calls)
	assert.Equal(t, 90.0, api.last.EstimatedCost)
	assert.Equal(t, "2024-06-01", api.last.StartDate)

	// después del éxito no se puede editar ni reenviar
	assert.ErrorIs(t, b.Update(func(f *Form) { f.PetCount = 5 }), ErrNotEditable)
	assert.ErrorIs(t, b.Submit(context.Background()), ErrNotEditable)
	assert.Equal(t, 1, api.calls)
}

func TestBooking_SubmitFailureAllowsRetry(t *testing.T) {
	api := &fakeAPI{err: errors.New("connection refused")}
	b := NewBooking(api, fixedNow)
	require.NoError(t, b.Update(fillContact))

	err := b.Submit(context.Background())
	require.Error(t, err)
	assert.Equal(t, StatusFailed, b.Status())
	assert.Zero(t, b.OrderID())
	assert.Contains(t, b.Err().Error(), "connection refused")

	// corregir y reintentar
	require.NoError(t, b.Update(func(f *Form) { f.DailyTime = "evenings" }))
	api.err = nil
	api.resp = orders.CreateOrderResponse{Success: true, OrderID: 7}

	require.NoError(t, b.Submit(context.Background()))
	assert.Equal(t, StatusSucceeded, b.Status())
	assert.Equal(t, int64(7), b.OrderID())
	assert.Nil(t, b.Err())
	assert.Equal(t, "evenings", api.last.Time)
}

func TestBooking_SuccessFalseIsFailure(t *testing.T) {
	api := &fakeAPI{resp: orders.CreateOrderResponse{Success: false}}
	b := NewBooking(api, fixedNow)

	err := b.Submit(context.Background())
	assert.ErrorIs(t, err, ErrRejected)
	assert.Equal(t, StatusFailed, b.Status())
}

func TestBooking_SingleRequestInFlight(t *testing.T) {
	api := &fakeAPI{
		resp:  orders.CreateOrderResponse{Success: true, OrderID: 1},
		block: make(chan struct{}),
	}
	b := NewBooking(api, fixedNow)

	done := make(chan error, 1)
	go func() { done <- b.Submit(context.Background()) }()

	require.Eventually(t, func() bool { return b.Status() == StatusSubmitting }, time.Second, time.Millisecond)

	assert.ErrorIs(t, b.Submit(context.Background()), ErrNotEditable)
	assert.ErrorIs(t, b.Update(fillContact), ErrNotEditable)

	close(api.block)
	require.NoError(t, <-done)

	api.mu.Lock()
	defer api.mu.Unlock()
	assert.Equal(t, 1, api.calls)
}

func TestBooking_Reset(t *testing.T) {
	now := fixedNow()
	api := &fakeAPI{resp: orders.CreateOrderResponse{Success: true, OrderID: 3}}
	b := NewBooking(api, func() time.Time { return now })

	require.NoError(t, b.Update(func(f *Form) {
		fillContact(f)
		f.PetType = PetTypeCat
		f.PetCount = 4
	}))
	require.NoError(t, b.Submit(context.Background()))

	now = now.AddDate(0, 0, 10)
	b.Reset()

	f := b.Form()
	assert.Equal(t, StatusEditing, b.Status())
	assert.Zero(t, b.OrderID())
	assert.Equal(t, PetTypeDog, f.PetType)
	assert.Equal(t, 1, f.PetCount)
	assert.Empty(t, f.Email)
	assert.Equal(t, day(2024, 6, 11), f.StartDate)
	assert.Equal(t, day(2024, 6, 12), f.EndDate)
}
