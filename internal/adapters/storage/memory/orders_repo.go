package memory

import (
	"context"
	"sync"
	"time"

	"pet-care-booking/internal/domain/orders"
)

// OrdersRepo es el storage en memoria para dev y tests.
// Los IDs son secuenciales y nunca se reutilizan, igual que un SERIAL.
type OrdersRepo struct {
	mu     sync.RWMutex
	nextID int64
	byID   map[int64]orders.Order
	now    func() time.Time
}

func NewOrdersRepo() *OrdersRepo {
	return &OrdersRepo{
		byID: make(map[int64]orders.Order),
		now:  time.Now,
	}
}

func (r *OrdersRepo) Create(ctx context.Context, o orders.Order) (orders.Order, error) {
	if err := ctx.Err(); err != nil {
		return orders.Order{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	o.ID = r.nextID
	o.CreatedAt = r.now().UTC()
	r.byID[o.ID] = o
	return o, nil
}

func (r *OrdersRepo) GetByID(ctx context.Context, id int64) (orders.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	o, ok := r.byID[id]
	if !ok {
		return orders.Order{}, orders.ErrNotFound
	}
	return o, nil
}

// Len devuelve cuántas órdenes hay guardadas.
func (r *OrdersRepo) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.byID)
}
