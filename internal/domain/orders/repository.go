package orders

import "context"

// Repository guarda órdenes. No hay Update ni Delete: una orden es inmutable.
type Repository interface {
	// Create inserta la orden y devuelve la copia con ID y CreatedAt asignados por el storage.
	Create(ctx context.Context, o Order) (Order, error)
	GetByID(ctx context.Context, id int64) (Order, error)
}

// Notifier avisa al operador de una orden nueva (email en producción).
type Notifier interface {
	Notify(ctx context.Context, o Order) error
}
