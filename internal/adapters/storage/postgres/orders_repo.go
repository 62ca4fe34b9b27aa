package postgres

import (
	"context"
	"database/sql"
	"time"

	"pet-care-booking/internal/domain/orders"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
)

type OrdersRepo struct {
	db *sqlx.DB
}

func NewOrdersRepo(db *sqlx.DB) *OrdersRepo {
	return &OrdersRepo{db: db}
}

// orderRow mapea la tabla orders; las columnas son snake_case.
type orderRow struct {
	ID            int64     `db:"id"`
	Name          string    `db:"name"`
	Email         string    `db:"email"`
	Phone         string    `db:"phone"`
	Pets          string    `db:"pets"`
	PetCount      int       `db:"pet_count"`
	StartDate     time.Time `db:"start_date"`
	EndDate       time.Time `db:"end_date"`
	DailyTime     string    `db:"daily_time"`
	Description   string    `db:"description"`
	EstimatedCost float64   `db:"estimated_cost"`
	CreatedAt     time.Time `db:"created_at"`
}

func (r orderRow) toOrder() orders.Order {
	return orders.Order{
		ID:            r.ID,
		Name:          r.Name,
		Email:         r.Email,
		Phone:         r.Phone,
		Pets:          r.Pets,
		PetCount:      r.PetCount,
		StartDate:     orders.DateOf(r.StartDate),
		EndDate:       orders.DateOf(r.EndDate),
		DailyTime:     r.DailyTime,
		Description:   r.Description,
		EstimatedCost: r.EstimatedCost,
		CreatedAt:     r.CreatedAt,
	}
}

// Create inserta una fila; id y created_at los genera Postgres (RETURNING).
func (r *OrdersRepo) Create(ctx context.Context, o orders.Order) (orders.Order, error) {
	err := r.db.QueryRowxContext(ctx, `
		INSERT INTO orders (
			name, email, phone,
			pets, pet_count,
			start_date, end_date, daily_time,
			description, estimated_cost
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
		RETURNING id, created_at
	`,
		o.Name,
		o.Email,
		o.Phone,
		o.Pets,
		o.PetCount,
		orders.FormatDate(o.StartDate),
		orders.FormatDate(o.EndDate),
		o.DailyTime,
		o.Description,
		o.EstimatedCost,
	).Scan(&o.ID, &o.CreatedAt)
	if err != nil {
		return orders.Order{}, errors.Wrap(err, "insert order")
	}
	return o, nil
}

func (r *OrdersRepo) GetByID(ctx context.Context, id int64) (orders.Order, error) {
	var row orderRow
	err := r.db.GetContext(ctx, &row, `
		SELECT
			id, name, email, phone,
			pets, pet_count,
			start_date, end_date, daily_time,
			description, estimated_cost,
			created_at
		FROM orders
		WHERE id = $1
	`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return orders.Order{}, orders.ErrNotFound
		}
		return orders.Order{}, errors.Wrap(err, "get order")
	}
	return row.toOrder(), nil
}
