package postgres

import (
	"context"
	"os"
	"testing"
	"time"

	"pet-care-booking/internal/domain/orders"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Estos tests necesitan un Postgres real: TEST_DATABASE_URL=postgres://... go test ./...
func openTestDB(t *testing.T) *OrdersRepo {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	_, err := Migrate(dsn)
	require.NoError(t, err)

	// Segunda corrida: sin cambios, sin error.
	version, err := Migrate(dsn)
	require.NoError(t, err)
	assert.Equal(t, uint(1), version)

	db, err := Open(dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return NewOrdersRepo(db)
}

func TestOrdersRepo_Integration_CreateAndGet(t *testing.T) {
	repo := openTestDB(t)
	ctx := context.Background()

	in := orders.Order{
		Name:          "A",
		Email:         "a@x.com",
		Phone:         "555",
		Pets:          "Dog",
		PetCount:      2,
		StartDate:     time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		EndDate:       time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC),
		DailyTime:     "9-10am",
		Description:   "feed twice",
		EstimatedCost: 90,
	}

	first, err := repo.Create(ctx, in)
	require.NoError(t, err)
	assert.Positive(t, first.ID)
	assert.False(t, first.CreatedAt.IsZero())

	second, err := repo.Create(ctx, in)
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)

	got, err := repo.GetByID(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, in.Email, got.Email)
	assert.Equal(t, in.StartDate, got.StartDate)
	assert.Equal(t, in.EndDate, got.EndDate)
	assert.Equal(t, 90.0, got.EstimatedCost)
	assert.WithinDuration(t, first.CreatedAt, got.CreatedAt, time.Millisecond)
}

func TestOrdersRepo_Integration_ConstraintViolation(t *testing.T) {
	repo := openTestDB(t)

	_, err := repo.Create(context.Background(), orders.Order{
		Email:     "a@x.com",
		Phone:     "555",
		Pets:      "Dog",
		PetCount:  0,
		StartDate: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
	})
	assert.Error(t, err)
}

func TestOrdersRepo_Integration_NotFound(t *testing.T) {
	repo := openTestDB(t)

	_, err := repo.GetByID(context.Background(), -1)
	assert.ErrorIs(t, err, orders.ErrNotFound)
}
