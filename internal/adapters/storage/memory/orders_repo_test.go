package memory

import (
	"context"
	"sync"
	"testing"

	"pet-care-booking/internal/domain/orders"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrdersRepo_CreateAssignsIDAndTimestamp(t *testing.T) {
	repo := NewOrdersRepo()

	o, err := repo.Create(context.Background(), orders.Order{Email: "a@x.com", PetCount: 1})
	require.NoError(t, err)
	assert.Equal(t, int64(1), o.ID)
	assert.False(t, o.CreatedAt.IsZero())

	got, err := repo.GetByID(context.Background(), o.ID)
	require.NoError(t, err)
	assert.Equal(t, o, got)
}

func TestOrdersRepo_GetByID_NotFound(t *testing.T) {
	_, err := NewOrdersRepo().GetByID(context.Background(), 7)
	assert.ErrorIs(t, err, orders.ErrNotFound)
}

func TestOrdersRepo_ConcurrentCreatesGetDistinctIDs(t *testing.T) {
	repo := NewOrdersRepo()

	const n = 50
	ids := make(chan int64, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			o, err := repo.Create(context.Background(), orders.Order{Pets: "Dog", PetCount: 1})
			if err == nil {
				ids <- o.ID
			}
		}()
	}
	wg.Wait()
	close(ids)

	seen := map[int64]bool{}
	for id := range ids {
		assert.False(t, seen[id], "duplicate id %d", id)
		seen[id] = true
	}
	assert.Len(t, seen, n)
	assert.Equal(t, n, repo.Len())
}

func TestOrdersRepo_CanceledContext(t *testing.T) {
	repo := NewOrdersRepo()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := repo.Create(ctx, orders.Order{})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, repo.Len())
}
