package orders

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSummary(t *testing.T) {
	subject, body := Summary(Order{
		ID:            42,
		Name:          "A",
		Email:         "a@x.com",
		Phone:         "555",
		Pets:          "Dog",
		PetCount:      2,
		StartDate:     date(2024, 6, 1),
		EndDate:       date(2024, 6, 3),
		DailyTime:     "9-10am",
		Description:   "feed twice",
		EstimatedCost: 90,
	})

	assert.Equal(t, "New Pet Care Order #42", subject)
	for _, want := range []string{
		"Order: #42",
		"Name: A",
		"Pet: Dog",
		"Count: 2",
		"Dates: 2024-06-01 to 2024-06-03 (3 days)",
		"Time: 9-10am",
		"Estimated Cost: $90.00",
		"Contact: a@x.com, 555",
		"Notes: feed twice",
	} {
		assert.Contains(t, body, want)
	}
}

func TestSummary_WithoutID(t *testing.T) {
	subject, body := Summary(Order{Pets: "Cat", PetCount: 1})

	assert.Equal(t, "New Pet Care Order", subject)
	assert.NotContains(t, body, "Order: #")
	assert.NotContains(t, body, "Name:")
}
