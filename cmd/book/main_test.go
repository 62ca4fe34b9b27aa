package main

import (
	"bytes"
	"context"
	"net/http/httptest"
	"testing"

	mem "pet-care-booking/internal/adapters/storage/memory"
	"pet-care-booking/internal/router"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	app := newApp()
	app.Writer = &out
	app.ErrWriter = &out
	err := app.RunContext(context.Background(), append([]string{"book"}, args...))
	return out.String(), err
}

func TestBook_DryRun(t *testing.T) {
	out, err := run(t, "--dry-run", "--pet", "cat", "--count", "2", "--start", "2024-01-01", "--end", "2024-01-03")
	require.NoError(t, err)
	assert.Contains(t, out, "3 day(s), 2 Cat, estimated cost $90.00")
}

func TestBook_DefaultEndIsDayAfterStart(t *testing.T) {
	out, err := run(t, "--dry-run", "--start", "2024-06-01")
	require.NoError(t, err)
	assert.Contains(t, out, "2 day(s), 1 Dog, estimated cost $30.00")
}

func TestBook_InvalidFlags(t *testing.T) {
	_, err := run(t, "--dry-run", "--count", "zero")
	assert.Error(t, err)

	_, err = run(t, "--dry-run", "--pet", "parrot")
	assert.Error(t, err)

	_, err = run(t, "--dry-run", "--start", "01/06/2024")
	assert.Error(t, err)
}

func TestBook_Submit(t *testing.T) {
	repo := mem.NewOrdersRepo()
	ts := httptest.NewServer(router.NewRouter(router.Options{Repository: repo}))
	defer ts.Close()

	out, err := run(t,
		"--api-url", ts.URL,
		"--name", "A", "--email", "a@x.com", "--phone", "555",
		"--count", "2", "--start", "2024-06-01", "--end", "2024-06-03",
		"--time", "9-10am",
	)
	require.NoError(t, err)
	assert.Contains(t, out, "booking confirmed, order #1")
	assert.Equal(t, 1, repo.Len())
}

func TestBook_SubmitRejected(t *testing.T) {
	repo := mem.NewOrdersRepo()
	ts := httptest.NewServer(router.NewRouter(router.Options{Repository: repo}))
	defer ts.Close()

	_, err := run(t, "--api-url", ts.URL, "--phone", "555")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "email is required")
	assert.Zero(t, repo.Len())
}

func TestBook_APIUnreachable(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{}))
	url := ts.URL
	ts.Close()

	_, err := run(t, "--api-url", url, "--email", "a@x.com", "--phone", "555")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "api not reachable")
}
