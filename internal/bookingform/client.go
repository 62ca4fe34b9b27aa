package bookingform

import (
	"context"
	"net/http"
	"time"

	"pet-care-booking/internal/domain/orders"
	"pet-care-booking/internal/platform/httpclient"
)

// Submitter manda una orden al API. *Client es la implementación real.
type Submitter interface {
	SubmitOrder(ctx context.Context, req orders.CreateOrderRequest) (orders.CreateOrderResponse, error)
}

type Client struct {
	http *httpclient.Client
}

func NewClient(baseURL string, timeout time.Duration) (*Client, error) {
	hc, err := httpclient.NewWithBaseURL(baseURL, timeout)
	if err != nil {
		return nil, err
	}
	return &Client{http: hc}, nil
}

// SubmitOrder hace un único POST; no reintenta.
func (c *Client) SubmitOrder(ctx context.Context, req orders.CreateOrderRequest) (orders.CreateOrderResponse, error) {
	var resp orders.CreateOrderResponse
	if err := c.http.DoJSON(ctx, http.MethodPost, "/api/orders", nil, req, &resp); err != nil {
		return orders.CreateOrderResponse{}, err
	}
	return resp, nil
}

// Ping llama a GET /api/test.
func (c *Client) Ping(ctx context.Context) (string, error) {
	var resp struct {
		Message string `json:"message"`
	}
	if err := c.http.DoJSON(ctx, http.MethodGet, "/api/test", nil, nil, &resp); err != nil {
		return "", err
	}
	return resp.Message, nil
}
