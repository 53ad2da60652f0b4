package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	apiorders "github.com/pizza-net/pizza-frontend/pkg/api/types/orders"
)

func (c *client) CreateOrder(ctx context.Context, spec apiorders.Spec) (apiorders.Detail, error) {
	b, err := json.Marshal(spec)
	if err != nil {
		return apiorders.Detail{}, err
	}

	req, err := http.NewRequestWithContext(
		ctx, http.MethodPost, c.apipath("orders"), bytes.NewBuffer(b),
	)
	if err != nil {
		return apiorders.Detail{}, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.do(req)
	if err != nil {
		return apiorders.Detail{}, err
	}
	defer resp.Body.Close()

	var created apiorders.Detail
	if err := unmarshalJsonResponse(
		resp, &created,
		MessageFor{
			Status4xx: "order was rejected",
			Status5xx: fmt.Sprintf("server error (status code = %d)", resp.StatusCode),
		},
	); err != nil {
		return apiorders.Detail{}, err
	}
	return created, nil
}

func (c *client) FindOrders(ctx context.Context, customerID int64) ([]apiorders.Detail, error) {
	req, err := http.NewRequestWithContext(
		ctx, http.MethodGet, c.apipath("orders"), nil,
	)
	if err != nil {
		return nil, err
	}

	q := req.URL.Query()
	q.Add("customerId", fmt.Sprintf("%d", customerID))
	req.URL.RawQuery = q.Encode()

	resp, err := c.do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	found := make([]apiorders.Detail, 0, 5)
	if err := unmarshalJsonResponse(
		resp, &found,
		MessageFor{
			Status4xx: fmt.Sprintf("orders of customer:%d cannot be listed", customerID),
			Status5xx: fmt.Sprintf("server error (status code = %d)", resp.StatusCode),
		},
	); err != nil {
		return nil, err
	}
	return found, nil
}

func (c *client) GetOrder(ctx context.Context, orderID int64) (apiorders.Detail, error) {
	req, err := http.NewRequestWithContext(
		ctx, http.MethodGet, c.apipath("orders", fmt.Sprintf("%d", orderID)), nil,
	)
	if err != nil {
		return apiorders.Detail{}, err
	}

	resp, err := c.do(req)
	if err != nil {
		return apiorders.Detail{}, err
	}
	defer resp.Body.Close()

	var found apiorders.Detail
	if err := unmarshalJsonResponse(
		resp, &found,
		MessageFor{
			Status4xx: fmt.Sprintf("order:%d is not found", orderID),
			Status5xx: fmt.Sprintf("server error (status code = %d)", resp.StatusCode),
		},
	); err != nil {
		return apiorders.Detail{}, err
	}
	return found, nil
}

// UpdateOrderStatus sends the new status as a query parameter; the
// order service takes no request body here.
func (c *client) UpdateOrderStatus(ctx context.Context, orderID int64, status string) (apiorders.Detail, error) {
	req, err := http.NewRequestWithContext(
		ctx, http.MethodPatch,
		c.apipath("orders", fmt.Sprintf("%d", orderID), "status"), nil,
	)
	if err != nil {
		return apiorders.Detail{}, err
	}

	q := req.URL.Query()
	q.Add("status", status)
	req.URL.RawQuery = q.Encode()

	resp, err := c.do(req)
	if err != nil {
		return apiorders.Detail{}, err
	}
	defer resp.Body.Close()

	var updated apiorders.Detail
	if err := unmarshalJsonResponse(
		resp, &updated,
		MessageFor{
			Status4xx: fmt.Sprintf("order:%d cannot be updated", orderID),
			Status5xx: fmt.Sprintf("server error (status code = %d)", resp.StatusCode),
		},
	); err != nil {
		return apiorders.Detail{}, err
	}
	return updated, nil
}

func (c *client) DeleteOrder(ctx context.Context, orderID int64) error {
	req, err := http.NewRequestWithContext(
		ctx, http.MethodDelete, c.apipath("orders", fmt.Sprintf("%d", orderID)), nil,
	)
	if err != nil {
		return err
	}

	resp, err := c.do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	return unmarshalResponseDiscardingPayload(
		resp,
		MessageFor{
			Status4xx: fmt.Sprintf("order:%d is not found", orderID),
			Status5xx: fmt.Sprintf("server error (status code = %d)", resp.StatusCode),
		},
	)
}
