package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	apipizzas "github.com/pizza-net/pizza-frontend/pkg/api/types/pizzas"
)

func (c *client) FindPizzas(ctx context.Context) ([]apipizzas.Detail, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.apipath("pizza"), nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	menu := make([]apipizzas.Detail, 0, 5)
	if err := unmarshalJsonResponse(
		resp, &menu,
		MessageFor{
			Status4xx: "cannot fetch the menu",
			Status5xx: fmt.Sprintf("server error (status code = %d)", resp.StatusCode),
		},
	); err != nil {
		return nil, err
	}
	return menu, nil
}

func (c *client) AddPizza(ctx context.Context, spec apipizzas.Spec) (apipizzas.Detail, error) {
	if err := spec.Validate(); err != nil {
		return apipizzas.Detail{}, err
	}

	b, err := json.Marshal(spec)
	if err != nil {
		return apipizzas.Detail{}, err
	}

	req, err := http.NewRequestWithContext(
		ctx, http.MethodPost, c.apipath("pizza"), bytes.NewBuffer(b),
	)
	if err != nil {
		return apipizzas.Detail{}, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.do(req)
	if err != nil {
		return apipizzas.Detail{}, err
	}
	defer resp.Body.Close()

	var created apipizzas.Detail
	if err := unmarshalJsonResponse(
		resp, &created,
		MessageFor{
			Status4xx: "invalid pizza",
			Status5xx: fmt.Sprintf("server error (status code = %d)", resp.StatusCode),
		},
	); err != nil {
		return apipizzas.Detail{}, err
	}
	return created, nil
}

func (c *client) UpdatePizza(ctx context.Context, pizzaID int64, spec apipizzas.Spec) (apipizzas.Detail, error) {
	if err := spec.Validate(); err != nil {
		return apipizzas.Detail{}, err
	}

	b, err := json.Marshal(spec)
	if err != nil {
		return apipizzas.Detail{}, err
	}

	req, err := http.NewRequestWithContext(
		ctx, http.MethodPut,
		c.apipath("pizza", fmt.Sprintf("%d", pizzaID)),
		bytes.NewBuffer(b),
	)
	if err != nil {
		return apipizzas.Detail{}, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.do(req)
	if err != nil {
		return apipizzas.Detail{}, err
	}
	defer resp.Body.Close()

	var updated apipizzas.Detail
	if err := unmarshalJsonResponse(
		resp, &updated,
		MessageFor{
			Status4xx: fmt.Sprintf("pizza:%d cannot be updated", pizzaID),
			Status5xx: fmt.Sprintf("server error (status code = %d)", resp.StatusCode),
		},
	); err != nil {
		return apipizzas.Detail{}, err
	}
	return updated, nil
}

func (c *client) DeletePizza(ctx context.Context, pizzaID int64) error {
	req, err := http.NewRequestWithContext(
		ctx, http.MethodDelete, c.apipath("pizza", fmt.Sprintf("%d", pizzaID)), nil,
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
			Status4xx: fmt.Sprintf("pizza:%d is not found", pizzaID),
			Status5xx: fmt.Sprintf("server error (status code = %d)", resp.StatusCode),
		},
	)
}
