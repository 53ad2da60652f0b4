package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	apideliveries "github.com/pizza-net/pizza-frontend/pkg/api/types/deliveries"
	"github.com/pizza-net/pizza-frontend/pkg/tracking"
)

func (c *client) CreateDelivery(ctx context.Context, spec apideliveries.Spec) (apideliveries.Detail, error) {
	b, err := json.Marshal(spec)
	if err != nil {
		return apideliveries.Detail{}, err
	}

	req, err := http.NewRequestWithContext(
		ctx, http.MethodPost, c.apipath("deliveries"), bytes.NewBuffer(b),
	)
	if err != nil {
		return apideliveries.Detail{}, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.do(req)
	if err != nil {
		return apideliveries.Detail{}, err
	}
	defer resp.Body.Close()

	var created apideliveries.Detail
	if err := unmarshalJsonResponse(
		resp, &created,
		MessageFor{
			Status4xx: fmt.Sprintf("delivery for order:%d was rejected", spec.OrderID),
			Status5xx: fmt.Sprintf("server error (status code = %d)", resp.StatusCode),
		},
	); err != nil {
		return apideliveries.Detail{}, err
	}
	return created, nil
}

func (c *client) FindDeliveries(ctx context.Context, filter apideliveries.Filter) ([]apideliveries.Detail, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.apipath("deliveries"), nil)
	if err != nil {
		return nil, err
	}

	q := req.URL.Query()
	if filter.Status != "" {
		q.Add("status", string(filter.Status))
	}
	if filter.CourierID != nil {
		q.Add("courierId", fmt.Sprintf("%d", *filter.CourierID))
	}
	if filter.CustomerID != nil {
		q.Add("customerId", fmt.Sprintf("%d", *filter.CustomerID))
	}
	req.URL.RawQuery = q.Encode()

	resp, err := c.do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	found := make([]apideliveries.Detail, 0, 5)
	if err := unmarshalJsonResponse(
		resp, &found,
		MessageFor{
			Status4xx: "deliveries cannot be listed",
			Status5xx: fmt.Sprintf("server error (status code = %d)", resp.StatusCode),
		},
	); err != nil {
		return nil, err
	}
	return found, nil
}

func (c *client) GetDelivery(ctx context.Context, deliveryID int64) (apideliveries.Detail, error) {
	req, err := http.NewRequestWithContext(
		ctx, http.MethodGet, c.apipath("deliveries", fmt.Sprintf("%d", deliveryID)), nil,
	)
	if err != nil {
		return apideliveries.Detail{}, err
	}

	resp, err := c.do(req)
	if err != nil {
		return apideliveries.Detail{}, err
	}
	defer resp.Body.Close()

	var found apideliveries.Detail
	if err := unmarshalJsonResponse(
		resp, &found,
		MessageFor{
			Status4xx: fmt.Sprintf("delivery:%d is not found", deliveryID),
			Status5xx: fmt.Sprintf("server error (status code = %d)", resp.StatusCode),
		},
	); err != nil {
		return apideliveries.Detail{}, err
	}
	return found, nil
}

func (c *client) GetDeliveryByOrder(ctx context.Context, orderID int64) (apideliveries.Detail, error) {
	req, err := http.NewRequestWithContext(
		ctx, http.MethodGet, c.apipath("deliveries", "by-order", fmt.Sprintf("%d", orderID)), nil,
	)
	if err != nil {
		return apideliveries.Detail{}, err
	}

	resp, err := c.do(req)
	if err != nil {
		return apideliveries.Detail{}, err
	}
	defer resp.Body.Close()

	// an order without a delivery is a normal state for tracking
	if resp.StatusCode == http.StatusNotFound {
		return apideliveries.Detail{}, fmt.Errorf(
			"%w: order:%d", apideliveries.ErrNotFound, orderID,
		)
	}

	var found apideliveries.Detail
	if err := unmarshalJsonResponse(
		resp, &found,
		MessageFor{
			Status4xx: fmt.Sprintf("delivery of order:%d cannot be fetched", orderID),
			Status5xx: fmt.Sprintf("server error (status code = %d)", resp.StatusCode),
		},
	); err != nil {
		return apideliveries.Detail{}, err
	}
	return found, nil
}

func (c *client) UpdateDeliveryStatus(ctx context.Context, deliveryID int64, change apideliveries.StatusChange) (apideliveries.Detail, error) {
	b, err := json.Marshal(change)
	if err != nil {
		return apideliveries.Detail{}, err
	}

	req, err := http.NewRequestWithContext(
		ctx, http.MethodPatch,
		c.apipath("deliveries", fmt.Sprintf("%d", deliveryID), "status"),
		bytes.NewBuffer(b),
	)
	if err != nil {
		return apideliveries.Detail{}, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.do(req)
	if err != nil {
		return apideliveries.Detail{}, err
	}
	defer resp.Body.Close()

	var updated apideliveries.Detail
	if err := unmarshalJsonResponse(
		resp, &updated,
		MessageFor{
			Status4xx: fmt.Sprintf("delivery:%d cannot be updated", deliveryID),
			Status5xx: fmt.Sprintf("server error (status code = %d)", resp.StatusCode),
		},
	); err != nil {
		return apideliveries.Detail{}, err
	}
	return updated, nil
}

// AdvanceDelivery reads the delivery and, only if a forward transition
// exists, asks the backend for that one step. The step itself is the
// delivery service's own next-status operation, so two couriers racing
// on the same delivery cannot skip a stage.
//
// tracking.ErrNoForwardTransition comes back without any status-changing
// request having been made.
func (c *client) AdvanceDelivery(ctx context.Context, deliveryID int64) (apideliveries.Detail, error) {
	current, err := c.GetDelivery(ctx, deliveryID)
	if err != nil {
		return apideliveries.Detail{}, err
	}

	if _, err := tracking.Next(current.Status); err != nil {
		return apideliveries.Detail{}, err
	}

	req, err := http.NewRequestWithContext(
		ctx, http.MethodPatch,
		c.apipath("deliveries", fmt.Sprintf("%d", deliveryID), "next-status"),
		nil,
	)
	if err != nil {
		return apideliveries.Detail{}, err
	}

	resp, err := c.do(req)
	if err != nil {
		return apideliveries.Detail{}, err
	}
	defer resp.Body.Close()

	var advanced apideliveries.Detail
	if err := unmarshalJsonResponse(
		resp, &advanced,
		MessageFor{
			Status4xx: fmt.Sprintf("delivery:%d cannot go forward", deliveryID),
			Status5xx: fmt.Sprintf("server error (status code = %d)", resp.StatusCode),
		},
	); err != nil {
		return apideliveries.Detail{}, err
	}
	return advanced, nil
}

func (c *client) AssignCourier(ctx context.Context, deliveryID int64, assignment apideliveries.CourierAssignment) (apideliveries.Detail, error) {
	b, err := json.Marshal(assignment)
	if err != nil {
		return apideliveries.Detail{}, err
	}

	req, err := http.NewRequestWithContext(
		ctx, http.MethodPatch,
		c.apipath("deliveries", fmt.Sprintf("%d", deliveryID), "assign"),
		bytes.NewBuffer(b),
	)
	if err != nil {
		return apideliveries.Detail{}, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.do(req)
	if err != nil {
		return apideliveries.Detail{}, err
	}
	defer resp.Body.Close()

	var updated apideliveries.Detail
	if err := unmarshalJsonResponse(
		resp, &updated,
		MessageFor{
			Status4xx: fmt.Sprintf("delivery:%d cannot be assigned", deliveryID),
			Status5xx: fmt.Sprintf("server error (status code = %d)", resp.StatusCode),
		},
	); err != nil {
		return apideliveries.Detail{}, err
	}
	return updated, nil
}

func (c *client) DeleteDelivery(ctx context.Context, deliveryID int64) error {
	req, err := http.NewRequestWithContext(
		ctx, http.MethodDelete, c.apipath("deliveries", fmt.Sprintf("%d", deliveryID)), nil,
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
			Status4xx: fmt.Sprintf("delivery:%d is not found", deliveryID),
			Status5xx: fmt.Sprintf("server error (status code = %d)", resp.StatusCode),
		},
	)
}
