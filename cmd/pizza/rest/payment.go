package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	apipayments "github.com/pizza-net/pizza-frontend/pkg/api/types/payments"
)

func (c *client) CreateCheckoutSession(ctx context.Context, spec apipayments.CheckoutSpec) (apipayments.CheckoutSession, error) {
	b, err := json.Marshal(spec)
	if err != nil {
		return apipayments.CheckoutSession{}, err
	}

	req, err := http.NewRequestWithContext(
		ctx, http.MethodPost,
		c.apipath("payments", "create-checkout-session"),
		bytes.NewBuffer(b),
	)
	if err != nil {
		return apipayments.CheckoutSession{}, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.do(req)
	if err != nil {
		return apipayments.CheckoutSession{}, err
	}
	defer resp.Body.Close()

	var session apipayments.CheckoutSession
	if err := unmarshalJsonResponse(
		resp, &session,
		MessageFor{
			Status4xx: fmt.Sprintf("payment session for order:%d was rejected", spec.OrderID),
			Status5xx: fmt.Sprintf("server error (status code = %d)", resp.StatusCode),
		},
	); err != nil {
		return apipayments.CheckoutSession{}, err
	}
	return session, nil
}

func (c *client) VerifySession(ctx context.Context, spec apipayments.VerifySpec) (apipayments.VerifyResult, error) {
	b, err := json.Marshal(spec)
	if err != nil {
		return apipayments.VerifyResult{}, err
	}

	req, err := http.NewRequestWithContext(
		ctx, http.MethodPost, c.apipath("payments", "verify-session"), bytes.NewBuffer(b),
	)
	if err != nil {
		return apipayments.VerifyResult{}, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.do(req)
	if err != nil {
		return apipayments.VerifyResult{}, err
	}
	defer resp.Body.Close()

	var result apipayments.VerifyResult
	if err := unmarshalJsonResponse(
		resp, &result,
		MessageFor{
			Status4xx: "payment could not be verified",
			Status5xx: fmt.Sprintf("server error (status code = %d)", resp.StatusCode),
		},
	); err != nil {
		return apipayments.VerifyResult{}, err
	}
	return result, nil
}
