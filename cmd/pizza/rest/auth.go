package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	apiusers "github.com/pizza-net/pizza-frontend/pkg/api/types/users"
)

func (c *client) Register(ctx context.Context, reg apiusers.Registration) (apiusers.LoginResult, error) {
	b, err := json.Marshal(reg)
	if err != nil {
		return apiusers.LoginResult{}, err
	}

	req, err := http.NewRequestWithContext(
		ctx, http.MethodPost, c.apipath("auth", "register"), bytes.NewBuffer(b),
	)
	if err != nil {
		return apiusers.LoginResult{}, err
	}
	req.Header.Set("Content-Type", "application/json")

	// registration happens before any session exists; no bearer, no
	// forced-logout hook.
	resp, err := c.httpclient.Do(req)
	if err != nil {
		return apiusers.LoginResult{}, err
	}
	defer resp.Body.Close()

	var result apiusers.LoginResult
	if err := unmarshalJsonResponse(
		resp, &result,
		MessageFor{
			Status4xx: "registration rejected",
			Status5xx: fmt.Sprintf("server error (status code = %d)", resp.StatusCode),
		},
	); err != nil {
		return apiusers.LoginResult{}, err
	}
	return result, nil
}

func (c *client) Login(ctx context.Context, cred apiusers.Credentials) (apiusers.LoginResult, error) {
	b, err := json.Marshal(cred)
	if err != nil {
		return apiusers.LoginResult{}, err
	}

	req, err := http.NewRequestWithContext(
		ctx, http.MethodPost, c.apipath("auth", "login"), bytes.NewBuffer(b),
	)
	if err != nil {
		return apiusers.LoginResult{}, err
	}
	req.Header.Set("Content-Type", "application/json")

	// 401 here means wrong credentials, not an expired session.
	resp, err := c.httpclient.Do(req)
	if err != nil {
		return apiusers.LoginResult{}, err
	}
	defer resp.Body.Close()

	var result apiusers.LoginResult
	if err := unmarshalJsonResponse(
		resp, &result,
		MessageFor{
			Status4xx: "login failed. Check your username and password",
			Status5xx: fmt.Sprintf("server error (status code = %d)", resp.StatusCode),
		},
	); err != nil {
		return apiusers.LoginResult{}, err
	}
	return result, nil
}

func (c *client) VerifyToken(ctx context.Context) (bool, error) {
	req, err := http.NewRequestWithContext(
		ctx, http.MethodGet, c.apipath("auth", "verify"), nil,
	)
	if err != nil {
		return false, err
	}
	if tok := c.token(); tok != "" {
		req.Header.Set("Authorization", "Bearer "+tok)
	}

	// bypass do: for this endpoint 401 IS the answer.
	resp, err := c.httpclient.Do(req)
	if err != nil {
		return false, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return false, nil
	}

	if err := unmarshalResponseDiscardingPayload(
		resp,
		MessageFor{
			Status4xx: "token verification rejected",
			Status5xx: fmt.Sprintf("server error (status code = %d)", resp.StatusCode),
		},
	); err != nil {
		return false, err
	}
	return true, nil
}

func (c *client) FindUsers(ctx context.Context) ([]apiusers.Summary, error) {
	req, err := http.NewRequestWithContext(
		ctx, http.MethodGet, c.apipath("auth", "users"), nil,
	)
	if err != nil {
		return nil, err
	}

	resp, err := c.do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	found := make([]apiusers.Summary, 0, 5)
	if err := unmarshalJsonResponse(
		resp, &found,
		MessageFor{
			Status4xx: "listing users is not allowed for you",
			Status5xx: fmt.Sprintf("server error (status code = %d)", resp.StatusCode),
		},
	); err != nil {
		return nil, err
	}
	return found, nil
}

func (c *client) FindCouriers(ctx context.Context) ([]apiusers.Summary, error) {
	req, err := http.NewRequestWithContext(
		ctx, http.MethodGet, c.apipath("auth", "couriers"), nil,
	)
	if err != nil {
		return nil, err
	}

	resp, err := c.do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	found := make([]apiusers.Summary, 0, 5)
	if err := unmarshalJsonResponse(
		resp, &found,
		MessageFor{
			Status4xx: "listing couriers is not allowed for you",
			Status5xx: fmt.Sprintf("server error (status code = %d)", resp.StatusCode),
		},
	); err != nil {
		return nil, err
	}
	return found, nil
}

func (c *client) UpdateUserRole(ctx context.Context, userID int64, change apiusers.RoleChange) (apiusers.Summary, error) {
	b, err := json.Marshal(change)
	if err != nil {
		return apiusers.Summary{}, err
	}

	req, err := http.NewRequestWithContext(
		ctx, http.MethodPut,
		c.apipath("auth", "users", fmt.Sprintf("%d", userID), "role"),
		bytes.NewBuffer(b),
	)
	if err != nil {
		return apiusers.Summary{}, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.do(req)
	if err != nil {
		return apiusers.Summary{}, err
	}
	defer resp.Body.Close()

	var updated apiusers.Summary
	if err := unmarshalJsonResponse(
		resp, &updated,
		MessageFor{
			Status4xx: fmt.Sprintf("user:%d cannot be updated", userID),
			Status5xx: fmt.Sprintf("server error (status code = %d)", resp.StatusCode),
		},
	); err != nil {
		return apiusers.Summary{}, err
	}
	return updated, nil
}
