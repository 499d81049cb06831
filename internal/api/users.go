package api

import (
	"context"
	"encoding/json"
)

func (c *Client) GuestStatus(ctx context.Context) (json.RawMessage, error) {
	var active json.RawMessage
	if err := c.GetInto(ctx, "/guest_status", nil, nil, &active); err != nil {
		return nil, err
	}
	return active, nil
}

func (c *Client) GetUserDetails(ctx context.Context, username string) (json.RawMessage, error) {
	var details json.RawMessage
	if err := c.GetInto(ctx, "/user_details"+pathID(username), nil, nil, &details); err != nil {
		return nil, err
	}
	return details, nil
}

func (c *Client) GetUserDetailsByID(ctx context.Context, userID string) (json.RawMessage, error) {
	var details json.RawMessage
	if err := c.GetInto(ctx, "/user_details_id"+pathID(userID), nil, nil, &details); err != nil {
		return nil, err
	}
	return details, nil
}

type verifyPasswordRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type verifyPasswordResponse struct {
	IsPasswordValid *bool `json:"is_password_valid"`
}

func (c *Client) VerifyPassword(ctx context.Context, username, password string) (bool, error) {
	var resp verifyPasswordResponse
	if err := c.postJSON(ctx, "/verify_password/", verifyPasswordRequest{
		Username: username,
		Password: password,
	}, &resp); err != nil {
		return false, err
	}
	if resp.IsPasswordValid == nil {
		return false, missingField("is_password_valid")
	}
	return *resp.IsPasswordValid, nil
}

func (c *Client) GetTheme(ctx context.Context, userID string) (json.RawMessage, error) {
	var theme json.RawMessage
	if err := c.GetInto(ctx, "/get_theme"+pathID(userID), nil, nil, &theme); err != nil {
		return nil, err
	}
	return theme, nil
}
