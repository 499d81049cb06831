package api

import (
	"context"
	"encoding/json"
)

type mfaSettingsResponse struct {
	MFAEnabled *bool `json:"mfa_enabled"`
}

func (c *Client) GetMFASettings(ctx context.Context, userID string) (bool, error) {
	var resp mfaSettingsResponse
	if err := c.GetInto(ctx, "/mfa_settings"+pathID(userID), nil, nil, &resp); err != nil {
		return false, err
	}
	if resp.MFAEnabled == nil {
		return false, missingField("mfa_enabled")
	}
	return *resp.MFAEnabled, nil
}

type saveMFASecretRequest struct {
	UserID    any    `json:"user_id"`
	MFASecret string `json:"mfa_secret"`
}

func (c *Client) SaveMFASecret(ctx context.Context, userID, secret string) (json.RawMessage, error) {
	var v json.RawMessage
	if err := c.postJSON(ctx, "/save_mfa_secret", saveMFASecretRequest{
		UserID:    bodyID(userID),
		MFASecret: secret,
	}, &v); err != nil {
		return nil, err
	}
	return v, nil
}
