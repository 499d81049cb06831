package api

import (
	"context"
	"encoding/json"
)

func (c *Client) CleanExpiredSessions(ctx context.Context) (json.RawMessage, error) {
	var v json.RawMessage
	if err := c.PostInto(ctx, "/clean_expired_sessions/", nil, nil, nil, &v); err != nil {
		return nil, err
	}
	return v, nil
}

// CheckSavedSession returns the user ID of the session saved on the server.
func (c *Client) CheckSavedSession(ctx context.Context) (json.RawMessage, error) {
	var userID json.RawMessage
	if err := c.GetInto(ctx, "/check_saved_session/", nil, nil, &userID); err != nil {
		return nil, err
	}
	return userID, nil
}

func (c *Client) CreateSession(ctx context.Context, userID string) error {
	resp, err := c.Post(ctx, "/create_session"+pathID(userID), nil, nil, nil)
	if err != nil {
		return err
	}

	return resp.Body.Close()
}
