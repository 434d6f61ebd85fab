package upstream

import (
	"context"
	"encoding/json"
	"net/http"

	"peerlend-gateway/internal/domain/notification"
)

func (c *Client) All(ctx context.Context, credential string) ([]notification.Notification, error) {
	var raw json.RawMessage
	if err := c.do(ctx, http.MethodGet, "/notifications", credential, nil, &raw); err != nil {
		return nil, err
	}
	return decodeList[notification.Notification](c.lg, raw, "notifications")
}
