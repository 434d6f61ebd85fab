package upstream

import (
	"context"
	"net/http"

	"peerlend-gateway/internal/domain/settings"
)

// Get unmarshals the fetched document into the caller's value; fields absent
// upstream keep whatever the caller seeded.
func (c *Client) Get(ctx context.Context, credential string, into *settings.Settings) error {
	return c.do(ctx, http.MethodGet, "/admin/settings", credential, nil, into)
}

func (c *Client) Update(ctx context.Context, credential string, s settings.Settings) (*settings.Settings, error) {
	var out settings.Settings
	if err := c.do(ctx, http.MethodPut, "/admin/settings", credential, s, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
