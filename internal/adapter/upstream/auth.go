package upstream

import (
	"context"
	"net/http"

	"peerlend-gateway/internal/domain/user"
)

func (c *Client) GetProfile(ctx context.Context, credential string) (*user.Profile, error) {
	var p user.Profile
	if err := c.do(ctx, http.MethodGet, "/auth/profile", credential, nil, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

type authResult struct {
	User  *user.Profile `json:"user"`
	Token string        `json:"token"`
}

func (c *Client) Login(ctx context.Context, email, password string) (*user.Profile, string, error) {
	body := map[string]string{"email": email, "password": password}
	var res authResult
	if err := c.do(ctx, http.MethodPost, "/auth/login", "", body, &res); err != nil {
		return nil, "", err
	}
	return res.User, res.Token, nil
}

func (c *Client) Register(ctx context.Context, in user.RegisterInput) (*user.Profile, string, error) {
	var res authResult
	if err := c.do(ctx, http.MethodPost, "/auth/register", "", in, &res); err != nil {
		return nil, "", err
	}
	return res.User, res.Token, nil
}
