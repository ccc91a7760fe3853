package api

import (
	"context"

	"github.com/sopeal/AskYourFeed/internal/domain"
)

// Register creates an account.
func (c *Client) Register(ctx context.Context, cmd domain.RegisterCommand) (*domain.RegisterResult, error) {
	body := registerRequest{
		Email:                cmd.Email,
		Password:             cmd.Password,
		PasswordConfirmation: cmd.PasswordConfirmation,
		XUsername:            cmd.XUsername,
	}

	var resp registerResponse
	if err := c.post(ctx, "/api/v1/auth/register", body, &resp); err != nil {
		return nil, err
	}
	return resp.toResult(), nil
}

// Login authenticates and returns the complete session to persist.
func (c *Client) Login(ctx context.Context, cmd domain.LoginCommand) (*domain.Session, error) {
	body := loginRequest{
		Email:    cmd.Email,
		Password: cmd.Password,
	}

	var resp loginResponse
	if err := c.post(ctx, "/api/v1/auth/login", body, &resp); err != nil {
		return nil, err
	}
	return resp.toSession(), nil
}
