package backend

import (
	"context"
	"net/http"

	"github.com/venue-admin/internal/domain"
)

func (c *Client) ListUsers(ctx context.Context) ([]domain.User, error) {
	var users []domain.User
	if err := c.do(ctx, http.MethodGet, c.path("users"), nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (c *Client) ListScopes(ctx context.Context) ([]string, error) {
	var scopes []string
	if err := c.do(ctx, http.MethodGet, c.path("scopes"), nil, &scopes); err != nil {
		return nil, err
	}
	return scopes, nil
}

func (c *Client) CreateUser(ctx context.Context, in domain.UserCreate) (*domain.User, error) {
	var user domain.User
	if err := c.do(ctx, http.MethodPost, c.path("users"), in, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *Client) UpdateUser(ctx context.Context, id string, patch domain.UserPatch) (*domain.User, error) {
	var user domain.User
	if err := c.do(ctx, http.MethodPatch, c.path("users", id), patch, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *Client) DeleteUser(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, c.path("users", id), nil, nil)
}

func (c *Client) UpdateScopes(ctx context.Context, id string, scopes []string) ([]string, error) {
	var out domain.ScopesUpdate
	if err := c.do(ctx, http.MethodPut, c.path("users", id, "scopes"), domain.ScopesUpdate{Scopes: scopes}, &out); err != nil {
		return nil, err
	}
	return out.Scopes, nil
}
