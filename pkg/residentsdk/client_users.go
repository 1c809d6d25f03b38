package residentsdk

import (
	"context"
	"net/http"
)

const usersPath = "/usuarios/"

func (c *Client) ListUsers(ctx context.Context, opts *ListOptions) ([]User, error) {
	var users []User
	if err := c.do(ctx, http.MethodGet, listPath(usersPath, opts), nil, &users, http.StatusOK); err != nil {
		return nil, err
	}
	return users, nil
}

// GetUser returns the user with its vehicles.
func (c *Client) GetUser(ctx context.Context, id int64) (*User, error) {
	var user User
	if err := c.do(ctx, http.MethodGet, itemPath(usersPath, id), nil, &user, http.StatusOK); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *Client) CreateUser(ctx context.Context, req UserRequest) (*User, error) {
	var user User
	if err := c.do(ctx, http.MethodPost, usersPath, req, &user, http.StatusCreated); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *Client) UpdateUser(ctx context.Context, id int64, req UserRequest) (*User, error) {
	var user User
	if err := c.do(ctx, http.MethodPut, itemPath(usersPath, id), req, &user, http.StatusOK); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *Client) DeleteUser(ctx context.Context, id int64) (*User, error) {
	var user User
	if err := c.do(ctx, http.MethodDelete, itemPath(usersPath, id), nil, &user, http.StatusOK); err != nil {
		return nil, err
	}
	return &user, nil
}

// Login resolves the user registered under email. It does not check
// credentials.
func (c *Client) Login(ctx context.Context, email string) (*User, error) {
	var user User
	if err := c.do(ctx, http.MethodPost, "/login/", LoginRequest{Email: email}, &user, http.StatusOK); err != nil {
		return nil, err
	}
	return &user, nil
}
