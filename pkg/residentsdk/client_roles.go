package residentsdk

import (
	"context"
	"net/http"
)

const rolesPath = "/roles/"

func (c *Client) ListRoles(ctx context.Context, opts *ListOptions) ([]Role, error) {
	var roles []Role
	if err := c.do(ctx, http.MethodGet, listPath(rolesPath, opts), nil, &roles, http.StatusOK); err != nil {
		return nil, err
	}
	return roles, nil
}

func (c *Client) GetRole(ctx context.Context, id int64) (*Role, error) {
	var role Role
	if err := c.do(ctx, http.MethodGet, itemPath(rolesPath, id), nil, &role, http.StatusOK); err != nil {
		return nil, err
	}
	return &role, nil
}

func (c *Client) CreateRole(ctx context.Context, req RoleRequest) (*Role, error) {
	var role Role
	if err := c.do(ctx, http.MethodPost, rolesPath, req, &role, http.StatusCreated); err != nil {
		return nil, err
	}
	return &role, nil
}

func (c *Client) UpdateRole(ctx context.Context, id int64, req RoleRequest) (*Role, error) {
	var role Role
	if err := c.do(ctx, http.MethodPut, itemPath(rolesPath, id), req, &role, http.StatusOK); err != nil {
		return nil, err
	}
	return &role, nil
}

// DeleteRole removes the role and returns its last stored value.
func (c *Client) DeleteRole(ctx context.Context, id int64) (*Role, error) {
	var role Role
	if err := c.do(ctx, http.MethodDelete, itemPath(rolesPath, id), nil, &role, http.StatusOK); err != nil {
		return nil, err
	}
	return &role, nil
}
