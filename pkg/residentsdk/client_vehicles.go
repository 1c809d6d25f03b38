package residentsdk

import (
	"context"
	"net/http"
)

const vehiclesPath = "/vehiculos/"

func (c *Client) ListVehicles(ctx context.Context, opts *ListOptions) ([]Vehicle, error) {
	var vehicles []Vehicle
	if err := c.do(ctx, http.MethodGet, listPath(vehiclesPath, opts), nil, &vehicles, http.StatusOK); err != nil {
		return nil, err
	}
	return vehicles, nil
}

func (c *Client) GetVehicle(ctx context.Context, id int64) (*Vehicle, error) {
	var v Vehicle
	if err := c.do(ctx, http.MethodGet, itemPath(vehiclesPath, id), nil, &v, http.StatusOK); err != nil {
		return nil, err
	}
	return &v, nil
}

func (c *Client) CreateVehicle(ctx context.Context, req VehicleRequest) (*Vehicle, error) {
	var v Vehicle
	if err := c.do(ctx, http.MethodPost, vehiclesPath, req, &v, http.StatusCreated); err != nil {
		return nil, err
	}
	return &v, nil
}

func (c *Client) UpdateVehicle(ctx context.Context, id int64, req VehicleRequest) (*Vehicle, error) {
	var v Vehicle
	if err := c.do(ctx, http.MethodPut, itemPath(vehiclesPath, id), req, &v, http.StatusOK); err != nil {
		return nil, err
	}
	return &v, nil
}

func (c *Client) DeleteVehicle(ctx context.Context, id int64) (*Vehicle, error) {
	var v Vehicle
	if err := c.do(ctx, http.MethodDelete, itemPath(vehiclesPath, id), nil, &v, http.StatusOK); err != nil {
		return nil, err
	}
	return &v, nil
}
