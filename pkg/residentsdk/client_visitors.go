package residentsdk

import (
	"context"
	"net/http"
)

const visitorsPath = "/visitantes/"

func (c *Client) ListVisitors(ctx context.Context, opts *ListOptions) ([]Visitor, error) {
	var visitors []Visitor
	if err := c.do(ctx, http.MethodGet, listPath(visitorsPath, opts), nil, &visitors, http.StatusOK); err != nil {
		return nil, err
	}
	return visitors, nil
}

func (c *Client) GetVisitor(ctx context.Context, id int64) (*Visitor, error) {
	var v Visitor
	if err := c.do(ctx, http.MethodGet, itemPath(visitorsPath, id), nil, &v, http.StatusOK); err != nil {
		return nil, err
	}
	return &v, nil
}

func (c *Client) CreateVisitor(ctx context.Context, req VisitorRequest) (*Visitor, error) {
	var v Visitor
	if err := c.do(ctx, http.MethodPost, visitorsPath, req, &v, http.StatusCreated); err != nil {
		return nil, err
	}
	return &v, nil
}

func (c *Client) UpdateVisitor(ctx context.Context, id int64, req VisitorRequest) (*Visitor, error) {
	var v Visitor
	if err := c.do(ctx, http.MethodPut, itemPath(visitorsPath, id), req, &v, http.StatusOK); err != nil {
		return nil, err
	}
	return &v, nil
}

func (c *Client) DeleteVisitor(ctx context.Context, id int64) (*Visitor, error) {
	var v Visitor
	if err := c.do(ctx, http.MethodDelete, itemPath(visitorsPath, id), nil, &v, http.StatusOK); err != nil {
		return nil, err
	}
	return &v, nil
}
