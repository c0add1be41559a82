package client

import "context"

type Repository interface {
	Create(ctx context.Context, c *Client) error
	GetByClientID(ctx context.Context, clientID string) (*Client, error)
	Save(ctx context.Context, c *Client) error
	Delete(ctx context.Context, clientID string) error
	// List returns clients newest-first. A non-empty nameFilter narrows the
	// result to names containing the filter, case-insensitively.
	List(ctx context.Context, nameFilter string) ([]Client, error)
}
