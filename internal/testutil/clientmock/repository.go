package clientmock

import (
	"context"

	domain "prestamos-ledger/internal/domain/client"
)

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	CreateFn        func(ctx context.Context, c *domain.Client) error
	GetByClientIDFn func(ctx context.Context, clientID string) (*domain.Client, error)
	SaveFn          func(ctx context.Context, c *domain.Client) error
	DeleteFn        func(ctx context.Context, clientID string) error
	ListFn          func(ctx context.Context, nameFilter string) ([]domain.Client, error)
}

func (m *Repo) Create(ctx context.Context, c *domain.Client) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, c)
	}
	return nil
}

func (m *Repo) GetByClientID(ctx context.Context, clientID string) (*domain.Client, error) {
	if m.GetByClientIDFn != nil {
		return m.GetByClientIDFn(ctx, clientID)
	}
	return nil, context.Canceled
}

func (m *Repo) Save(ctx context.Context, c *domain.Client) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, c)
	}
	return nil
}

func (m *Repo) Delete(ctx context.Context, clientID string) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, clientID)
	}
	return nil
}

func (m *Repo) List(ctx context.Context, nameFilter string) ([]domain.Client, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, nameFilter)
	}
	return nil, nil
}
