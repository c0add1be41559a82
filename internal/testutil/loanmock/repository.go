package loanmock

import (
	"context"

	domain "prestamos-ledger/internal/domain/loan"
)

// Repo is a function-backed mock that satisfies domain.Repository.
// Only fill in the methods a test needs; the rest are no-ops.
type Repo struct {
	CreateFn                     func(ctx context.Context, l *domain.Loan) error
	GetByLoanIDFn                func(ctx context.Context, loanID string) (*domain.Loan, error)
	GetByLoanIDForUpdateFn       func(ctx context.Context, loanID string) (*domain.Loan, error)
	GetPendingByClientRefFn      func(ctx context.Context, clientRef uint64) (*domain.Loan, error)
	SaveFn                       func(ctx context.Context, l *domain.Loan) error
	DeleteFn                     func(ctx context.Context, loanID string) error
	ListByClientRefFn            func(ctx context.Context, clientRef uint64) ([]domain.Loan, error)
	ListWithClientNameFn         func(ctx context.Context) ([]domain.LoanWithClient, error)
	CreateAccumulationFn         func(ctx context.Context, a *domain.Accumulation) error
	ListAccumulationsByLoanRefFn func(ctx context.Context, loanRef uint64) ([]domain.Accumulation, error)
}

func (m *Repo) Create(ctx context.Context, l *domain.Loan) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, l)
	}
	return nil
}

func (m *Repo) GetByLoanID(ctx context.Context, loanID string) (*domain.Loan, error) {
	if m.GetByLoanIDFn != nil {
		return m.GetByLoanIDFn(ctx, loanID)
	}
	return nil, context.Canceled
}

func (m *Repo) GetByLoanIDForUpdate(ctx context.Context, loanID string) (*domain.Loan, error) {
	if m.GetByLoanIDForUpdateFn != nil {
		return m.GetByLoanIDForUpdateFn(ctx, loanID)
	}
	return nil, context.Canceled
}

func (m *Repo) GetPendingByClientRef(ctx context.Context, clientRef uint64) (*domain.Loan, error) {
	if m.GetPendingByClientRefFn != nil {
		return m.GetPendingByClientRefFn(ctx, clientRef)
	}
	return nil, context.Canceled
}

func (m *Repo) Save(ctx context.Context, l *domain.Loan) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, l)
	}
	return nil
}

func (m *Repo) Delete(ctx context.Context, loanID string) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, loanID)
	}
	return nil
}

func (m *Repo) ListByClientRef(ctx context.Context, clientRef uint64) ([]domain.Loan, error) {
	if m.ListByClientRefFn != nil {
		return m.ListByClientRefFn(ctx, clientRef)
	}
	return nil, nil
}

func (m *Repo) ListWithClientName(ctx context.Context) ([]domain.LoanWithClient, error) {
	if m.ListWithClientNameFn != nil {
		return m.ListWithClientNameFn(ctx)
	}
	return nil, nil
}

func (m *Repo) CreateAccumulation(ctx context.Context, a *domain.Accumulation) error {
	if m.CreateAccumulationFn != nil {
		return m.CreateAccumulationFn(ctx, a)
	}
	return nil
}

func (m *Repo) ListAccumulationsByLoanRef(ctx context.Context, loanRef uint64) ([]domain.Accumulation, error) {
	if m.ListAccumulationsByLoanRefFn != nil {
		return m.ListAccumulationsByLoanRefFn(ctx, loanRef)
	}
	return nil, nil
}
