package loan

import "context"

type Repository interface {
	Create(ctx context.Context, l *Loan) error
	GetByLoanID(ctx context.Context, loanID string) (*Loan, error)
	GetByLoanIDForUpdate(ctx context.Context, loanID string) (*Loan, error)
	GetPendingByClientRef(ctx context.Context, clientRef uint64) (*Loan, error)
	Save(ctx context.Context, l *Loan) error
	Delete(ctx context.Context, loanID string) error
	ListByClientRef(ctx context.Context, clientRef uint64) ([]Loan, error)
	ListWithClientName(ctx context.Context) ([]LoanWithClient, error)

	CreateAccumulation(ctx context.Context, a *Accumulation) error
	ListAccumulationsByLoanRef(ctx context.Context, loanRef uint64) ([]Accumulation, error)
}
