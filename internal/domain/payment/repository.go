package payment

import "context"

type Repository interface {
	Create(ctx context.Context, p *Payment) error
	// ListByLoanRef returns payments newest-first by payment_date.
	ListByLoanRef(ctx context.Context, loanRef uint64) ([]Payment, error)
}
