package uow

import (
	"context"

	"prestamos-ledger/internal/domain/client"
	"prestamos-ledger/internal/domain/loan"
	"prestamos-ledger/internal/domain/payment"
)

type Repos struct {
	Clients  client.Repository
	Loans    loan.Repository
	Payments payment.Repository
}

type UnitOfWork interface {
	// plain tx
	WithinTx(ctx context.Context, fn func(r Repos) error) error
	// convenience: fetch the loan inside the tx first, then pass it in
	WithinLoanTx(ctx context.Context, loanID string, fn func(r Repos, l *loan.Loan) error) error
}
