package sqlite

import (
	"context"

	"prestamos-ledger/internal/domain/loan"
	"prestamos-ledger/internal/domain/uow"

	"gorm.io/gorm"
)

type GormUoW struct{ db *gorm.DB }

func NewGormUoW(db *gorm.DB) *GormUoW { return &GormUoW{db: db} }

func (u *GormUoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		r := uow.Repos{
			Clients:  &ClientRepository{db: tx},
			Loans:    &LoanRepository{db: tx},
			Payments: &PaymentRepository{db: tx},
		}
		return fn(r)
	})
}

func (u *GormUoW) WithinLoanTx(ctx context.Context, loanID string, fn func(r uow.Repos, l *loan.Loan) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		r := uow.Repos{
			Clients:  &ClientRepository{db: tx},
			Loans:    &LoanRepository{db: tx},
			Payments: &PaymentRepository{db: tx},
		}
		// fetch the loan row up-front so every caller works from tx state
		l, err := r.Loans.GetByLoanIDForUpdate(ctx, loanID)
		if err != nil {
			return err
		}
		return fn(r, l)
	})
}
