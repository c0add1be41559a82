package sqlite

import (
	"context"

	loanDomain "prestamos-ledger/internal/domain/loan"

	"gorm.io/gorm"
)

type LoanRepository struct{ db *gorm.DB }

func NewLoanRepository(db *gorm.DB) *LoanRepository { return &LoanRepository{db: db} }

func (r *LoanRepository) Create(ctx context.Context, l *loanDomain.Loan) error {
	return r.db.WithContext(ctx).Create(l).Error
}

func (r *LoanRepository) Save(ctx context.Context, l *loanDomain.Loan) error {
	return r.db.WithContext(ctx).Save(l).Error
}

func (r *LoanRepository) GetByLoanID(ctx context.Context, loanID string) (*loanDomain.Loan, error) {
	var out loanDomain.Loan
	res := r.db.WithContext(ctx).Where("loan_id = ?", loanID).First(&out)
	return &out, res.Error
}

// GetByLoanIDForUpdate reads the loan inside the current transaction. SQLite
// has no row-level SELECT ... FOR UPDATE; the database is single-writer, so
// the transaction itself is the lock.
func (r *LoanRepository) GetByLoanIDForUpdate(ctx context.Context, loanID string) (*loanDomain.Loan, error) {
	return r.GetByLoanID(ctx, loanID)
}

func (r *LoanRepository) GetPendingByClientRef(ctx context.Context, clientRef uint64) (*loanDomain.Loan, error) {
	var out loanDomain.Loan
	res := r.db.WithContext(ctx).
		Where("client_id = ? AND status = ?", clientRef, loanDomain.StatusPending).
		Order("created_at DESC, id DESC").
		First(&out)
	return &out, res.Error
}

func (r *LoanRepository) Delete(ctx context.Context, loanID string) error {
	res := r.db.WithContext(ctx).Where("loan_id = ?", loanID).Delete(&loanDomain.Loan{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return loanDomain.ErrNotFound
	}
	return nil
}

func (r *LoanRepository) ListByClientRef(ctx context.Context, clientRef uint64) ([]loanDomain.Loan, error) {
	var out []loanDomain.Loan
	res := r.db.WithContext(ctx).
		Where("client_id = ?", clientRef).
		Order("created_at DESC, id DESC").
		Find(&out)
	return out, res.Error
}

func (r *LoanRepository) ListWithClientName(ctx context.Context) ([]loanDomain.LoanWithClient, error) {
	var out []loanDomain.LoanWithClient
	res := r.db.WithContext(ctx).
		Table("loans").
		Select("loans.loan_id AS loan_id, clients.client_id AS client_id, clients.name AS client_name, loans.balance AS balance, loans.status AS status, loans.created_at AS created_at").
		Joins("JOIN clients ON clients.id = loans.client_id").
		Order("loans.created_at DESC, loans.id DESC").
		Scan(&out)
	return out, res.Error
}

func (r *LoanRepository) CreateAccumulation(ctx context.Context, a *loanDomain.Accumulation) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *LoanRepository) ListAccumulationsByLoanRef(ctx context.Context, loanRef uint64) ([]loanDomain.Accumulation, error) {
	var out []loanDomain.Accumulation
	res := r.db.WithContext(ctx).
		Where("loan_id = ?", loanRef).
		Order("created_at DESC, id DESC").
		Find(&out)
	return out, res.Error
}
