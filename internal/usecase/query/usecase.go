package query

import (
	"context"
	"errors"

	clientDomain "prestamos-ledger/internal/domain/client"
	loanDomain "prestamos-ledger/internal/domain/loan"
	paymentDomain "prestamos-ledger/internal/domain/payment"

	"gorm.io/gorm"
)

// Usecase is the read side: projections for the listing/detail screens.
// It never writes.
type Usecase struct {
	clients  clientDomain.Repository
	loans    loanDomain.Repository
	payments paymentDomain.Repository
}

func NewUsecase(clients clientDomain.Repository, loans loanDomain.Repository, payments paymentDomain.Repository) *Usecase {
	return &Usecase{clients: clients, loans: loans, payments: payments}
}

// ListClients returns clients newest-first, optionally narrowed by a
// case-insensitive substring match on the name.
func (u *Usecase) ListClients(ctx context.Context, nameFilter string) ([]ClientRow, error) {
	cs, err := u.clients.List(ctx, nameFilter)
	if err != nil {
		return nil, err
	}
	out := make([]ClientRow, 0, len(cs))
	for _, c := range cs {
		out = append(out, ClientRow{
			ClientID:  c.ClientID,
			Name:      c.Name,
			Phone:     c.Phone,
			Notes:     c.Notes,
			CreatedAt: c.CreatedAt,
			UpdatedAt: c.UpdatedAt,
		})
	}
	return out, nil
}

func (u *Usecase) ListLoansForClient(ctx context.Context, clientID string) ([]LoanRow, error) {
	c, err := u.clients.GetByClientID(ctx, clientID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, clientDomain.ErrNotFound
		}
		return nil, err
	}
	ls, err := u.loans.ListByClientRef(ctx, c.ID)
	if err != nil {
		return nil, err
	}
	out := make([]LoanRow, 0, len(ls))
	for i := range ls {
		out = append(out, toLoanRow(&ls[i]))
	}
	return out, nil
}

func (u *Usecase) GetLoan(ctx context.Context, loanID string) (*LoanRow, error) {
	l, err := u.loans.GetByLoanID(ctx, loanID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, loanDomain.ErrNotFound
		}
		return nil, err
	}
	row := toLoanRow(l)
	return &row, nil
}

// ListPaymentsForLoan returns the loan's payment history, most recent
// payment date first.
func (u *Usecase) ListPaymentsForLoan(ctx context.Context, loanID string) ([]PaymentRow, error) {
	l, err := u.loans.GetByLoanID(ctx, loanID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, loanDomain.ErrNotFound
		}
		return nil, err
	}
	ps, err := u.payments.ListByLoanRef(ctx, l.ID)
	if err != nil {
		return nil, err
	}
	out := make([]PaymentRow, 0, len(ps))
	for _, p := range ps {
		out = append(out, PaymentRow{
			PaymentID:   p.PaymentID,
			Amount:      p.Amount,
			Kind:        string(p.Kind),
			PaymentDate: p.PaymentDate,
			CreatedAt:   p.CreatedAt,
		})
	}
	return out, nil
}

// ListAccumulationsForLoan returns the loan's accumulation history newest
// first, with the derived totals used by the detail screen.
func (u *Usecase) ListAccumulationsForLoan(ctx context.Context, loanID string) (*AccumulationHistory, error) {
	l, err := u.loans.GetByLoanID(ctx, loanID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, loanDomain.ErrNotFound
		}
		return nil, err
	}
	as, err := u.loans.ListAccumulationsByLoanRef(ctx, l.ID)
	if err != nil {
		return nil, err
	}

	h := &AccumulationHistory{Accumulations: make([]AccumulationRow, 0, len(as))}
	for _, a := range as {
		h.Accumulations = append(h.Accumulations, AccumulationRow{Amount: a.Amount, CreatedAt: a.CreatedAt})
		h.AccumulatedTotal += a.Amount
	}
	h.GrandTotal = l.OriginalPrincipal + h.AccumulatedTotal
	return h, nil
}

func (u *Usecase) ListLoansWithClientName(ctx context.Context) ([]LoanOverviewRow, error) {
	rows, err := u.loans.ListWithClientName(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]LoanOverviewRow, 0, len(rows))
	for _, r := range rows {
		out = append(out, LoanOverviewRow{
			LoanID:     r.LoanID,
			ClientID:   r.ClientID,
			ClientName: r.ClientName,
			Balance:    r.Balance,
			Status:     string(r.Status),
			CreatedAt:  r.CreatedAt,
		})
	}
	return out, nil
}

func toLoanRow(l *loanDomain.Loan) LoanRow {
	return LoanRow{
		LoanID:            l.LoanID,
		Balance:           l.Balance,
		OriginalPrincipal: l.OriginalPrincipal,
		InterestRate:      l.InterestRate,
		Status:            string(l.Status),
		Notes:             l.Notes,
		CreatedAt:         l.CreatedAt,
	}
}
