package ledger

import (
	"context"
	"errors"
	"math"
	"time"

	clientDomain "prestamos-ledger/internal/domain/client"
	loanDomain "prestamos-ledger/internal/domain/loan"
	paymentDomain "prestamos-ledger/internal/domain/payment"
	"prestamos-ledger/internal/domain/uow"
	"prestamos-ledger/internal/validation"
	"prestamos-ledger/pkg/id"

	"gorm.io/gorm"
)

// Usecase is the ledger engine: the only code that mutates loan balances and
// statuses, and the only code that writes payments and accumulations.
type Usecase struct {
	uow uow.UnitOfWork
	val *validation.Validator
}

func NewUsecase(tx uow.UnitOfWork) *Usecase {
	return &Usecase{uow: tx, val: validation.New()}
}

// OpenOrAccumulateLoan creates a new pending loan for the client, unless the
// client already has one: then the principal is recorded as an accumulation
// against that loan and its balance grows by the same amount. The loan's
// original principal and interest rate are never touched by the accumulate
// branch.
func (u *Usecase) OpenOrAccumulateLoan(ctx context.Context, in OpenLoanInput) (*OpenLoanResult, error) {
	if err := u.val.Check(in); err != nil {
		return nil, err
	}

	var out *OpenLoanResult
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		c, err := r.Clients.GetByClientID(ctx, in.ClientID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return clientDomain.ErrNotFound
			}
			return err
		}

		pending, err := r.Loans.GetPendingByClientRef(ctx, c.ID)
		switch {
		case err == nil:
			a := &loanDomain.Accumulation{LoanRef: pending.ID, Amount: in.Principal}
			if err := r.Loans.CreateAccumulation(ctx, a); err != nil {
				return err
			}
			pending.Balance += in.Principal
			if err := r.Loans.Save(ctx, pending); err != nil {
				return err
			}
			out = &OpenLoanResult{Loan: toLoanDTO(pending), Accumulated: true}
			return nil
		case errors.Is(err, gorm.ErrRecordNotFound):
			// no open loan, fall through and create one
		default:
			return err
		}

		l := &loanDomain.Loan{
			LoanID:            id.NewID32(),
			ClientRef:         c.ID,
			Balance:           in.Principal,
			OriginalPrincipal: in.Principal,
			InterestRate:      in.InterestRate,
			Status:            loanDomain.StatusPending,
			Notes:             in.Notes,
		}
		if err := r.Loans.Create(ctx, l); err != nil {
			return err
		}
		out = &OpenLoanResult{Loan: toLoanDTO(l)}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// RegisterPayment appends an immutable payment row and applies the balance
// policy for its kind, all inside one transaction. Paying an already-settled
// loan or overpaying the balance fails before anything is written.
func (u *Usecase) RegisterPayment(ctx context.Context, in RegisterPaymentInput) (*Receipt, error) {
	if err := u.val.Check(in); err != nil {
		return nil, err
	}
	if in.PaymentDate == "" {
		in.PaymentDate = time.Now().UTC().Format(paymentDomain.DateLayout)
	}

	var out *Receipt
	err := u.uow.WithinLoanTx(ctx, in.LoanID, func(r uow.Repos, l *loanDomain.Loan) error {
		if l.Status == loanDomain.StatusPaid {
			return loanDomain.ErrAlreadyPaid
		}
		if in.Kind != paymentDomain.KindInterest && in.Amount > l.Balance {
			return loanDomain.ErrOverpayment
		}

		p := &paymentDomain.Payment{
			PaymentID:   id.NewID32(),
			LoanRef:     l.ID,
			ClientRef:   l.ClientRef,
			Amount:      in.Amount,
			Kind:        in.Kind,
			PaymentDate: in.PaymentDate,
		}
		if err := r.Payments.Create(ctx, p); err != nil {
			return err
		}

		if applyPayment(l, in.Kind, in.Amount) {
			if err := r.Loans.Save(ctx, l); err != nil {
				return err
			}
		}

		history, err := r.Payments.ListByLoanRef(ctx, l.ID)
		if err != nil {
			return err
		}
		out = &Receipt{Loan: toLoanDTO(l), Payments: toPaymentDTOs(l.LoanID, history)}
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, loanDomain.ErrNotFound
		}
		return nil, err
	}
	return out, nil
}

// DeleteLoan removes a loan; its payments and accumulations go with it via
// the cascade constraints.
func (u *Usecase) DeleteLoan(ctx context.Context, loanID string) error {
	return u.uow.WithinTx(ctx, func(r uow.Repos) error {
		return r.Loans.Delete(ctx, loanID)
	})
}

// applyPayment is the single place loan balance/status transitions live.
// pending → paid happens when a settling payment drives the balance to 0;
// paid is terminal. Reports whether the loan row changed.
func applyPayment(l *loanDomain.Loan, k paymentDomain.Kind, amount float64) bool {
	switch k {
	case paymentDomain.KindInterest:
		// carrying cost only, balance untouched
		return false
	case paymentDomain.KindPartial:
		l.Balance = math.Max(0, l.Balance-amount)
		if l.Balance == 0 {
			l.Status = loanDomain.StatusPaid
		}
		return true
	case paymentDomain.KindSettle:
		// payoff in full regardless of the amount entered
		l.Balance = 0
		l.Status = loanDomain.StatusPaid
		return true
	}
	return false
}

func toLoanDTO(l *loanDomain.Loan) LoanDTO {
	return LoanDTO{
		LoanID:            l.LoanID,
		Balance:           l.Balance,
		OriginalPrincipal: l.OriginalPrincipal,
		InterestRate:      l.InterestRate,
		Status:            string(l.Status),
		Notes:             l.Notes,
		CreatedAt:         l.CreatedAt,
		UpdatedAt:         l.UpdatedAt,
	}
}

func toPaymentDTOs(loanID string, ps []paymentDomain.Payment) []PaymentDTO {
	out := make([]PaymentDTO, 0, len(ps))
	for _, p := range ps {
		out = append(out, PaymentDTO{
			PaymentID:   p.PaymentID,
			LoanID:      loanID,
			Amount:      p.Amount,
			Kind:        string(p.Kind),
			PaymentDate: p.PaymentDate,
			CreatedAt:   p.CreatedAt,
		})
	}
	return out
}
