package query

import (
	"context"
	"errors"
	"testing"
	"time"

	clientDomain "prestamos-ledger/internal/domain/client"
	loanDomain "prestamos-ledger/internal/domain/loan"
	paymentDomain "prestamos-ledger/internal/domain/payment"
	"prestamos-ledger/internal/testutil/clientmock"
	"prestamos-ledger/internal/testutil/loanmock"
	"prestamos-ledger/internal/testutil/paymentmock"

	"gorm.io/gorm"
)

const qLoanID = "bbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb"

func storedLoan() *loanDomain.Loan {
	return &loanDomain.Loan{
		ID:                42,
		LoanID:            qLoanID,
		ClientRef:         7,
		Balance:           600,
		OriginalPrincipal: 1000,
		InterestRate:      10,
		Status:            loanDomain.StatusPending,
	}
}

func TestListClients_PassesFilterThrough(t *testing.T) {
	gotFilter := ""
	clients := &clientmock.Repo{
		ListFn: func(ctx context.Context, f string) ([]clientDomain.Client, error) {
			gotFilter = f
			return []clientDomain.Client{{ClientID: "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa", Name: "Maria"}}, nil
		},
	}
	uc := NewUsecase(clients, &loanmock.Repo{}, &paymentmock.Repo{})

	rows, err := uc.ListClients(context.Background(), "mar")
	if err != nil {
		t.Fatalf("ListClients: %v", err)
	}
	if gotFilter != "mar" {
		t.Errorf("filter = %q, want mar", gotFilter)
	}
	if len(rows) != 1 || rows[0].Name != "Maria" {
		t.Errorf("rows mismatch: %+v", rows)
	}
}

func TestListLoansForClient_UnknownClient(t *testing.T) {
	clients := &clientmock.Repo{
		GetByClientIDFn: func(context.Context, string) (*clientDomain.Client, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}
	uc := NewUsecase(clients, &loanmock.Repo{}, &paymentmock.Repo{})
	_, err := uc.ListLoansForClient(context.Background(), "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa")
	if !errors.Is(err, clientDomain.ErrNotFound) {
		t.Fatalf("err = %v, want client ErrNotFound", err)
	}
}

func TestGetLoan_NotFound(t *testing.T) {
	loans := &loanmock.Repo{
		GetByLoanIDFn: func(context.Context, string) (*loanDomain.Loan, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}
	uc := NewUsecase(&clientmock.Repo{}, loans, &paymentmock.Repo{})
	_, err := uc.GetLoan(context.Background(), qLoanID)
	if !errors.Is(err, loanDomain.ErrNotFound) {
		t.Fatalf("err = %v, want loan ErrNotFound", err)
	}
}

func TestListPaymentsForLoan_MapsRows(t *testing.T) {
	loans := &loanmock.Repo{
		GetByLoanIDFn: func(context.Context, string) (*loanDomain.Loan, error) {
			return storedLoan(), nil
		},
	}
	payments := &paymentmock.Repo{
		ListByLoanRefFn: func(ctx context.Context, ref uint64) ([]paymentDomain.Payment, error) {
			if ref != 42 {
				t.Fatalf("loan ref = %d, want 42", ref)
			}
			return []paymentDomain.Payment{
				{PaymentID: "p2", Amount: 200, Kind: paymentDomain.KindPartial, PaymentDate: "2025-02-01"},
				{PaymentID: "p1", Amount: 100, Kind: paymentDomain.KindInterest, PaymentDate: "2025-01-01"},
			}, nil
		},
	}
	uc := NewUsecase(&clientmock.Repo{}, loans, payments)

	rows, err := uc.ListPaymentsForLoan(context.Background(), qLoanID)
	if err != nil {
		t.Fatalf("ListPaymentsForLoan: %v", err)
	}
	if len(rows) != 2 || rows[0].PaymentDate != "2025-02-01" || rows[1].Kind != "interest" {
		t.Fatalf("rows mismatch: %+v", rows)
	}
}

func TestListAccumulationsForLoan_DerivedTotals(t *testing.T) {
	loans := &loanmock.Repo{
		GetByLoanIDFn: func(context.Context, string) (*loanDomain.Loan, error) {
			return storedLoan(), nil
		},
		ListAccumulationsByLoanRefFn: func(ctx context.Context, ref uint64) ([]loanDomain.Accumulation, error) {
			return []loanDomain.Accumulation{
				{Amount: 500, CreatedAt: time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)},
				{Amount: 250.50, CreatedAt: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)},
			}, nil
		},
	}
	uc := NewUsecase(&clientmock.Repo{}, loans, &paymentmock.Repo{})

	h, err := uc.ListAccumulationsForLoan(context.Background(), qLoanID)
	if err != nil {
		t.Fatalf("ListAccumulationsForLoan: %v", err)
	}
	if len(h.Accumulations) != 2 {
		t.Fatalf("rows = %d, want 2", len(h.Accumulations))
	}
	if h.AccumulatedTotal != 750.50 {
		t.Errorf("accumulated total = %v, want 750.50", h.AccumulatedTotal)
	}
	// grand total = original principal + accumulated
	if h.GrandTotal != 1750.50 {
		t.Errorf("grand total = %v, want 1750.50", h.GrandTotal)
	}
}

func TestListAccumulationsForLoan_EmptyHistory(t *testing.T) {
	loans := &loanmock.Repo{
		GetByLoanIDFn: func(context.Context, string) (*loanDomain.Loan, error) {
			return storedLoan(), nil
		},
		ListAccumulationsByLoanRefFn: func(context.Context, uint64) ([]loanDomain.Accumulation, error) {
			return nil, nil
		},
	}
	uc := NewUsecase(&clientmock.Repo{}, loans, &paymentmock.Repo{})

	h, err := uc.ListAccumulationsForLoan(context.Background(), qLoanID)
	if err != nil {
		t.Fatalf("ListAccumulationsForLoan: %v", err)
	}
	if h.AccumulatedTotal != 0 || h.GrandTotal != 1000 {
		t.Errorf("totals = %v/%v, want 0/1000", h.AccumulatedTotal, h.GrandTotal)
	}
}

func TestListLoansWithClientName(t *testing.T) {
	loans := &loanmock.Repo{
		ListWithClientNameFn: func(context.Context) ([]loanDomain.LoanWithClient, error) {
			return []loanDomain.LoanWithClient{
				{LoanID: qLoanID, ClientID: "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa", ClientName: "Maria", Balance: 600, Status: loanDomain.StatusPending},
			}, nil
		},
	}
	uc := NewUsecase(&clientmock.Repo{}, loans, &paymentmock.Repo{})

	rows, err := uc.ListLoansWithClientName(context.Background())
	if err != nil {
		t.Fatalf("ListLoansWithClientName: %v", err)
	}
	if len(rows) != 1 || rows[0].ClientName != "Maria" || rows[0].Status != "pending" {
		t.Fatalf("rows mismatch: %+v", rows)
	}
}
