package sqlite

import (
	"context"
	"testing"
	"time"

	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"

	clientDomain "prestamos-ledger/internal/domain/client"
	loanDomain "prestamos-ledger/internal/domain/loan"
	paymentDomain "prestamos-ledger/internal/domain/payment"
	infradb "prestamos-ledger/internal/infrastructure/db"
	"prestamos-ledger/pkg/id"
)

// openTestDB opens a per-test in-memory database with the real schema,
// foreign keys included, so cascade behavior is exercised for real.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := "file:" + t.Name() + "?mode=memory&cache=shared&_foreign_keys=on"
	gdb, err := gorm.Open(gormsqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := gdb.DB()
	if err != nil {
		t.Fatalf("sql db: %v", err)
	}
	// one connection so the foreign_keys pragma holds everywhere
	sqlDB.SetMaxOpenConns(1)
	if err := infradb.EnsureSchema(gdb); err != nil {
		t.Fatalf("ensure schema: %v", err)
	}
	return gdb
}

func seedClient(t *testing.T, db *gorm.DB, name string) *clientDomain.Client {
	t.Helper()
	c := &clientDomain.Client{ClientID: id.NewID32(), Name: name}
	if err := NewClientRepository(db).Create(context.Background(), c); err != nil {
		t.Fatalf("seed client: %v", err)
	}
	return c
}

func seedLoan(t *testing.T, db *gorm.DB, clientRef uint64, balance float64, status loanDomain.Status) *loanDomain.Loan {
	t.Helper()
	l := &loanDomain.Loan{
		LoanID:            id.NewID32(),
		ClientRef:         clientRef,
		Balance:           balance,
		OriginalPrincipal: balance,
		InterestRate:      10,
		Status:            status,
	}
	if err := NewLoanRepository(db).Create(context.Background(), l); err != nil {
		t.Fatalf("seed loan: %v", err)
	}
	return l
}

func seedPayment(t *testing.T, db *gorm.DB, l *loanDomain.Loan, amount float64, date string) *paymentDomain.Payment {
	t.Helper()
	p := &paymentDomain.Payment{
		PaymentID:   id.NewID32(),
		LoanRef:     l.ID,
		ClientRef:   l.ClientRef,
		Amount:      amount,
		Kind:        paymentDomain.KindPartial,
		PaymentDate: date,
	}
	if err := NewPaymentRepository(db).Create(context.Background(), p); err != nil {
		t.Fatalf("seed payment: %v", err)
	}
	return p
}

func countRows(t *testing.T, db *gorm.DB, model any) int64 {
	t.Helper()
	var n int64
	if err := db.Model(model).Count(&n).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	return n
}

func at(day int) time.Time {
	return time.Date(2025, 1, day, 12, 0, 0, 0, time.UTC)
}
