package loan

import (
	"errors"
	"time"

	"prestamos-ledger/internal/domain/payment"
)

type Status string

const (
	StatusPending Status = "pending"
	StatusPaid    Status = "paid"
)

var (
	ErrNotFound = errors.New("loan not found")
	// ErrAlreadyPaid: paid is terminal, no further payments are accepted.
	ErrAlreadyPaid = errors.New("loan already paid")
	// ErrOverpayment: partial/settle amount exceeds the outstanding balance.
	ErrOverpayment = errors.New("amount exceeds outstanding balance")
)

type Loan struct {
	// Internal numeric PK
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	// Public identifier (32-char lowercase hex)
	LoanID string `gorm:"column:loan_id;size:32;uniqueIndex:ux_loans_loan_id"`
	// FK to clients.id (numeric)
	ClientRef uint64 `gorm:"column:client_id;not null;index:idx_loans_client"`
	// Outstanding balance; grows with accumulations, shrinks with partial
	// payments, forced to 0 by a settle. Never negative.
	Balance float64 `gorm:"column:balance;not null"`
	// Fixed at creation, never mutated afterwards.
	OriginalPrincipal float64   `gorm:"column:original_principal;not null"`
	InterestRate      float64   `gorm:"column:interest_rate;not null"`
	Status            Status    `gorm:"column:status;type:text;not null;default:'pending'"`
	Notes             string    `gorm:"column:notes;type:text"`
	CreatedAt         time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt         time.Time `gorm:"column:updated_at;autoUpdateTime"`

	Payments      []payment.Payment `gorm:"foreignKey:LoanRef;references:ID;constraint:OnDelete:CASCADE"`
	Accumulations []Accumulation    `gorm:"foreignKey:LoanRef;references:ID;constraint:OnDelete:CASCADE"`
}

func (Loan) TableName() string { return "loans" }

// Accumulation records extra principal folded into an already-pending loan
// instead of opening a second loan for the same client. Append-only.
type Accumulation struct {
	ID      uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	LoanRef uint64 `gorm:"column:loan_id;not null;index:idx_accumulations_loan"`
	// The extra principal added to the loan's balance.
	Amount    float64   `gorm:"column:accumulated_amount;not null"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (Accumulation) TableName() string { return "accumulations" }

// LoanWithClient is a loan row joined with its owner's public id and name,
// used by the cross-client overview listing.
type LoanWithClient struct {
	LoanID     string
	ClientID   string
	ClientName string
	Balance    float64
	Status     Status
	CreatedAt  time.Time
}
