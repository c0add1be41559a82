package ledger

import (
	"time"

	"prestamos-ledger/internal/domain/payment"
)

type OpenLoanInput struct {
	ClientID     string  `json:"client_id" validate:"required,hex32"`
	Principal    float64 `json:"principal" validate:"required,gt=0,dec2"`
	InterestRate float64 `json:"interest_rate" validate:"gte=0"`
	Notes        string  `json:"notes"`
}

type RegisterPaymentInput struct {
	LoanID string       `json:"loan_id" validate:"required,hex32"`
	Amount float64      `json:"amount" validate:"required,gt=0,dec2"`
	Kind   payment.Kind `json:"kind" validate:"required,oneof=interest partial settle"`
	// Defaults to today (UTC) when empty.
	PaymentDate string `json:"payment_date" validate:"omitempty,dateonly"`
}

type LoanDTO struct {
	LoanID            string    `json:"loan_id"`
	Balance           float64   `json:"balance"`
	OriginalPrincipal float64   `json:"original_principal"`
	InterestRate      float64   `json:"interest_rate"`
	Status            string    `json:"status"`
	Notes             string    `json:"notes,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

type PaymentDTO struct {
	PaymentID   string    `json:"payment_id"`
	LoanID      string    `json:"loan_id"`
	Amount      float64   `json:"amount"`
	Kind        string    `json:"kind"`
	PaymentDate string    `json:"payment_date"`
	CreatedAt   time.Time `json:"created_at"`
}

// OpenLoanResult reports which branch the open operation took so the caller
// can message "loan created" vs "added to existing loan".
type OpenLoanResult struct {
	Loan        LoanDTO `json:"loan"`
	Accumulated bool    `json:"accumulated"`
}

// Receipt is what the caller renders after a payment: the updated loan plus
// its refreshed payment history.
type Receipt struct {
	Loan     LoanDTO      `json:"loan"`
	Payments []PaymentDTO `json:"payments"`
}
