package payment

import (
	"time"
)

// Kind tags how a payment applies to the loan's outstanding balance.
type Kind string

const (
	// KindInterest is a carrying-cost payment; the balance is untouched.
	KindInterest Kind = "interest"
	// KindPartial ("abono") reduces the balance by the paid amount.
	KindPartial Kind = "partial"
	// KindSettle ("liquidar") pays the loan off; the balance is forced to 0.
	KindSettle Kind = "settle"
)

func (k Kind) Valid() bool {
	switch k {
	case KindInterest, KindPartial, KindSettle:
		return true
	}
	return false
}

// DateLayout is the calendar-date format of payment_date.
const DateLayout = "2006-01-02"

// Payment is an append-only ledger row; it is never updated or deleted by the
// application, only removed via cascade when its loan or client goes away.
type Payment struct {
	// Internal numeric PK
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	// Public identifier (32-char lowercase hex)
	PaymentID string `gorm:"column:payment_id;size:32;uniqueIndex:ux_payments_payment_id"`
	// FK to loans.id (numeric)
	LoanRef uint64 `gorm:"column:loan_id;not null;index:idx_payments_loan"`
	// FK to clients.id, denormalized from the loan for query convenience
	ClientRef   uint64    `gorm:"column:client_id;not null;index:idx_payments_client"`
	Amount      float64   `gorm:"column:amount;not null"`
	Kind        Kind      `gorm:"column:kind;type:text;not null"`
	PaymentDate string    `gorm:"column:payment_date;type:text;not null"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt   time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (Payment) TableName() string { return "payments" }
