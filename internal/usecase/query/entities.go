package query

import "time"

type ClientRow struct {
	ClientID  string    `json:"client_id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone,omitempty"`
	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type LoanRow struct {
	LoanID            string    `json:"loan_id"`
	Balance           float64   `json:"balance"`
	OriginalPrincipal float64   `json:"original_principal"`
	InterestRate      float64   `json:"interest_rate"`
	Status            string    `json:"status"`
	Notes             string    `json:"notes,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
}

type PaymentRow struct {
	PaymentID   string    `json:"payment_id"`
	Amount      float64   `json:"amount"`
	Kind        string    `json:"kind"`
	PaymentDate string    `json:"payment_date"`
	CreatedAt   time.Time `json:"created_at"`
}

type AccumulationRow struct {
	Amount    float64   `json:"accumulated_amount"`
	CreatedAt time.Time `json:"created_at"`
}

// AccumulationHistory carries the derived display totals alongside the rows:
// AccumulatedTotal is the sum of all accumulated amounts, GrandTotal adds the
// loan's original principal on top.
type AccumulationHistory struct {
	Accumulations    []AccumulationRow `json:"accumulations"`
	AccumulatedTotal float64           `json:"accumulated_total"`
	GrandTotal       float64           `json:"grand_total"`
}

// LoanOverviewRow backs the cross-client loans listing.
type LoanOverviewRow struct {
	LoanID     string    `json:"loan_id"`
	ClientID   string    `json:"client_id"`
	ClientName string    `json:"client_name"`
	Balance    float64   `json:"balance"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
}
