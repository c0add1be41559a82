package client

import (
	"errors"
	"time"

	"prestamos-ledger/internal/domain/loan"
	"prestamos-ledger/internal/domain/payment"
)

var ErrNotFound = errors.New("client not found")

type Client struct {
	// Internal numeric PK
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	// Public identifier (32-char lowercase hex)
	ClientID  string    `gorm:"column:client_id;size:32;uniqueIndex:ux_clients_client_id"`
	Name      string    `gorm:"column:name;type:text;not null"`
	Phone     string    `gorm:"column:phone;type:text"`
	Notes     string    `gorm:"column:notes;type:text"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`

	// Deleting a client cascades through its loans and payments.
	Loans    []loan.Loan       `gorm:"foreignKey:ClientRef;references:ID;constraint:OnDelete:CASCADE"`
	Payments []payment.Payment `gorm:"foreignKey:ClientRef;references:ID;constraint:OnDelete:CASCADE"`
}

func (Client) TableName() string { return "clients" }
