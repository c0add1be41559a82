package client

import "time"

type CreateClientInput struct {
	Name  string `json:"name" validate:"required"`
	Phone string `json:"phone"`
	Notes string `json:"notes"`
}

type UpdateClientInput struct {
	Name  string `json:"name" validate:"required"`
	Phone string `json:"phone"`
	Notes string `json:"notes"`
}

type ClientDTO struct {
	ClientID  string    `json:"client_id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone,omitempty"`
	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
