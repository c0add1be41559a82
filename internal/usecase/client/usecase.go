package client

import (
	"context"
	"errors"
	"strings"

	clientDomain "prestamos-ledger/internal/domain/client"
	"prestamos-ledger/internal/validation"
	"prestamos-ledger/pkg/id"

	"gorm.io/gorm"
)

type Usecase struct {
	repo clientDomain.Repository
	val  *validation.Validator
}

func NewUsecase(r clientDomain.Repository) *Usecase {
	return &Usecase{repo: r, val: validation.New()}
}

func (u *Usecase) Create(ctx context.Context, in CreateClientInput) (*ClientDTO, error) {
	in.Name = strings.TrimSpace(in.Name)
	if err := u.val.Check(in); err != nil {
		return nil, err
	}

	c := &clientDomain.Client{
		ClientID: id.NewID32(),
		Name:     in.Name,
		Phone:    in.Phone,
		Notes:    in.Notes,
	}
	if err := u.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	return toDTO(c), nil
}

func (u *Usecase) Update(ctx context.Context, clientID string, in UpdateClientInput) (*ClientDTO, error) {
	in.Name = strings.TrimSpace(in.Name)
	if err := u.val.Check(in); err != nil {
		return nil, err
	}

	c, err := u.repo.GetByClientID(ctx, clientID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, clientDomain.ErrNotFound
		}
		return nil, err
	}

	c.Name = in.Name
	c.Phone = in.Phone
	c.Notes = in.Notes
	if err := u.repo.Save(ctx, c); err != nil {
		return nil, err
	}
	return toDTO(c), nil
}

// Delete removes the client and, through the schema's cascade rules, all of
// its loans, payments and accumulations.
func (u *Usecase) Delete(ctx context.Context, clientID string) error {
	return u.repo.Delete(ctx, clientID)
}

func (u *Usecase) Get(ctx context.Context, clientID string) (*ClientDTO, error) {
	c, err := u.repo.GetByClientID(ctx, clientID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, clientDomain.ErrNotFound
		}
		return nil, err
	}
	return toDTO(c), nil
}

func toDTO(c *clientDomain.Client) *ClientDTO {
	return &ClientDTO{
		ClientID:  c.ClientID,
		Name:      c.Name,
		Phone:     c.Phone,
		Notes:     c.Notes,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
