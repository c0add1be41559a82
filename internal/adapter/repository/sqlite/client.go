package sqlite

import (
	"context"
	"strings"

	clientDomain "prestamos-ledger/internal/domain/client"

	"gorm.io/gorm"
)

type ClientRepository struct{ db *gorm.DB }

func NewClientRepository(db *gorm.DB) *ClientRepository { return &ClientRepository{db: db} }

func (r *ClientRepository) Create(ctx context.Context, c *clientDomain.Client) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *ClientRepository) Save(ctx context.Context, c *clientDomain.Client) error {
	return r.db.WithContext(ctx).Save(c).Error
}

func (r *ClientRepository) GetByClientID(ctx context.Context, clientID string) (*clientDomain.Client, error) {
	var out clientDomain.Client
	res := r.db.WithContext(ctx).Where("client_id = ?", clientID).First(&out)
	return &out, res.Error
}

// Delete removes the client row; loans, payments and accumulations follow via
// the ON DELETE CASCADE constraints (foreign_keys pragma must be on).
func (r *ClientRepository) Delete(ctx context.Context, clientID string) error {
	res := r.db.WithContext(ctx).Where("client_id = ?", clientID).Delete(&clientDomain.Client{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return clientDomain.ErrNotFound
	}
	return nil
}

func (r *ClientRepository) List(ctx context.Context, nameFilter string) ([]clientDomain.Client, error) {
	q := r.db.WithContext(ctx).Model(&clientDomain.Client{})
	// SQLite LIKE is case-insensitive for ASCII, which matches the
	// search-as-you-type behavior the listing is used for.
	if f := strings.TrimSpace(nameFilter); f != "" {
		q = q.Where("name LIKE ?", "%"+f+"%")
	}
	var out []clientDomain.Client
	res := q.Order("created_at DESC, id DESC").Find(&out)
	return out, res.Error
}
