package client

import (
	"context"
	"errors"
	"testing"

	clientDomain "prestamos-ledger/internal/domain/client"
	"prestamos-ledger/internal/testutil/clientmock"
	"prestamos-ledger/internal/validation"

	"gorm.io/gorm"
)

func TestCreate_PersistsTrimmedClient(t *testing.T) {
	var created *clientDomain.Client
	uc := NewUsecase(&clientmock.Repo{
		CreateFn: func(ctx context.Context, c *clientDomain.Client) error {
			created = c
			return nil
		},
	})

	dto, err := uc.Create(context.Background(), CreateClientInput{
		Name:  "  Maria Lopez  ",
		Phone: "555-0101",
		Notes: "vecina",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created == nil {
		t.Fatalf("nothing persisted")
	}
	if created.Name != "Maria Lopez" {
		t.Errorf("name = %q, want trimmed", created.Name)
	}
	if len(created.ClientID) != 32 {
		t.Errorf("client id not generated: %q", created.ClientID)
	}
	if dto.Name != "Maria Lopez" || dto.Phone != "555-0101" {
		t.Errorf("dto mismatch: %+v", dto)
	}
}

func TestCreate_RequiresName(t *testing.T) {
	for _, name := range []string{"", "   "} {
		uc := NewUsecase(&clientmock.Repo{
			CreateFn: func(context.Context, *clientDomain.Client) error {
				t.Fatalf("must not persist a nameless client")
				return nil
			},
		})
		_, err := uc.Create(context.Background(), CreateClientInput{Name: name})
		var ve *validation.Error
		if !errors.As(err, &ve) {
			t.Fatalf("name=%q: want validation error, got %v", name, err)
		}
	}
}

func TestUpdate(t *testing.T) {
	existing := &clientDomain.Client{ID: 3, ClientID: "cccccccccccccccccccccccccccccccc", Name: "Old"}
	var saved *clientDomain.Client

	uc := NewUsecase(&clientmock.Repo{
		GetByClientIDFn: func(ctx context.Context, id string) (*clientDomain.Client, error) {
			return existing, nil
		},
		SaveFn: func(ctx context.Context, c *clientDomain.Client) error {
			saved = c
			return nil
		},
	})

	dto, err := uc.Update(context.Background(), existing.ClientID, UpdateClientInput{
		Name: "New Name", Phone: "555-2222",
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if saved == nil || saved.Name != "New Name" || saved.Phone != "555-2222" {
		t.Fatalf("save mismatch: %+v", saved)
	}
	if dto.Name != "New Name" {
		t.Errorf("dto name = %q", dto.Name)
	}
}

func TestUpdate_NotFound(t *testing.T) {
	uc := NewUsecase(&clientmock.Repo{
		GetByClientIDFn: func(context.Context, string) (*clientDomain.Client, error) {
			return nil, gorm.ErrRecordNotFound
		},
	})
	_, err := uc.Update(context.Background(), "dddddddddddddddddddddddddddddddd", UpdateClientInput{Name: "X"})
	if !errors.Is(err, clientDomain.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestGet_NotFound(t *testing.T) {
	uc := NewUsecase(&clientmock.Repo{
		GetByClientIDFn: func(context.Context, string) (*clientDomain.Client, error) {
			return nil, gorm.ErrRecordNotFound
		},
	})
	_, err := uc.Get(context.Background(), "dddddddddddddddddddddddddddddddd")
	if !errors.Is(err, clientDomain.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestDelete_Propagates(t *testing.T) {
	want := errors.New("disk gone")
	uc := NewUsecase(&clientmock.Repo{
		DeleteFn: func(context.Context, string) error { return want },
	})
	if err := uc.Delete(context.Background(), "cccccccccccccccccccccccccccccccc"); !errors.Is(err, want) {
		t.Fatalf("err = %v, want %v", err, want)
	}
}
