package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/yassirrachad97/DepotSmart/internal/domain/models"
)

type fakeIdentityStore struct {
	users    []models.Warehouseman
	err      error
	lastKey  string
	requests int
}

func (f *fakeIdentityStore) FindWarehousemanBySecretKey(_ context.Context, key string) (*models.Warehouseman, error) {
	f.requests++
	f.lastKey = key
	if f.err != nil {
		return nil, f.err
	}
	for _, u := range f.users {
		if u.SecretKey == key {
			return &u, nil
		}
	}
	return nil, nil
}

func (f *fakeIdentityStore) GetWarehouseman(_ context.Context, id models.ID) (*models.Warehouseman, error) {
	f.requests++
	if f.err != nil {
		return nil, f.err
	}
	for _, u := range f.users {
		if u.ID.Equal(id) {
			return &u, nil
		}
	}
	return nil, errors.New("not found")
}

var johnDoe = models.Warehouseman{ID: models.NumericID(1), Name: "John Doe", SecretKey: "validKey"}

func TestLoginValidKey(t *testing.T) {
	store := &fakeIdentityStore{users: []models.Warehouseman{johnDoe}}

	user, err := NewService(store, nil).Login(context.Background(), "validKey")
	if err != nil {
		t.Fatalf("Login error: %v", err)
	}
	if user == nil || user.Name != "John Doe" {
		t.Fatalf("user got %+v", user)
	}
	if store.lastKey != "validKey" {
		t.Fatalf("store queried with %q", store.lastKey)
	}
}

func TestLoginInvalidKeyReturnsNil(t *testing.T) {
	store := &fakeIdentityStore{users: []models.Warehouseman{johnDoe}}

	user, err := NewService(store, nil).Login(context.Background(), "invalidKey")
	if err != nil || user != nil {
		t.Fatalf("expected nil, nil; got %+v, %v", user, err)
	}
}

func TestLoginPropagatesStoreError(t *testing.T) {
	apiErr := errors.New("API Error")
	store := &fakeIdentityStore{err: apiErr}

	if _, err := NewService(store, nil).Login(context.Background(), "validKey"); !errors.Is(err, apiErr) {
		t.Fatalf("expected API Error, got %v", err)
	}
}

func TestLoginEmptyKeySkipsStore(t *testing.T) {
	store := &fakeIdentityStore{}

	if _, err := NewService(store, nil).Login(context.Background(), "   "); !errors.Is(err, ErrEmptySecretKey) {
		t.Fatalf("expected ErrEmptySecretKey, got %v", err)
	}
	if store.requests != 0 {
		t.Fatalf("store should not be queried")
	}
}

func TestWarehouseman(t *testing.T) {
	store := &fakeIdentityStore{users: []models.Warehouseman{johnDoe}}
	svc := NewService(store, nil)

	user, err := svc.Warehouseman(context.Background(), models.ParseID("1"))
	if err != nil || user.Name != "John Doe" {
		t.Fatalf("user=%+v err=%v", user, err)
	}

	store.err = errors.New("API Error")
	if _, err := svc.Warehouseman(context.Background(), models.ParseID("1")); !errors.Is(err, store.err) {
		t.Fatalf("expected API Error, got %v", err)
	}
}

func TestLoginSendsKeyUnchanged(t *testing.T) {
	store := &fakeIdentityStore{users: []models.Warehouseman{johnDoe}}

	user, err := NewService(store, nil).Login(context.Background(), " validKey ")
	if err != nil {
		t.Fatalf("Login error: %v", err)
	}
	if store.lastKey != " validKey " {
		t.Fatalf("store queried with %q", store.lastKey)
	}
	if user != nil {
		t.Fatalf("padded key must not resolve to %+v", user)
	}
}

func TestWarehousemanRequiresID(t *testing.T) {
	store := &fakeIdentityStore{users: []models.Warehouseman{johnDoe}}

	if _, err := NewService(store, nil).Warehouseman(context.Background(), models.ID{}); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
	if store.requests != 0 {
		t.Fatalf("store should not be queried")
	}
}
