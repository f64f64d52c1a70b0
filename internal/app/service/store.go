package service

import (
	"context"
	"errors"
	"strings"

	"storerating/internal/app/apperr"
	"storerating/internal/app/ds"
	"storerating/internal/app/repository"
)

// storeConflicts are the errors a store creation path reports when the
// owner already has a store or the email is taken.
type storeConflicts struct {
	owner error
	email error
}

// createStore checks one-store-per-owner and email uniqueness before
// inserting. The unique indexes catch anything that races past the checks;
// such a failure is re-read to pick the matching message.
func createStore(ctx context.Context, stores StoreRepository, store *ds.Store, conflicts storeConflicts) error {
	store.Name = strings.TrimSpace(store.Name)
	store.Email = normalizeEmail(store.Email)
	store.Address = strings.TrimSpace(store.Address)

	if err := checkStoreConflicts(ctx, stores, store, conflicts); err != nil {
		return err
	}

	err := stores.CreateStore(ctx, store)
	if errors.Is(err, repository.ErrDuplicate) {
		if err := checkStoreConflicts(ctx, stores, store, conflicts); err != nil {
			return err
		}
		return conflicts.email
	}
	if err != nil {
		return apperr.Internal("create store", err)
	}
	return nil
}

func checkStoreConflicts(ctx context.Context, stores StoreRepository, store *ds.Store, conflicts storeConflicts) error {
	_, err := stores.GetStoreByOwner(ctx, store.OwnerID)
	if err == nil {
		return conflicts.owner
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return apperr.Internal("create store", err)
	}

	_, err = stores.GetStoreByEmail(ctx, store.Email)
	if err == nil {
		return conflicts.email
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return apperr.Internal("create store", err)
	}
	return nil
}
