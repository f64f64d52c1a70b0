package repository

import (
	"context"

	"storerating/internal/app/ds"

	"gorm.io/gorm"
)

// CreateStore inserts the store. A second store for the same owner or email
// fails with ErrDuplicate from the unique indexes.
func (r *Repository) CreateStore(ctx context.Context, store *ds.Store) error {
	return translate(r.db.WithContext(ctx).Create(store).Error)
}

func (r *Repository) GetStoreByID(ctx context.Context, id uint) (*ds.Store, error) {
	var store ds.Store
	err := r.db.WithContext(ctx).First(&store, id).Error
	if err != nil {
		return nil, translate(err)
	}
	return &store, nil
}

func (r *Repository) GetStoreByEmail(ctx context.Context, email string) (*ds.Store, error) {
	var store ds.Store
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&store).Error
	if err != nil {
		return nil, translate(err)
	}
	return &store, nil
}

// GetStoreByOwner loads the owner's store with ratings (newest first) and their authors.
func (r *Repository) GetStoreByOwner(ctx context.Context, ownerID uint) (*ds.Store, error) {
	var store ds.Store
	err := r.db.WithContext(ctx).
		Preload("Ratings", func(db *gorm.DB) *gorm.DB {
			return db.Order("ratings.id DESC")
		}).
		Preload("Ratings.User").
		Where("owner_id = ?", ownerID).
		First(&store).Error
	if err != nil {
		return nil, translate(err)
	}
	return &store, nil
}

// ListStoresWithRatings returns every store with ratings and rating authors.
// Ratings are always read fresh; nothing here is cached.
func (r *Repository) ListStoresWithRatings(ctx context.Context) ([]ds.Store, error) {
	var stores []ds.Store
	err := r.db.WithContext(ctx).
		Preload("Ratings", func(db *gorm.DB) *gorm.DB {
			return db.Order("ratings.id")
		}).
		Preload("Ratings.User").
		Order("id").
		Find(&stores).Error
	return stores, translate(err)
}

func (r *Repository) UpdateStoreImage(ctx context.Context, storeID uint, objectName *string) error {
	result := r.db.WithContext(ctx).Model(&ds.Store{}).Where("id = ?", storeID).Update("image_url", objectName)
	if result.Error != nil {
		return translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
