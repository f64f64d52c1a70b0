package repository

import (
	"context"

	"storerating/internal/app/ds"

	"gorm.io/gorm/clause"
)

// UpsertRating writes the user's rating for a store in one statement:
// INSERT ... ON CONFLICT (user_id, store_id) DO UPDATE. Concurrent
// submissions for the same pair therefore never create a second row.
func (r *Repository) UpsertRating(ctx context.Context, userID, storeID uint, value int) (*ds.Rating, error) {
	rating := ds.Rating{
		UserID:  userID,
		StoreID: storeID,
		Value:   value,
	}

	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "store_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&rating).Error
	if err != nil {
		return nil, translate(err)
	}

	// RETURNING only carries the id; reload for the stored timestamps.
	var stored ds.Rating
	if err := r.db.WithContext(ctx).First(&stored, rating.ID).Error; err != nil {
		return nil, translate(err)
	}
	return &stored, nil
}

func (r *Repository) CountRatings(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&ds.Rating{}).Count(&count).Error
	return count, translate(err)
}
