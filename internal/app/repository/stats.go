package repository

import (
	"context"

	"storerating/internal/app/ds"
)

type DashboardStats struct {
	TotalUsers   int64
	TotalStores  int64
	TotalRatings int64
}

func (r *Repository) DashboardStats(ctx context.Context) (DashboardStats, error) {
	var stats DashboardStats
	db := r.db.WithContext(ctx)

	if err := db.Model(&ds.User{}).Count(&stats.TotalUsers).Error; err != nil {
		return stats, translate(err)
	}
	if err := db.Model(&ds.Store{}).Count(&stats.TotalStores).Error; err != nil {
		return stats, translate(err)
	}
	ratings, err := r.CountRatings(ctx)
	if err != nil {
		return stats, err
	}
	stats.TotalRatings = ratings
	return stats, nil
}
