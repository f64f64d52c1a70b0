package ds

import "time"

// Ratings table. idx_rating_user_store keeps one row per (user, store) and
// is the conflict target of the rating upsert.
type Rating struct {
	ID        uint `gorm:"primaryKey"`
	Value     int  `gorm:"not null;check:chk_rating_value,value >= 1 AND value <= 5"`
	UserID    uint `gorm:"not null;uniqueIndex:idx_rating_user_store"`
	StoreID   uint `gorm:"not null;uniqueIndex:idx_rating_user_store;index"`
	CreatedAt time.Time
	UpdatedAt time.Time

	User  *User  `gorm:"foreignKey:UserID"`
	Store *Store `gorm:"foreignKey:StoreID"`
}
