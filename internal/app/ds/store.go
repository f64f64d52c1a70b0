package ds

import "time"

// Stores table. One store per owner and per email, both enforced by unique indexes.
type Store struct {
	ID        uint    `gorm:"primaryKey"`
	Name      string  `gorm:"type:varchar(100);not null"`
	Email     string  `gorm:"type:varchar(100);uniqueIndex;not null"`
	Address   string  `gorm:"type:varchar(400);not null"`
	OwnerID   uint    `gorm:"not null;uniqueIndex"`
	ImageURL  *string `gorm:"type:varchar(255)"` // object name in MinIO, nullable
	CreatedAt time.Time
	UpdatedAt time.Time

	Ratings []Rating `gorm:"foreignKey:StoreID"`
}

// RatingValues returns the plain star values of the loaded ratings.
func (s *Store) RatingValues() []int {
	values := make([]int, len(s.Ratings))
	for i, r := range s.Ratings {
		values[i] = r.Value
	}
	return values
}
