package ds

import (
	"time"

	"storerating/internal/app/role"
)

// Users table. Password holds the bcrypt hash only.
type User struct {
	ID        uint      `gorm:"primaryKey"`
	Name      string    `gorm:"type:varchar(100);not null"`
	Email     string    `gorm:"type:varchar(100);uniqueIndex;not null"`
	Password  string    `gorm:"type:varchar(255);not null"`
	Address   string    `gorm:"type:varchar(400);not null"`
	Role      role.Role `gorm:"type:varchar(20);not null;default:'USER';index"`
	CreatedAt time.Time
	UpdatedAt time.Time

	// Store is set for store owners that already have one (has-one on stores.owner_id).
	Store *Store `gorm:"foreignKey:OwnerID"`
}
