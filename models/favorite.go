package models

import (
	"time"

	"gorm.io/gorm"
)

// Favorite represents a user's bookmarked blog, at most one per (user, blog).
type Favorite struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"uniqueIndex:idx_user_blog;not null" json:"user_id"`
	BlogID    uint      `gorm:"uniqueIndex:idx_user_blog;not null" json:"blog_id"`
	CreatedAt time.Time `json:"created_at"`

	// Relationships
	User User `gorm:"foreignKey:UserID" json:"-"`
	Blog Blog `gorm:"foreignKey:BlogID" json:"blog"`
}

func MigrateFavorites(db *gorm.DB) error {
	return db.AutoMigrate(&Favorite{})
}
