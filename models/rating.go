package models

import (
	"time"

	"gorm.io/gorm"
)

// Rating is a 0-6 score a user gives a blog, at most one per (blog, user).
// The composite unique index is the authoritative guard against duplicates.
type Rating struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	BlogID    uint      `gorm:"uniqueIndex:idx_blog_user;not null" json:"blog_id"`
	UserID    uint      `gorm:"uniqueIndex:idx_blog_user;not null" json:"user_id"`
	Rating    int       `gorm:"not null" json:"rating"`
	Review    string    `gorm:"type:text" json:"review"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	User User `gorm:"foreignKey:UserID" json:"user"`
}

// MigrateRatings migrates the table
func MigrateRatings(db *gorm.DB) error {
	return db.AutoMigrate(&Rating{})
}
