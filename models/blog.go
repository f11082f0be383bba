package models

import (
	"time"

	"gorm.io/gorm"
)

// Blog is a post authored by a user
type Blog struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Title      string    `gorm:"not null" json:"title"`
	Slug       string    `gorm:"uniqueIndex;not null" json:"slug"`
	Body       string    `gorm:"type:text;not null" json:"body"`
	AuthorID   uint      `gorm:"index;not null" json:"author_id"`
	CategoryID *uint     `gorm:"index" json:"category_id"` // nulled when the category is deleted
	Image      string    `gorm:"type:text" json:"image"`
	Views      uint      `gorm:"default:0" json:"views"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`

	// Relationships
	Author   User      `gorm:"foreignKey:AuthorID" json:"author"`
	Category *Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
}

// BeforeCreate assigns a unique slug from the title when none was supplied.
// The check-then-assign runs at save time, not at form validation.
func (b *Blog) BeforeCreate(tx *gorm.DB) error {
	if b.Slug == "" {
		b.Slug = UniqueSlug(tx, &Blog{}, Slugify(b.Title))
	}
	return nil
}

// AverageRating recomputes the mean from live rating rows on every call.
// A blog with no ratings reports exactly 0.
func (b *Blog) AverageRating(db *gorm.DB) float64 {
	var avg float64
	db.Model(&Rating{}).Where("blog_id = ?", b.ID).
		Select("COALESCE(AVG(rating), 0)").Scan(&avg)
	return avg
}

// RatingCount returns how many users rated the blog.
func (b *Blog) RatingCount(db *gorm.DB) int64 {
	var count int64
	db.Model(&Rating{}).Where("blog_id = ?", b.ID).Count(&count)
	return count
}

// MigrateBlogs migrates the table
func MigrateBlogs(db *gorm.DB) error {
	return db.AutoMigrate(&Blog{})
}
