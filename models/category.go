package models

import (
	"time"

	"gorm.io/gorm"
)

// Category is a flat, admin-managed post category
type Category struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"uniqueIndex;not null" json:"name"`
	Slug        string    `gorm:"uniqueIndex;not null" json:"slug"`
	Description string    `gorm:"type:text" json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

// BeforeCreate derives the slug from the name when none was supplied.
func (c *Category) BeforeCreate(tx *gorm.DB) error {
	if c.Slug == "" {
		c.Slug = UniqueSlug(tx, &Category{}, Slugify(c.Name))
	}
	return nil
}

// MigrateCategories migrates the table
func MigrateCategories(db *gorm.DB) error {
	return db.AutoMigrate(&Category{})
}
