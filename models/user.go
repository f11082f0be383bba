package models

import (
	"time"

	"gorm.io/gorm"
)

// Role is the closed set of access levels.
type Role string

const (
	RoleReader Role = "reader"
	RoleAuthor Role = "author"
	RoleAdmin  Role = "admin"
)

// ValidRole reports whether r is one of the known roles.
func ValidRole(r Role) bool {
	switch r {
	case RoleReader, RoleAuthor, RoleAdmin:
		return true
	}
	return false
}

// User represents a registered account
type User struct {
	ID                uint           `gorm:"primaryKey" json:"id"`
	Username          string         `gorm:"uniqueIndex;not null" json:"username"`
	Email             string         `gorm:"uniqueIndex;not null" json:"-"` // only surfaced in explicit maps (login, admin)
	Password          string         `json:"-"` // bcrypt hash
	Role              Role           `json:"role" gorm:"type:varchar(10);default:reader"`
	Active            bool           `json:"-" gorm:"default:false"` // false until email verified
	EmailVerified     bool           `json:"-" gorm:"default:false"`
	VerificationToken string         `json:"-" gorm:"index"`
	Bio               string         `json:"bio" gorm:"type:text"`
	Avatar            string         `json:"avatar" gorm:"type:text"`
	Website           string         `json:"website"`
	CreatedAt         time.Time      `json:"created_at"`
	UpdatedAt         time.Time      `json:"updated_at"`
	DeletedAt         gorm.DeletedAt `gorm:"index" json:"-"`
}

// CanCreateBlog gates post creation to authors and admins.
func (u *User) CanCreateBlog() bool {
	return u.Role == RoleAuthor || u.Role == RoleAdmin
}

// CanModifyBlog gates edit/delete to the owning author or an admin.
func (u *User) CanModifyBlog(b *Blog) bool {
	return b.AuthorID == u.ID || u.Role == RoleAdmin
}

// MigrateUsers migrates the table
func MigrateUsers(db *gorm.DB) error {
	return db.AutoMigrate(&User{})
}
