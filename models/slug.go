package models

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Slugify lowercases s and collapses every run of characters outside
// [a-z0-9] into a single hyphen.
func Slugify(s string) string {
	var b strings.Builder
	pendingDash := false
	for _, r := range strings.ToLower(s) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			if pendingDash && b.Len() > 0 {
				b.WriteByte('-')
			}
			b.WriteRune(r)
			pendingDash = false
		} else {
			pendingDash = true
		}
	}
	return b.String()
}

// UniqueSlug returns base if no row of model holds it, otherwise the first
// free base-1, base-2, ... candidate. Empty bases fall back to a generated
// token so the slug is never empty.
func UniqueSlug(db *gorm.DB, model interface{}, base string) string {
	if base == "" {
		base = "post-" + uuid.New().String()[:8]
	}
	slug := base
	for counter := 1; ; counter++ {
		var count int64
		db.Model(model).Where("slug = ?", slug).Count(&count)
		if count == 0 {
			return slug
		}
		slug = fmt.Sprintf("%s-%d", base, counter)
	}
}
