package models_test

import (
	"path/filepath"
	"strings"
	"testing"

	"blogsite/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("db open: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}, &models.Category{}, &models.Blog{}, &models.Rating{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func createAuthor(t *testing.T, db *gorm.DB, username string) *models.User {
	t.Helper()
	user := &models.User{
		Username: username,
		Email:    username + "@example.com",
		Password: "x",
		Role:     models.RoleAuthor,
		Active:   true,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}
	return user
}

func TestSlugify(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Hello, World!", "hello-world"},
		{"Go 1.21 Rocks", "go-1-21-rocks"},
		{"  spaced   out  ", "spaced-out"},
		{"UPPER", "upper"},
		{"!!!", ""},
		{"", ""},
		{"trailing---", "trailing"},
	}
	for _, tc := range cases {
		if got := models.Slugify(tc.in); got != tc.want {
			t.Errorf("Slugify(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestSlugSequence(t *testing.T) {
	db := newTestDB(t)
	author := createAuthor(t, db, "alice")

	want := []string{"my-post", "my-post-1", "my-post-2"}
	for i, w := range want {
		blog := models.Blog{Title: "My Post", Body: "body", AuthorID: author.ID}
		if err := db.Create(&blog).Error; err != nil {
			t.Fatalf("create blog %d: %v", i, err)
		}
		if blog.Slug != w {
			t.Errorf("blog %d slug = %q, want %q", i, blog.Slug, w)
		}
	}
}

func TestSlugEmptyTitleFallback(t *testing.T) {
	db := newTestDB(t)
	author := createAuthor(t, db, "alice")

	blog := models.Blog{Title: "!!!", Body: "body", AuthorID: author.ID}
	if err := db.Create(&blog).Error; err != nil {
		t.Fatalf("create blog: %v", err)
	}
	if blog.Slug == "" {
		t.Fatal("slug is empty")
	}
	if !strings.HasPrefix(blog.Slug, "post-") {
		t.Errorf("slug = %q, want post- prefix", blog.Slug)
	}
}

func TestSlugExplicitKept(t *testing.T) {
	db := newTestDB(t)
	author := createAuthor(t, db, "alice")

	blog := models.Blog{Title: "My Post", Slug: "custom-slug", Body: "body", AuthorID: author.ID}
	if err := db.Create(&blog).Error; err != nil {
		t.Fatalf("create blog: %v", err)
	}
	if blog.Slug != "custom-slug" {
		t.Errorf("slug = %q, want custom-slug", blog.Slug)
	}
}

func TestCategorySlug(t *testing.T) {
	db := newTestDB(t)

	category := models.Category{Name: "Food & Drink"}
	if err := db.Create(&category).Error; err != nil {
		t.Fatalf("create category: %v", err)
	}
	if category.Slug != "food-drink" {
		t.Errorf("slug = %q, want food-drink", category.Slug)
	}
}
