package seeds

import (
	"log"

	"blogsite/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var Categories = []models.Category{
	{Name: "Technology", Description: "All about technology and innovation"},
	{Name: "Travel", Description: "Travel stories and destination guides"},
	{Name: "Food", Description: "Recipes, restaurants, and culinary adventures"},
	{Name: "Lifestyle", Description: "Health, wellness, and lifestyle tips"},
	{Name: "Business", Description: "Business insights and entrepreneurship"},
	{Name: "Education", Description: "Learning and educational content"},
}

type seedUser struct {
	Username string
	Email    string
	Password string
	Role     models.Role
	Bio      string
}

var Users = []seedUser{
	{Username: "admin", Email: "admin@blogsite.com", Password: "admin123", Role: models.RoleAdmin, Bio: "Site administrator"},
	{Username: "john_author", Email: "john@example.com", Password: "password123", Role: models.RoleAuthor, Bio: "Tech enthusiast and blogger"},
	{Username: "jane_writer", Email: "jane@example.com", Password: "password123", Role: models.RoleAuthor, Bio: "Travel lover sharing adventures"},
	{Username: "bob_reader", Email: "bob@example.com", Password: "password123", Role: models.RoleReader},
}

type seedBlog struct {
	Title    string
	Body     string
	Author   string
	Category string
}

var Blogs = []seedBlog{
	{Title: "Getting Started with Cloud Computing", Author: "john_author", Category: "Technology",
		Body: "Cloud computing has transformed how software is built and shipped. This post walks through the core service models and when to reach for each one."},
	{Title: "Hidden Gems of Southeast Asia", Author: "jane_writer", Category: "Travel",
		Body: "Beyond the usual tourist trails lie quiet islands, night markets and mountain towns most itineraries skip. Here are the stops worth rerouting for."},
	{Title: "A Beginner's Guide to Sourdough", Author: "jane_writer", Category: "Food",
		Body: "All you need is flour, water, salt and patience. This guide covers the starter, the stretch-and-folds, and what to do when the loaf refuses to rise."},
}

// Run fills an empty database with sample content. Safe to re-run.
func Run(db *gorm.DB) error {
	for _, cat := range Categories {
		var existing models.Category
		if err := db.Where("name = ?", cat.Name).First(&existing).Error; err != nil {
			c := cat
			if err := db.Create(&c).Error; err != nil {
				return err
			}
		}
	}
	log.Printf("Seeded %d categories", len(Categories))

	for _, su := range Users {
		var existing models.User
		if err := db.Where("username = ?", su.Username).First(&existing).Error; err == nil {
			continue
		}
		hashed, err := bcrypt.GenerateFromPassword([]byte(su.Password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		user := models.User{
			Username:      su.Username,
			Email:         su.Email,
			Password:      string(hashed),
			Role:          su.Role,
			Active:        true,
			EmailVerified: true,
			Bio:           su.Bio,
		}
		if err := db.Create(&user).Error; err != nil {
			return err
		}
	}
	log.Printf("Seeded %d users", len(Users))

	for _, sb := range Blogs {
		var count int64
		db.Model(&models.Blog{}).Where("title = ?", sb.Title).Count(&count)
		if count > 0 {
			continue
		}
		var author models.User
		if err := db.Where("username = ?", sb.Author).First(&author).Error; err != nil {
			return err
		}
		var category models.Category
		if err := db.Where("name = ?", sb.Category).First(&category).Error; err != nil {
			return err
		}
		blog := models.Blog{
			Title:      sb.Title,
			Body:       sb.Body,
			AuthorID:   author.ID,
			CategoryID: &category.ID,
		}
		if err := db.Create(&blog).Error; err != nil {
			return err
		}
	}
	log.Printf("Seeded %d blogs", len(Blogs))

	models.LogSuccess(db, "Sample data seeded")

	return nil
}
