package handlers

import (
	"fmt"

	"blogsite/database"
	"blogsite/models"
	"blogsite/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// AddFavorite bookmarks a post. Adding twice is a soft "already" signal,
// and only the first add notifies the author.
func AddFavorite(c *fiber.Ctx) error {
	user := CurrentUser(c)

	var blog models.Blog
	if err := database.DB.Preload("Author").Where("slug = ?", c.Params("slug")).First(&blog).Error; err != nil {
		return c.Status(404).JSON(fiber.Map{"status": "error", "message": "Blog not found"})
	}

	var count int64
	database.DB.Model(&models.Favorite{}).Where("user_id = ? AND blog_id = ?", user.ID, blog.ID).Count(&count)
	if count > 0 {
		return c.JSON(fiber.Map{"status": "success", "already": true, "message": "This blog is already in your favorites."})
	}

	favorite := models.Favorite{UserID: user.ID, BlogID: blog.ID}
	if err := database.DB.Create(&favorite).Error; err != nil {
		// Concurrent double-adds land here via the unique index
		return c.JSON(fiber.Map{"status": "success", "already": true, "message": "This blog is already in your favorites."})
	}

	// Notify the author. Delivery failures never reach the user.
	go notifyFavorite(database.DB, blog.Author, blog.Title, blog.Slug, user.Username)

	return c.JSON(fiber.Map{"status": "success", "message": "Blog added to your favorites!"})
}

// notifyFavorite mails the author about a new favorite and records any
// delivery failure. The db handle is captured at request time so the log
// lands in the database the request ran against.
func notifyFavorite(db *gorm.DB, author models.User, title, slug, favUsername string) {
	subject := fmt.Sprintf("%s added your blog to favorites!", favUsername)
	body := fmt.Sprintf(`Hello %s,<br><br>Good news! %s has added your blog "%s" to their favorites.<br><br>View your blog: %s/blogs/%s<br><br>Keep up the great work!`,
		author.Username, favUsername, title, siteURL(), slug)
	if err := utils.SendEmail([]string{author.Email}, subject, body); err != nil {
		models.LogError(db, "Favorite notification failed for "+author.Email+": "+err.Error())
	}
}

// RemoveFavorite deletes the bookmark. Removing an absent one is an error,
// unlike the idempotent add.
func RemoveFavorite(c *fiber.Ctx) error {
	user := CurrentUser(c)

	var blog models.Blog
	if err := database.DB.Where("slug = ?", c.Params("slug")).First(&blog).Error; err != nil {
		return c.Status(404).JSON(fiber.Map{"status": "error", "message": "Blog not found"})
	}

	result := database.DB.Where("user_id = ? AND blog_id = ?", user.ID, blog.ID).Delete(&models.Favorite{})
	if result.Error != nil {
		return c.Status(500).JSON(fiber.Map{"status": "error", "message": "Database error"})
	}
	if result.RowsAffected == 0 {
		return c.Status(404).JSON(fiber.Map{"status": "error", "message": "This blog is not in your favorites."})
	}

	return c.JSON(fiber.Map{"status": "success", "message": "Blog removed from your favorites."})
}

// GetFavorites lists the caller's favorites, newest first
func GetFavorites(c *fiber.Ctx) error {
	user := CurrentUser(c)

	query := database.DB.Model(&models.Favorite{}).Where("user_id = ?", user.ID).Order("created_at desc")

	var total int64
	query.Count(&total)
	page, pages := clampPage(pageParam(c), total)

	var favorites []models.Favorite
	if err := query.Preload("Blog").Preload("Blog.Author").Preload("Blog.Category").
		Limit(pageSize).Offset((page - 1) * pageSize).Find(&favorites).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"status": "error", "message": "Database error"})
	}

	return c.JSON(fiber.Map{
		"status": "success",
		"data":   favorites,
		"page":   page,
		"pages":  pages,
		"total":  total,
	})
}

// CheckFavorite reports whether the caller favorited a post
func CheckFavorite(c *fiber.Ctx) error {
	user := CurrentUser(c)

	var blog models.Blog
	if err := database.DB.Where("slug = ?", c.Params("slug")).First(&blog).Error; err != nil {
		return c.Status(404).JSON(fiber.Map{"status": "error", "message": "Blog not found"})
	}

	var count int64
	database.DB.Model(&models.Favorite{}).Where("user_id = ? AND blog_id = ?", user.ID, blog.ID).Count(&count)

	return c.JSON(fiber.Map{"status": "success", "exists": count > 0})
}
