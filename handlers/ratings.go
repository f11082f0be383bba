package handlers

import (
	"blogsite/database"
	"blogsite/models"

	"github.com/gofiber/fiber/v2"
)

// RateBlog creates or updates the caller's rating for a post. A second
// submission from the same user mutates the existing row.
func RateBlog(c *fiber.Ctx) error {
	user := CurrentUser(c)

	var blog models.Blog
	if err := database.DB.Where("slug = ?", c.Params("slug")).First(&blog).Error; err != nil {
		return c.Status(404).JSON(fiber.Map{"status": "error", "message": "Blog not found"})
	}

	var input struct {
		Rating *int   `json:"rating"`
		Review string `json:"review"`
	}
	if err := c.BodyParser(&input); err != nil {
		return c.Status(400).JSON(fiber.Map{"status": "error", "message": "Invalid input"})
	}
	// Out-of-range values are rejected, never clamped
	if input.Rating == nil || *input.Rating < 0 || *input.Rating > 6 {
		return c.Status(400).JSON(fiber.Map{"status": "error", "message": "Rating must be between 0 and 6"})
	}

	var rating models.Rating
	err := database.DB.Where("blog_id = ? AND user_id = ?", blog.ID, user.ID).First(&rating).Error
	if err == nil {
		rating.Rating = *input.Rating
		rating.Review = input.Review
		if err := database.DB.Save(&rating).Error; err != nil {
			return c.Status(500).JSON(fiber.Map{"status": "error", "message": "Failed to update rating"})
		}
		return c.JSON(fiber.Map{"status": "success", "message": "Your rating has been updated!", "data": rating})
	}

	rating = models.Rating{BlogID: blog.ID, UserID: user.ID, Rating: *input.Rating, Review: input.Review}
	if err := database.DB.Create(&rating).Error; err != nil {
		// Concurrent double-submits land here via the unique index
		return c.Status(500).JSON(fiber.Map{"status": "error", "message": "Failed to save rating"})
	}

	return c.JSON(fiber.Map{"status": "success", "message": "Thank you for rating this blog!", "data": rating})
}

// GetRatings lists ratings for a post, newest first
func GetRatings(c *fiber.Ctx) error {
	var blog models.Blog
	if err := database.DB.Where("slug = ?", c.Params("slug")).First(&blog).Error; err != nil {
		return c.Status(404).JSON(fiber.Map{"status": "error", "message": "Blog not found"})
	}

	var ratings []models.Rating
	if err := database.DB.Preload("User").Where("blog_id = ?", blog.ID).Order("created_at desc").Find(&ratings).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"status": "error", "message": "Database error"})
	}

	return c.JSON(fiber.Map{
		"status":         "success",
		"average_rating": blog.AverageRating(database.DB),
		"rating_count":   blog.RatingCount(database.DB),
		"data":           ratings,
	})
}
