package handlers

import (
	"math"
	"sort"
	"strconv"
	"strings"

	"blogsite/database"
	"blogsite/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

const pageSize = 9

// pageParam parses the page query. Non-numeric input falls back to page 1.
func pageParam(c *fiber.Ctx) int {
	page, err := strconv.Atoi(c.Query("page", "1"))
	if err != nil || page < 1 {
		return 1
	}
	return page
}

// clampPage keeps a page within [1, last] for the given row count and
// returns the clamped page plus the page count.
func clampPage(page int, total int64) (int, int) {
	pages := int(math.Ceil(float64(total) / float64(pageSize)))
	if pages < 1 {
		pages = 1
	}
	if page > pages {
		page = pages
	}
	return page, pages
}

type blogItem struct {
	models.Blog
	AverageRating float64 `json:"average_rating"`
	RatingCount   int64   `json:"rating_count"`
}

func toItems(db *gorm.DB, blogs []models.Blog) []blogItem {
	items := make([]blogItem, 0, len(blogs))
	for i := range blogs {
		items = append(items, blogItem{
			Blog:          blogs[i],
			AverageRating: blogs[i].AverageRating(db),
			RatingCount:   blogs[i].RatingCount(db),
		})
	}
	return items
}

// GetBlogs lists blogs with search, filters, sorting and pagination
func GetBlogs(c *fiber.Ctx) error {
	query := database.DB.Model(&models.Blog{}).Preload("Author").Preload("Category")

	// Free-text search against title or body
	if search := c.Query("search"); search != "" {
		term := "%" + strings.ToLower(search) + "%"
		query = query.Where("LOWER(title) LIKE ? OR LOWER(body) LIKE ?", term, term)
	}

	// Exact category filter
	if category := c.Query("category"); category != "" {
		query = query.Where("category_id = ?", category)
	}

	// Author username substring filter
	if author := c.Query("author"); author != "" {
		term := "%" + strings.ToLower(author) + "%"
		query = query.Joins("JOIN users ON users.id = blogs.author_id").
			Where("LOWER(users.username) LIKE ?", term)
	}

	sortBy := c.Query("sort_by", "date")

	// Rating sorts need the per-blog average, so materialize the result
	// set and sort in memory instead of at the storage layer.
	if sortBy == "rating" || sortBy == "-rating" {
		var blogs []models.Blog
		if err := query.Find(&blogs).Error; err != nil {
			return c.Status(500).JSON(fiber.Map{"status": "error", "message": "Database error"})
		}

		items := toItems(database.DB, blogs)
		sort.SliceStable(items, func(i, j int) bool {
			if items[i].AverageRating == items[j].AverageRating {
				// Ties break by recency, newest first
				return items[i].CreatedAt.After(items[j].CreatedAt)
			}
			if sortBy == "rating" {
				return items[i].AverageRating > items[j].AverageRating
			}
			return items[i].AverageRating < items[j].AverageRating
		})

		total := int64(len(items))
		page, pages := clampPage(pageParam(c), total)
		start := (page - 1) * pageSize
		end := start + pageSize
		if start > len(items) {
			start = len(items)
		}
		if end > len(items) {
			end = len(items)
		}

		return c.JSON(fiber.Map{
			"status": "success",
			"data":   items[start:end],
			"page":   page,
			"pages":  pages,
			"total":  total,
		})
	}

	switch sortBy {
	case "-date":
		query = query.Order("blogs.created_at asc")
	case "views":
		query = query.Order("blogs.views desc")
	default:
		query = query.Order("blogs.created_at desc")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"status": "error", "message": "Database error"})
	}

	page, pages := clampPage(pageParam(c), total)

	var blogs []models.Blog
	if err := query.Limit(pageSize).Offset((page - 1) * pageSize).Find(&blogs).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"status": "error", "message": "Database error"})
	}

	return c.JSON(fiber.Map{
		"status": "success",
		"data":   toItems(database.DB, blogs),
		"page":   page,
		"pages":  pages,
		"total":  total,
	})
}

// GetBlog returns a single blog by slug and counts the view. Reads are
// deliberately not idempotent here.
func GetBlog(c *fiber.Ctx) error {
	slug := c.Params("slug")

	var blog models.Blog
	if err := database.DB.Preload("Author").Preload("Category").Where("slug = ?", slug).First(&blog).Error; err != nil {
		return c.Status(404).JSON(fiber.Map{"status": "error", "message": "Blog not found"})
	}

	database.DB.Model(&blog).UpdateColumn("views", gorm.Expr("views + 1"))
	blog.Views++

	var ratings []models.Rating
	database.DB.Preload("User").Where("blog_id = ?", blog.ID).Order("created_at desc").Find(&ratings)

	return c.JSON(fiber.Map{
		"status":  "success",
		"data":    blogItem{Blog: blog, AverageRating: blog.AverageRating(database.DB), RatingCount: blog.RatingCount(database.DB)},
		"ratings": ratings,
	})
}

// CreateBlog creates a post. Authors and admins only.
func CreateBlog(c *fiber.Ctx) error {
	user := CurrentUser(c)
	if !user.CanCreateBlog() {
		return c.Status(403).JSON(fiber.Map{"status": "error", "message": "Only authors can create blog posts."})
	}

	var input struct {
		Title      string `json:"title" validate:"required,max=200"`
		Body       string `json:"body" validate:"required"`
		CategoryID *uint  `json:"category_id"`
		Image      string `json:"image"`
	}
	if err := c.BodyParser(&input); err != nil {
		return c.Status(400).JSON(fiber.Map{"status": "error", "message": "Invalid input"})
	}
	if err := validate.Struct(input); err != nil {
		return c.Status(400).JSON(fiber.Map{"status": "error", "message": "Title and body are required"})
	}

	if input.CategoryID != nil {
		var category models.Category
		if err := database.DB.First(&category, *input.CategoryID).Error; err != nil {
			return c.Status(400).JSON(fiber.Map{"status": "error", "message": "Unknown category"})
		}
	}

	blog := models.Blog{
		Title:      input.Title,
		Body:       input.Body,
		AuthorID:   user.ID,
		CategoryID: input.CategoryID,
		Image:      input.Image,
	}

	if err := database.DB.Create(&blog).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"status": "error", "message": "Failed to create blog"})
	}

	database.DB.Preload("Author").Preload("Category").First(&blog, blog.ID)

	return c.JSON(fiber.Map{"status": "success", "message": "Your blog has been created successfully!", "data": blog})
}

// UpdateBlog edits a post. Owner or admin only.
func UpdateBlog(c *fiber.Ctx) error {
	user := CurrentUser(c)

	var blog models.Blog
	if err := database.DB.Where("slug = ?", c.Params("slug")).First(&blog).Error; err != nil {
		return c.Status(404).JSON(fiber.Map{"status": "error", "message": "Blog not found"})
	}

	if !user.CanModifyBlog(&blog) {
		return c.Status(403).JSON(fiber.Map{"status": "error", "message": "You can only edit your own blog posts."})
	}

	var input struct {
		Title      string  `json:"title"`
		Body       string  `json:"body"`
		Slug       string  `json:"slug"`
		CategoryID *uint   `json:"category_id"`
		Image      *string `json:"image"`
	}
	if err := c.BodyParser(&input); err != nil {
		return c.Status(400).JSON(fiber.Map{"status": "error", "message": "Invalid input"})
	}

	if input.Title != "" {
		blog.Title = input.Title
	}
	if input.Body != "" {
		blog.Body = input.Body
	}
	if input.Slug != "" && input.Slug != blog.Slug {
		// Explicit slug edits still have to stay unique
		var count int64
		database.DB.Model(&models.Blog{}).Where("slug = ? AND id <> ?", input.Slug, blog.ID).Count(&count)
		if count > 0 {
			return c.Status(400).JSON(fiber.Map{"status": "error", "message": "Slug is already in use"})
		}
		blog.Slug = input.Slug
	}
	if input.CategoryID != nil {
		var category models.Category
		if err := database.DB.First(&category, *input.CategoryID).Error; err != nil {
			return c.Status(400).JSON(fiber.Map{"status": "error", "message": "Unknown category"})
		}
		blog.CategoryID = input.CategoryID
	}
	if input.Image != nil {
		blog.Image = *input.Image
	}

	if err := database.DB.Save(&blog).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"status": "error", "message": "Failed to update blog"})
	}

	return c.JSON(fiber.Map{"status": "success", "message": "Your blog has been updated successfully!", "data": blog})
}

// DeleteBlog removes a post. Owner or admin only.
func DeleteBlog(c *fiber.Ctx) error {
	user := CurrentUser(c)

	var blog models.Blog
	if err := database.DB.Where("slug = ?", c.Params("slug")).First(&blog).Error; err != nil {
		return c.Status(404).JSON(fiber.Map{"status": "error", "message": "Blog not found"})
	}

	if !user.CanModifyBlog(&blog) {
		return c.Status(403).JSON(fiber.Map{"status": "error", "message": "You can only delete your own blog posts."})
	}

	// Engagement rows go with the post
	database.DB.Where("blog_id = ?", blog.ID).Delete(&models.Rating{})
	database.DB.Where("blog_id = ?", blog.ID).Delete(&models.Favorite{})
	if err := database.DB.Delete(&blog).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"status": "error", "message": "Failed to delete blog"})
	}

	return c.JSON(fiber.Map{"status": "success", "message": "Your blog has been deleted successfully!"})
}

// GetAuthorBlogs lists all posts by one author, newest first
func GetAuthorBlogs(c *fiber.Ctx) error {
	var author models.User
	if err := database.DB.Where("username = ?", c.Params("username")).First(&author).Error; err != nil {
		return c.Status(404).JSON(fiber.Map{"status": "error", "message": "Author not found"})
	}

	query := database.DB.Model(&models.Blog{}).Preload("Category").
		Where("author_id = ?", author.ID).Order("created_at desc")

	var total int64
	query.Count(&total)
	page, pages := clampPage(pageParam(c), total)

	var blogs []models.Blog
	if err := query.Limit(pageSize).Offset((page - 1) * pageSize).Find(&blogs).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"status": "error", "message": "Database error"})
	}

	return c.JSON(fiber.Map{
		"status": "success",
		"author": fiber.Map{"id": author.ID, "username": author.Username, "bio": author.Bio, "avatar": author.Avatar},
		"data":   toItems(database.DB, blogs),
		"page":   page,
		"pages":  pages,
		"total":  total,
	})
}
