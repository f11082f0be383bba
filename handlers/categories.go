package handlers

import (
	"blogsite/database"
	"blogsite/models"

	"github.com/gofiber/fiber/v2"
)

// GetCategories lists all categories
func GetCategories(c *fiber.Ctx) error {
	var categories []models.Category
	if err := database.DB.Order("name asc").Find(&categories).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"status": "error", "message": "Database error"})
	}
	return c.JSON(fiber.Map{"status": "success", "data": categories})
}

// GetCategoryBlogs lists posts in one category, newest first
func GetCategoryBlogs(c *fiber.Ctx) error {
	var category models.Category
	if err := database.DB.Where("slug = ?", c.Params("slug")).First(&category).Error; err != nil {
		return c.Status(404).JSON(fiber.Map{"status": "error", "message": "Category not found"})
	}

	query := database.DB.Model(&models.Blog{}).Preload("Author").
		Where("category_id = ?", category.ID).Order("created_at desc")

	var total int64
	query.Count(&total)
	page, pages := clampPage(pageParam(c), total)

	var blogs []models.Blog
	if err := query.Limit(pageSize).Offset((page - 1) * pageSize).Find(&blogs).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"status": "error", "message": "Database error"})
	}

	return c.JSON(fiber.Map{
		"status":   "success",
		"category": category,
		"data":     toItems(database.DB, blogs),
		"page":     page,
		"pages":    pages,
		"total":    total,
	})
}

// CreateCategory adds a category (admin)
func CreateCategory(c *fiber.Ctx) error {
	var input struct {
		Name        string `json:"name" validate:"required,max=100"`
		Description string `json:"description"`
	}
	if err := c.BodyParser(&input); err != nil {
		return c.Status(400).JSON(fiber.Map{"status": "error", "message": "Invalid input"})
	}
	if err := validate.Struct(input); err != nil {
		return c.Status(400).JSON(fiber.Map{"status": "error", "message": "Name is required"})
	}

	var count int64
	database.DB.Model(&models.Category{}).Where("name = ?", input.Name).Count(&count)
	if count > 0 {
		return c.Status(400).JSON(fiber.Map{"status": "error", "message": "Category name already exists"})
	}

	category := models.Category{Name: input.Name, Description: input.Description}
	if err := database.DB.Create(&category).Error; err != nil {
		return c.Status(400).JSON(fiber.Map{"status": "error", "message": "Failed to create category"})
	}

	return c.JSON(fiber.Map{"status": "success", "data": category})
}

// UpdateCategory edits a category (admin)
func UpdateCategory(c *fiber.Ctx) error {
	var category models.Category
	if err := database.DB.First(&category, c.Params("id")).Error; err != nil {
		return c.Status(404).JSON(fiber.Map{"status": "error", "message": "Category not found"})
	}

	var input struct {
		Name        string `json:"name"`
		Description string `json:"description"`
	}
	if err := c.BodyParser(&input); err != nil {
		return c.Status(400).JSON(fiber.Map{"status": "error", "message": "Invalid input"})
	}

	if input.Name != "" && input.Name != category.Name {
		var count int64
		database.DB.Model(&models.Category{}).Where("name = ? AND id <> ?", input.Name, category.ID).Count(&count)
		if count > 0 {
			return c.Status(400).JSON(fiber.Map{"status": "error", "message": "Category name already exists"})
		}
		category.Name = input.Name
	}
	category.Description = input.Description

	if err := database.DB.Save(&category).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"status": "error", "message": "Failed to update category"})
	}

	return c.JSON(fiber.Map{"status": "success", "data": category})
}

// DeleteCategory removes a category. Its posts keep living uncategorized.
func DeleteCategory(c *fiber.Ctx) error {
	var category models.Category
	if err := database.DB.First(&category, c.Params("id")).Error; err != nil {
		return c.Status(404).JSON(fiber.Map{"status": "error", "message": "Category not found"})
	}

	database.DB.Model(&models.Blog{}).Where("category_id = ?", category.ID).Update("category_id", nil)
	if err := database.DB.Delete(&category).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"status": "error", "message": "Failed to delete category"})
	}

	models.LogInfo(database.DB, "Category deleted: "+category.Name)

	return c.JSON(fiber.Map{"status": "success", "message": "Category deleted"})
}
