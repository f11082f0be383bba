package handlers

import (
	"math"
	"strconv"

	"blogsite/database"
	"blogsite/models"

	"github.com/gofiber/fiber/v2"
)

// GetAdminUsers returns a paginated, searchable user list
func GetAdminUsers(c *fiber.Ctx) error {
	page, _ := strconv.Atoi(c.Query("page", "1"))
	if page < 1 {
		page = 1
	}
	limit, _ := strconv.Atoi(c.Query("limit", "10"))
	if limit < 1 {
		limit = 10
	}
	offset := (page - 1) * limit

	search := c.Query("search", "")

	query := database.DB.Model(&models.User{})
	if search != "" {
		term := "%" + search + "%"
		query = query.Where("username LIKE ? OR email LIKE ?", term, term)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"status": "error", "message": "Database error"})
	}

	var users []models.User
	if err := query.Limit(limit).Offset(offset).Order("created_at desc").Find(&users).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"status": "error", "message": "Database error"})
	}

	var userList []fiber.Map
	for _, user := range users {
		var blogCount int64
		database.DB.Model(&models.Blog{}).Where("author_id = ?", user.ID).Count(&blogCount)

		userList = append(userList, fiber.Map{
			"id":             user.ID,
			"username":       user.Username,
			"email":          user.Email,
			"role":           user.Role,
			"active":         user.Active,
			"email_verified": user.EmailVerified,
			"blog_count":     blogCount,
			"created_at":     user.CreatedAt,
		})
	}

	return c.JSON(fiber.Map{
		"status": "success",
		"data":   userList,
		"page":   page,
		"limit":  limit,
		"total":  total,
		"pages":  math.Ceil(float64(total) / float64(limit)),
	})
}

// DeleteUser soft-deletes a user. Their posts and engagement rows go too,
// so listings never render an orphaned author.
func DeleteUser(c *fiber.Ctx) error {
	var user models.User
	if err := database.DB.First(&user, c.Params("id")).Error; err != nil {
		return c.Status(404).JSON(fiber.Map{"status": "error", "message": "User not found"})
	}

	var blogIDs []uint
	database.DB.Model(&models.Blog{}).Where("author_id = ?", user.ID).Pluck("id", &blogIDs)
	if len(blogIDs) > 0 {
		database.DB.Where("blog_id IN ?", blogIDs).Delete(&models.Rating{})
		database.DB.Where("blog_id IN ?", blogIDs).Delete(&models.Favorite{})
		database.DB.Where("author_id = ?", user.ID).Delete(&models.Blog{})
	}
	database.DB.Where("user_id = ?", user.ID).Delete(&models.Rating{})
	database.DB.Where("user_id = ?", user.ID).Delete(&models.Favorite{})

	if err := database.DB.Delete(&user).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"status": "error", "message": "Failed to delete user"})
	}

	models.LogInfo(database.DB, "User deleted: "+user.Username)

	return c.JSON(fiber.Map{"status": "success", "message": "User deleted successfully"})
}

// UpdateUserRole changes a user's role
func UpdateUserRole(c *fiber.Ctx) error {
	var input struct {
		Role models.Role `json:"role"`
	}
	if err := c.BodyParser(&input); err != nil {
		return c.Status(400).JSON(fiber.Map{"status": "error", "message": "Invalid input"})
	}
	if !models.ValidRole(input.Role) {
		return c.Status(400).JSON(fiber.Map{"status": "error", "message": "Role must be reader, author or admin"})
	}

	var user models.User
	if err := database.DB.First(&user, c.Params("id")).Error; err != nil {
		return c.Status(404).JSON(fiber.Map{"status": "error", "message": "User not found"})
	}

	user.Role = input.Role
	if err := database.DB.Save(&user).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"status": "error", "message": "Failed to update role"})
	}

	models.LogInfo(database.DB, "Role changed to "+string(input.Role)+" for "+user.Username)

	return c.JSON(fiber.Map{"status": "success", "message": "Role updated", "data": user})
}

// GetSystemLogs returns recent operator-visible events
func GetSystemLogs(c *fiber.Ctx) error {
	limit, _ := strconv.Atoi(c.Query("limit", "100"))
	if limit < 1 || limit > 500 {
		limit = 100
	}

	var logs []models.SystemLog
	if err := database.DB.Order("created_at desc").Limit(limit).Find(&logs).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"status": "error", "message": "Database error"})
	}

	return c.JSON(fiber.Map{"status": "success", "data": logs})
}
