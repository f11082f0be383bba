package handlers

import (
	"blogsite/database"
	"blogsite/models"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
)

// GetProfile returns a user's public profile
func GetProfile(c *fiber.Ctx) error {
	var user models.User
	if err := database.DB.Where("username = ?", c.Params("username")).First(&user).Error; err != nil {
		return c.Status(404).JSON(fiber.Map{"status": "error", "message": "User not found"})
	}

	profile := fiber.Map{
		"id":         user.ID,
		"username":   user.Username,
		"role":       user.Role,
		"bio":        user.Bio,
		"avatar":     user.Avatar,
		"website":    user.Website,
		"created_at": user.CreatedAt,
	}

	// Authors get their posts on the profile page
	if user.Role == models.RoleAuthor || user.Role == models.RoleAdmin {
		var blogs []models.Blog
		database.DB.Preload("Category").Where("author_id = ?", user.ID).Order("created_at desc").Find(&blogs)
		profile["blogs"] = toItems(database.DB, blogs)
	}

	return c.JSON(fiber.Map{"status": "success", "data": profile})
}

// UpdateProfile edits the caller's own profile
func UpdateProfile(c *fiber.Ctx) error {
	user := CurrentUser(c)

	var input struct {
		Username string  `json:"username"`
		Email    string  `json:"email" validate:"omitempty,email"`
		Bio      *string `json:"bio"` // pointer so an absent field is not a wipe
		Avatar   string  `json:"avatar"`
		Website  *string `json:"website"`
	}
	if err := c.BodyParser(&input); err != nil {
		return c.Status(400).JSON(fiber.Map{"status": "error", "message": "Invalid input"})
	}
	if err := validate.Struct(input); err != nil {
		return c.Status(400).JSON(fiber.Map{"status": "error", "message": "Invalid email address"})
	}

	if input.Username != "" && input.Username != user.Username {
		var count int64
		database.DB.Model(&models.User{}).Where("username = ? AND id <> ?", input.Username, user.ID).Count(&count)
		if count > 0 {
			return c.Status(400).JSON(fiber.Map{"status": "error", "message": "Username is already taken"})
		}
		user.Username = input.Username
	}
	if input.Email != "" && input.Email != user.Email {
		var count int64
		database.DB.Model(&models.User{}).Where("email = ? AND id <> ?", input.Email, user.ID).Count(&count)
		if count > 0 {
			return c.Status(400).JSON(fiber.Map{"status": "error", "message": "Email is already registered"})
		}
		user.Email = input.Email
	}
	if input.Bio != nil {
		user.Bio = *input.Bio
	}
	if input.Website != nil {
		user.Website = *input.Website
	}
	if input.Avatar != "" {
		user.Avatar = input.Avatar
	}

	if err := database.DB.Save(user).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"status": "error", "message": "Failed to update profile"})
	}

	return c.JSON(fiber.Map{"status": "success", "message": "Your profile has been updated successfully!", "data": user})
}

// UpdatePassword changes the caller's password
func UpdatePassword(c *fiber.Ctx) error {
	user := CurrentUser(c)

	var input struct {
		OldPassword string `json:"old_password"`
		NewPassword string `json:"new_password" validate:"required,min=8"`
	}
	if err := c.BodyParser(&input); err != nil {
		return c.Status(400).JSON(fiber.Map{"status": "error", "message": "Invalid input"})
	}
	if err := validate.Struct(input); err != nil {
		return c.Status(400).JSON(fiber.Map{"status": "error", "message": "New password must be at least 8 characters"})
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.OldPassword)); err != nil {
		return c.Status(401).JSON(fiber.Map{"status": "error", "message": "Incorrect old password"})
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"status": "error", "message": "Failed to hash password"})
	}

	user.Password = string(hashedPassword)
	if err := database.DB.Save(user).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"status": "error", "message": "Failed to update password"})
	}

	return c.JSON(fiber.Map{"status": "success", "message": "Password updated successfully"})
}
