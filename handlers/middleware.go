package handlers

import (
	"strings"

	"blogsite/database"
	"blogsite/models"
	"blogsite/utils"

	"github.com/gofiber/fiber/v2"
)

// RequireAuth validates the bearer token and loads the acting user into
// locals. Handlers read it back via CurrentUser and pass it on explicitly
// to permission checks.
func RequireAuth(c *fiber.Ctx) error {
	tokenString := strings.TrimPrefix(c.Get("Authorization"), "Bearer ")
	if tokenString == "" {
		return c.Status(401).JSON(fiber.Map{"status": "error", "message": "Missing token"})
	}

	claims, err := utils.ValidateToken(tokenString)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"status": "error", "message": "Invalid or expired token"})
	}

	sub, ok := claims["sub"].(float64)
	if !ok {
		return c.Status(401).JSON(fiber.Map{"status": "error", "message": "Invalid token claims"})
	}

	var user models.User
	if err := database.DB.First(&user, uint(sub)).Error; err != nil {
		return c.Status(401).JSON(fiber.Map{"status": "error", "message": "User no longer exists"})
	}
	if !user.Active {
		return c.Status(401).JSON(fiber.Map{"status": "error", "message": "Account is not activated"})
	}

	c.Locals("user", &user)
	return c.Next()
}

// RequireAdmin gates admin routes. Must run after RequireAuth.
func RequireAdmin(c *fiber.Ctx) error {
	user := CurrentUser(c)
	if user == nil || user.Role != models.RoleAdmin {
		return c.Status(403).JSON(fiber.Map{"status": "error", "message": "Admin access required"})
	}
	return c.Next()
}

// CurrentUser returns the authenticated user set by RequireAuth, or nil.
func CurrentUser(c *fiber.Ctx) *models.User {
	user, _ := c.Locals("user").(*models.User)
	return user
}
