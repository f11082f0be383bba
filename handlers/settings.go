package handlers

import (
	"blogsite/database"
	"blogsite/models"

	"github.com/gofiber/fiber/v2"
)

// GetPublicSettings returns the public site configuration for the frontend
func GetPublicSettings(c *fiber.Ctx) error {
	var settings []models.Setting
	database.DB.Find(&settings)

	sMap := make(map[string]string)
	for _, s := range settings {
		sMap[s.Key] = s.Value
	}

	return c.JSON(fiber.Map{
		"status":           "success",
		"site_name":        sMap["site_name"],
		"site_description": sMap["site_description"],
		"contact_email":    sMap["contact_email"],
	})
}

// UpdateSetting creates or updates one setting (admin)
func UpdateSetting(c *fiber.Ctx) error {
	var input struct {
		Key   string `json:"key"`
		Value string `json:"value"`
	}
	if err := c.BodyParser(&input); err != nil || input.Key == "" {
		return c.Status(400).JSON(fiber.Map{"status": "error", "message": "Invalid input"})
	}

	var setting models.Setting
	if err := database.DB.Where("key = ?", input.Key).First(&setting).Error; err != nil {
		setting = models.Setting{Key: input.Key, Value: input.Value}
		if err := database.DB.Create(&setting).Error; err != nil {
			return c.Status(500).JSON(fiber.Map{"status": "error", "message": "Failed to create setting"})
		}
	} else {
		setting.Value = input.Value
		if err := database.DB.Save(&setting).Error; err != nil {
			return c.Status(500).JSON(fiber.Map{"status": "error", "message": "Failed to update setting"})
		}
	}

	return c.JSON(fiber.Map{"status": "success", "data": setting})
}
