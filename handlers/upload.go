package handlers

import (
	"fmt"
	"log"
	"path/filepath"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// UploadImage stores a blog or avatar image and returns its URL
func UploadImage(c *fiber.Ctx) error {
	user := CurrentUser(c)
	if !user.CanCreateBlog() {
		return c.Status(403).JSON(fiber.Map{"status": "error", "message": "Only authors can upload images."})
	}

	file, err := c.FormFile("file")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"status": "error", "message": "No file uploaded"})
	}

	// Simple extension check
	ext := filepath.Ext(file.Filename)
	if ext != ".jpg" && ext != ".jpeg" && ext != ".png" && ext != ".webp" {
		return c.Status(400).JSON(fiber.Map{"status": "error", "message": "Invalid file type. Only images allowed."})
	}

	filename := fmt.Sprintf("%d_%s%s", time.Now().Unix(), uuid.New().String(), ext)
	savePath := filepath.Join("public", "uploads", filename)

	if err := c.SaveFile(file, savePath); err != nil {
		log.Println("Upload Error:", err)
		return c.Status(500).JSON(fiber.Map{"status": "error", "message": "Failed to save file"})
	}

	return c.JSON(fiber.Map{
		"status": "success",
		"url":    fmt.Sprintf("/uploads/%s", filename),
	})
}
