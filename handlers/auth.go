package handlers

import (
	"fmt"
	"os"
	"time"

	"blogsite/database"
	"blogsite/models"
	"blogsite/utils"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
)

func siteURL() string {
	url := os.Getenv("SITE_URL")
	if url == "" {
		url = "http://localhost:3000"
	}
	return url
}

// Register creates an inactive account and emails a verification link
func Register(c *fiber.Ctx) error {
	var input struct {
		Username string `json:"username" validate:"required,min=3,max=30"`
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required,min=8"`
		Role     string `json:"role" validate:"omitempty,oneof=reader author"`
	}

	if err := c.BodyParser(&input); err != nil {
		return c.Status(400).JSON(fiber.Map{"status": "error", "message": "Invalid input"})
	}
	if err := validate.Struct(input); err != nil {
		return c.Status(400).JSON(fiber.Map{"status": "error", "message": "Username (3-30 chars), valid email and password (8+ chars) are required"})
	}

	// Admin accounts are never self-service
	if input.Role == "" {
		input.Role = string(models.RoleReader)
	}

	// Existence check; the unique indexes are the authoritative guard
	var count int64
	database.DB.Model(&models.User{}).Where("username = ? OR email = ?", input.Username, input.Email).Count(&count)
	if count > 0 {
		return c.Status(400).JSON(fiber.Map{"status": "error", "message": "Username or email already registered. Please login."})
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"status": "error", "message": "Failed to hash password"})
	}

	token := utils.RandomToken()
	user := models.User{
		Username:          input.Username,
		Email:             input.Email,
		Password:          string(hashedPassword),
		Role:              models.Role(input.Role),
		Active:            false, // until the email is verified
		VerificationToken: token,
	}

	if err := database.DB.Create(&user).Error; err != nil {
		return c.Status(400).JSON(fiber.Map{"status": "error", "message": "Username or email already registered. Please login."})
	}

	models.LogInfo(database.DB, "New registration: "+user.Username)

	verifyURL := fmt.Sprintf("%s/api/auth/verify/%s", siteURL(), token)
	body := fmt.Sprintf(`Hello %s,<br><br>Thank you for registering!<br><br>Please click the link below to verify your email address and activate your account:<br><a href="%s">%s</a><br><br>If you didn't create this account, please ignore this email.`,
		user.Username, verifyURL, verifyURL)

	if err := utils.SendEmail([]string{user.Email}, "Verify your email address", body); err != nil {
		// The account stays; the user is told to reach out instead of retrying.
		models.LogError(database.DB, "Verification email failed for "+user.Email+": "+err.Error())
		return c.JSON(fiber.Map{
			"status":  "success",
			"message": "Registration successful but the verification email could not be sent. Please contact support.",
		})
	}

	return c.JSON(fiber.Map{
		"status":  "success",
		"message": "Registration successful! Please check your email to verify your account.",
	})
}

// VerifyEmail redeems a single-use verification token
func VerifyEmail(c *fiber.Ctx) error {
	token := c.Params("token")

	var user models.User
	if err := database.DB.Where("verification_token = ? AND verification_token <> ''", token).First(&user).Error; err != nil {
		return c.Status(400).JSON(fiber.Map{"status": "error", "message": "Invalid verification link. Please try again or contact support."})
	}

	user.Active = true
	user.EmailVerified = true
	user.VerificationToken = "" // single use
	if err := database.DB.Save(&user).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"status": "error", "message": "Failed to verify account"})
	}

	return c.JSON(fiber.Map{"status": "success", "message": "Your email has been verified successfully! You can now login."})
}

// Login authenticates by username and returns a JWT
func Login(c *fiber.Ctx) error {
	var input struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}

	if err := c.BodyParser(&input); err != nil {
		return c.Status(400).JSON(fiber.Map{"status": "error", "message": "Invalid input"})
	}

	var user models.User
	if err := database.DB.Where("username = ?", input.Username).First(&user).Error; err != nil {
		return c.Status(401).JSON(fiber.Map{"status": "error", "message": "Invalid username or password"})
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)); err != nil {
		return c.Status(401).JSON(fiber.Map{"status": "error", "message": "Invalid username or password"})
	}

	if !user.Active {
		return c.Status(403).JSON(fiber.Map{"status": "error", "message": "Your account is not activated. Please check your email for the verification link."})
	}

	token, err := utils.GenerateToken(user.ID, user.Email, string(user.Role))
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"status": "error", "message": "Failed to create session"})
	}

	return c.JSON(fiber.Map{
		"status": "success",
		"token":  token,
		"user": fiber.Map{
			"id":       user.ID,
			"username": user.Username,
			"email":    user.Email,
			"role":     user.Role,
			"avatar":   user.Avatar,
		},
	})
}

// Logout acknowledges the logout. Sessions are stateless JWTs, so the
// client discards the token.
func Logout(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "success", "message": "You have been logged out successfully."})
}

// ForgotPassword emails a time-limited reset link
func ForgotPassword(c *fiber.Ctx) error {
	var input struct {
		Email string `json:"email" validate:"required,email"`
	}
	if err := c.BodyParser(&input); err != nil {
		return c.Status(400).JSON(fiber.Map{"status": "error", "message": "Invalid input"})
	}
	if err := validate.Struct(input); err != nil {
		return c.Status(400).JSON(fiber.Map{"status": "error", "message": "A valid email is required"})
	}

	var user models.User
	if err := database.DB.Where("email = ?", input.Email).First(&user).Error; err != nil {
		// Do not reveal which emails exist
		return c.JSON(fiber.Map{"status": "success", "message": "If that email is registered, a reset link has been sent."})
	}

	reset := models.PasswordResetToken{
		Email:     user.Email,
		Token:     utils.RandomToken(),
		ExpiresAt: time.Now().Add(1 * time.Hour),
	}
	if err := database.DB.Create(&reset).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"status": "error", "message": "Failed to create reset token"})
	}

	resetURL := fmt.Sprintf("%s/reset-password/%s", siteURL(), reset.Token)
	body := fmt.Sprintf(`Hello %s,<br><br>Click the link below to reset your password. The link expires in one hour.<br><a href="%s">%s</a>`,
		user.Username, resetURL, resetURL)
	if err := utils.SendEmail([]string{user.Email}, "Reset your password", body); err != nil {
		models.LogError(database.DB, "Reset email failed for "+user.Email+": "+err.Error())
	}

	return c.JSON(fiber.Map{"status": "success", "message": "If that email is registered, a reset link has been sent."})
}

// ResetPassword redeems a reset token and sets a new password
func ResetPassword(c *fiber.Ctx) error {
	token := c.Params("token")

	var input struct {
		Password string `json:"password" validate:"required,min=8"`
	}
	if err := c.BodyParser(&input); err != nil {
		return c.Status(400).JSON(fiber.Map{"status": "error", "message": "Invalid input"})
	}
	if err := validate.Struct(input); err != nil {
		return c.Status(400).JSON(fiber.Map{"status": "error", "message": "Password must be at least 8 characters"})
	}

	var reset models.PasswordResetToken
	if err := database.DB.Where("token = ?", token).First(&reset).Error; err != nil {
		return c.Status(400).JSON(fiber.Map{"status": "error", "message": "Invalid or expired reset link"})
	}
	if time.Now().After(reset.ExpiresAt) {
		database.DB.Delete(&reset)
		return c.Status(400).JSON(fiber.Map{"status": "error", "message": "Invalid or expired reset link"})
	}

	var user models.User
	if err := database.DB.Where("email = ?", reset.Email).First(&user).Error; err != nil {
		return c.Status(400).JSON(fiber.Map{"status": "error", "message": "Invalid or expired reset link"})
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"status": "error", "message": "Failed to hash password"})
	}
	user.Password = string(hashedPassword)
	if err := database.DB.Save(&user).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"status": "error", "message": "Failed to update password"})
	}

	database.DB.Delete(&reset) // single use

	return c.JSON(fiber.Map{"status": "success", "message": "Password updated successfully. You can now login."})
}
