package handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// RegisterRoutes mounts the whole API surface
func RegisterRoutes(app *fiber.App) {
	api := app.Group("/api")

	// Public
	api.Get("/blogs", GetBlogs)
	api.Get("/blogs/:slug", GetBlog)
	api.Get("/blogs/:slug/ratings", GetRatings)
	api.Get("/categories", GetCategories)
	api.Get("/categories/:slug/blogs", GetCategoryBlogs)
	api.Get("/authors/:username/blogs", GetAuthorBlogs)
	api.Get("/users/:username", GetProfile)
	api.Get("/settings", GetPublicSettings)

	// Auth
	api.Post("/auth/register", Register)
	api.Get("/auth/verify/:token", VerifyEmail)
	api.Post("/auth/login", Login)
	api.Post("/auth/logout", Logout)
	api.Post("/auth/forgot-password", ForgotPassword)
	api.Post("/auth/reset-password/:token", ResetPassword)

	// Authenticated
	auth := api.Group("", RequireAuth)
	auth.Post("/blogs", CreateBlog)
	auth.Put("/blogs/:slug", UpdateBlog)
	auth.Delete("/blogs/:slug", DeleteBlog)
	auth.Post("/blogs/:slug/rate", RateBlog)
	auth.Post("/blogs/:slug/favorite", AddFavorite)
	auth.Delete("/blogs/:slug/favorite", RemoveFavorite)
	auth.Get("/blogs/:slug/favorite", CheckFavorite)
	auth.Get("/favorites", GetFavorites)
	auth.Put("/user/profile", UpdateProfile)
	auth.Put("/user/password", UpdatePassword)
	auth.Post("/upload", UploadImage)

	// Admin
	admin := api.Group("/admin", RequireAuth, RequireAdmin)
	admin.Get("/users", GetAdminUsers)
	admin.Delete("/users/:id", DeleteUser)
	admin.Put("/users/:id/role", UpdateUserRole)
	admin.Get("/logs", GetSystemLogs)
	admin.Post("/categories", CreateCategory)
	admin.Put("/categories/:id", UpdateCategory)
	admin.Delete("/categories/:id", DeleteCategory)
	admin.Post("/settings", UpdateSetting)
}
