package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"path/filepath"
	"testing"

	"blogsite/database"
	"blogsite/handlers"
	"blogsite/models"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const testPassword = "password123"

// newTestApp wires the full route table against a fresh on-disk database.
// The database handle is process-global, so these tests do not run in
// parallel.
func newTestApp(t *testing.T) *fiber.App {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("db open: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	database.DB = db

	app := fiber.New()
	handlers.RegisterRoutes(app)
	return app
}

func createUser(t *testing.T, username string, role models.Role) *models.User {
	t.Helper()
	hashed, err := bcrypt.GenerateFromPassword([]byte(testPassword), bcrypt.DefaultCost)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	user := &models.User{
		Username:      username,
		Email:         username + "@example.com",
		Password:      string(hashed),
		Role:          role,
		Active:        true,
		EmailVerified: true,
	}
	if err := database.DB.Create(user).Error; err != nil {
		t.Fatalf("create user %s: %v", username, err)
	}
	return user
}

func createBlog(t *testing.T, authorID uint, title string) *models.Blog {
	t.Helper()
	blog := &models.Blog{Title: title, Body: "Body of " + title, AuthorID: authorID}
	if err := database.DB.Create(blog).Error; err != nil {
		t.Fatalf("create blog %s: %v", title, err)
	}
	return blog
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body any, token string) *http.Response {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req, err := http.NewRequest(method, path, &buf)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	return resp
}

func decodeMap(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	defer resp.Body.Close()
	var out map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return out
}

func loginToken(t *testing.T, app *fiber.App, username string) string {
	t.Helper()
	resp := doJSON(t, app, "POST", "/api/auth/login", fiber.Map{
		"username": username,
		"password": testPassword,
	}, "")
	if resp.StatusCode != 200 {
		t.Fatalf("login %s: status %d", username, resp.StatusCode)
	}
	body := decodeMap(t, resp)
	token, _ := body["token"].(string)
	if token == "" {
		t.Fatalf("login %s: no token in response", username)
	}
	return token
}

func wantStatus(t *testing.T, resp *http.Response, want int) {
	t.Helper()
	if resp.StatusCode != want {
		t.Fatalf("status = %d, want %d", resp.StatusCode, want)
	}
}

func rate(t *testing.T, app *fiber.App, slug, token string, value int) *http.Response {
	t.Helper()
	return doJSON(t, app, "POST", fmt.Sprintf("/api/blogs/%s/rate", slug), fiber.Map{"rating": value}, token)
}
