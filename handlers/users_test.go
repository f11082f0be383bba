package handlers_test

import (
	"testing"

	"blogsite/database"
	"blogsite/models"

	"github.com/gofiber/fiber/v2"
)

func TestGetProfile(t *testing.T) {
	app := newTestApp(t)
	author := createUser(t, "author", models.RoleAuthor)
	createUser(t, "reader", models.RoleReader)
	createBlog(t, author.ID, "Author Post")

	resp := doJSON(t, app, "GET", "/api/users/author", nil, "")
	wantStatus(t, resp, 200)
	data := decodeMap(t, resp)["data"].(map[string]any)
	if data["username"] != "author" {
		t.Errorf("username = %v, want author", data["username"])
	}
	if _, ok := data["email"]; ok {
		t.Error("profile exposes email")
	}
	blogs, ok := data["blogs"].([]any)
	if !ok || len(blogs) != 1 {
		t.Errorf("author profile blogs = %v, want 1 post", data["blogs"])
	}

	// Reader profiles carry no post list
	resp = doJSON(t, app, "GET", "/api/users/reader", nil, "")
	wantStatus(t, resp, 200)
	data = decodeMap(t, resp)["data"].(map[string]any)
	if _, ok := data["blogs"]; ok {
		t.Error("reader profile has a blogs key")
	}

	resp = doJSON(t, app, "GET", "/api/users/nobody", nil, "")
	wantStatus(t, resp, 404)
}

func TestUpdateProfile(t *testing.T) {
	app := newTestApp(t)
	createUser(t, "alice", models.RoleReader)
	createUser(t, "taken", models.RoleReader)
	token := loginToken(t, app, "alice")

	resp := doJSON(t, app, "PUT", "/api/user/profile", fiber.Map{
		"bio": "Hi there", "website": "https://alice.example.com",
	}, token)
	wantStatus(t, resp, 200)

	var got models.User
	database.DB.Where("username = ?", "alice").First(&got)
	if got.Bio != "Hi there" || got.Website != "https://alice.example.com" {
		t.Errorf("profile = %q/%q, want bio and website saved", got.Bio, got.Website)
	}

	// Taken usernames are refused
	resp = doJSON(t, app, "PUT", "/api/user/profile", fiber.Map{"username": "taken"}, token)
	wantStatus(t, resp, 400)

	resp = doJSON(t, app, "PUT", "/api/user/profile", fiber.Map{"email": "taken@example.com"}, token)
	wantStatus(t, resp, 400)
}

func TestUpdateProfilePartial(t *testing.T) {
	app := newTestApp(t)
	alice := createUser(t, "alice", models.RoleReader)
	token := loginToken(t, app, "alice")

	resp := doJSON(t, app, "PUT", "/api/user/profile", fiber.Map{
		"bio": "Hi there", "website": "https://alice.example.com",
	}, token)
	wantStatus(t, resp, 200)

	// A request that only renames leaves bio and website alone
	resp = doJSON(t, app, "PUT", "/api/user/profile", fiber.Map{"username": "alicia"}, token)
	wantStatus(t, resp, 200)

	var got models.User
	database.DB.First(&got, alice.ID)
	if got.Username != "alicia" {
		t.Errorf("username = %q, want alicia", got.Username)
	}
	if got.Bio != "Hi there" || got.Website != "https://alice.example.com" {
		t.Errorf("profile = %q/%q after rename, want bio and website untouched", got.Bio, got.Website)
	}

	// An explicit empty bio still clears it
	resp = doJSON(t, app, "PUT", "/api/user/profile", fiber.Map{"bio": ""}, token)
	wantStatus(t, resp, 200)
	database.DB.First(&got, alice.ID)
	if got.Bio != "" {
		t.Errorf("bio = %q after explicit clear, want empty", got.Bio)
	}
}

func TestUpdatePassword(t *testing.T) {
	app := newTestApp(t)
	createUser(t, "alice", models.RoleReader)
	token := loginToken(t, app, "alice")

	resp := doJSON(t, app, "PUT", "/api/user/password", fiber.Map{
		"old_password": "wrong", "new_password": "next-password",
	}, token)
	wantStatus(t, resp, 401)

	resp = doJSON(t, app, "PUT", "/api/user/password", fiber.Map{
		"old_password": testPassword, "new_password": "short",
	}, token)
	wantStatus(t, resp, 400)

	resp = doJSON(t, app, "PUT", "/api/user/password", fiber.Map{
		"old_password": testPassword, "new_password": "next-password",
	}, token)
	wantStatus(t, resp, 200)

	resp = doJSON(t, app, "POST", "/api/auth/login", fiber.Map{
		"username": "alice", "password": "next-password",
	}, "")
	wantStatus(t, resp, 200)
}
