package handlers_test

import (
	"testing"

	"blogsite/database"
	"blogsite/models"

	"github.com/gofiber/fiber/v2"
)

func TestRateBlogUpsert(t *testing.T) {
	app := newTestApp(t)
	owner := createUser(t, "owner", models.RoleAuthor)
	createUser(t, "fan", models.RoleReader)
	blog := createBlog(t, owner.ID, "Rated Post")
	token := loginToken(t, app, "fan")

	resp := rate(t, app, blog.Slug, token, 5)
	wantStatus(t, resp, 200)
	body := decodeMap(t, resp)
	if body["message"] != "Thank you for rating this blog!" {
		t.Errorf("first rating message = %v", body["message"])
	}

	// A second submission updates in place instead of adding a row
	resp = rate(t, app, blog.Slug, token, 2)
	wantStatus(t, resp, 200)
	body = decodeMap(t, resp)
	if body["message"] != "Your rating has been updated!" {
		t.Errorf("second rating message = %v", body["message"])
	}

	var ratings []models.Rating
	database.DB.Where("blog_id = ?", blog.ID).Find(&ratings)
	if len(ratings) != 1 {
		t.Fatalf("rating rows = %d, want 1", len(ratings))
	}
	if ratings[0].Rating != 2 {
		t.Errorf("stored rating = %d, want 2", ratings[0].Rating)
	}
}

func TestRateBlogBounds(t *testing.T) {
	app := newTestApp(t)
	owner := createUser(t, "owner", models.RoleAuthor)
	createUser(t, "fan", models.RoleReader)
	blog := createBlog(t, owner.ID, "Rated Post")
	token := loginToken(t, app, "fan")

	for _, value := range []int{-1, 7, 100} {
		resp := rate(t, app, blog.Slug, token, value)
		if resp.StatusCode != 400 {
			t.Errorf("rating %d: status = %d, want 400", value, resp.StatusCode)
		}
		resp.Body.Close()
	}

	// Missing rating field is also rejected
	resp := doJSON(t, app, "POST", "/api/blogs/"+blog.Slug+"/rate", fiber.Map{"review": "no score"}, token)
	wantStatus(t, resp, 400)

	var count int64
	database.DB.Model(&models.Rating{}).Count(&count)
	if count != 0 {
		t.Errorf("rating rows = %d after rejected submissions, want 0", count)
	}

	// Both endpoints of the scale are valid
	resp = rate(t, app, blog.Slug, token, 0)
	wantStatus(t, resp, 200)
	resp = rate(t, app, blog.Slug, token, 6)
	wantStatus(t, resp, 200)
}

func TestRateUnknownBlog(t *testing.T) {
	app := newTestApp(t)
	createUser(t, "fan", models.RoleReader)
	token := loginToken(t, app, "fan")

	resp := rate(t, app, "no-such-post", token, 3)
	wantStatus(t, resp, 404)
}

func TestGetRatings(t *testing.T) {
	app := newTestApp(t)
	owner := createUser(t, "owner", models.RoleAuthor)
	a := createUser(t, "rater-a", models.RoleReader)
	b := createUser(t, "rater-b", models.RoleReader)
	blog := createBlog(t, owner.ID, "Rated Post")

	database.DB.Create(&models.Rating{BlogID: blog.ID, UserID: a.ID, Rating: 3, Review: "fine"})
	database.DB.Create(&models.Rating{BlogID: blog.ID, UserID: b.ID, Rating: 6, Review: "great"})

	resp := doJSON(t, app, "GET", "/api/blogs/"+blog.Slug+"/ratings", nil, "")
	wantStatus(t, resp, 200)
	body := decodeMap(t, resp)
	if body["average_rating"].(float64) != 4.5 {
		t.Errorf("average_rating = %v, want 4.5", body["average_rating"])
	}
	if body["rating_count"].(float64) != 2 {
		t.Errorf("rating_count = %v, want 2", body["rating_count"])
	}
	if got := len(body["data"].([]any)); got != 2 {
		t.Errorf("ratings listed = %d, want 2", got)
	}
}
