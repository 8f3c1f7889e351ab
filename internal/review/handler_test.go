package review

import (
	"io"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
)

func makeApp(h *Handler) *fiber.App {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		if v := c.Get("X-User-ID"); v != "" {
			id, err := strconv.Atoi(v)
			if err == nil {
				claims := jwt.MapClaims{"user_id": id}
				tok := &jwt.Token{Claims: claims}
				c.Locals("user", tok)
			}
		}
		return c.Next()
	})
	h.RegisterPublicRoutes(app)
	h.RegisterProtectedRoutes(app)
	return app
}

func TestGetReviews_IncludesSummary(t *testing.T) {
	h := NewHandler(NewService(NewInMemoryRepository(DefaultReviews())))
	app := makeApp(h)

	req := httptest.NewRequest("GET", "/api/v1/product/2/reviews", nil)
	res, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if res.StatusCode != 200 {
		t.Fatalf("expected 200, got %d", res.StatusCode)
	}
	body, _ := io.ReadAll(res.Body)
	str := string(body)
	if !strings.Contains(str, `"summary"`) || !strings.Contains(str, `"average":5`) {
		t.Fatalf("expected summary with average 5 for product 2, got %s", str)
	}
}

func TestCreateReview_ValidationAndAuth(t *testing.T) {
	h := NewHandler(NewService(NewInMemoryRepository(DefaultReviews())))
	app := makeApp(h)

	// unauthenticated POST is rejected
	req := httptest.NewRequest("POST", "/api/v1/product/1/reviews",
		strings.NewReader(`{"rating":5,"title":"t","content":"c","userName":"Jo"}`))
	req.Header.Set("Content-Type", "application/json")
	res, _ := app.Test(req)
	if res.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", res.StatusCode)
	}

	// invalid payload returns all field errors together
	req2 := httptest.NewRequest("POST", "/api/v1/product/1/reviews",
		strings.NewReader(`{"rating":9,"title":"","content":"c","userName":"Jo"}`))
	req2.Header.Set("Content-Type", "application/json")
	req2.Header.Set("X-User-ID", "7")
	res2, _ := app.Test(req2)
	if res2.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("expected 400, got %d", res2.StatusCode)
	}
	b2, _ := io.ReadAll(res2.Body)
	if !strings.Contains(string(b2), "rating") || !strings.Contains(string(b2), "title") {
		t.Fatalf("expected field errors for rating and title, got %s", string(b2))
	}

	// valid authenticated POST creates a verified review
	req3 := httptest.NewRequest("POST", "/api/v1/product/1/reviews",
		strings.NewReader(`{"rating":5,"title":"Solid","content":"Works well","userName":"Jo"}`))
	req3.Header.Set("Content-Type", "application/json")
	req3.Header.Set("X-User-ID", "7")
	res3, _ := app.Test(req3)
	if res3.StatusCode != fiber.StatusCreated {
		t.Fatalf("expected 201, got %d", res3.StatusCode)
	}
	b3, _ := io.ReadAll(res3.Body)
	if !strings.Contains(string(b3), `"verified":true`) || !strings.Contains(string(b3), `"userId":"user7"`) {
		t.Fatalf("unexpected body: %s", string(b3))
	}
}

func TestMarkHelpfulEndpoint(t *testing.T) {
	h := NewHandler(NewService(NewInMemoryRepository(DefaultReviews())))
	app := makeApp(h)

	req := httptest.NewRequest("POST", "/api/v1/review/3/helpful", nil)
	res, _ := app.Test(req)
	if res.StatusCode != 200 {
		t.Fatalf("expected 200, got %d", res.StatusCode)
	}
	body, _ := io.ReadAll(res.Body)
	if !strings.Contains(string(body), `"helpful":6`) {
		t.Fatalf("expected helpful 6, got %s", string(body))
	}

	req2 := httptest.NewRequest("POST", "/api/v1/review/999/helpful", nil)
	res2, _ := app.Test(req2)
	if res2.StatusCode != fiber.StatusNotFound {
		t.Fatalf("expected 404 for unknown review, got %d", res2.StatusCode)
	}
}
