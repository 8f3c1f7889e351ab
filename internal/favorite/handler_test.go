package favorite

import (
	"io"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/ecohero/storefront-backend/internal/product"
	"github.com/ecohero/storefront-backend/internal/user"
)

func makeApp() *fiber.App {
	accounts := user.NewService(user.NewInMemoryRepository([]user.User{
		{ID: 7, Email: "jane@example.com", FirstName: "Jane", LastName: "Doe"},
	}))
	products := product.NewService(product.NewInMemoryRepository(product.DefaultCatalog()))
	h := NewHandler(NewService(accounts, products))

	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		if v := c.Get("X-User-ID"); v != "" {
			id, err := strconv.Atoi(v)
			if err == nil {
				c.Locals("user", &jwt.Token{Claims: jwt.MapClaims{"user_id": id}})
			}
		}
		return c.Next()
	})
	h.RegisterProtectedRoutes(app)
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, body string) (int, string) {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, "/api/v1/favorites", reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("X-User-ID", "7")
	res, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	b, _ := io.ReadAll(res.Body)
	return res.StatusCode, string(b)
}

func TestFavoriteLifecycle(t *testing.T) {
	app := makeApp()

	code, body := doJSON(t, app, "POST", `{"productId":5}`)
	if code != 200 {
		t.Fatalf("add failed: %d %s", code, body)
	}

	// adding the same product twice is a conflict
	code, _ = doJSON(t, app, "POST", `{"productId":5}`)
	if code != fiber.StatusConflict {
		t.Fatalf("expected 409, got %d", code)
	}

	// the list resolves ids to full products
	code, body = doJSON(t, app, "GET", "")
	if code != 200 || !strings.Contains(body, "stainless-steel-water-bottle") {
		t.Fatalf("list failed: %d %s", code, body)
	}

	code, _ = doJSON(t, app, "DELETE", `{"productId":5}`)
	if code != 200 {
		t.Fatalf("remove failed: %d", code)
	}
	code, _ = doJSON(t, app, "DELETE", `{"productId":5}`)
	if code != fiber.StatusBadRequest {
		t.Fatalf("expected 400 removing a non-favorite, got %d", code)
	}
}

func TestFavoriteUnknownProduct(t *testing.T) {
	app := makeApp()
	code, _ := doJSON(t, app, "POST", `{"productId":999}`)
	if code != fiber.StatusNotFound {
		t.Fatalf("expected 404 for unknown product, got %d", code)
	}
}
