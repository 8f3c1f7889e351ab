package cart

import (
	"io"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/ecohero/storefront-backend/internal/product"
)

func makeApp() *fiber.App {
	productService := product.NewService(product.NewInMemoryRepository(product.DefaultCatalog()))
	h := NewHandler(NewService(NewInMemoryRepository(), productService))

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
	h.RegisterProtectedRoutes(app)
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, target, body string) (int, string) {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
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

func TestCartRequiresAuth(t *testing.T) {
	app := makeApp()
	req := httptest.NewRequest("GET", "/api/v1/cart", nil)
	res, _ := app.Test(req)
	if res.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", res.StatusCode)
	}
}

func TestCartAddAndQuoteFlow(t *testing.T) {
	app := makeApp()

	// product 4 is on sale, the cart must snapshot the sale price
	code, body := doJSON(t, app, "POST", "/api/v1/cart/items", `{"productId":4,"quantity":2}`)
	if code != fiber.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", code, body)
	}
	if !strings.Contains(body, `"price":"12.99"`) {
		t.Fatalf("expected snapshotted sale price 12.99, got %s", body)
	}

	code, body = doJSON(t, app, "GET", "/api/v1/cart", "")
	if code != 200 {
		t.Fatalf("expected 200, got %d", code)
	}
	if !strings.Contains(body, `"subtotal":"25.98"`) || !strings.Contains(body, `"shipping":"5.99"`) {
		t.Fatalf("unexpected quote: %s", body)
	}

	// adding the same product again merges into the existing line
	_, _ = doJSON(t, app, "POST", "/api/v1/cart/items", `{"productId":4,"quantity":4}`)
	_, body = doJSON(t, app, "GET", "/api/v1/cart", "")
	if !strings.Contains(body, `"quantity":6`) || !strings.Contains(body, `"freeShipping":true`) {
		t.Fatalf("expected merged line with free shipping, got %s", body)
	}
}

func TestCartPromoOnQuote(t *testing.T) {
	app := makeApp()
	doJSON(t, app, "POST", "/api/v1/cart/items", `{"productId":2,"quantity":4}`)

	// subtotal 99.96, EARTH15 takes 14.99
	code, body := doJSON(t, app, "GET", "/api/v1/cart?promo=EARTH15", "")
	if code != 200 {
		t.Fatalf("expected 200, got %d", code)
	}
	if !strings.Contains(body, `"discount":"14.99"`) || !strings.Contains(body, `"promoCode":"EARTH15"`) {
		t.Fatalf("unexpected promo quote: %s", body)
	}

	// an unknown code is reported but the quote still comes back
	code, body = doJSON(t, app, "GET", "/api/v1/cart?promo=SAVEBIG", "")
	if code != 200 {
		t.Fatalf("expected 200 for invalid promo, got %d", code)
	}
	if !strings.Contains(body, `"promoError":"invalid promo code"`) || !strings.Contains(body, `"discount":"0.00"`) {
		t.Fatalf("unexpected invalid-promo quote: %s", body)
	}
}

func TestCartUpdateRemoveClear(t *testing.T) {
	app := makeApp()
	doJSON(t, app, "POST", "/api/v1/cart/items", `{"productId":1,"quantity":1}`)
	doJSON(t, app, "POST", "/api/v1/cart/items", `{"productId":5,"quantity":1}`)

	code, body := doJSON(t, app, "PUT", "/api/v1/cart/items/1", `{"quantity":3}`)
	if code != 200 || !strings.Contains(body, `"quantity":3`) {
		t.Fatalf("update failed: %d %s", code, body)
	}

	code, _ = doJSON(t, app, "PUT", "/api/v1/cart/items/999", `{"quantity":3}`)
	if code != fiber.StatusNotFound {
		t.Fatalf("expected 404 updating missing line, got %d", code)
	}

	code, body = doJSON(t, app, "DELETE", "/api/v1/cart/items/5", "")
	if code != 200 || strings.Contains(body, `"productId":5`) {
		t.Fatalf("remove failed: %d %s", code, body)
	}

	code, _ = doJSON(t, app, "DELETE", "/api/v1/cart", "")
	if code != 200 {
		t.Fatalf("clear failed: %d", code)
	}
	// shipping falls back to the flat fee once the subtotal is under the
	// threshold again
	_, body = doJSON(t, app, "GET", "/api/v1/cart", "")
	if !strings.Contains(body, `"subtotal":"0.00"`) || !strings.Contains(body, `"shipping":"5.99"`) {
		t.Fatalf("expected empty cart with flat-fee shipping after clear, got %s", body)
	}
}

func TestCartRejectsUnknownAndOutOfStock(t *testing.T) {
	productService := product.NewService(product.NewInMemoryRepository([]product.Product{
		{ID: 9, Slug: "sold-out", Name: "Sold Out", InStock: false},
	}))
	h := NewHandler(NewService(NewInMemoryRepository(), productService))
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		claims := jwt.MapClaims{"user_id": 7}
		c.Locals("user", &jwt.Token{Claims: claims})
		return c.Next()
	})
	h.RegisterProtectedRoutes(app)

	req := httptest.NewRequest("POST", "/api/v1/cart/items", strings.NewReader(`{"productId":9,"quantity":1}`))
	req.Header.Set("Content-Type", "application/json")
	res, _ := app.Test(req)
	if res.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("expected 400 for out-of-stock product, got %d", res.StatusCode)
	}

	req = httptest.NewRequest("POST", "/api/v1/cart/items", strings.NewReader(`{"productId":123,"quantity":1}`))
	req.Header.Set("Content-Type", "application/json")
	res, _ = app.Test(req)
	if res.StatusCode != fiber.StatusNotFound {
		t.Fatalf("expected 404 for unknown product, got %d", res.StatusCode)
	}
}
